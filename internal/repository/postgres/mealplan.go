package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/platewise/platewise/internal/domain"
)

// MealPlanRepository implements domain.MealPlanRepository
type MealPlanRepository struct {
	db *DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

func (r *MealPlanRepository) Create(ctx context.Context, plan *domain.MealPlan) error {
	query := `
		INSERT INTO meal_plans (id, user_id, name, description, meals, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Pool.Exec(ctx, query,
		plan.ID,
		plan.UserID,
		plan.Name,
		plan.Description,
		plan.Meals,
		plan.IsActive,
		plan.CreatedAt,
		plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create meal plan: %w", err)
	}
	return nil
}

func (r *MealPlanRepository) Get(ctx context.Context, id uuid.UUID) (*domain.MealPlan, error) {
	query := `
		SELECT id, user_id, name, description, meals, is_active, created_at, updated_at
		FROM meal_plans
		WHERE id = $1
	`
	var p domain.MealPlan
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.Meals,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	return &p, nil
}

func (r *MealPlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MealPlan, error) {
	query := `
		SELECT id, user_id, name, description, meals, is_active, created_at, updated_at
		FROM meal_plans
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.MealPlan
	for rows.Next() {
		var p domain.MealPlan
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Name,
			&p.Description,
			&p.Meals,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func (r *MealPlanRepository) Update(ctx context.Context, plan *domain.MealPlan) error {
	query := `
		UPDATE meal_plans
		SET name = $1, description = $2, meals = $3, updated_at = $4
		WHERE id = $5
	`
	_, err := r.db.Pool.Exec(ctx, query,
		plan.Name,
		plan.Description,
		plan.Meals,
		plan.UpdatedAt,
		plan.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update meal plan: %w", err)
	}
	return nil
}

func (r *MealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM meal_plans WHERE id = $1`
	_, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}
	return nil
}

// Activate sets one plan active and clears the flag on the user's others
func (r *MealPlanRepository) Activate(ctx context.Context, userID, planID uuid.UUID) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE meal_plans SET is_active = FALSE WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to deactivate meal plans: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE meal_plans SET is_active = TRUE, updated_at = NOW() WHERE id = $1`, planID); err != nil {
		return fmt.Errorf("failed to activate meal plan: %w", err)
	}

	return tx.Commit(ctx)
}
