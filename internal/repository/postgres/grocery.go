package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/platewise/platewise/internal/domain"
)

// GroceryListRepository implements domain.GroceryListRepository
type GroceryListRepository struct {
	db *DB
}

// NewGroceryListRepository creates a new grocery list repository
func NewGroceryListRepository(db *DB) *GroceryListRepository {
	return &GroceryListRepository{db: db}
}

func (r *GroceryListRepository) Create(ctx context.Context, list *domain.GroceryList) error {
	query := `
		INSERT INTO grocery_lists (id, user_id, meal_plan_id, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Pool.Exec(ctx, query,
		list.ID,
		list.UserID,
		list.MealPlanID,
		list.Items,
		list.CreatedAt,
		list.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create grocery list: %w", err)
	}
	return nil
}

func (r *GroceryListRepository) Get(ctx context.Context, id uuid.UUID) (*domain.GroceryList, error) {
	query := `
		SELECT id, user_id, meal_plan_id, items, created_at, updated_at
		FROM grocery_lists
		WHERE id = $1
	`
	var l domain.GroceryList
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&l.ID,
		&l.UserID,
		&l.MealPlanID,
		&l.Items,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get grocery list: %w", err)
	}
	return &l, nil
}

func (r *GroceryListRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GroceryList, error) {
	query := `
		SELECT id, user_id, meal_plan_id, items, created_at, updated_at
		FROM grocery_lists
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery lists: %w", err)
	}
	defer rows.Close()

	var lists []domain.GroceryList
	for rows.Next() {
		var l domain.GroceryList
		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.MealPlanID,
			&l.Items,
			&l.CreatedAt,
			&l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan grocery list: %w", err)
		}
		lists = append(lists, l)
	}
	return lists, nil
}

func (r *GroceryListRepository) Update(ctx context.Context, list *domain.GroceryList) error {
	query := `
		UPDATE grocery_lists
		SET items = $1, updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.Pool.Exec(ctx, query, list.Items, list.UpdatedAt, list.ID)
	if err != nil {
		return fmt.Errorf("failed to update grocery list: %w", err)
	}
	return nil
}

func (r *GroceryListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM grocery_lists WHERE id = $1`
	_, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete grocery list: %w", err)
	}
	return nil
}
