package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/platewise/platewise/internal/domain"
)

// ProfileRepository implements domain.ProfileRepository
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, user_id, first_name, gender, zip_code, weight_kg, height_cm,
		       age, dietary_restrictions, budget_constraints, diet_health_goals,
		       bio, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var p domain.Profile
	err := r.db.Pool.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.FirstName,
		&p.Gender,
		&p.ZipCode,
		&p.WeightKG,
		&p.HeightCM,
		&p.Age,
		&p.DietaryRestrictions,
		&p.BudgetConstraints,
		&p.DietHealthGoals,
		&p.Bio,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, user_id, first_name, gender, zip_code, weight_kg, height_cm,
			age, dietary_restrictions, budget_constraints, diet_health_goals,
			bio, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			gender = EXCLUDED.gender,
			zip_code = EXCLUDED.zip_code,
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			age = EXCLUDED.age,
			dietary_restrictions = EXCLUDED.dietary_restrictions,
			budget_constraints = EXCLUDED.budget_constraints,
			diet_health_goals = EXCLUDED.diet_health_goals,
			bio = EXCLUDED.bio,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Pool.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.FirstName,
		profile.Gender,
		profile.ZipCode,
		profile.WeightKG,
		profile.HeightCM,
		profile.Age,
		profile.DietaryRestrictions,
		profile.BudgetConstraints,
		profile.DietHealthGoals,
		profile.Bio,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
