package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile holds the user's health profile and dietary constraints
type Profile struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	FirstName           string    `json:"first_name"`
	Gender              string    `json:"gender"`
	ZipCode             string    `json:"zip_code"`
	WeightKG            string    `json:"weight_kg"`
	HeightCM            string    `json:"height_cm"`
	Age                 *int      `json:"age,omitempty"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	BudgetConstraints   string    `json:"budget_constraints"`
	DietHealthGoals     string    `json:"diet_health_goals"`
	Bio                 string    `json:"bio"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ProfileUpdate is the payload for profile upsert. Nil fields are untouched.
type ProfileUpdate struct {
	FirstName           *string `json:"first_name" validate:"omitempty,max=100"`
	Gender              *string `json:"gender" validate:"omitempty,max=32"`
	ZipCode             *string `json:"zip_code" validate:"omitempty,max=16"`
	WeightKG            *string `json:"weight_kg" validate:"omitempty,max=16"`
	HeightCM            *string `json:"height_cm" validate:"omitempty,max=16"`
	Age                 *int    `json:"age" validate:"omitempty,min=0,max=150"`
	DietaryRestrictions *string `json:"dietary_restrictions" validate:"omitempty,max=2000"`
	BudgetConstraints   *string `json:"budget_constraints" validate:"omitempty,max=2000"`
	DietHealthGoals     *string `json:"diet_health_goals" validate:"omitempty,max=2000"`
	Bio                 *string `json:"bio" validate:"omitempty,max=2000"`
}

// ProfileRepository persists user profiles
type ProfileRepository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
}
