package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MealPlanRequest is the payload for LLM meal plan generation
type MealPlanRequest struct {
	WeeklyBudget    float64  `json:"weekly_budget" validate:"required,gt=0"`
	Allergies       []string `json:"allergies" validate:"max=10"`
	DietGoals       string   `json:"diet_goals" validate:"required,min=1,max=500"`
	FoodPreferences string   `json:"food_preferences" validate:"max=500"`
	TargetCalories  int      `json:"target_calories" validate:"omitempty,gt=0"`
}

// Meal is one synthesized meal. Numeric fields are nil when the model
// omitted them; they are never defaulted to zero on the record itself.
type Meal struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Calories    *int     `json:"calories,omitempty"`
	Protein     *float64 `json:"protein,omitempty"`
	Carbs       *float64 `json:"carbs,omitempty"`
	Fat         *float64 `json:"fat,omitempty"`
}

// DayMeals holds one day of a generated plan
type DayMeals struct {
	Day       string `json:"day"`
	Breakfast Meal   `json:"breakfast"`
	Lunch     Meal   `json:"lunch"`
	Dinner    Meal   `json:"dinner"`
	Snacks    []Meal `json:"snacks,omitempty"`
}

// GeneratedMealPlan is a synthesized 7-day plan parsed from the LLM reply
type GeneratedMealPlan struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	IsCurrent     bool       `json:"is_current"`
	Days          []DayMeals `json:"days"`
	TotalCalories int        `json:"total_calories"`
	CreatedAt     time.Time  `json:"created_at"`
}

// MealPlan is a persisted meal plan owned by a user
type MealPlan struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Meals       string    `json:"meals"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MealPlanCreate is the payload for saving a meal plan
type MealPlanCreate struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Meals       string `json:"meals"`
}

// MealPlanUpdate is the payload for updating a saved meal plan
type MealPlanUpdate struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Meals       *string `json:"meals"`
}

// MealPlanRepository persists user meal plans
type MealPlanRepository interface {
	Create(ctx context.Context, plan *MealPlan) error
	Get(ctx context.Context, id uuid.UUID) (*MealPlan, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]MealPlan, error)
	Update(ctx context.Context, plan *MealPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, userID, planID uuid.UUID) error
}
