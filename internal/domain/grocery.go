package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GroceryList is a persisted shopping list, optionally tied to a meal plan
type GroceryList struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	MealPlanID *uuid.UUID `json:"meal_plan_id,omitempty"`
	Items      []string   `json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// GroceryListCreate is the payload for creating a grocery list
type GroceryListCreate struct {
	MealPlanID *uuid.UUID `json:"meal_plan_id"`
	Items      []string   `json:"items" validate:"required,max=200,dive,max=255"`
}

// GroceryListUpdate is the payload for replacing a grocery list's items
type GroceryListUpdate struct {
	Items []string `json:"items" validate:"required,max=200,dive,max=255"`
}

// GroceryListRepository persists grocery lists
type GroceryListRepository interface {
	Create(ctx context.Context, list *GroceryList) error
	Get(ctx context.Context, id uuid.UUID) (*GroceryList, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]GroceryList, error)
	Update(ctx context.Context, list *GroceryList) error
	Delete(ctx context.Context, id uuid.UUID) error
}
