package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/platewise/internal/domain"
)

// GroceryService manages grocery lists
type GroceryService struct {
	groceryRepo domain.GroceryListRepository
}

// NewGroceryService creates a new grocery service
func NewGroceryService(groceryRepo domain.GroceryListRepository) *GroceryService {
	return &GroceryService{groceryRepo: groceryRepo}
}

// List returns the user's grocery lists
func (s *GroceryService) List(ctx context.Context, userID uuid.UUID) ([]domain.GroceryList, error) {
	return s.groceryRepo.ListByUser(ctx, userID)
}

// Create saves a new grocery list
func (s *GroceryService) Create(ctx context.Context, userID uuid.UUID, input domain.GroceryListCreate) (*domain.GroceryList, error) {
	now := time.Now()
	list := &domain.GroceryList{
		ID:         uuid.New(),
		UserID:     userID,
		MealPlanID: input.MealPlanID,
		Items:      input.Items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.groceryRepo.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to create grocery list: %w", err)
	}
	return list, nil
}

// Get returns a grocery list owned by the user
func (s *GroceryService) Get(ctx context.Context, userID, listID uuid.UUID) (*domain.GroceryList, error) {
	list, err := s.groceryRepo.Get(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get grocery list: %w", err)
	}
	if list == nil {
		return nil, nil
	}
	if list.UserID != userID {
		return nil, errors.New("access denied")
	}
	return list, nil
}

// Update replaces the list's items
func (s *GroceryService) Update(ctx context.Context, userID, listID uuid.UUID, input domain.GroceryListUpdate) (*domain.GroceryList, error) {
	list, err := s.Get(ctx, userID, listID)
	if err != nil || list == nil {
		return nil, err
	}

	list.Items = input.Items
	list.UpdatedAt = time.Now()

	if err := s.groceryRepo.Update(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to update grocery list: %w", err)
	}
	return list, nil
}

// Delete removes a grocery list owned by the user
func (s *GroceryService) Delete(ctx context.Context, userID, listID uuid.UUID) error {
	list, err := s.Get(ctx, userID, listID)
	if err != nil {
		return err
	}
	if list == nil {
		return nil
	}
	return s.groceryRepo.Delete(ctx, listID)
}
