package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/platewise/platewise/internal/domain"
	"github.com/platewise/platewise/internal/spoonacular"
)

// MockLLMProvider mocks llm.Provider
type MockLLMProvider struct {
	mock.Mock
}

func (m *MockLLMProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockLLMProvider) DefaultModel() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockLLMProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockLLMProvider) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockRecipeSource mocks the RecipeSource interface
type MockRecipeSource struct {
	mock.Mock
}

func (m *MockRecipeSource) FindByIngredients(ctx context.Context, ingredients string, number, ranking int) ([]spoonacular.SearchHit, error) {
	args := m.Called(ctx, ingredients, number, ranking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spoonacular.SearchHit), args.Error(1)
}

func (m *MockRecipeSource) GetRecipeInformation(ctx context.Context, recipeID int) (*spoonacular.RecipeInfo, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spoonacular.RecipeInfo), args.Error(1)
}

func (m *MockRecipeSource) GetPriceBreakdown(ctx context.Context, recipeID int) (*spoonacular.PriceBreakdown, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spoonacular.PriceBreakdown), args.Error(1)
}

// MockMealPlanRepository mocks domain.MealPlanRepository
type MockMealPlanRepository struct {
	mock.Mock
}

func (m *MockMealPlanRepository) Create(ctx context.Context, plan *domain.MealPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) Get(ctx context.Context, id uuid.UUID) (*domain.MealPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MealPlan, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) Update(ctx context.Context, plan *domain.MealPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMealPlanRepository) Activate(ctx context.Context, userID, planID uuid.UUID) error {
	args := m.Called(ctx, userID, planID)
	return args.Error(0)
}

// MockUserRepository mocks domain.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockChatMessageRepository mocks domain.ChatMessageRepository
type MockChatMessageRepository struct {
	mock.Mock
}

func (m *MockChatMessageRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatMessageRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

// MockGroceryListRepository mocks domain.GroceryListRepository
type MockGroceryListRepository struct {
	mock.Mock
}

func (m *MockGroceryListRepository) Create(ctx context.Context, list *domain.GroceryList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockGroceryListRepository) Get(ctx context.Context, id uuid.UUID) (*domain.GroceryList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroceryList), args.Error(1)
}

func (m *MockGroceryListRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GroceryList, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.GroceryList), args.Error(1)
}

func (m *MockGroceryListRepository) Update(ctx context.Context, list *domain.GroceryList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockGroceryListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository mocks domain.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
