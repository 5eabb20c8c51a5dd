package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/platewise/platewise/internal/domain"
	"github.com/platewise/platewise/internal/llm"
)

const defaultTargetCalories = 2000

var weekDays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MealPlanService synthesizes weekly plans via the LLM and manages saved plans
type MealPlanService struct {
	provider   llm.Provider
	planRepo   domain.MealPlanRepository
	llmTimeout time.Duration
}

// NewMealPlanService creates a new meal plan service
func NewMealPlanService(provider llm.Provider, planRepo domain.MealPlanRepository, llmTimeout time.Duration) *MealPlanService {
	if llmTimeout <= 0 {
		llmTimeout = 30 * time.Second
	}
	return &MealPlanService{
		provider:   provider,
		planRepo:   planRepo,
		llmTimeout: llmTimeout,
	}
}

// generatedPlanPayload is the JSON shape expected back from the LLM. Meal
// pointers distinguish a missing required meal from an empty one.
type generatedPlanPayload struct {
	Days []struct {
		Day       string        `json:"day"`
		Breakfast *domain.Meal  `json:"breakfast"`
		Lunch     *domain.Meal  `json:"lunch"`
		Dinner    *domain.Meal  `json:"dinner"`
		Snacks    []domain.Meal `json:"snacks"`
	} `json:"days"`
}

// Generate asks the LLM for a structured 7-day plan and parses the reply.
// Any failure in the flow, from transport to schema shape, surfaces as one
// external-service failure; no partial plan is ever returned.
func (s *MealPlanService) Generate(ctx context.Context, req domain.MealPlanRequest) (*domain.GeneratedMealPlan, error) {
	if req.WeeklyBudget <= 0 {
		return nil, domain.NewValidationError("weekly_budget", "weekly_budget must be greater than 0")
	}
	if strings.TrimSpace(req.DietGoals) == "" {
		return nil, domain.NewValidationError("diet_goals", "diet_goals is required")
	}

	targetCalories := req.TargetCalories
	if targetCalories <= 0 {
		targetCalories = defaultTargetCalories
	}

	prompt := llm.BuildMealPlanPrompt(llm.MealPlanRequest{
		WeeklyBudget:    req.WeeklyBudget,
		Allergies:       req.Allergies,
		DietGoals:       req.DietGoals,
		FoodPreferences: req.FoodPreferences,
		TargetCalories:  targetCalories,
	})

	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	reply, err := s.provider.Complete(llmCtx, prompt)
	if err != nil {
		return nil, domain.NewExternalServiceError("meal plan generation failed", err)
	}

	payload, err := parsePlanReply(reply)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse meal plan reply")
		return nil, domain.NewExternalServiceError("invalid JSON format", err)
	}

	plan, err := buildPlan(payload, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("meal plan reply did not match expected schema")
		return nil, domain.NewExternalServiceError("invalid JSON format", err)
	}

	return plan, nil
}

// parsePlanReply tries a strict parse of the full trimmed reply, then falls
// back to the first {...} span when the model wrapped the JSON in prose.
func parsePlanReply(reply string) (*generatedPlanPayload, error) {
	trimmed := strings.TrimSpace(reply)

	var payload generatedPlanPayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
		return &payload, nil
	}

	span, ok := llm.ExtractJSON(trimmed)
	if !ok {
		return nil, errors.New("no JSON object found in reply")
	}

	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse extracted JSON: %w", err)
	}
	return &payload, nil
}

// buildPlan assembles the typed weekly plan and computes calorie totals.
// A meal with a nil calorie count contributes 0 to the totals but keeps the
// field absent on the record itself.
func buildPlan(payload *generatedPlanPayload, now time.Time) (*domain.GeneratedMealPlan, error) {
	if len(payload.Days) != len(weekDays) {
		return nil, fmt.Errorf("expected %d days, got %d", len(weekDays), len(payload.Days))
	}

	days := make([]domain.DayMeals, 0, len(payload.Days))
	totalCalories := 0
	for i, d := range payload.Days {
		if d.Breakfast == nil || d.Lunch == nil || d.Dinner == nil {
			return nil, fmt.Errorf("day %d is missing a required meal", i+1)
		}

		label := d.Day
		if label == "" {
			label = weekDays[i]
		}

		day := domain.DayMeals{
			Day:       label,
			Breakfast: *d.Breakfast,
			Lunch:     *d.Lunch,
			Dinner:    *d.Dinner,
			Snacks:    d.Snacks,
		}
		days = append(days, day)

		totalCalories += mealCalories(day.Breakfast) + mealCalories(day.Lunch) + mealCalories(day.Dinner)
		for _, snack := range day.Snacks {
			totalCalories += mealCalories(snack)
		}
	}

	return &domain.GeneratedMealPlan{
		ID:            uuid.New(),
		Name:          "AI Meal Plan - " + now.Format("Jan 2, 2006"),
		StartDate:     now.Format("2006-01-02"),
		EndDate:       now.AddDate(0, 0, 6).Format("2006-01-02"),
		Days:          days,
		TotalCalories: totalCalories,
		CreatedAt:     now,
	}, nil
}

func mealCalories(m domain.Meal) int {
	if m.Calories == nil {
		return 0
	}
	return *m.Calories
}

// List returns the user's saved meal plans
func (s *MealPlanService) List(ctx context.Context, userID uuid.UUID) ([]domain.MealPlan, error) {
	return s.planRepo.ListByUser(ctx, userID)
}

// Create saves a meal plan for the user
func (s *MealPlanService) Create(ctx context.Context, userID uuid.UUID, input domain.MealPlanCreate) (*domain.MealPlan, error) {
	now := time.Now()
	plan := &domain.MealPlan{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Meals:       input.Meals,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create meal plan: %w", err)
	}
	return plan, nil
}

// Get returns a plan owned by the user
func (s *MealPlanService) Get(ctx context.Context, userID, planID uuid.UUID) (*domain.MealPlan, error) {
	plan, err := s.planRepo.Get(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	if plan == nil {
		return nil, nil
	}
	if plan.UserID != userID {
		return nil, errors.New("access denied")
	}
	return plan, nil
}

// Update modifies a plan owned by the user
func (s *MealPlanService) Update(ctx context.Context, userID, planID uuid.UUID, input domain.MealPlanUpdate) (*domain.MealPlan, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil || plan == nil {
		return nil, err
	}

	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.Description != nil {
		plan.Description = *input.Description
	}
	if input.Meals != nil {
		plan.Meals = *input.Meals
	}
	plan.UpdatedAt = time.Now()

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update meal plan: %w", err)
	}
	return plan, nil
}

// Delete removes a plan owned by the user
func (s *MealPlanService) Delete(ctx context.Context, userID, planID uuid.UUID) error {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return err
	}
	if plan == nil {
		return nil
	}
	return s.planRepo.Delete(ctx, planID)
}

// Activate marks one plan as active and clears the flag on the others
func (s *MealPlanService) Activate(ctx context.Context, userID, planID uuid.UUID) (*domain.MealPlan, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil || plan == nil {
		return nil, err
	}
	if err := s.planRepo.Activate(ctx, userID, planID); err != nil {
		return nil, fmt.Errorf("failed to activate meal plan: %w", err)
	}
	return s.planRepo.Get(ctx, planID)
}
