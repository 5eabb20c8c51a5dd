package domain

import (
	"regexp"
	"strings"
)

var allergyPattern = regexp.MustCompile(`^[a-z0-9\s\-]+$`)

// RecipeRequest is the raw recipe recommendation payload before normalization
type RecipeRequest struct {
	HeightCM        int      `json:"height_cm" validate:"required,min=100,max=250"`
	WeightKG        int      `json:"weight_kg" validate:"required,min=30,max=300"`
	Allergies       []string `json:"allergies" validate:"max=10"`
	FoodPreferences string   `json:"food_preferences" validate:"required,min=1,max=500"`
	DietGoals       string   `json:"diet_goals" validate:"required,min=1,max=500"`
}

// UserInput is a validated, normalized recipe request. Allergies are
// lowercased, trimmed, and restricted to alphanumerics, spaces, and hyphens.
type UserInput struct {
	HeightCM        int
	WeightKG        int
	Allergies       []string
	FoodPreferences string
	DietGoals       string
}

// NewUserInput normalizes a recipe request into core input. Field bounds are
// enforced upstream by the request validator; this only normalizes allergies
// and rejects entries with characters outside [a-z0-9\s-].
func NewUserInput(req RecipeRequest) (UserInput, error) {
	allergies := make([]string, 0, len(req.Allergies))
	for _, a := range req.Allergies {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if !allergyPattern.MatchString(a) {
			return UserInput{}, NewValidationError(
				"allergies",
				"invalid allergy '"+a+"': only alphanumeric, spaces, and hyphens allowed",
			)
		}
		allergies = append(allergies, a)
	}

	return UserInput{
		HeightCM:        req.HeightCM,
		WeightKG:        req.WeightKG,
		Allergies:       allergies,
		FoodPreferences: strings.TrimSpace(req.FoodPreferences),
		DietGoals:       strings.TrimSpace(req.DietGoals),
	}, nil
}

// GoalClass classifies free-text diet goals into a macro split
type GoalClass int

const (
	GoalBalanced GoalClass = iota
	GoalWeightLoss
	GoalMuscleGain
)

// ClassifyGoal maps diet goal text to a goal class. "weight loss" takes
// precedence over "muscle"/"gain" when both substrings are present.
func ClassifyGoal(dietGoals string) GoalClass {
	goals := strings.ToLower(dietGoals)
	switch {
	case strings.Contains(goals, "weight loss"):
		return GoalWeightLoss
	case strings.Contains(goals, "muscle"), strings.Contains(goals, "gain"):
		return GoalMuscleGain
	default:
		return GoalBalanced
	}
}

// MacroTargets holds daily macro targets in integer grams
type MacroTargets struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatsG    int `json:"fats_g"`
}

// UserMetrics holds derived health metrics, computed once per request
type UserMetrics struct {
	HeightCM     int          `json:"height_cm"`
	WeightKG     int          `json:"weight_kg"`
	BMI          float64      `json:"bmi"`
	TDEEEstimate int          `json:"tdee_estimate"`
	MacroTargets MacroTargets `json:"macro_targets"`
}
