package llm

import (
	"fmt"
	"regexp"
	"strings"
)

// IngredientRequest contains ingredient extraction parameters
type IngredientRequest struct {
	FoodPreferences string
	DietGoals       string
	Allergies       []string
}

// BuildIngredientPrompt creates a prompt that turns preferences and goals
// into a single comma-separated ingredient line, excluding stated allergens.
// The reply is not re-verified here; the enrichment-stage substring filter is
// the only allergen enforcement point downstream.
func BuildIngredientPrompt(req IngredientRequest) string {
	allergyStr := "none"
	if len(req.Allergies) > 0 {
		allergyStr = strings.Join(req.Allergies, ", ")
	}

	return fmt.Sprintf(`You are a recipe ingredient extractor. The user has provided:

Dietary Goals: %s
Food Preferences: %s
ALLERGIES TO EXCLUDE: %s

Your task:
1. Extract ingredients suitable for the stated goals and preferences
2. ABSOLUTELY DO NOT include any of the allergenic ingredients
3. Return ONLY a comma-separated list of ingredients
4. Example format: "chicken,broccoli,olive oil,garlic"

CRITICAL: Do not include %s in any form. Return ONLY the ingredient list, nothing else.`,
		req.DietGoals, req.FoodPreferences, allergyStr, allergyStr)
}

// MealPlanRequest contains meal plan generation parameters
type MealPlanRequest struct {
	WeeklyBudget    float64
	Allergies       []string
	DietGoals       string
	FoodPreferences string
	TargetCalories  int
}

// BuildMealPlanPrompt creates a prompt instructing a 7-day plan as JSON
// matching a fixed schema. The daily budget hint is weekly budget / 7.
func BuildMealPlanPrompt(req MealPlanRequest) string {
	allergyStr := "none"
	if len(req.Allergies) > 0 {
		allergyStr = strings.Join(req.Allergies, ", ")
	}

	preferences := req.FoodPreferences
	if preferences == "" {
		preferences = "no specific preferences"
	}

	return fmt.Sprintf(`You are a meal planning assistant. Create a 7-day meal plan as JSON.

Constraints:
- Diet goals: %s
- Food preferences: %s
- Allergens to exclude completely: %s
- Target calories per day: %d
- Daily food budget: $%.2f (weekly budget $%.2f)

Return ONLY valid JSON matching exactly this schema, no markdown, no commentary:
{
  "days": [
    {
      "day": "Monday",
      "breakfast": {"name": "...", "description": "...", "calories": 0, "protein": 0, "carbs": 0, "fat": 0},
      "lunch": {"name": "...", "description": "...", "calories": 0, "protein": 0, "carbs": 0, "fat": 0},
      "dinner": {"name": "...", "description": "...", "calories": 0, "protein": 0, "carbs": 0, "fat": 0},
      "snacks": [{"name": "...", "calories": 0}]
    }
  ]
}

The "days" array must contain exactly 7 entries, Monday through Sunday, each with
breakfast, lunch, and dinner. Snacks are optional.`,
		req.DietGoals, preferences, allergyStr, req.TargetCalories,
		req.WeeklyBudget/7, req.WeeklyBudget)
}

// BuildChatPrompt creates a prompt for the free-text nutrition chat
func BuildChatPrompt(message string) string {
	return fmt.Sprintf(`You are a friendly nutrition assistant. Answer the user's question
about food, diet, or meal planning concisely and practically.

User: %s`, message)
}

var jsonSpanPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON finds the first {...} span in an LLM reply that mixes prose
// with JSON. Returns false when no span is present.
func ExtractJSON(content string) (string, bool) {
	match := jsonSpanPattern.FindString(content)
	if match == "" {
		return "", false
	}
	return match, true
}
