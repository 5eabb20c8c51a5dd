package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildIngredientPrompt(t *testing.T) {
	t.Run("includes goals, preferences, and allergies", func(t *testing.T) {
		prompt := BuildIngredientPrompt(IngredientRequest{
			FoodPreferences: "mediterranean dishes",
			DietGoals:       "weight loss",
			Allergies:       []string{"peanut", "shellfish"},
		})

		assert.Contains(t, prompt, "weight loss")
		assert.Contains(t, prompt, "mediterranean dishes")
		assert.Contains(t, prompt, "ALLERGIES TO EXCLUDE: peanut, shellfish")
		assert.Contains(t, prompt, "comma-separated")
	})

	t.Run("empty allergy list renders as none", func(t *testing.T) {
		prompt := BuildIngredientPrompt(IngredientRequest{
			FoodPreferences: "anything",
			DietGoals:       "balanced",
		})

		assert.Contains(t, prompt, "ALLERGIES TO EXCLUDE: none")
	})
}

func TestBuildMealPlanPrompt(t *testing.T) {
	prompt := BuildMealPlanPrompt(MealPlanRequest{
		WeeklyBudget:   140,
		DietGoals:      "high protein",
		TargetCalories: 2200,
		Allergies:      []string{"dairy"},
	})

	assert.Contains(t, prompt, "high protein")
	assert.Contains(t, prompt, "dairy")
	assert.Contains(t, prompt, "2200")
	// Daily budget hint is weekly / 7
	assert.Contains(t, prompt, "$20.00")
	assert.Contains(t, prompt, `"days"`)
	assert.Contains(t, prompt, "exactly 7 entries")
}

func TestExtractJSON(t *testing.T) {
	t.Run("finds the object inside prose", func(t *testing.T) {
		content := "Sure! Here you go:\n{\"days\": []}\nLet me know if you need changes."

		span, ok := ExtractJSON(content)
		assert.True(t, ok)

		var parsed map[string]any
		assert.NoError(t, json.Unmarshal([]byte(span), &parsed))
		assert.Contains(t, parsed, "days")
	})

	t.Run("spans nested braces across lines", func(t *testing.T) {
		content := "prefix {\"a\": {\"b\": 1},\n\"c\": 2} suffix"

		span, ok := ExtractJSON(content)
		assert.True(t, ok)
		assert.True(t, strings.HasPrefix(span, "{"))
		assert.True(t, strings.HasSuffix(span, "}"))

		var parsed map[string]any
		assert.NoError(t, json.Unmarshal([]byte(span), &parsed))
	})

	t.Run("no object present", func(t *testing.T) {
		_, ok := ExtractJSON("I am unable to produce a plan.")
		assert.False(t, ok)
	})
}
