package domain

// RecipeNutrition holds per-recipe macronutrient data. Absent entirely when
// the recipe source has no nutrient data for a recipe.
type RecipeNutrition struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`
}

// RecipePricing holds per-serving cost in major currency units. Absent when
// the recipe source has no price data (404) or the data is malformed.
type RecipePricing struct {
	CostPerServing float64 `json:"cost_per_serving"`
	Currency       string  `json:"currency"`
	Servings       int     `json:"servings"`
}

// Recipe is a fully enriched recipe candidate. Nutrition and pricing are nil
// when the source lacks them; MacroAlignmentScore is assigned exactly once by
// the ranking pipeline after enrichment.
type Recipe struct {
	ID                  int              `json:"id"`
	Title               string           `json:"title"`
	Image               string           `json:"image"`
	UsedIngredients     []string         `json:"used_ingredients"`
	MissedIngredients   []string         `json:"missed_ingredients"`
	Macronutrients      *RecipeNutrition `json:"macronutrients"`
	Pricing             *RecipePricing   `json:"pricing"`
	MacroAlignmentScore float64          `json:"macro_alignment_score"`
}

// RecipeRecommendation is the atomic result of the ranking pipeline
type RecipeRecommendation struct {
	UserMetrics       UserMetrics `json:"user_metrics"`
	ParsedIngredients string      `json:"parsed_ingredients"`
	RecipeCount       int         `json:"recipe_count"`
	Recipes           []Recipe    `json:"recipes"`
}
