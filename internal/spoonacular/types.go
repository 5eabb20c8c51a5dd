package spoonacular

// IngredientRef is a named ingredient inside a search hit
type IngredientRef struct {
	Name string `json:"name"`
}

// SearchHit is one result from the findByIngredients endpoint
type SearchHit struct {
	ID                int             `json:"id"`
	Title             string          `json:"title"`
	Image             string          `json:"image"`
	UsedIngredients   []IngredientRef `json:"usedIngredients"`
	MissedIngredients []IngredientRef `json:"missedIngredients"`
}

// ExtendedIngredient is a full-text ingredient line from recipe detail
type ExtendedIngredient struct {
	Original string `json:"original"`
}

// Nutrient is one entry of the detail nutrition block
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// NutritionBlock holds the nutrient list from recipe detail
type NutritionBlock struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// RecipeInfo is the full recipe detail with nutrition
type RecipeInfo struct {
	ID                  int                  `json:"id"`
	Title               string               `json:"title"`
	Servings            int                  `json:"servings"`
	ExtendedIngredients []ExtendedIngredient `json:"extendedIngredients"`
	Nutrition           *NutritionBlock      `json:"nutrition"`
}

// PriceBreakdown holds total recipe cost in minor currency units (cents)
type PriceBreakdown struct {
	TotalCost float64 `json:"totalCost"`
}
