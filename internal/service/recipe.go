package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/platewise/platewise/internal/domain"
	"github.com/platewise/platewise/internal/llm"
	"github.com/platewise/platewise/internal/spoonacular"
)

const (
	// Oversampled search count to absorb allergen-filter attrition
	searchCandidates = 15
	// ranking=1 maximizes used ingredients in search results
	searchRanking = 1
	// DefaultRecipeLimit caps the caller-facing result list
	DefaultRecipeLimit = 8
)

// RecipeSource is the recipe service contract consumed by the pipeline
type RecipeSource interface {
	FindByIngredients(ctx context.Context, ingredients string, number, ranking int) ([]spoonacular.SearchHit, error)
	GetRecipeInformation(ctx context.Context, recipeID int) (*spoonacular.RecipeInfo, error)
	GetPriceBreakdown(ctx context.Context, recipeID int) (*spoonacular.PriceBreakdown, error)
}

// RecipeService orchestrates the ranking pipeline: metrics, ingredient
// extraction, recipe search, per-candidate enrichment, scoring, and sorting.
type RecipeService struct {
	provider   llm.Provider
	recipes    RecipeSource
	llmTimeout time.Duration
}

// NewRecipeService creates a new recipe service
func NewRecipeService(provider llm.Provider, recipes RecipeSource, llmTimeout time.Duration) *RecipeService {
	if llmTimeout <= 0 {
		llmTimeout = 30 * time.Second
	}
	return &RecipeService{
		provider:   provider,
		recipes:    recipes,
		llmTimeout: llmTimeout,
	}
}

// GetRecipesForUser runs the full workflow and returns parsed ingredients,
// ranked recipes, and user metrics as one atomic result. An empty search
// result is not an error; metrics are still returned with zero recipes.
func (s *RecipeService) GetRecipesForUser(ctx context.Context, input domain.UserInput, limit int) (*domain.RecipeRecommendation, error) {
	if limit <= 0 {
		limit = DefaultRecipeLimit
	}

	metrics := CalculateMetrics(input)
	log.Info().
		Float64("bmi", metrics.BMI).
		Int("tdee", metrics.TDEEEstimate).
		Msg("calculated user metrics")

	ingredients, err := s.ExtractIngredients(ctx, input)
	if err != nil {
		return nil, err
	}
	log.Info().Str("ingredients", ingredients).Msg("extracted ingredients")

	hits, err := s.recipes.FindByIngredients(ctx, ingredients, searchCandidates, searchRanking)
	if err != nil {
		return nil, domain.NewExternalServiceError("recipe search failed", err)
	}

	if len(hits) == 0 {
		log.Warn().Msg("no recipes found for extracted ingredients")
		return &domain.RecipeRecommendation{
			UserMetrics:       metrics,
			ParsedIngredients: ingredients,
			Recipes:           []domain.Recipe{},
		}, nil
	}

	enriched := make([]domain.Recipe, 0, len(hits))
	for _, hit := range hits {
		if recipe := s.enrichRecipe(ctx, hit, input.Allergies); recipe != nil {
			enriched = append(enriched, *recipe)
		}
	}
	log.Info().Int("count", len(enriched)).Msg("enriched recipes after allergen filtering")

	for i := range enriched {
		enriched[i].MacroAlignmentScore = macroAlignmentScore(enriched[i].Macronutrients, metrics.MacroTargets)
	}

	// Stable sort keeps enrichment order for ties in both keys
	sort.SliceStable(enriched, func(i, j int) bool {
		if enriched[i].MacroAlignmentScore != enriched[j].MacroAlignmentScore {
			return enriched[i].MacroAlignmentScore > enriched[j].MacroAlignmentScore
		}
		return sortCost(enriched[i]) < sortCost(enriched[j])
	})

	if len(enriched) > limit {
		enriched = enriched[:limit]
	}

	return &domain.RecipeRecommendation{
		UserMetrics:       metrics,
		ParsedIngredients: ingredients,
		RecipeCount:       len(enriched),
		Recipes:           enriched,
	}, nil
}

// ExtractIngredients turns preferences, goals, and allergies into a
// comma-separated ingredient line via one LLM call. There is no retry and
// the reply is not re-checked against the allergy list here.
func (s *RecipeService) ExtractIngredients(ctx context.Context, input domain.UserInput) (string, error) {
	prompt := llm.BuildIngredientPrompt(llm.IngredientRequest{
		FoodPreferences: input.FoodPreferences,
		DietGoals:       input.DietGoals,
		Allergies:       input.Allergies,
	})

	ctx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	reply, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return "", domain.NewExternalServiceError("ingredient extraction failed", err)
	}

	ingredients := strings.TrimSpace(reply)
	switch strings.ToLower(ingredients) {
	case "", "none", "no ingredients":
		return "", domain.NewExternalServiceError("could not extract meaningful ingredients from the provided input", nil)
	}

	return ingredients, nil
}

// enrichRecipe turns a search hit into a fully populated recipe, or nil when
// the recipe contains an allergen or cannot be assembled. One bad candidate
// never aborts the batch.
func (s *RecipeService) enrichRecipe(ctx context.Context, hit spoonacular.SearchHit, allergies []string) *domain.Recipe {
	info, err := s.recipes.GetRecipeInformation(ctx, hit.ID)
	if err != nil {
		// Degraded enrichment: fall back to search hit fields only
		log.Warn().Err(err).Int("recipe_id", hit.ID).Msg("could not fetch recipe detail")
		info = nil
	}

	if info != nil {
		for _, ing := range info.ExtendedIngredients {
			text := strings.ToLower(ing.Original)
			for _, allergen := range allergies {
				// Raw substring containment, so "egg" also matches "eggplant"
				if strings.Contains(text, allergen) {
					log.Info().
						Int("recipe_id", hit.ID).
						Str("allergen", allergen).
						Msg("filtering out recipe: contains allergen")
					return nil
				}
			}
		}
	}

	var nutrition *domain.RecipeNutrition
	if info != nil {
		nutrition = nutritionFromDetail(info.Nutrition)
	}

	servings := 1
	if info != nil && info.Servings > 0 {
		servings = info.Servings
	}

	var pricing *domain.RecipePricing
	price, err := s.recipes.GetPriceBreakdown(ctx, hit.ID)
	if err != nil {
		// Pricing is best-effort; never fatal
		log.Warn().Err(err).Int("recipe_id", hit.ID).Msg("could not fetch price breakdown")
	} else {
		pricing = pricingFromBreakdown(price, servings)
	}

	return &domain.Recipe{
		ID:                hit.ID,
		Title:             hit.Title,
		Image:             hit.Image,
		UsedIngredients:   ingredientNames(hit.UsedIngredients),
		MissedIngredients: ingredientNames(hit.MissedIngredients),
		Macronutrients:    nutrition,
		Pricing:           pricing,
	}
}

// nutritionFromDetail extracts macros from the detail nutrition block.
// Returns nil when the block is absent or has no nutrients.
func nutritionFromDetail(block *spoonacular.NutritionBlock) *domain.RecipeNutrition {
	if block == nil || len(block.Nutrients) == 0 {
		return nil
	}

	amounts := make(map[string]float64, len(block.Nutrients))
	for _, n := range block.Nutrients {
		amounts[n.Name] = n.Amount
	}

	return &domain.RecipeNutrition{
		Calories: int(amounts["Calories"]),
		ProteinG: amounts["Protein"],
		CarbsG:   amounts["Carbohydrates"],
		FatsG:    amounts["Fat"],
	}
}

// pricingFromBreakdown converts a minor-unit total cost into a per-serving
// cost in major units. Returns nil for absent data or zero servings.
func pricingFromBreakdown(price *spoonacular.PriceBreakdown, servings int) *domain.RecipePricing {
	if price == nil || servings <= 0 {
		return nil
	}

	costPerServing := price.TotalCost / float64(servings) / 100

	return &domain.RecipePricing{
		CostPerServing: math.Round(costPerServing*100) / 100,
		Currency:       "USD",
		Servings:       servings,
	}
}

// macroAlignmentScore measures how closely recipe macros match the targets
// on a 0-100 scale: the average relative deviation across protein, carbs,
// and fat mapped to 100 − 100×avg, floored at 0, rounded to one decimal.
// Recipes without nutrition data score exactly 0.
func macroAlignmentScore(nutrition *domain.RecipeNutrition, targets domain.MacroTargets) float64 {
	if nutrition == nil {
		return 0
	}

	proteinDev := math.Abs(nutrition.ProteinG-float64(targets.ProteinG)) / math.Max(float64(targets.ProteinG), 1)
	carbsDev := math.Abs(nutrition.CarbsG-float64(targets.CarbsG)) / math.Max(float64(targets.CarbsG), 1)
	fatsDev := math.Abs(nutrition.FatsG-float64(targets.FatsG)) / math.Max(float64(targets.FatsG), 1)

	avgDev := (proteinDev + carbsDev + fatsDev) / 3
	score := math.Max(0, 100-avgDev*100)
	return math.Round(score*10) / 10
}

// sortCost is the secondary sort key; recipes without pricing sort last
func sortCost(r domain.Recipe) float64 {
	if r.Pricing == nil {
		return math.Inf(1)
	}
	return r.Pricing.CostPerServing
}

func ingredientNames(refs []spoonacular.IngredientRef) []string {
	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = ref.Name
	}
	return names
}
