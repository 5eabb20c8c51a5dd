package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/platewise/platewise/internal/api/response"
	"github.com/platewise/platewise/internal/domain"
	"github.com/platewise/platewise/internal/service"
)

// RecipeHandler handles recipe recommendation endpoints
type RecipeHandler struct {
	recipeService *service.RecipeService
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// Recommend accepts a health profile and dietary constraints and returns
// ranked recipe recommendations with computed nutrition targets.
func (h *RecipeHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req domain.RecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	input, err := domain.NewUserInput(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	limit := service.DefaultRecipeLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 15 {
			response.BadRequest(w, "limit must be an integer between 1 and 15")
			return
		}
		limit = n
	}

	result, err := h.recipeService.GetRecipesForUser(r.Context(), input, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, result)
}
