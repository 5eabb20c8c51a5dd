package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/platewise/platewise/internal/api/middleware"
	"github.com/platewise/platewise/internal/api/response"
	"github.com/platewise/platewise/internal/domain"
	"github.com/platewise/platewise/internal/service"
)

// MealPlanHandler handles meal plan generation and persistence endpoints
type MealPlanHandler struct {
	mealPlanService *service.MealPlanService
}

// NewMealPlanHandler creates a new meal plan handler
func NewMealPlanHandler(mealPlanService *service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService}
}

// Generate synthesizes a structured 7-day meal plan from budget and goals
func (h *MealPlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.MealPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	plan, err := h.mealPlanService.Generate(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, plan)
}

// List returns all saved meal plans for the current user
func (h *MealPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	plans, err := h.mealPlanService.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, plans)
}

// Create saves a meal plan for the current user
func (h *MealPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.MealPlanCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	plan, err := h.mealPlanService.Create(r.Context(), userID, input)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.Created(w, plan)
}

// Get returns a single saved meal plan
func (h *MealPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid plan id")
		return
	}

	plan, err := h.mealPlanService.Get(r.Context(), userID, planID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if plan == nil {
		response.NotFound(w, "meal plan not found")
		return
	}

	response.OK(w, plan)
}

// Update modifies a saved meal plan
func (h *MealPlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid plan id")
		return
	}

	var input domain.MealPlanUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	plan, err := h.mealPlanService.Update(r.Context(), userID, planID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if plan == nil {
		response.NotFound(w, "meal plan not found")
		return
	}

	response.OK(w, plan)
}

// Delete removes a saved meal plan
func (h *MealPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid plan id")
		return
	}

	if err := h.mealPlanService.Delete(r.Context(), userID, planID); err != nil {
		writeServiceError(w, err)
		return
	}

	response.NoContent(w)
}

// Activate marks a saved meal plan as the user's current plan
func (h *MealPlanHandler) Activate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid plan id")
		return
	}

	plan, err := h.mealPlanService.Activate(r.Context(), userID, planID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if plan == nil {
		response.NotFound(w, "meal plan not found")
		return
	}

	response.OK(w, plan)
}
