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

// GroceryHandler handles grocery list endpoints
type GroceryHandler struct {
	groceryService *service.GroceryService
}

// NewGroceryHandler creates a new grocery handler
func NewGroceryHandler(groceryService *service.GroceryService) *GroceryHandler {
	return &GroceryHandler{groceryService: groceryService}
}

// List returns the current user's grocery lists
func (h *GroceryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	lists, err := h.groceryService.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, lists)
}

// Create saves a new grocery list
func (h *GroceryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.GroceryListCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	list, err := h.groceryService.Create(r.Context(), userID, input)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.Created(w, list)
}

// Get returns a single grocery list
func (h *GroceryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	listID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid list id")
		return
	}

	list, err := h.groceryService.Get(r.Context(), userID, listID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		response.NotFound(w, "grocery list not found")
		return
	}

	response.OK(w, list)
}

// Update replaces a grocery list's items
func (h *GroceryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	listID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid list id")
		return
	}

	var input domain.GroceryListUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	list, err := h.groceryService.Update(r.Context(), userID, listID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		response.NotFound(w, "grocery list not found")
		return
	}

	response.OK(w, list)
}

// Delete removes a grocery list
func (h *GroceryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	listID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid list id")
		return
	}

	if err := h.groceryService.Delete(r.Context(), userID, listID); err != nil {
		writeServiceError(w, err)
		return
	}

	response.NoContent(w)
}
