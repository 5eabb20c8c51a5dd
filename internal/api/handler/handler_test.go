package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/platewise/platewise/internal/api/handler"
	"github.com/platewise/platewise/internal/service"
)

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["success"] != true {
		t.Error("expected success to be true")
	}

	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected data to be a map")
	}

	if data["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", data["status"])
	}
}

func TestRecipeHandler_Recommend_Validation(t *testing.T) {
	// Validation failures never reach the LLM or recipe service, so nil
	// backends are safe here
	h := handler.NewRecipeHandler(service.NewRecipeService(nil, nil, time.Second))

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()

		h.Recommend(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("height out of range", func(t *testing.T) {
		req := makeJSONRequest(http.MethodPost, "/api/v1/recipes", map[string]any{
			"height_cm":        90,
			"weight_kg":        70,
			"food_preferences": "anything",
			"diet_goals":       "balanced",
		})
		rec := httptest.NewRecorder()

		h.Recommend(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("allergy with special characters", func(t *testing.T) {
		req := makeJSONRequest(http.MethodPost, "/api/v1/recipes", map[string]any{
			"height_cm":        175,
			"weight_kg":        70,
			"allergies":        []string{"pea;nut"},
			"food_preferences": "anything",
			"diet_goals":       "balanced",
		})
		rec := httptest.NewRecorder()

		h.Recommend(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}

		var response map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response["success"] != false {
			t.Error("expected success to be false")
		}
	})

	t.Run("more than ten allergies", func(t *testing.T) {
		allergies := make([]string, 11)
		for i := range allergies {
			allergies[i] = "allergy"
		}
		req := makeJSONRequest(http.MethodPost, "/api/v1/recipes", map[string]any{
			"height_cm":        175,
			"weight_kg":        70,
			"allergies":        allergies,
			"food_preferences": "anything",
			"diet_goals":       "balanced",
		})
		rec := httptest.NewRecorder()

		h.Recommend(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("bad limit query param", func(t *testing.T) {
		req := makeJSONRequest(http.MethodPost, "/api/v1/recipes?limit=99", map[string]any{
			"height_cm":        175,
			"weight_kg":        70,
			"food_preferences": "anything",
			"diet_goals":       "balanced",
		})
		rec := httptest.NewRecorder()

		h.Recommend(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

func TestMealPlanHandler_Generate_Validation(t *testing.T) {
	h := handler.NewMealPlanHandler(service.NewMealPlanService(nil, nil, time.Second))

	t.Run("missing budget", func(t *testing.T) {
		req := makeJSONRequest(http.MethodPost, "/api/v1/meal-plans/generate", map[string]any{
			"diet_goals": "balanced",
		})
		rec := httptest.NewRecorder()

		h.Generate(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

// Helper to make JSON request
func makeJSONRequest(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}
