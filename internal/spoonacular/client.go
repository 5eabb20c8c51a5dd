package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "https://api.spoonacular.com"

// ErrNotFound signals a 404 from the recipe service
var ErrNotFound = fmt.Errorf("spoonacular: not found")

// Client wraps the Spoonacular recipe API. Recipe detail lookups are
// memoized for the lifetime of the client; the cache has no eviction, which
// is acceptable for request-scoped reuse but unbounded over process lifetime.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client

	mu    sync.Mutex
	cache map[int]*RecipeInfo
}

// NewClient creates a Spoonacular API client
func NewClient(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		cache:   make(map[int]*RecipeInfo),
	}
}

// NewClientWithBaseURL creates a client against a custom base URL
func NewClientWithBaseURL(apiKey, baseURL string, timeout time.Duration) *Client {
	c := NewClient(apiKey, timeout)
	c.baseURL = baseURL
	return c
}

// FindByIngredients searches recipes by a comma-separated ingredient list.
// ranking 1 maximizes used ingredients, 2 minimizes missing ones.
func (c *Client) FindByIngredients(ctx context.Context, ingredients string, number, ranking int) ([]SearchHit, error) {
	params := url.Values{}
	params.Set("ingredients", ingredients)
	params.Set("number", strconv.Itoa(number))
	params.Set("ranking", strconv.Itoa(ranking))

	body, err := c.get(ctx, "/recipes/findByIngredients", params)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}

	var hits []SearchHit
	if err := json.Unmarshal(body, &hits); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	log.Info().Int("count", len(hits)).Msg("spoonacular search returned recipes")
	return hits, nil
}

// GetRecipeInformation fetches full recipe detail including nutrition,
// memoized per recipe id.
func (c *Client) GetRecipeInformation(ctx context.Context, recipeID int) (*RecipeInfo, error) {
	c.mu.Lock()
	cached, ok := c.cache[recipeID]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("includeNutrition", "true")

	body, err := c.get(ctx, fmt.Sprintf("/recipes/%d/information", recipeID), params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe details: %w", err)
	}

	var info RecipeInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse recipe details: %w", err)
	}

	c.mu.Lock()
	c.cache[recipeID] = &info
	c.mu.Unlock()

	return &info, nil
}

// GetPriceBreakdown fetches price data for a recipe. A 404 means the recipe
// has no pricing and yields (nil, nil); pricing is always best-effort.
func (c *Client) GetPriceBreakdown(ctx context.Context, recipeID int) (*PriceBreakdown, error) {
	body, err := c.get(ctx, fmt.Sprintf("/recipes/%d/priceBreakdownWidget.json", recipeID), url.Values{})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Info().Int("recipe_id", recipeID).Msg("no price data for recipe (404)")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch price breakdown: %w", err)
	}

	var price PriceBreakdown
	if err := json.Unmarshal(body, &price); err != nil {
		return nil, fmt.Errorf("failed to parse price breakdown: %w", err)
	}

	return &price, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	params.Set("apiKey", c.apiKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
