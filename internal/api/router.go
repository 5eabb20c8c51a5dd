package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/platewise/platewise/internal/api/handler"
	customMiddleware "github.com/platewise/platewise/internal/api/middleware"
	"github.com/platewise/platewise/internal/config"
	"github.com/platewise/platewise/internal/llm/gemini"
	"github.com/platewise/platewise/internal/repository/postgres"
	"github.com/platewise/platewise/internal/security"
	"github.com/platewise/platewise/internal/service"
	"github.com/platewise/platewise/internal/spoonacular"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.WriteTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize security components
	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	planRepo := postgres.NewMealPlanRepository(db)
	groceryRepo := postgres.NewGroceryListRepository(db)
	chatRepo := postgres.NewChatMessageRepository(db)

	// Initialize external clients
	provider := gemini.NewProvider(cfg.LLM.Gemini)
	if !provider.IsConfigured() {
		log.Warn().Msg("Gemini API key is empty, LLM endpoints will fail")
	}
	recipeClient := spoonacular.NewClient(cfg.Spoonacular.APIKey, cfg.Spoonacular.Timeout)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	profileService := service.NewProfileService(profileRepo)
	recipeService := service.NewRecipeService(provider, recipeClient, cfg.LLM.Timeout)
	mealPlanService := service.NewMealPlanService(provider, planRepo, cfg.LLM.Timeout)
	groceryService := service.NewGroceryService(groceryRepo)
	chatService := service.NewChatService(provider, chatRepo, cfg.LLM.Timeout)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	mealPlanHandler := handler.NewMealPlanHandler(mealPlanService)
	groceryHandler := handler.NewGroceryHandler(groceryService)
	chatHandler := handler.NewChatHandler(chatService)

	// Auth middleware
	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager)

	// Health check
	r.Get("/health", handler.HealthCheck)
	r.Get("/ready", handler.ReadyCheck(db))

	r.Route("/api/v1", func(r chi.Router) {
		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Recipe recommendations (public)
		r.Post("/recipes", recipeHandler.Recommend)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)
			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.Get)
				r.Put("/", profileHandler.Update)
			})

			r.Route("/meal-plans", func(r chi.Router) {
				r.Post("/generate", mealPlanHandler.Generate)
				r.Get("/", mealPlanHandler.List)
				r.Post("/", mealPlanHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", mealPlanHandler.Get)
					r.Put("/", mealPlanHandler.Update)
					r.Delete("/", mealPlanHandler.Delete)
					r.Post("/activate", mealPlanHandler.Activate)
				})
			})

			r.Route("/grocery-lists", func(r chi.Router) {
				r.Get("/", groceryHandler.List)
				r.Post("/", groceryHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", groceryHandler.Get)
					r.Put("/", groceryHandler.Update)
					r.Delete("/", groceryHandler.Delete)
				})
			})

			r.Route("/chat", func(r chi.Router) {
				r.Post("/", chatHandler.Send)
				r.Get("/history", chatHandler.History)
			})
		})
	})

	return r
}
