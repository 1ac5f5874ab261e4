package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/mealcart/internal/config"
	"github.com/dukerupert/mealcart/internal/handler"
	"github.com/dukerupert/mealcart/internal/middleware"
	"github.com/dukerupert/mealcart/internal/store"
	ws "github.com/dukerupert/mealcart/internal/websocket"
)

const (
	wsConnectLimit  = 30
	wsConnectWindow = time.Minute
	cleanupInterval = time.Minute
)

type Server struct {
	db          *sql.DB
	cfg         *config.Config
	hub         *ws.Hub
	recipeH     *handler.RecipeHandler
	mealPlanH   *handler.MealPlanHandler
	pantryH     *handler.PantryHandler
	shoppingH   *handler.ShoppingHandler
	settingsH   *handler.SettingsHandler
	rateLimiter *middleware.RateLimiter
	pinGuard    *middleware.PINGuard
	logger      *slog.Logger
}

func New(db *sql.DB, cfg *config.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	recipeStore := store.NewRecipeStore(db)
	planStore := store.NewMealPlanStore(db)
	pantryStore := store.NewPantryStore(db)
	settingsStore := store.NewSettingsStore(db)

	rateLimiter := middleware.NewRateLimiter()

	return &Server{
		db:        db,
		cfg:       cfg,
		hub:       hub,
		recipeH:   handler.NewRecipeHandler(recipeStore, hub, logger.With("component", "recipe")),
		mealPlanH: handler.NewMealPlanHandler(planStore, recipeStore, hub, logger.With("component", "meal_plan")),
		pantryH:   handler.NewPantryHandler(pantryStore, hub, logger.With("component", "pantry")),
		shoppingH: handler.NewShoppingHandler(planStore, pantryStore, logger.With("component", "shopping")),
		settingsH: handler.NewSettingsHandler(settingsStore, hub, logger.With("component", "settings")),
		pinGuard: &middleware.PINGuard{
			Source:      settingsStore,
			Limiter:     rateLimiter,
			MaxAttempts: cfg.PINMaxAttempts,
			Window:      cfg.PINWindow,
			Logger:      logger.With("component", "pin"),
		},
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// Hub returns the WebSocket hub.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

// RunBackground runs periodic maintenance until ctx is done.
func (s *Server) RunBackground(ctx context.Context) {
	s.rateLimiter.RunCleanup(ctx, cleanupInterval)
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.Handle("GET /ws", s.wsHandler())

	// Recipes
	mux.HandleFunc("GET /api/recipes", s.recipeH.List)
	mux.HandleFunc("POST /api/recipes", s.recipeH.Create)
	mux.HandleFunc("GET /api/recipes/{id}", s.recipeH.Get)
	mux.HandleFunc("PUT /api/recipes/{id}", s.recipeH.Update)
	mux.HandleFunc("DELETE /api/recipes/{id}", s.recipeH.Delete)

	// Meal plan
	mux.HandleFunc("GET /api/meal-plan", s.mealPlanH.Get)
	mux.HandleFunc("PUT /api/meal-plan/{day}/{meal}", s.mealPlanH.SetSlot)
	mux.HandleFunc("DELETE /api/meal-plan/{day}/{meal}", s.mealPlanH.ClearSlot)
	mux.HandleFunc("DELETE /api/meal-plan", s.mealPlanH.Clear)

	// Pantry; writes need the kitchen PIN when one is set
	mux.HandleFunc("GET /api/pantry", s.pantryH.List)
	mux.Handle("POST /api/pantry", s.pinProtected(s.pantryH.Create))
	mux.Handle("PUT /api/pantry/{id}", s.pinProtected(s.pantryH.Update))
	mux.Handle("DELETE /api/pantry/{id}", s.pinProtected(s.pantryH.Delete))

	// Shopping list
	mux.HandleFunc("GET /api/shopping-list", s.shoppingH.List)
	mux.HandleFunc("GET /api/shopping-list/groups", s.shoppingH.Groups)
	mux.HandleFunc("GET /api/shopping-list/export", s.shoppingH.Export)
	mux.HandleFunc("GET /api/shopping-list/compare", s.shoppingH.Compare)
	mux.HandleFunc("GET /api/shopping-list/compare/export", s.shoppingH.CompareExport)
	mux.HandleFunc("GET /api/categories", s.shoppingH.Categories)

	// Settings
	mux.HandleFunc("GET /api/settings/pin", s.settingsH.PINStatus)
	mux.Handle("PUT /api/settings/pin", s.pinProtected(s.settingsH.SetPIN))
	mux.Handle("DELETE /api/settings/pin", s.pinProtected(s.settingsH.ClearPIN))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) pinProtected(h http.HandlerFunc) http.Handler {
	return s.pinGuard.RequirePIN(h)
}

func (s *Server) wsHandler() http.Handler {
	limit := middleware.RateLimit(s.rateLimiter, func(r *http.Request) string {
		return "ws:" + middleware.RealIP(r)
	}, wsConnectLimit, wsConnectWindow)
	return limit(ws.HandleWebSocket(s.hub, s.cfg.AllowedOrigins, s.logger.With("component", "websocket")))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status, code := "ok", http.StatusOK
	if err := s.db.PingContext(r.Context()); err != nil {
		s.logger.Error("health check", "error", err)
		status, code = "unavailable", http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"status":  status,
		"clients": s.hub.ClientCount(),
	})
}
