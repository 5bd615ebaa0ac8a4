package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"AI-TRAVEL-PLANNER_BACK-END/internal/config"
	"AI-TRAVEL-PLANNER_BACK-END/internal/handlers"
	"AI-TRAVEL-PLANNER_BACK-END/internal/middleware"
)

// Handlers groups everything SetupRoutes wires onto the mux.
type Handlers struct {
	Auth        *handlers.AuthHandler
	GoogleAuth  *handlers.GoogleAuthHandler
	Plan        *handlers.PlanHandler
	Itineraries *handlers.ItinerariesHandler
	Budget      *handlers.BudgetHandler
	Geocode     *handlers.GeocodeHandler
	Health      *handlers.HealthHandler
}

// SetupRoutes configures all application routes
func SetupRoutes(h Handlers, cfg *config.Config) {
	jwtCfg := &cfg.JWT

	// Health check routes
	http.HandleFunc("/healthz", h.Health.HealthCheck)
	http.HandleFunc("/livez", h.Health.LivenessCheck)
	http.HandleFunc("/readyz", h.Health.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", h.Auth.Register)
	http.HandleFunc("/api/auth/login", h.Auth.Login)
	http.HandleFunc("/api/auth/profile", middleware.AuthMiddleware(h.Auth.GetProfile, jwtCfg))
	http.HandleFunc("/api/auth/logout", middleware.AuthMiddleware(h.Auth.Logout, jwtCfg))
	http.HandleFunc("/api/auth/google/login", h.GoogleAuth.GoogleLogin)
	http.HandleFunc("/api/auth/google/callback", h.GoogleAuth.GoogleCallback)

	// Plan generation routes
	http.HandleFunc("/api/plan", middleware.AuthMiddleware(h.Plan.GeneratePlan, jwtCfg))
	http.HandleFunc("/api/plan/current", middleware.AuthMiddleware(h.Plan.CurrentPlan, jwtCfg))
	http.HandleFunc("/api/plan/parse", h.Plan.ParseTranscript)

	// Saved itinerary routes
	http.HandleFunc("/api/itineraries", middleware.AuthMiddleware(h.Itineraries.Collection, jwtCfg))
	http.HandleFunc("/api/itineraries/", middleware.AuthMiddleware(h.Itineraries.Item, jwtCfg))

	// Budget routes
	http.HandleFunc("/api/budget/breakdown", h.Budget.Breakdown)
	http.HandleFunc("/api/budget/items", middleware.AuthMiddleware(h.Budget.Items, jwtCfg))
	http.HandleFunc("/api/budget/items/", middleware.AuthMiddleware(h.Budget.DeleteItem, jwtCfg))

	// Geocoding route
	http.HandleFunc("/api/geocode", h.Geocode.Geocode)

	// Swagger documentation
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("AI travel planner backend is running."))
}
