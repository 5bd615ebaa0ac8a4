// @title AI Travel Planner Backend API
// @version 1.0
// @description Backend API for AI-assisted travel itinerary planning
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	_ "AI-TRAVEL-PLANNER_BACK-END/docs" // This is required for swagger
	"AI-TRAVEL-PLANNER_BACK-END/internal/config"
	"AI-TRAVEL-PLANNER_BACK-END/internal/geo"
	"AI-TRAVEL-PLANNER_BACK-END/internal/handlers"
	"AI-TRAVEL-PLANNER_BACK-END/internal/llm"
	"AI-TRAVEL-PLANNER_BACK-END/internal/planner"
	"AI-TRAVEL-PLANNER_BACK-END/internal/routes"
	"AI-TRAVEL-PLANNER_BACK-END/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	dsn := cfg.GetDSN()
	log.Printf("Connecting to database %s:%s/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	// pgxpool + simple protocol (needed when going through PgBouncer)
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "ai-travel-planner-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}

	// --- Planner wiring ---
	catalog := planner.NewCatalog()
	synth := planner.NewSynthesizer(catalog, nil)
	generator := llm.NewGenerator(cfg.LLM, synth)
	planStore := service.NewPlanStore()
	geoClient := geo.NewClient(cfg.Mapbox, catalog)

	// --- HTTP Handlers ---
	h := routes.Handlers{
		Auth:        handlers.NewAuthHandler(pool, cfg),
		GoogleAuth:  handlers.NewGoogleAuthHandler(pool, cfg),
		Plan:        handlers.NewPlanHandler(generator, planStore),
		Itineraries: handlers.NewItinerariesHandler(pool),
		Budget:      handlers.NewBudgetHandler(pool),
		Geocode:     handlers.NewGeocodeHandler(geoClient),
		Health:      handlers.NewHealthHandler(pool),
	}

	routes.SetupRoutes(h, cfg)

	// --- HTTP Server + Graceful Shutdown ---

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with CORS
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
