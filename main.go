package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"goldencrust/api/database"
	"goldencrust/api/handlers"
	"goldencrust/api/middleware"
	"goldencrust/api/store"
	"goldencrust/api/utils"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Select the analytics store ---
	// Postgres when DATABASE_URL is set, in-memory otherwise. Both satisfy
	// store.AnalyticsStore, so nothing downstream cares which one runs.
	var analyticsStore store.AnalyticsStore
	if os.Getenv("DATABASE_URL") != "" {
		dbClient, err := database.NewPostgresDB()
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL database: %v", err)
		}
		defer dbClient.Close()

		pgStore, err := store.NewPostgresStore(context.Background(), dbClient.DB)
		if err != nil {
			log.Fatalf("Failed to initialize analytics store: %v", err)
		}
		analyticsStore = pgStore
		log.Println("Using PostgreSQL analytics store.")
	} else {
		analyticsStore = store.NewMemoryStore()
		log.Println("DATABASE_URL not set. Using in-memory analytics store, data is lost on restart.")
	}

	// --- Initialize Handlers ---
	authHandlers := handlers.NewAuthHandlers(utils.PasswordCheckerFromEnv())
	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsStore)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandlers.Login)

		analytics := api.Group("/analytics")
		{
			analytics.POST("/track", analyticsHandlers.TrackPageView)
			analytics.GET("/daily", analyticsHandlers.GetDailyStats)
			analytics.GET("/total", analyticsHandlers.GetTotalStats)
			analytics.GET("/recent", analyticsHandlers.GetRecentPageViews)
		}
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Serve the storefront bundle when it exists. The login gate for the
	// dashboard lives entirely in the client.
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "public"
	}
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		r.NoRoute(handlers.SPAFallback(staticDir))
		log.Printf("Serving static site from %s", staticDir)
	} else {
		log.Printf("Static dir %s not found, serving API only", staticDir)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Bakery site API starting on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
