package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/potionstore/potionstore-go/internal/config"
	"github.com/potionstore/potionstore-go/internal/handler"
	"github.com/potionstore/potionstore-go/internal/middleware"
	"github.com/potionstore/potionstore-go/internal/repository"
	"github.com/potionstore/potionstore-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService, cfg.SessionCookie, cfg.JWTExpiry)

	potionRepo := repository.NewPotionRepository(db)
	potionService := service.NewPotionService(potionRepo)
	potionHandler := handler.NewPotionHandler(potionService)

	analyticsRepo := repository.NewAnalyticsRepository(db)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		r.Get("/api/v1/auth/logout", authHandler.HandleLogout)
	})

	// Mutating potion operations require a session token; reads and
	// analytics are public.
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.JWTSecret, cfg.SessionCookie))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)

		r.Post("/api/v1/potions", potionHandler.HandleCreate)
		r.Put("/api/v1/potions/{id}", potionHandler.HandleUpdate)
		r.Delete("/api/v1/potions/{id}", potionHandler.HandleDelete)
	})

	r.Get("/api/v1/potions", potionHandler.HandleList)
	r.Get("/api/v1/potions/search", potionHandler.HandleSearchByName)
	r.Get("/api/v1/potions/price-range", potionHandler.HandlePriceRange)
	r.Get("/api/v1/potions/vendor/{vendor_id}", potionHandler.HandleListByVendor)
	r.Get("/api/v1/potions/{id}", potionHandler.HandleGet)

	r.Get("/api/v1/analytics/average_score_by_vendor", analyticsHandler.HandleAverageScoreByVendor)
	r.Get("/api/v1/analytics/average_score_by_category", analyticsHandler.HandleAverageScoreByCategory)
	r.Get("/api/v1/analytics/strength_flavor_ratio", analyticsHandler.HandleStrengthFlavorRatio)
	r.Get("/api/v1/analytics/group", analyticsHandler.HandleGroup)
	r.Get("/api/v1/analytics/search", analyticsHandler.HandleSearch)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
