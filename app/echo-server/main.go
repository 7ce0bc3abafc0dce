package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotelDeskAI/app/echo-server/router"
	"hotelDeskAI/business/forecast"
	"hotelDeskAI/business/pricing"
	"hotelDeskAI/internal/middleware"
	psqlRepo "hotelDeskAI/internal/repository/postgres"
	"hotelDeskAI/internal/rest"
	"hotelDeskAI/pkg/config"
	"hotelDeskAI/pkg/database"
	"hotelDeskAI/pkg/logger"
	"hotelDeskAI/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting HotelDeskAI", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init repo
	bookingRepo := psqlRepo.NewBookingRepository(db)
	compsetRepo := psqlRepo.NewCompsetRepository(db)
	artifactRepo := psqlRepo.NewArtifactRepository(db)
	decisionRepo := psqlRepo.NewDecisionLogRepository(db)

	// Init service
	forecastCfg := forecast.DefaultConfig()
	forecastCfg.YearlySeasonality = cfg.Forecast.YearlySeasonality
	forecastService := forecast.NewService(bookingRepo, artifactRepo, forecastCfg, cfg.Forecast.SalesArtifactName)
	pricingService := pricing.NewService(compsetRepo, decisionRepo, forecastService)

	// Init handler
	forecastHandler := rest.NewForecastHandler(forecastService, cfg.Forecast.DefaultHorizonDays, cfg.Forecast.MaxHorizonDays)
	pricingHandler := rest.NewPricingHandler(pricingService, cfg.Forecast.DefaultHorizonDays, cfg.Forecast.MaxHorizonDays)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupForecastRoutes(api, forecastHandler)
	router.SetupPricingRoutes(api, pricingHandler)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
