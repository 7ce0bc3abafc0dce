package main

import (
	"context"
	"log"
	"time"

	"hotelDeskAI/business/forecast"
	psqlRepo "hotelDeskAI/internal/repository/postgres"
	"hotelDeskAI/pkg/config"
	"hotelDeskAI/pkg/database"
	"hotelDeskAI/pkg/logger"
)

// Offline training job for the boosted sales model. Runs are expected to be
// serialized by external scheduling; two concurrent runs would race on the
// artifact row.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting training run", "artifact", cfg.Forecast.SalesArtifactName)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	bookingRepo := psqlRepo.NewBookingRepository(db)
	artifactRepo := psqlRepo.NewArtifactRepository(db)

	ctx := context.Background()
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	history, err := bookingRepo.ListDailyMetrics(ctx, today)
	if err != nil {
		logger.Fatal("Failed to load booking history", "error", err)
	}
	logger.Info("History loaded", "rows", len(history))

	forecastCfg := forecast.DefaultConfig()
	artifact, err := forecast.TrainSalesModel(history, forecastCfg)
	if err != nil {
		logger.Fatal("Training failed", "error", err)
	}

	if err := artifactRepo.Save(ctx, cfg.Forecast.SalesArtifactName, artifact); err != nil {
		logger.Fatal("Failed to save artifact", "error", err)
	}

	logger.Info("Model trained and saved",
		"artifact", cfg.Forecast.SalesArtifactName,
		"id", artifact.ID,
		"rmse", artifact.RMSE,
		"features", len(artifact.Features))
}
