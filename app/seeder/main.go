package main

import (
	"context"
	"log"
	"math"
	"math/rand"
	"time"

	"hotelDeskAI/domain"
	psqlRepo "hotelDeskAI/internal/repository/postgres"
	"hotelDeskAI/pkg/config"
	"hotelDeskAI/pkg/database"
	"hotelDeskAI/pkg/logger"
)

const (
	seedDays       = 365
	roomsAvailable = 120
)

var competitors = []string{"CompA", "CompB", "CompC", "CompD", "CompE"}

// Seeds a year of plausible booking history and competitor rates for local
// development. Fixed seed, so reruns produce the same data.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := psqlRepo.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}
	logger.Info("Schema migrated")

	rng := rand.New(rand.NewSource(42))
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -seedDays)

	ctx := context.Background()
	bookingRepo := psqlRepo.NewBookingRepository(db)
	compsetRepo := psqlRepo.NewCompsetRepository(db)

	metrics := make([]domain.DailyMetric, 0, seedDays)
	for i := 0; i < seedDays; i++ {
		date := start.AddDate(0, 0, i)
		sold := int(clip((0.72+rng.NormFloat64()*0.1)*roomsAvailable, 30, roomsAvailable))
		adr := math.Round(clip(3250+rng.NormFloat64()*300, 2200, 4200))
		metrics = append(metrics, domain.DailyMetric{
			Date:           date,
			RoomsSold:      sold,
			RoomsAvailable: roomsAvailable,
			ADR:            adr,
			Revenue:        float64(sold) * adr,
			OccupancyRate:  float64(sold) / roomsAvailable,
		})
	}
	if err := bookingRepo.UpsertDailyMetrics(ctx, metrics); err != nil {
		logger.Fatal("Failed to seed booking history", "error", err)
	}
	totalRevPAR := 0.0
	for _, m := range metrics {
		totalRevPAR += m.RevPAR()
	}
	logger.Info("Booking history seeded",
		"rows", len(metrics),
		"avg_revpar", math.Round(totalRevPAR/float64(len(metrics))))

	rates := make([]domain.CompetitorRate, 0, seedDays*len(competitors))
	for _, hotel := range competitors {
		base := 2800 + float64(rng.Intn(800))
		for i := 0; i < seedDays; i++ {
			rates = append(rates, domain.CompetitorRate{
				Date:  start.AddDate(0, 0, i),
				Hotel: hotel,
				Price: clip(base+math.Round(rng.NormFloat64()*180), 2400, 4200),
			})
		}
	}
	if err := compsetRepo.UpsertRates(ctx, rates); err != nil {
		logger.Fatal("Failed to seed competitor rates", "error", err)
	}
	logger.Info("Competitor rates seeded", "rows", len(rates))
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
