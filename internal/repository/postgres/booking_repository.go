package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotelDeskAI/domain"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

// ListDailyMetrics returns the full ordered history up to and including the
// cutoff date. Columns are selected explicitly so a missing required column
// fails the query loudly instead of silently scanning zeros; the optional
// occupancy_rate is derived from sold/available when absent.
func (r *BookingRepository) ListDailyMetrics(ctx context.Context, until time.Time) ([]domain.DailyMetric, error) {
	var metrics []domain.DailyMetric
	err := r.DB.WithContext(ctx).
		Model(&domain.DailyMetric{}).
		Select(`dt,
			COALESCE(rooms_sold, 0) AS rooms_sold,
			COALESCE(rooms_available, 0) AS rooms_available,
			COALESCE(adr, 0) AS adr,
			COALESCE(revenue, 0) AS revenue,
			COALESCE(occupancy_rate, rooms_sold::float / NULLIF(rooms_available, 0), 0) AS occupancy_rate`).
		Where("dt <= ?", until).
		Order("dt ASC").
		Find(&metrics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list daily metrics: %w", err)
	}

	return metrics, nil
}

// UpsertDailyMetrics writes metric rows, replacing existing dates. Used by
// the seeder.
func (r *BookingRepository) UpsertDailyMetrics(ctx context.Context, metrics []domain.DailyMetric) error {
	if len(metrics) == 0 {
		return nil
	}
	if err := r.DB.WithContext(ctx).Save(&metrics).Error; err != nil {
		return fmt.Errorf("failed to upsert daily metrics: %w", err)
	}
	return nil
}
