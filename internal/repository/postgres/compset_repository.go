package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotelDeskAI/domain"
)

type CompsetRepository struct {
	DB *gorm.DB
}

func NewCompsetRepository(db *gorm.DB) *CompsetRepository {
	return &CompsetRepository{DB: db}
}

// ListRates returns all competitor rates with from <= date <= to, ordered by
// date then competitor.
func (r *CompsetRepository) ListRates(ctx context.Context, from, to time.Time) ([]domain.CompetitorRate, error) {
	var rates []domain.CompetitorRate
	err := r.DB.WithContext(ctx).
		Where("dt >= ?", from).
		Where("dt <= ?", to).
		Order("dt ASC, hotel ASC").
		Find(&rates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list competitor rates: %w", err)
	}

	return rates, nil
}

// UpsertRates writes competitor rate rows, replacing existing (date, hotel)
// pairs. Used by the seeder.
func (r *CompsetRepository) UpsertRates(ctx context.Context, rates []domain.CompetitorRate) error {
	if len(rates) == 0 {
		return nil
	}
	if err := r.DB.WithContext(ctx).Save(&rates).Error; err != nil {
		return fmt.Errorf("failed to upsert competitor rates: %w", err)
	}
	return nil
}
