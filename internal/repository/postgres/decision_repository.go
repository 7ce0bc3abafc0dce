package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hotelDeskAI/domain"
)

type DecisionLogRepository struct {
	DB *gorm.DB
}

func NewDecisionLogRepository(db *gorm.DB) *DecisionLogRepository {
	return &DecisionLogRepository{DB: db}
}

// SaveBatch appends one audit row per emitted decision. Write-only: nothing
// in the pipeline reads these back.
func (r *DecisionLogRepository) SaveBatch(ctx context.Context, logs []domain.PricingDecisionLog) error {
	if len(logs) == 0 {
		return nil
	}
	if err := r.DB.WithContext(ctx).Create(&logs).Error; err != nil {
		return fmt.Errorf("failed to save pricing decision logs: %w", err)
	}
	return nil
}
