package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"hotelDeskAI/domain"
)

// Migrate creates or updates every table the pipeline touches. Only the
// seeder calls this; production schemas are managed externally.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.DailyMetric{},
		&domain.CompetitorRate{},
		&domain.PricingDecisionLog{},
		&artifactRow{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
