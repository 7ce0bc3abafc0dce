package domain

import (
	"time"

	"gorm.io/datatypes"
)

// PricingMode is the aggressiveness template applied by the pricing policy.
type PricingMode string

const (
	ModeConservative PricingMode = "conservative"
	ModeNeutral      PricingMode = "neutral"
	ModeAggressive   PricingMode = "aggressive"
)

// Valid reports whether the mode is one of the supported templates.
func (m PricingMode) Valid() bool {
	switch m {
	case ModeConservative, ModeNeutral, ModeAggressive:
		return true
	}
	return false
}

// PricingDecision is one suggested price for one future date, together with
// the inputs that produced it. Decisions are derived and recomputed per
// request; they are never read back from storage.
type PricingDecision struct {
	Date              time.Time   `json:"date"`
	MyPrice           float64     `json:"my_price"`
	CompP50           float64     `json:"comp_p50"`
	CompP75           float64     `json:"comp_p75"`
	OccupancyForecast float64     `json:"occupancy_forecast"`
	SuggestedPrice    int         `json:"suggested_price"`
	Mode              PricingMode `json:"mode"`
}

// CREATE TABLE public.pricing_decision_logs (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     batch_id   UUID,
//     dt         DATE,
//     suggested  INT,
//     mode       TEXT,
//     inputs     JSONB,
//     created_at TIMESTAMPTZ DEFAULT NOW()
// );

// PricingDecisionLog is a write-only audit record of one emitted decision.
type PricingDecisionLog struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	BatchID   string            `gorm:"column:batch_id" json:"batch_id"`
	Date      time.Time         `gorm:"column:dt;type:date" json:"date"`
	Suggested int               `gorm:"column:suggested" json:"suggested"`
	Mode      string            `gorm:"column:mode" json:"mode"`
	Inputs    datatypes.JSONMap `gorm:"column:inputs;type:jsonb" json:"inputs"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PricingDecisionLog) TableName() string {
	return "pricing_decision_logs"
}
