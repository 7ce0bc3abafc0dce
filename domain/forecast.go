package domain

import (
	"time"
)

// ForecastPoint is one predicted value for one future date. Sales forecasts
// carry non-negative integers (as float64), occupancy forecasts values in
// [0.2, 0.98].
type ForecastPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// CompetitorBand holds the P50/P75 competitor price reference points for a
// single date.
type CompetitorBand struct {
	Date time.Time `json:"date"`
	P50  float64   `json:"p50"`
	P75  float64   `json:"p75"`
}
