package forecast

import (
	"time"

	"hotelDeskAI/domain"

	"hotelDeskAI/pkg/logger"
)

// ForecastStrategy produces one raw prediction per day for a horizon of
// consecutive days starting at start (inclusive). Strategies never fail:
// every implementation degrades to a fallback rather than returning an error.
type ForecastStrategy interface {
	Predict(start time.Time, horizon int) []domain.ForecastPoint
	// UsedFallback reports whether the strategy is serving from its fallback
	// rather than a fitted model.
	UsedFallback() bool
	Name() string
}

// SeasonalStrategy is strategy A: additive seasonal decomposition with the
// day-of-week fallback when fitting fails.
type SeasonalStrategy struct {
	model    *seasonalModel
	fallback *dowFallback
}

// NewSeasonalStrategy fits the decomposition on rows dated strictly before
// start: start itself is the first forecast day, and its observation, if one
// exists, never joins the fit. A failed fit is recovered locally and logged,
// never propagated.
func NewSeasonalStrategy(history []domain.DailyMetric, target Target, start time.Time, cfg Config) *SeasonalStrategy {
	var dates []time.Time
	var values []float64
	for _, p := range historyToSeries(history, target) {
		if p.Date.Before(start) {
			dates = append(dates, p.Date)
			values = append(values, p.Target)
		}
	}

	s := &SeasonalStrategy{fallback: newDOWFallback(dates, values)}
	model, err := fitSeasonal(dates, values, cfg.YearlySeasonality, cfg.MinFitRows)
	if err != nil {
		logger.Warn("seasonal fit failed, using day-of-week fallback",
			"target", target.String(), "error", err)
		return s
	}
	s.model = model
	return s
}

func (s *SeasonalStrategy) Predict(start time.Time, horizon int) []domain.ForecastPoint {
	out := make([]domain.ForecastPoint, 0, horizon)
	for step := 0; step < horizon; step++ {
		date := start.AddDate(0, 0, step)
		var v float64
		if s.model != nil {
			v = s.model.predict(date, step)
		} else {
			v = s.fallback.predict(date)
		}
		out = append(out, domain.ForecastPoint{Date: date, Value: v})
	}
	return out
}

func (s *SeasonalStrategy) UsedFallback() bool { return s.model == nil }

func (s *SeasonalStrategy) Name() string { return "seasonal" }

// BoostedStrategy is strategy B: the trained tree ensemble served through the
// autoregressive roll-forward driver. With no usable artifact it degrades to
// the day-of-week fallback like strategy A.
type BoostedStrategy struct {
	artifact *Artifact
	history  []domain.DailyMetric
	fallback *SeasonalStrategy
	cfg      Config
}

func NewBoostedStrategy(history []domain.DailyMetric, artifact *Artifact, start time.Time, cfg Config) *BoostedStrategy {
	s := &BoostedStrategy{history: history, cfg: cfg}
	if artifact == nil {
		s.fallback = NewSeasonalStrategy(history, TargetSales, start, cfg)
		return s
	}
	if err := artifact.Validate(); err != nil {
		logger.Warn("unusable model artifact, using fallback", "error", err)
		s.fallback = NewSeasonalStrategy(history, TargetSales, start, cfg)
		return s
	}
	s.artifact = artifact
	return s
}

func (s *BoostedStrategy) Predict(start time.Time, horizon int) []domain.ForecastPoint {
	if s.artifact == nil {
		return s.fallback.Predict(start, horizon)
	}
	return rollForward(s.history, s.artifact, start, horizon, s.cfg)
}

func (s *BoostedStrategy) UsedFallback() bool { return s.artifact == nil }

func (s *BoostedStrategy) Name() string { return "boosted" }
