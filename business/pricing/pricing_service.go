package pricing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hotelDeskAI/domain"
	"hotelDeskAI/pkg/logger"
	"hotelDeskAI/pkg/metrics"
)

const (
	// trailing window of competitor observations ending today; future dates
	// reuse it since competitors' future prices are unknown
	lookbackDays = 30

	// reference prices when the lookback window is empty, so pricing never
	// compares against a missing value
	fallbackP50 = 3200.0
	fallbackP75 = 3600.0
)

// ---- Repository interfaces ----

type CompsetRepository interface {
	// ListRates returns competitor rates with from <= date <= to.
	ListRates(ctx context.Context, from, to time.Time) ([]domain.CompetitorRate, error)
}

type DecisionLogRepository interface {
	SaveBatch(ctx context.Context, logs []domain.PricingDecisionLog) error
}

// OccupancyForecaster is the slice of the forecast service pricing needs.
type OccupancyForecaster interface {
	ForecastOccupancy(ctx context.Context, days int) ([]domain.ForecastPoint, error)
}

// ---- Usecase / Service ----

type Service struct {
	compsetRepo  CompsetRepository
	decisionRepo DecisionLogRepository
	forecaster   OccupancyForecaster
	now          func() time.Time
}

func NewService(compsetRepo CompsetRepository, decisionRepo DecisionLogRepository, forecaster OccupancyForecaster) *Service {
	return &Service{
		compsetRepo:  compsetRepo,
		decisionRepo: decisionRepo,
		forecaster:   forecaster,
		now:          time.Now,
	}
}

// WithClock overrides the service clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CompetitorBands returns the P50/P75 competitor reference prices for each of
// the next `days` dates starting today. Both percentiles come from the
// trailing lookback window; with no observations in the window the fixed
// fallback constants apply.
func (s *Service) CompetitorBands(ctx context.Context, days int) ([]domain.CompetitorBand, error) {
	if days < 1 {
		return nil, fmt.Errorf("horizon must be at least 1 day, got %d", days)
	}
	today := s.today()

	rates, err := s.compsetRepo.ListRates(ctx, today.AddDate(0, 0, -lookbackDays), today)
	if err != nil {
		return nil, fmt.Errorf("failed to load competitor rates: %w", err)
	}

	p50, p75 := percentileBands(rates)

	bands := make([]domain.CompetitorBand, 0, days)
	for i := 0; i < days; i++ {
		bands = append(bands, domain.CompetitorBand{
			Date: today.AddDate(0, 0, i),
			P50:  p50,
			P75:  p75,
		})
	}
	return bands, nil
}

// Suggestions merges the occupancy forecast with the competitor bands and
// applies the pricing policy, producing one decision per future date. Each
// batch is written to the audit log; audit failures are logged, not fatal.
func (s *Service) Suggestions(ctx context.Context, days int, mode domain.PricingMode) ([]domain.PricingDecision, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unsupported pricing mode %q", mode)
	}

	bands, err := s.CompetitorBands(ctx, days)
	if err != nil {
		return nil, err
	}
	occ, err := s.forecaster.ForecastOccupancy(ctx, days)
	if err != nil {
		return nil, err
	}

	decisions := make([]domain.PricingDecision, 0, days)
	for i, band := range bands {
		decisions = append(decisions, domain.PricingDecision{
			Date:              band.Date,
			MyPrice:           band.P50, // current-price proxy: align with compset median
			CompP50:           band.P50,
			CompP75:           band.P75,
			OccupancyForecast: occ[i].Value,
			SuggestedPrice:    SuggestPrice(occ[i].Value, band.P50, band.P75, mode),
			Mode:              mode,
		})
	}

	s.audit(ctx, decisions)
	metrics.PricingSuggestions.Inc()
	return decisions, nil
}

func (s *Service) audit(ctx context.Context, decisions []domain.PricingDecision) {
	batchID := uuid.NewString()
	logs := make([]domain.PricingDecisionLog, 0, len(decisions))
	for _, d := range decisions {
		logs = append(logs, domain.PricingDecisionLog{
			BatchID:   batchID,
			Date:      d.Date,
			Suggested: d.SuggestedPrice,
			Mode:      string(d.Mode),
			Inputs: datatypes.JSONMap{
				"occupancy_forecast": d.OccupancyForecast,
				"comp_p50":           d.CompP50,
				"comp_p75":           d.CompP75,
			},
		})
	}
	if err := s.decisionRepo.SaveBatch(ctx, logs); err != nil {
		logger.Warn("failed to write pricing decision audit log", "batch_id", batchID, "error", err)
	}
}

// percentileBands computes P50/P75 over the window's prices, falling back to
// the documented constants on an empty window. P75 is kept strictly above
// P50 even when the window collapses to a single price.
func percentileBands(rates []domain.CompetitorRate) (p50, p75 float64) {
	if len(rates) == 0 {
		metrics.CompetitorBandFallbacks.Inc()
		return fallbackP50, fallbackP75
	}

	prices := make([]float64, len(rates))
	for i, r := range rates {
		prices[i] = r.Price
	}
	sort.Float64s(prices)

	p50 = percentile(prices, 0.50)
	p75 = percentile(prices, 0.75)
	if p75 <= p50 {
		p75 = p50 + 1
	}
	return p50, p75
}

// percentile interpolates linearly between order statistics, the
// percentile_cont convention. x must be sorted and non-empty.
func percentile(x []float64, p float64) float64 {
	idx := p * float64(len(x)-1)
	lo := int(idx)
	if lo >= len(x)-1 {
		return x[len(x)-1]
	}
	frac := idx - float64(lo)
	return x[lo]*(1-frac) + x[lo+1]*frac
}

func (s *Service) today() time.Time {
	t := s.now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
