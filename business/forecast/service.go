package forecast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelDeskAI/domain"
	"hotelDeskAI/pkg/logger"
	"hotelDeskAI/pkg/metrics"
)

// ---- Repository interfaces ----

type HistoryRepository interface {
	// ListDailyMetrics returns every row up to and including the cutoff date,
	// ordered ascending by date.
	ListDailyMetrics(ctx context.Context, until time.Time) ([]domain.DailyMetric, error)
}

type ArtifactRepository interface {
	Load(ctx context.Context, name string) (*Artifact, error)
	Save(ctx context.Context, name string, artifact *Artifact) error
}

// ---- Usecase / Service ----

// Service is the forecast API surface. Each call reads history fresh,
// computes fresh, and returns; no state is shared across requests. Forecast
// failures never surface as errors — only repository failures do.
type Service struct {
	historyRepo  HistoryRepository
	artifactRepo ArtifactRepository
	cfg          Config
	artifactName string
	now          func() time.Time
}

func NewService(historyRepo HistoryRepository, artifactRepo ArtifactRepository, cfg Config, artifactName string) *Service {
	return &Service{
		historyRepo:  historyRepo,
		artifactRepo: artifactRepo,
		cfg:          cfg,
		artifactName: artifactName,
		now:          time.Now,
	}
}

// WithClock overrides the service clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ForecastSales predicts rooms sold per day via the seasonal strategy.
func (s *Service) ForecastSales(ctx context.Context, days int) ([]domain.ForecastPoint, error) {
	return s.forecastSeasonal(ctx, TargetSales, days)
}

// ForecastOccupancy predicts the occupancy rate per day via the seasonal
// strategy, clamped into the configured bounds.
func (s *Service) ForecastOccupancy(ctx context.Context, days int) ([]domain.ForecastPoint, error) {
	return s.forecastSeasonal(ctx, TargetOccupancy, days)
}

// ForecastSalesAlt predicts rooms sold per day via the trained boosted model
// and the autoregressive roll-forward driver. A missing or unusable artifact
// degrades to the fallback; only repository errors abort.
func (s *Service) ForecastSalesAlt(ctx context.Context, days int) ([]domain.ForecastPoint, error) {
	if days < 1 {
		return nil, fmt.Errorf("horizon must be at least 1 day, got %d", days)
	}
	start := s.today()

	history, err := s.historyRepo.ListDailyMetrics(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking history: %w", err)
	}

	artifact, err := s.artifactRepo.Load(ctx, s.artifactName)
	if err != nil {
		if !errors.Is(err, ErrArtifactNotFound) {
			return nil, fmt.Errorf("failed to load model artifact: %w", err)
		}
		logger.Warn("no trained artifact, serving fallback", "name", s.artifactName)
		artifact = nil
	}

	strategy := NewBoostedStrategy(history, artifact, start, s.cfg)
	return s.run(strategy, TargetSales, start, days), nil
}

func (s *Service) forecastSeasonal(ctx context.Context, target Target, days int) ([]domain.ForecastPoint, error) {
	if days < 1 {
		return nil, fmt.Errorf("horizon must be at least 1 day, got %d", days)
	}
	start := s.today()

	history, err := s.historyRepo.ListDailyMetrics(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking history: %w", err)
	}

	strategy := NewSeasonalStrategy(history, target, start, s.cfg)
	return s.run(strategy, target, start, days), nil
}

func (s *Service) run(strategy ForecastStrategy, target Target, start time.Time, days int) []domain.ForecastPoint {
	began := time.Now()
	points := strategy.Predict(start, days)
	for i := range points {
		points[i].Value = s.cfg.finalize(target, points[i].Value)
	}

	metrics.ForecastsGenerated.WithLabelValues(strategy.Name(), target.String()).Inc()
	if strategy.UsedFallback() {
		metrics.ForecastFallbacks.WithLabelValues(strategy.Name(), target.String()).Inc()
	}
	metrics.ForecastLatency.Observe(time.Since(began).Seconds())
	return points
}

// today truncates the clock to midnight UTC; forecasts are per calendar day.
func (s *Service) today() time.Time {
	t := s.now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
