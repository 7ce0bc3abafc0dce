package forecast

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"hotelDeskAI/domain"
)

type fakeHistoryRepo struct {
	metrics []domain.DailyMetric
	err     error
}

func (f *fakeHistoryRepo) ListDailyMetrics(_ context.Context, until time.Time) ([]domain.DailyMetric, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.DailyMetric
	for _, m := range f.metrics {
		if !m.Date.After(until) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeArtifactRepo struct {
	artifact *Artifact
	err      error
}

func (f *fakeArtifactRepo) Load(context.Context, string) (*Artifact, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.artifact == nil {
		return nil, ErrArtifactNotFound
	}
	return f.artifact, nil
}

func (f *fakeArtifactRepo) Save(_ context.Context, _ string, a *Artifact) error {
	f.artifact = a
	return nil
}

// ninetyDayHistory is 90 consecutive days ending the day before serviceToday.
func ninetyDayHistory() []domain.DailyMetric {
	metrics := make([]domain.DailyMetric, 90)
	for i := range metrics {
		sold := 80 + i%31
		metrics[i] = domain.DailyMetric{
			Date:           day(i),
			RoomsSold:      sold,
			RoomsAvailable: 120,
			ADR:            3200,
			Revenue:        float64(sold) * 3200,
		}
	}
	return metrics
}

func serviceToday() time.Time { return day(90) }

func newTestService(historyRepo HistoryRepository, artifactRepo ArtifactRepository) *Service {
	return NewService(historyRepo, artifactRepo, DefaultConfig(), "sales.gbt").
		WithClock(serviceToday)
}

func checkHorizon(t *testing.T, points []domain.ForecastPoint, days int) {
	t.Helper()
	if len(points) != days {
		t.Fatalf("got %d points, want %d", len(points), days)
	}
	for i, p := range points {
		want := serviceToday().AddDate(0, 0, i)
		if !p.Date.Equal(want) {
			t.Errorf("points[%d].Date = %v, want %v", i, p.Date, want)
		}
	}
}

func TestForecastSalesSevenDays(t *testing.T) {
	svc := newTestService(&fakeHistoryRepo{metrics: ninetyDayHistory()}, &fakeArtifactRepo{})

	points, err := svc.ForecastSales(context.Background(), 7)
	if err != nil {
		t.Fatalf("ForecastSales: %v", err)
	}
	checkHorizon(t, points, 7)
	for i, p := range points {
		if p.Value < 0 || p.Value != math.Trunc(p.Value) {
			t.Errorf("points[%d].Value = %v, want a non-negative integer", i, p.Value)
		}
	}
}

func TestForecastOccupancyStaysInBounds(t *testing.T) {
	svc := newTestService(&fakeHistoryRepo{metrics: ninetyDayHistory()}, &fakeArtifactRepo{})

	points, err := svc.ForecastOccupancy(context.Background(), 14)
	if err != nil {
		t.Fatalf("ForecastOccupancy: %v", err)
	}
	checkHorizon(t, points, 14)
	for i, p := range points {
		if p.Value < defaultOccupancyMin || p.Value > defaultOccupancyMax {
			t.Errorf("points[%d].Value = %v, outside [%v, %v]",
				i, p.Value, defaultOccupancyMin, defaultOccupancyMax)
		}
	}
}

func TestForecastSalesEmptyHistoryServesFallback(t *testing.T) {
	svc := newTestService(&fakeHistoryRepo{}, &fakeArtifactRepo{})

	points, err := svc.ForecastSales(context.Background(), 7)
	if err != nil {
		t.Fatalf("ForecastSales on empty history: %v", err)
	}
	checkHorizon(t, points, 7)
	for i, p := range points {
		if p.Value != 0 {
			t.Errorf("points[%d].Value = %v, want 0 with no history", i, p.Value)
		}
	}
}

func TestForecastSalesAltDeterministic(t *testing.T) {
	history := ninetyDayHistory()
	artifact, err := TrainSalesModel(history, DefaultConfig())
	if err != nil {
		t.Fatalf("TrainSalesModel: %v", err)
	}
	svc := newTestService(&fakeHistoryRepo{metrics: history}, &fakeArtifactRepo{artifact: artifact})

	first, err := svc.ForecastSalesAlt(context.Background(), 7)
	if err != nil {
		t.Fatalf("ForecastSalesAlt: %v", err)
	}
	checkHorizon(t, first, 7)

	second, err := svc.ForecastSalesAlt(context.Background(), 7)
	if err != nil {
		t.Fatalf("ForecastSalesAlt (second run): %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("run disagreement at %d: %v vs %v", i, first[i], second[i])
		}
	}
	for i, p := range first {
		if p.Value < 0 || p.Value != math.Trunc(p.Value) {
			t.Errorf("first[%d].Value = %v, want a non-negative integer", i, p.Value)
		}
	}
}

func TestForecastSalesAltToleratesUnknownArtifactFeature(t *testing.T) {
	history := ninetyDayHistory()
	artifact, err := TrainSalesModel(history, DefaultConfig())
	if err != nil {
		t.Fatalf("TrainSalesModel: %v", err)
	}
	// a feature recorded at training time that the serving frame cannot
	// produce; it must be zero-filled, not fatal
	artifact.Features = append(artifact.Features, "promo_flag")
	svc := newTestService(&fakeHistoryRepo{metrics: history}, &fakeArtifactRepo{artifact: artifact})

	points, err := svc.ForecastSalesAlt(context.Background(), 7)
	if err != nil {
		t.Fatalf("ForecastSalesAlt with unknown feature: %v", err)
	}
	checkHorizon(t, points, 7)
	for i, p := range points {
		if p.Value < 0 || p.Value != math.Trunc(p.Value) {
			t.Errorf("points[%d].Value = %v, want a non-negative integer", i, p.Value)
		}
	}
}

func TestForecastSalesAltInvalidArtifactServesFallback(t *testing.T) {
	// stored artifact with no trained model fails validation
	broken := &Artifact{ID: "broken", Features: featureNames(DefaultConfig())}
	svc := newTestService(&fakeHistoryRepo{metrics: ninetyDayHistory()}, &fakeArtifactRepo{artifact: broken})

	points, err := svc.ForecastSalesAlt(context.Background(), 7)
	if err != nil {
		t.Fatalf("ForecastSalesAlt with invalid artifact: %v", err)
	}
	checkHorizon(t, points, 7)
}

func TestForecastSalesAltMissingArtifactServesFallback(t *testing.T) {
	svc := newTestService(&fakeHistoryRepo{metrics: ninetyDayHistory()}, &fakeArtifactRepo{})

	points, err := svc.ForecastSalesAlt(context.Background(), 7)
	if err != nil {
		t.Fatalf("ForecastSalesAlt without artifact: %v", err)
	}
	checkHorizon(t, points, 7)
}

func TestForecastRejectsNonPositiveHorizon(t *testing.T) {
	svc := newTestService(&fakeHistoryRepo{metrics: ninetyDayHistory()}, &fakeArtifactRepo{})

	for _, days := range []int{0, -3} {
		if _, err := svc.ForecastSales(context.Background(), days); err == nil {
			t.Errorf("ForecastSales(%d): expected error", days)
		}
		if _, err := svc.ForecastSalesAlt(context.Background(), days); err == nil {
			t.Errorf("ForecastSalesAlt(%d): expected error", days)
		}
	}
}

func TestForecastPropagatesRepositoryErrors(t *testing.T) {
	boom := errors.New("connection refused")

	svc := newTestService(&fakeHistoryRepo{err: boom}, &fakeArtifactRepo{})
	if _, err := svc.ForecastSales(context.Background(), 7); !errors.Is(err, boom) {
		t.Errorf("ForecastSales: err = %v, want wrapped %v", err, boom)
	}

	svc = newTestService(&fakeHistoryRepo{metrics: ninetyDayHistory()}, &fakeArtifactRepo{err: boom})
	if _, err := svc.ForecastSalesAlt(context.Background(), 7); !errors.Is(err, boom) {
		t.Errorf("ForecastSalesAlt: err = %v, want wrapped %v", err, boom)
	}
}

func TestForecastExcludesForecastDayObservation(t *testing.T) {
	// 90 flat days, then a wild row dated on the forecast start itself; the
	// fit must only see rows before start, so the outlier changes nothing
	metrics := make([]domain.DailyMetric, 0, 91)
	for i := 0; i < 90; i++ {
		metrics = append(metrics, domain.DailyMetric{
			Date: day(i), RoomsSold: 100, RoomsAvailable: 120,
		})
	}
	metrics = append(metrics, domain.DailyMetric{
		Date: serviceToday(), RoomsSold: 10000, RoomsAvailable: 120,
	})
	svc := newTestService(&fakeHistoryRepo{metrics: metrics}, &fakeArtifactRepo{})

	points, err := svc.ForecastSales(context.Background(), 3)
	if err != nil {
		t.Fatalf("ForecastSales: %v", err)
	}
	for i, p := range points {
		if math.Abs(p.Value-100) > 1 {
			t.Errorf("points[%d].Value = %v, want ~100 (fit must not include the start-day row)", i, p.Value)
		}
	}
}

func TestTrainSalesModelRejectsShortHistory(t *testing.T) {
	if _, err := TrainSalesModel(ninetyDayHistory()[:35], DefaultConfig()); err == nil {
		t.Fatal("expected an error for history too short to train on")
	}
}
