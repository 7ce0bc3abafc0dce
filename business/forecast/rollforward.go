package forecast

import (
	"time"

	"hotelDeskAI/domain"
	"hotelDeskAI/pkg/logger"
)

// rollForward extends the history one day at a time so lag and rolling
// features exist for days that have not happened yet: each iteration appends
// an empty row, rebuilds features, predicts, then writes the prediction back
// into the series as if it had been observed. Later predictions therefore
// compound on earlier ones; no uncertainty is tracked. Only rows dated
// strictly before start seed the series: start is the first predicted day.
func rollForward(history []domain.DailyMetric, artifact *Artifact, start time.Time, horizon int, cfg Config) []domain.ForecastPoint {
	cfg = artifact.featureConfig(cfg)

	points := make([]seriesPoint, 0, len(history)+horizon)
	for _, p := range historyToSeries(history, TargetSales) {
		if p.Date.Before(start) {
			points = append(points, p)
		}
	}

	supply := baselineSupply(points)

	missingLogged := map[string]bool{}
	out := make([]domain.ForecastPoint, 0, horizon)

	for step := 0; step < horizon; step++ {
		date := start.AddDate(0, 0, step)
		points = append(points, seriesPoint{
			Date:           date,
			RoomsAvailable: supply,
			Known:          false,
		})

		rows := buildFeatures(points, cfg)
		last := rows[len(rows)-1]

		x := make([]float64, len(artifact.Features))
		for i, name := range artifact.Features {
			v, ok := last.Values[name]
			if !ok {
				// tolerated mismatch: the artifact references a feature the
				// frame cannot produce; zero-fill and keep going
				if !missingLogged[name] {
					logger.Warn("artifact feature missing at serving time", "feature", name)
					missingLogged[name] = true
				}
				continue
			}
			x[i] = v
		}

		pred := roundNonNegative(artifact.Model.Predict(x))
		points[len(points)-1].Target = pred
		points[len(points)-1].Known = true

		out = append(out, domain.ForecastPoint{Date: date, Value: pred})
	}

	return out
}

// baselineSupply carries the last known rooms_available forward as the supply
// for all future days; if the tail of history has none, the first known value
// is used instead (forward-fill, then backward-fill).
func baselineSupply(points []seriesPoint) float64 {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].RoomsAvailable > 0 {
			return points[i].RoomsAvailable
		}
	}
	return 0
}
