package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"hotelDeskAI/domain"
	"hotelDeskAI/pkg/logger"
)

// TrainSalesModel fits the boosted sales model over the full history. Rows
// with incomplete features are dropped (too little history for a lag or
// window); the remainder is split into chronological expanding folds and the
// fold model with the lowest validation RMSE wins. Order is never shuffled.
func TrainSalesModel(history []domain.DailyMetric, cfg Config) (*Artifact, error) {
	points := historyToSeries(history, TargetSales)
	rows := buildFeatures(points, cfg)
	names := featureNames(cfg)

	var X [][]float64
	var y []float64
	dropped := 0
	for _, row := range rows {
		if !row.Known || !row.Complete {
			dropped++
			continue
		}
		X = append(X, vectorInOrder(row.Values, names))
		y = append(y, row.Target)
	}
	if dropped > 0 {
		logger.Warn("dropped incomplete feature rows from training",
			"dropped", dropped, "kept", len(y))
	}

	minRows := (cfg.Folds + 1) * 2
	if len(y) < minRows {
		return nil, fmt.Errorf("insufficient training data: %d complete rows (need >=%d)", len(y), minRows)
	}

	foldSize := len(y) / (cfg.Folds + 1)
	var best *GradientBoostedTrees
	bestRMSE := math.Inf(1)

	for k := 1; k <= cfg.Folds; k++ {
		trainEnd := k * foldSize
		valEnd := trainEnd + foldSize
		if k == cfg.Folds {
			valEnd = len(y)
		}

		model := fitBoosted(X[:trainEnd], y[:trainEnd], cfg)
		r := rmse(model, X[trainEnd:valEnd], y[trainEnd:valEnd])
		logger.Info("validation fold complete", "fold", k, "train_rows", trainEnd, "rmse", r)
		if r < bestRMSE {
			best = model
			bestRMSE = r
		}
	}

	return &Artifact{
		ID:        uuid.NewString(),
		Model:     best,
		Features:  names,
		Lags:      cfg.Lags,
		Windows:   cfg.Windows,
		RMSE:      bestRMSE,
		TrainedAt: time.Now().UTC(),
	}, nil
}

func rmse(model *GradientBoostedTrees, X [][]float64, y []float64) float64 {
	if len(y) == 0 {
		return math.Inf(1)
	}
	sum := 0.0
	for i := range y {
		d := model.Predict(X[i]) - y[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(y)))
}

// vectorInOrder lays out a feature map in the given name order. Missing names
// become zero; trainers only pass complete rows, so that path is only taken
// at serving time (see rollForward).
func vectorInOrder(values map[string]float64, names []string) []float64 {
	x := make([]float64, len(names))
	for i, name := range names {
		x[i] = values[name]
	}
	return x
}

// historyToSeries converts stored metrics into the working series for one
// target, deriving occupancy from sold/available when the stored rate is
// absent.
func historyToSeries(history []domain.DailyMetric, target Target) []seriesPoint {
	points := make([]seriesPoint, len(history))
	for i, m := range history {
		v := float64(m.RoomsSold)
		if target == TargetOccupancy {
			v = m.OccupancyRate
			if v == 0 && m.RoomsAvailable > 0 {
				v = float64(m.RoomsSold) / float64(m.RoomsAvailable)
			}
		}
		points[i] = seriesPoint{
			Date:           m.Date,
			RoomsAvailable: float64(m.RoomsAvailable),
			Target:         v,
			Known:          true,
		}
	}
	return points
}
