package forecast

import (
	"fmt"
	"time"
)

// feature name components; the artifact records the exact ordered list
const (
	featRoomsAvailable = "rooms_available"
	featDayOfWeek      = "dow"
	featDayOfMonth     = "dom"
	featMonth          = "month"
)

func lagName(k int) string {
	return fmt.Sprintf("lag_%d", k)
}

func rollName(w int) string {
	return fmt.Sprintf("roll_%d_mean", w)
}

// featureNames returns the feature order used for training and inference:
// supply, lags, rolling means, calendar.
func featureNames(cfg Config) []string {
	names := []string{featRoomsAvailable}
	for _, k := range cfg.Lags {
		names = append(names, lagName(k))
	}
	for _, w := range cfg.Windows {
		names = append(names, rollName(w))
	}
	return append(names, featDayOfWeek, featDayOfMonth, featMonth)
}

// seriesPoint is one row of the working series the feature builder runs over.
// Known is false for future rows whose target has not been predicted yet.
type seriesPoint struct {
	Date           time.Time
	RoomsAvailable float64
	Target         float64
	Known          bool
}

// featureRow is a seriesPoint augmented with its derived features. Complete
// is false when insufficient history exists for some lag or rolling feature;
// such rows are dropped from training but may still serve inference with the
// features they do have.
type featureRow struct {
	Date     time.Time
	Target   float64
	Known    bool
	Values   map[string]float64
	Complete bool
}

// buildFeatures derives lag, rolling-mean, and calendar features over the
// ordered series. Lags index by row position; with a gap-free one-row-per-day
// history that is the same as calendar distance. A rolling window ends at the
// current row when its target is known and at the previous row otherwise
// (the value being predicted cannot be part of its own window).
func buildFeatures(points []seriesPoint, cfg Config) []featureRow {
	rows := make([]featureRow, len(points))
	for i, p := range points {
		values := map[string]float64{
			featRoomsAvailable: p.RoomsAvailable,
			featDayOfWeek:      float64(p.Date.Weekday()),
			featDayOfMonth:     float64(p.Date.Day()),
			featMonth:          float64(p.Date.Month()),
		}
		complete := true

		for _, k := range cfg.Lags {
			j := i - k
			if j >= 0 && points[j].Known {
				values[lagName(k)] = points[j].Target
			} else {
				complete = false
			}
		}

		for _, w := range cfg.Windows {
			end := i
			if !p.Known {
				end = i - 1
			}
			start := end - w + 1
			if m, ok := windowMean(points, start, end); ok {
				values[rollName(w)] = m
			} else {
				complete = false
			}
		}

		rows[i] = featureRow{
			Date:     p.Date,
			Target:   p.Target,
			Known:    p.Known,
			Values:   values,
			Complete: complete,
		}
	}
	return rows
}

// windowMean averages targets over points[start..end] inclusive, reporting
// false when the window underflows the series or contains unknown targets.
func windowMean(points []seriesPoint, start, end int) (float64, bool) {
	if start < 0 || end >= len(points) || start > end {
		return 0, false
	}
	sum := 0.0
	for i := start; i <= end; i++ {
		if !points[i].Known {
			return 0, false
		}
		sum += points[i].Target
	}
	return sum / float64(end-start+1), true
}
