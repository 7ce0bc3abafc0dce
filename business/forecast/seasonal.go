package forecast

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// seasonalModel is an additive decomposition of a daily series: a linear
// trend over the row index plus day-of-week effects and, optionally,
// month-of-year effects estimated from the trend residuals.
type seasonalModel struct {
	intercept float64
	slope     float64
	dow       [7]float64
	month     [12]float64
	yearly    bool
	rows      int
}

// fitSeasonal fits the decomposition over the full history. It fails on
// short or degenerate series; callers are expected to recover with the
// day-of-week fallback.
func fitSeasonal(dates []time.Time, values []float64, yearly bool, minRows int) (*seasonalModel, error) {
	n := len(values)
	if n != len(dates) {
		return nil, fmt.Errorf("misaligned series: %d dates, %d values", len(dates), n)
	}
	if n < minRows {
		return nil, fmt.Errorf("insufficient history: %d rows (need >=%d)", n, minRows)
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	intercept, slope := stat.LinearRegression(xs, values, nil, false)
	if math.IsNaN(intercept) || math.IsNaN(slope) || math.IsInf(intercept, 0) || math.IsInf(slope, 0) {
		return nil, fmt.Errorf("degenerate trend fit")
	}

	m := &seasonalModel{
		intercept: intercept,
		slope:     slope,
		yearly:    yearly,
		rows:      n,
	}

	var dowSum [7]float64
	var dowCnt [7]int
	var monthSum [12]float64
	var monthCnt [12]int
	residuals := make([]float64, n)
	for i, d := range dates {
		residuals[i] = values[i] - (intercept + slope*xs[i])
		wd := int(d.Weekday())
		dowSum[wd] += residuals[i]
		dowCnt[wd]++
	}
	for wd := 0; wd < 7; wd++ {
		if dowCnt[wd] > 0 {
			m.dow[wd] = dowSum[wd] / float64(dowCnt[wd])
		}
	}

	if yearly {
		for i, d := range dates {
			mo := int(d.Month()) - 1
			monthSum[mo] += residuals[i] - m.dow[int(d.Weekday())]
			monthCnt[mo]++
		}
		for mo := 0; mo < 12; mo++ {
			if monthCnt[mo] > 0 {
				m.month[mo] = monthSum[mo] / float64(monthCnt[mo])
			}
		}
	}

	return m, nil
}

// predict extrapolates the fitted components to a future date step rows past
// the end of the training series (step 0 = first day after history).
func (m *seasonalModel) predict(date time.Time, step int) float64 {
	t := float64(m.rows + step)
	v := m.intercept + m.slope*t + m.dow[int(date.Weekday())]
	if m.yearly {
		v += m.month[int(date.Month())-1]
	}
	return v
}

// dowFallback is the last line of defense: historical day-of-week means,
// the overall mean for empty buckets, zero for an empty history. It can
// always produce a value.
type dowFallback struct {
	bucket  [7]float64
	hasData [7]bool
	overall float64
}

func newDOWFallback(dates []time.Time, values []float64) *dowFallback {
	f := &dowFallback{}
	var sum [7]float64
	var cnt [7]int
	total := 0.0
	for i, d := range dates {
		wd := int(d.Weekday())
		sum[wd] += values[i]
		cnt[wd]++
		total += values[i]
	}
	if len(values) > 0 {
		f.overall = total / float64(len(values))
	}
	for wd := 0; wd < 7; wd++ {
		if cnt[wd] > 0 {
			f.bucket[wd] = sum[wd] / float64(cnt[wd])
			f.hasData[wd] = true
		}
	}
	return f
}

func (f *dowFallback) predict(date time.Time) float64 {
	wd := int(date.Weekday())
	if f.hasData[wd] {
		return f.bucket[wd]
	}
	return f.overall
}

func roundNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return math.Round(v)
}
