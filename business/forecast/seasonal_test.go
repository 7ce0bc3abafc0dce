package forecast

import (
	"math"
	"testing"
	"time"
)

func TestFitSeasonalRecoversTrendAndWeekly(t *testing.T) {
	// y = 100 + 0.5*t, plus +10 on Saturdays
	var dates []time.Time
	var values []float64
	for i := 0; i < 84; i++ {
		d := day(i)
		v := 100 + 0.5*float64(i)
		if d.Weekday() == time.Saturday {
			v += 10
		}
		dates = append(dates, d)
		values = append(values, v)
	}

	m, err := fitSeasonal(dates, values, false, defaultMinFitRows)
	if err != nil {
		t.Fatalf("fitSeasonal: %v", err)
	}

	if math.Abs(m.slope-0.5) > 0.05 {
		t.Errorf("slope = %v, want ~0.5", m.slope)
	}

	// extrapolate one week past the series
	for step := 0; step < 7; step++ {
		d := day(84 + step)
		got := m.predict(d, step)
		want := 100 + 0.5*float64(84+step)
		if d.Weekday() == time.Saturday {
			want += 10
		}
		if math.Abs(got-want) > 2.0 {
			t.Errorf("predict(%s) = %v, want ~%v", d.Weekday(), got, want)
		}
	}
}

func TestFitSeasonalYearlyEffects(t *testing.T) {
	var dates []time.Time
	var values []float64
	for i := 0; i < 365; i++ {
		d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		v := 100.0
		if d.Month() == time.August {
			v += 20
		}
		dates = append(dates, d)
		values = append(values, v)
	}

	m, err := fitSeasonal(dates, values, true, defaultMinFitRows)
	if err != nil {
		t.Fatalf("fitSeasonal: %v", err)
	}
	if m.month[int(time.August)-1] < 10 {
		t.Errorf("August effect = %v, want clearly positive", m.month[int(time.August)-1])
	}
}

func TestFitSeasonalRejectsShortHistory(t *testing.T) {
	dates := []time.Time{day(0), day(1)}
	values := []float64{1, 2}
	if _, err := fitSeasonal(dates, values, false, defaultMinFitRows); err == nil {
		t.Fatal("expected error for short history")
	}
}

func TestDOWFallback(t *testing.T) {
	// Mondays at 80, everything else unset
	var dates []time.Time
	var values []float64
	for i := 0; i < 4; i++ {
		dates = append(dates, day(2).AddDate(0, 0, 7*i)) // 2026-08-03 is a Monday
		values = append(values, 80)
	}
	f := newDOWFallback(dates, values)

	if got := f.predict(day(2)); got != 80 {
		t.Errorf("Monday = %v, want 80", got)
	}
	// empty bucket falls back to the overall mean
	if got := f.predict(day(3)); got != 80 {
		t.Errorf("empty bucket = %v, want overall mean 80", got)
	}
}

func TestDOWFallbackEmptyHistory(t *testing.T) {
	f := newDOWFallback(nil, nil)
	if got := f.predict(day(0)); got != 0 {
		t.Errorf("empty history = %v, want 0", got)
	}
}
