package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Forecasts generated, labeled by strategy and target series
	ForecastsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hoteldesk_forecasts_generated_total",
		Help: "Total number of forecasts generated",
	}, []string{"strategy", "target"})

	// Fallbacks taken when a model fit failed or an artifact was unusable
	ForecastFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hoteldesk_forecast_fallbacks_total",
		Help: "Total number of forecasts served by the day-of-week fallback",
	}, []string{"strategy", "target"})

	// Latency of forecast generation end to end
	ForecastLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hoteldesk_forecast_latency_seconds",
		Help:    "Latency of forecast generation",
		Buckets: prometheus.DefBuckets,
	})

	// Pricing suggestion batches served
	PricingSuggestions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hoteldesk_pricing_suggestions_total",
		Help: "Total number of pricing suggestion batches served",
	})

	// Competitor band requests that hit the empty-window fallback constants
	CompetitorBandFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hoteldesk_competitor_band_fallbacks_total",
		Help: "Total number of competitor band computations with no rates in the lookback window",
	})
)

func Init() {
	prometheus.MustRegister(
		ForecastsGenerated,
		ForecastFallbacks,
		ForecastLatency,
		PricingSuggestions,
		CompetitorBandFallbacks,
	)
}
