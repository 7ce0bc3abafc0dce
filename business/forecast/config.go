package forecast

// Target selects which daily series a forecast is for.
type Target int

const (
	TargetSales Target = iota
	TargetOccupancy
)

func (t Target) String() string {
	if t == TargetOccupancy {
		return "occupancy"
	}
	return "sales"
}

const (
	defaultOccupancyMin = 0.20
	defaultOccupancyMax = 0.98

	// rows needed before the seasonal model attempts a fit
	defaultMinFitRows = 14

	defaultTrees          = 200
	defaultMaxDepth       = 3
	defaultLearningRate   = 0.08
	defaultMinSamplesLeaf = 5
	defaultFolds          = 5
)

type Config struct {
	// Lags are row offsets into the ordered series, not calendar distances.
	Lags []int
	// Windows are trailing rolling-mean window sizes in rows.
	Windows []int

	// Occupancy forecasts are clamped into [OccupancyMin, OccupancyMax].
	OccupancyMin float64
	OccupancyMax float64

	// YearlySeasonality adds month-of-year effects to the seasonal model.
	// Weekly seasonality is always on.
	YearlySeasonality bool

	MinFitRows int

	// Boosted-tree hyperparameters
	Trees          int
	MaxDepth       int
	LearningRate   float64
	MinSamplesLeaf int

	// Folds is the number of chronological validation folds used in training.
	Folds int
}

func DefaultConfig() Config {
	return Config{
		Lags:              []int{1, 7, 14, 28},
		Windows:           []int{7, 28},
		OccupancyMin:      defaultOccupancyMin,
		OccupancyMax:      defaultOccupancyMax,
		YearlySeasonality: false,
		MinFitRows:        defaultMinFitRows,
		Trees:             defaultTrees,
		MaxDepth:          defaultMaxDepth,
		LearningRate:      defaultLearningRate,
		MinSamplesLeaf:    defaultMinSamplesLeaf,
		Folds:             defaultFolds,
	}
}

// finalize applies the per-target output contract: sales are non-negative
// integers, occupancy stays inside the configured clamp.
func (c Config) finalize(target Target, v float64) float64 {
	switch target {
	case TargetOccupancy:
		if v < c.OccupancyMin {
			return c.OccupancyMin
		}
		if v > c.OccupancyMax {
			return c.OccupancyMax
		}
		return v
	default:
		return roundNonNegative(v)
	}
}
