package forecast

import (
	"math"
	"testing"
)

func stepData() ([][]float64, []float64) {
	var X [][]float64
	var y []float64
	for i := 0; i < 100; i++ {
		x0 := float64(i) / 100
		X = append(X, []float64{x0, float64(i % 7)})
		if x0 > 0.5 {
			y = append(y, 50)
		} else {
			y = append(y, 10)
		}
	}
	return X, y
}

func TestFitBoostedLearnsStepFunction(t *testing.T) {
	X, y := stepData()
	cfg := DefaultConfig()

	m := fitBoosted(X, y, cfg)

	if got := m.Predict([]float64{0.9, 3}); math.Abs(got-50) > 1 {
		t.Errorf("Predict(high) = %v, want ~50", got)
	}
	if got := m.Predict([]float64{0.1, 3}); math.Abs(got-10) > 1 {
		t.Errorf("Predict(low) = %v, want ~10", got)
	}
}

func TestFitBoostedDeterministic(t *testing.T) {
	X, y := stepData()
	cfg := DefaultConfig()

	m1 := fitBoosted(X, y, cfg)
	m2 := fitBoosted(X, y, cfg)

	probes := [][]float64{{0.05, 0}, {0.42, 2}, {0.51, 4}, {0.99, 6}}
	for _, p := range probes {
		if m1.Predict(p) != m2.Predict(p) {
			t.Fatalf("two fits disagree at %v: %v vs %v", p, m1.Predict(p), m2.Predict(p))
		}
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	X, y := stepData()
	cfg := DefaultConfig()

	artifact := &Artifact{
		ID:       "test",
		Model:    fitBoosted(X, y, cfg),
		Features: featureNames(cfg),
		Lags:     cfg.Lags,
		Windows:  cfg.Windows,
	}

	payload, err := artifact.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	restored, err := UnmarshalArtifact(payload)
	if err != nil {
		t.Fatalf("UnmarshalArtifact: %v", err)
	}
	if err := restored.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	probe := []float64{0.7, 1}
	if got, want := restored.Model.Predict(probe), artifact.Model.Predict(probe); got != want {
		t.Errorf("restored model predicts %v, original %v", got, want)
	}
	for i, name := range artifact.Features {
		if restored.Features[i] != name {
			t.Errorf("feature order changed after round trip: %v vs %v", restored.Features, artifact.Features)
			break
		}
	}
}

func TestGrowTreeTinyInputFallsToLeaf(t *testing.T) {
	X := [][]float64{{1}, {2}}
	residual := []float64{4, 6}
	tree := growTree(X, residual, []int{0, 1}, 3, defaultMinSamplesLeaf)
	if !tree.Leaf {
		t.Fatal("expected a leaf for input smaller than 2*minLeaf")
	}
	if tree.Value != 5 {
		t.Errorf("leaf value = %v, want mean 5", tree.Value)
	}
}
