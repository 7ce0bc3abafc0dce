package forecast

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrArtifactNotFound is returned by artifact repositories when no trained
// model exists under the requested name.
var ErrArtifactNotFound = errors.New("model artifact not found")

// Artifact is a trained boosted model together with the exact feature list
// and lag/window configuration it was trained with. It is written only by
// the offline trainer and read-only at serving time; the serving path must
// build feature vectors in Features order.
type Artifact struct {
	ID        string                `json:"id"`
	Model     *GradientBoostedTrees `json:"model"`
	Features  []string              `json:"features"`
	Lags      []int                 `json:"lags"`
	Windows   []int                 `json:"windows"`
	RMSE      float64               `json:"rmse"`
	TrainedAt time.Time             `json:"trained_at"`
}

func (a *Artifact) Validate() error {
	if a.Model == nil || len(a.Model.Trees) == 0 {
		return errors.New("artifact has no trained model")
	}
	if len(a.Features) == 0 {
		return errors.New("artifact has no feature list")
	}
	return nil
}

func (a *Artifact) Marshal() ([]byte, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal artifact: %w", err)
	}
	return payload, nil
}

func UnmarshalArtifact(payload []byte) (*Artifact, error) {
	var a Artifact
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal artifact: %w", err)
	}
	return &a, nil
}

// featureConfig rebuilds a Config whose lag/window settings match the
// artifact, so serving always derives features the way training did.
func (a *Artifact) featureConfig(base Config) Config {
	cfg := base
	cfg.Lags = a.Lags
	cfg.Windows = a.Windows
	return cfg
}
