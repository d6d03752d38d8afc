package yield

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/montanaflynn/stats"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidPrediction = errors.New("estimator returned an unusable prediction")
	ErrFeatureIndex      = errors.New("estimator feature index out of range")
)

// Estimator is a trained point estimator over the Encode vector.
// Implementations must be safe for concurrent Predict calls.
type Estimator interface {
	Predict(features []int) (float64, error)
}

// Node is one node of a regression tree. A node with Left < 0 is a leaf.
type Node struct {
	Feature   int     `yaml:"feature" json:"feature"`
	Threshold float64 `yaml:"threshold" json:"threshold"`
	Left      int     `yaml:"left" json:"left"`
	Right     int     `yaml:"right" json:"right"`
	Value     float64 `yaml:"value" json:"value"`
}

type Tree struct {
	Nodes []Node `yaml:"nodes" json:"nodes"`
}

// Forest averages the output of its trees, the way a random-forest regressor does.
type Forest struct {
	Name  string `yaml:"name" json:"name"`
	Trees []Tree `yaml:"trees" json:"trees"`
}

// LoadForest reads a forest definition from a YAML (or JSON) file.
func LoadForest(path string) (*Forest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read estimator: %w", err)
	}
	var f Forest
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode estimator %s: %w", path, err)
	}
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("estimator %s has no trees", path)
	}
	for i, t := range f.Trees {
		if len(t.Nodes) == 0 {
			return nil, fmt.Errorf("estimator %s: tree %d is empty", path, i)
		}
	}
	return &f, nil
}

func (f *Forest) Predict(features []int) (float64, error) {
	if len(f.Trees) == 0 {
		return 0, fmt.Errorf("%w: empty forest", ErrInvalidPrediction)
	}
	outs := make([]float64, 0, len(f.Trees))
	for i := range f.Trees {
		v, err := f.Trees[i].predict(features)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		outs = append(outs, v)
	}
	mean, err := stats.Mean(outs)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrediction, err)
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return 0, ErrInvalidPrediction
	}
	return mean, nil
}

func (t *Tree) predict(x []int) (float64, error) {
	idx := 0
	// A well-formed tree reaches a leaf in fewer steps than it has nodes.
	for steps := 0; steps <= len(t.Nodes); steps++ {
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, fmt.Errorf("%w: node %d does not exist", ErrInvalidPrediction, idx)
		}
		n := t.Nodes[idx]
		if n.Left < 0 {
			return n.Value, nil
		}
		if n.Feature < 0 || n.Feature >= len(x) {
			return 0, fmt.Errorf("%w: %d", ErrFeatureIndex, n.Feature)
		}
		if float64(x[n.Feature]) <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return 0, fmt.Errorf("%w: tree does not terminate", ErrInvalidPrediction)
}
