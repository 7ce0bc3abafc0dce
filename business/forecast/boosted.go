package forecast

import (
	"math"
	"sort"
)

// TreeNode is one node of a regression tree. Fields are exported so a trained
// ensemble serializes straight into the model artifact.
type TreeNode struct {
	Leaf      bool      `json:"leaf"`
	Value     float64   `json:"value,omitempty"`
	Feature   int       `json:"feature,omitempty"`
	Threshold float64   `json:"threshold,omitempty"`
	Left      *TreeNode `json:"left,omitempty"`
	Right     *TreeNode `json:"right,omitempty"`
}

func (n *TreeNode) predict(x []float64) float64 {
	for !n.Leaf {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Value
}

// GradientBoostedTrees is a squared-loss boosted ensemble of depth-limited
// regression trees. Inference is fully deterministic: no sampling anywhere.
type GradientBoostedTrees struct {
	BaseValue    float64     `json:"base_value"`
	LearningRate float64     `json:"learning_rate"`
	Trees        []*TreeNode `json:"trees"`
}

// Predict scores one feature vector laid out in the artifact's feature order.
func (m *GradientBoostedTrees) Predict(x []float64) float64 {
	v := m.BaseValue
	for _, t := range m.Trees {
		v += m.LearningRate * t.predict(x)
	}
	return v
}

// fitBoosted trains the ensemble: start from the target mean, then fit each
// tree to the current residuals.
func fitBoosted(X [][]float64, y []float64, cfg Config) *GradientBoostedTrees {
	m := &GradientBoostedTrees{
		BaseValue:    mean(y),
		LearningRate: cfg.LearningRate,
	}

	pred := make([]float64, len(y))
	for i := range pred {
		pred[i] = m.BaseValue
	}
	residual := make([]float64, len(y))

	idx := make([]int, len(y))
	for i := range idx {
		idx[i] = i
	}

	for t := 0; t < cfg.Trees; t++ {
		for i := range y {
			residual[i] = y[i] - pred[i]
		}
		tree := growTree(X, residual, idx, cfg.MaxDepth, cfg.MinSamplesLeaf)
		m.Trees = append(m.Trees, tree)
		for i := range y {
			pred[i] += m.LearningRate * tree.predict(X[i])
		}
	}
	return m
}

// growTree greedily splits on the (feature, threshold) pair with the lowest
// total squared error. Ties keep the first candidate, so training is
// deterministic for a fixed input order.
func growTree(X [][]float64, residual []float64, idx []int, depth, minLeaf int) *TreeNode {
	if depth == 0 || len(idx) < 2*minLeaf {
		return &TreeNode{Leaf: true, Value: meanAt(residual, idx)}
	}

	bestFeature, bestThreshold, bestScore := -1, 0.0, math.Inf(1)
	nFeatures := len(X[idx[0]])

	order := make([]int, len(idx))
	for f := 0; f < nFeatures; f++ {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool { return X[order[a]][f] < X[order[b]][f] })

		// prefix sums over the sorted order
		leftSum, leftSq := 0.0, 0.0
		totalSum, totalSq := 0.0, 0.0
		for _, i := range order {
			totalSum += residual[i]
			totalSq += residual[i] * residual[i]
		}
		for pos := 0; pos < len(order)-1; pos++ {
			i := order[pos]
			leftSum += residual[i]
			leftSq += residual[i] * residual[i]

			// no split between identical values
			if X[order[pos]][f] == X[order[pos+1]][f] {
				continue
			}
			nl, nr := pos+1, len(order)-pos-1
			if nl < minLeaf || nr < minLeaf {
				continue
			}
			rightSum := totalSum - leftSum
			rightSq := totalSq - leftSq
			score := (leftSq - leftSum*leftSum/float64(nl)) +
				(rightSq - rightSum*rightSum/float64(nr))
			if score < bestScore {
				bestScore = score
				bestFeature = f
				bestThreshold = (X[order[pos]][f] + X[order[pos+1]][f]) / 2
			}
		}
	}

	if bestFeature < 0 {
		return &TreeNode{Leaf: true, Value: meanAt(residual, idx)}
	}

	var left, right []int
	for _, i := range idx {
		if X[i][bestFeature] <= bestThreshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &TreeNode{Leaf: true, Value: meanAt(residual, idx)}
	}

	return &TreeNode{
		Feature:   bestFeature,
		Threshold: bestThreshold,
		Left:      growTree(X, residual, left, depth-1, minLeaf),
		Right:     growTree(X, residual, right, depth-1, minLeaf),
	}
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

func meanAt(v []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range idx {
		sum += v[i]
	}
	return sum / float64(len(idx))
}
