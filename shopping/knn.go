package shopping

import (
	"math"
	"sort"
)

// KNN is a k-nearest-neighbor classifier over the training evidence.
type KNN struct {
	k        int
	evidence [][]float64
	labels   []int
}

// TrainKNN fits a k-nearest-neighbor model. k defaults to 1 when
// non-positive; the course exercise uses k=1.
func TrainKNN(d *Dataset, k int) (*KNN, error) {
	if len(d.Evidence) == 0 {
		return nil, ErrEmptyDataset
	}
	if k <= 0 {
		k = 1
	}

	return &KNN{k: k, evidence: d.Evidence, labels: d.Labels}, nil
}

// Predict classifies x by majority vote among its k nearest training
// rows (Euclidean distance). With k=1 this is the label of the single
// closest row.
//
// Complexity: O(n · d) per prediction over n training rows.
func (m *KNN) Predict(x []float64) int {
	type scored struct {
		dist  float64
		label int
	}
	neighbors := make([]scored, len(m.evidence))
	for i, row := range m.evidence {
		neighbors[i] = scored{dist: euclidean(row, x), label: m.labels[i]}
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].dist < neighbors[j].dist })

	votes := 0
	k := m.k
	if k > len(neighbors) {
		k = len(neighbors)
	}
	for _, n := range neighbors[:k] {
		votes += n.label
	}
	if 2*votes > k {
		return 1
	}

	return 0
}

// PredictAll classifies every row of evidence.
func (m *KNN) PredictAll(evidence [][]float64) []int {
	out := make([]int, len(evidence))
	for i, x := range evidence {
		out[i] = m.Predict(x)
	}

	return out
}

// euclidean returns the Euclidean distance between two rows. Rows of
// unequal length compare over the shorter prefix.
func euclidean(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return math.Sqrt(sum)
}

// Evaluation summarizes classifier performance on held-out data.
type Evaluation struct {
	Correct, Incorrect int
	// Sensitivity is the true positive rate: the share of actual
	// purchases identified.
	Sensitivity float64
	// Specificity is the true negative rate: the share of actual
	// non-purchases identified.
	Specificity float64
}

// Evaluate compares predictions against actual labels.
// Returns ErrMismatchedLengths when slices differ in length.
func Evaluate(labels, predictions []int) (Evaluation, error) {
	if len(labels) != len(predictions) {
		return Evaluation{}, ErrMismatchedLengths
	}

	var tp, tn, fp, fn int
	for i, label := range labels {
		switch {
		case label == 1 && predictions[i] == 1:
			tp++
		case label == 1:
			fn++
		case predictions[i] == 0:
			tn++
		default:
			fp++
		}
	}

	ev := Evaluation{Correct: tp + tn, Incorrect: fp + fn}
	if tp+fn > 0 {
		ev.Sensitivity = float64(tp) / float64(tp+fn)
	}
	if tn+fp > 0 {
		ev.Specificity = float64(tn) / float64(tn+fp)
	}

	return ev, nil
}
