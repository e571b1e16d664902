package nn

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/matrix"
)

// Network is a dense feedforward classifier. sizes[0] is the input
// width, sizes[len-1] the class count; weights[l] maps layer l to
// layer l+1.
type Network struct {
	sizes   []int
	weights []*matrix.Dense
	biases  [][]float64
	opts    Options
}

// New builds a network with the given layer sizes (input, hidden...,
// output) and He-initialized weights.
// Returns ErrBadLayout unless at least input and output layers with
// positive sizes are given; ErrOptionViolation surfaces bad options.
func New(sizes []int, opts ...Option) (*Network, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Rng == nil {
		cfg.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(sizes) < 2 {
		return nil, ErrBadLayout
	}
	for _, n := range sizes {
		if n <= 0 {
			return nil, ErrBadLayout
		}
	}

	n := &Network{
		sizes:   append([]int(nil), sizes...),
		weights: make([]*matrix.Dense, len(sizes)-1),
		biases:  make([][]float64, len(sizes)-1),
		opts:    cfg,
	}
	for l := 0; l < len(sizes)-1; l++ {
		w, err := matrix.NewDense(sizes[l+1], sizes[l])
		if err != nil {
			return nil, err
		}
		scale := math.Sqrt(2.0 / float64(sizes[l]))
		for i := 0; i < sizes[l+1]; i++ {
			for j := 0; j < sizes[l]; j++ {
				w.Set(i, j, cfg.Rng.NormFloat64()*scale)
			}
		}
		n.weights[l] = w
		n.biases[l] = make([]float64, sizes[l+1])
	}

	return n, nil
}

// InputSize returns the expected input vector length.
func (n *Network) InputSize() int { return n.sizes[0] }

// OutputSize returns the number of classes.
func (n *Network) OutputSize() int { return n.sizes[len(n.sizes)-1] }

// Forward runs one forward pass and returns the softmax class
// distribution. Returns ErrBadInput on a length mismatch.
func (n *Network) Forward(x []float64) ([]float64, error) {
	if len(x) != n.sizes[0] {
		return nil, ErrBadInput
	}
	activations, _, err := n.forward(x)
	if err != nil {
		return nil, err
	}

	return activations[len(activations)-1], nil
}

// Predict returns the most probable class for x.
func (n *Network) Predict(x []float64) (int, error) {
	probs, err := n.Forward(x)
	if err != nil {
		return 0, err
	}

	return matrix.ArgMax(probs), nil
}

// forward returns per-layer activations and pre-activations. The last
// layer is softmaxed, hidden layers are ReLU.
func (n *Network) forward(x []float64) (activations, preacts [][]float64, err error) {
	activations = make([][]float64, len(n.sizes))
	preacts = make([][]float64, len(n.sizes)-1)
	activations[0] = x

	for l, w := range n.weights {
		z, err := w.MulVec(activations[l])
		if err != nil {
			return nil, nil, err
		}
		for i, b := range n.biases[l] {
			z[i] += b
		}
		preacts[l] = z

		if l == len(n.weights)-1 {
			activations[l+1] = softmax(z)
		} else {
			a := make([]float64, len(z))
			for i, v := range z {
				if v > 0 {
					a[i] = v
				}
			}
			activations[l+1] = a
		}
	}

	return activations, preacts, nil
}

// Train runs stochastic gradient descent over the samples for the
// configured number of epochs, shuffling each epoch.
// Returns ErrBadSample when samples and labels disagree or a label is
// out of range, ErrBadInput when a sample width is wrong.
func (n *Network) Train(samples [][]float64, labels []int) error {
	if len(samples) != len(labels) || len(samples) == 0 {
		return ErrBadSample
	}
	for i, label := range labels {
		if label < 0 || label >= n.OutputSize() {
			return fmt.Errorf("%w: label %d at index %d", ErrBadSample, label, i)
		}
		if len(samples[i]) != n.sizes[0] {
			return fmt.Errorf("%w: sample %d", ErrBadInput, i)
		}
	}

	order := make([]int, len(samples))
	for i := range order {
		order[i] = i
	}
	for epoch := 0; epoch < n.opts.Epochs; epoch++ {
		n.opts.Rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		for _, idx := range order {
			if err := n.step(samples[idx], labels[idx]); err != nil {
				return err
			}
		}
	}

	return nil
}

// step applies one backpropagation update for a single sample.
func (n *Network) step(x []float64, label int) error {
	activations, preacts, err := n.forward(x)
	if err != nil {
		return err
	}

	// Softmax with cross-entropy: output delta is probs − one-hot.
	out := activations[len(activations)-1]
	delta := make([]float64, len(out))
	copy(delta, out)
	delta[label] -= 1

	for l := len(n.weights) - 1; l >= 0; l-- {
		w := n.weights[l]
		prev := activations[l]

		var next []float64
		if l > 0 {
			next = make([]float64, w.Cols())
			for j := range next {
				var sum float64
				for i, d := range delta {
					sum += w.At(i, j) * d
				}
				if preacts[l-1][j] <= 0 {
					sum = 0
				}
				next[j] = sum
			}
		}

		for i, d := range delta {
			n.biases[l][i] -= n.opts.LearningRate * d
			for j, a := range prev {
				w.Set(i, j, w.At(i, j)-n.opts.LearningRate*d*a)
			}
		}
		delta = next
	}

	return nil
}

// softmax maps logits to a probability distribution, shifting by the
// maximum for numerical stability.
func softmax(z []float64) []float64 {
	max := z[0]
	for _, v := range z[1:] {
		if v > max {
			max = v
		}
	}
	out := make([]float64, len(z))
	var sum float64
	for i, v := range z {
		out[i] = math.Exp(v - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}

	return out
}
