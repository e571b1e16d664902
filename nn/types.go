package nn

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for network construction and training.
var (
	// ErrBadLayout indicates a non-positive layer size.
	ErrBadLayout = errors.New("nn: layer sizes must be positive")

	// ErrBadInput indicates an input vector whose length does not match
	// the input layer.
	ErrBadInput = errors.New("nn: input length mismatch")

	// ErrBadSample indicates mismatched samples and labels, or a label
	// outside the output range.
	ErrBadSample = errors.New("nn: invalid training sample")

	// ErrOptionViolation indicates a With... option received an
	// invalid value.
	ErrOptionViolation = errors.New("nn: option violation")
)

// Options configures training. Construct with DefaultOptions and
// adjust via With... helpers.
type Options struct {
	// LearningRate scales each gradient step.
	LearningRate float64
	// Epochs is the number of passes over the training set.
	Epochs int
	// Rng drives weight initialization and epoch shuffling.
	Rng *rand.Rand

	err error
}

// DefaultOptions returns the training defaults: learning rate 0.01,
// 10 epochs, time-seeded randomness.
func DefaultOptions() Options {
	return Options{LearningRate: 0.01, Epochs: 10}
}

// Option mutates Options.
type Option func(*Options)

// WithLearningRate sets the gradient step size. Non-positive rates
// record ErrOptionViolation.
func WithLearningRate(rate float64) Option {
	return func(o *Options) {
		if rate <= 0 {
			o.err = fmt.Errorf("%w: learning rate %v", ErrOptionViolation, rate)

			return
		}
		o.LearningRate = rate
	}
}

// WithEpochs sets the number of training passes. Non-positive counts
// record ErrOptionViolation.
func WithEpochs(epochs int) Option {
	return func(o *Options) {
		if epochs <= 0 {
			o.err = fmt.Errorf("%w: epochs %d", ErrOptionViolation, epochs)

			return
		}
		o.Epochs = epochs
	}
}

// WithRand sets the random source for deterministic runs. A nil rng
// records ErrOptionViolation.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			o.err = fmt.Errorf("%w: nil rng", ErrOptionViolation)

			return
		}
		o.Rng = rng
	}
}
