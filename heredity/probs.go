package heredity

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadProbs indicates a probability table whose entries do not
// describe probability distributions.
var ErrBadProbs = errors.New("heredity: invalid probability table")

// Probs parameterizes the Bayesian network.
type Probs struct {
	// Gene is the unconditional genotype distribution for a person
	// with no listed parents, indexed by copy count 0..2.
	Gene map[int]float64 `yaml:"gene"`

	// Trait maps copy count to the probability of exhibiting (true)
	// or not exhibiting (false) the trait.
	Trait map[int]map[bool]float64 `yaml:"trait"`

	// Mutation is the probability that a transmitted allele flips.
	Mutation float64 `yaml:"mutation"`
}

// DefaultProbs returns the course probability table.
func DefaultProbs() Probs {
	return Probs{
		Gene: map[int]float64{
			2: 0.01,
			1: 0.03,
			0: 0.96,
		},
		Trait: map[int]map[bool]float64{
			2: {true: 0.65, false: 0.35},
			1: {true: 0.56, false: 0.44},
			0: {true: 0.01, false: 0.99},
		},
		Mutation: 0.01,
	}
}

// LoadProbs reads a YAML probability table from path and validates it.
func LoadProbs(path string) (Probs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Probs{}, fmt.Errorf("heredity: read probs file: %w", err)
	}
	var p Probs
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Probs{}, fmt.Errorf("heredity: parse probs file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Probs{}, err
	}

	return p, nil
}

// Validate checks that every table entry is a probability and that the
// distributions sum to 1.
func (p Probs) Validate() error {
	var geneSum float64
	for g := 0; g <= 2; g++ {
		v, ok := p.Gene[g]
		if !ok || v < 0 || v > 1 {
			return fmt.Errorf("%w: gene[%d]", ErrBadProbs, g)
		}
		geneSum += v

		t, ok := p.Trait[g]
		if !ok {
			return fmt.Errorf("%w: trait[%d] missing", ErrBadProbs, g)
		}
		if s := t[true] + t[false]; math.Abs(s-1) > 1e-9 {
			return fmt.Errorf("%w: trait[%d] sums to %v", ErrBadProbs, g, s)
		}
	}
	if math.Abs(geneSum-1) > 1e-9 {
		return fmt.Errorf("%w: gene distribution sums to %v", ErrBadProbs, geneSum)
	}
	if p.Mutation < 0 || p.Mutation > 1 {
		return fmt.Errorf("%w: mutation %v", ErrBadProbs, p.Mutation)
	}

	return nil
}
