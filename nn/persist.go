package nn

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/matrix"
)

// savedNetwork is the on-disk JSON shape.
type savedNetwork struct {
	Sizes   []int         `json:"sizes"`
	Weights [][][]float64 `json:"weights"`
	Biases  [][]float64   `json:"biases"`
}

// Save writes the trained network to path as JSON.
func (n *Network) Save(path string) error {
	m := savedNetwork{Sizes: n.sizes, Biases: n.biases}
	for _, w := range n.weights {
		rows := make([][]float64, w.Rows())
		for i := range rows {
			row := make([]float64, w.Cols())
			for j := range row {
				row[j] = w.At(i, j)
			}
			rows[i] = row
		}
		m.Weights = append(m.Weights, rows)
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("nn: encode network: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("nn: write network: %w", err)
	}

	return nil
}

// Load restores a network saved with Save.
func Load(path string) (*Network, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nn: read network: %w", err)
	}
	var m savedNetwork
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("nn: decode network: %w", err)
	}
	if len(m.Sizes) < 2 || len(m.Weights) != len(m.Sizes)-1 || len(m.Biases) != len(m.Sizes)-1 {
		return nil, fmt.Errorf("nn: decode network: %w", ErrBadLayout)
	}

	cfg := DefaultOptions()
	cfg.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	n := &Network{
		sizes:   m.Sizes,
		weights: make([]*matrix.Dense, len(m.Weights)),
		biases:  m.Biases,
		opts:    cfg,
	}
	for l, rows := range m.Weights {
		w, err := matrix.NewDenseFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("nn: decode network: %w", err)
		}
		if w.Rows() != m.Sizes[l+1] || w.Cols() != m.Sizes[l] {
			return nil, fmt.Errorf("nn: decode network: %w", ErrBadLayout)
		}
		n.weights[l] = w
	}

	return n, nil
}
