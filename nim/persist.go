package nim

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// savedModel is the on-disk JSON shape: flattened "piles|pile,count"
// keys to Q-values.
type savedModel struct {
	Config Config             `json:"config"`
	Q      map[string]float64 `json:"q"`
}

// Save writes the learned Q-table to path as JSON.
func (ai *AI) Save(path string) error {
	m := savedModel{Config: ai.cfg, Q: make(map[string]float64)}
	for state, row := range ai.q {
		for a, v := range row {
			m.Q[fmt.Sprintf("%s|%d,%d", state, a.Pile, a.Count)] = v
		}
	}
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("nim: encode model: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("nim: write model: %w", err)
	}

	return nil
}

// LoadAI restores an agent saved with Save. A nil-safe rng default is
// applied as in NewAI.
func LoadAI(path string) (*AI, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nim: read model: %w", err)
	}
	var m savedModel
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("nim: decode model: %w", err)
	}

	ai, err := NewAI(m.Config, nil)
	if err != nil {
		return nil, err
	}
	for key, v := range m.Q {
		state, action, err := parseKey(key)
		if err != nil {
			return nil, err
		}
		ai.setQ(state, action, v)
	}

	return ai, nil
}

// parseKey splits a flattened "piles|pile,count" model key.
func parseKey(key string) (string, Action, error) {
	state, actionPart, ok := strings.Cut(key, "|")
	if !ok {
		return "", Action{}, fmt.Errorf("nim: malformed model key %q", key)
	}
	pileStr, countStr, ok := strings.Cut(actionPart, ",")
	if !ok {
		return "", Action{}, fmt.Errorf("nim: malformed model key %q", key)
	}
	pile, err := strconv.Atoi(pileStr)
	if err != nil {
		return "", Action{}, fmt.Errorf("nim: malformed model key %q", key)
	}
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return "", Action{}, fmt.Errorf("nim: malformed model key %q", key)
	}

	return state, Action{Pile: pile, Count: count}, nil
}
