package nim

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig indicates training hyperparameters out of range.
var ErrBadConfig = errors.New("nim: invalid training config")

// Config holds the Q-learning hyperparameters.
type Config struct {
	// Alpha is the learning rate.
	Alpha float64 `yaml:"alpha"`
	// Epsilon is the exploration probability during training.
	Epsilon float64 `yaml:"epsilon"`
	// Games is the number of self-play training games.
	Games int `yaml:"games"`
}

// DefaultConfig returns the course hyperparameters.
func DefaultConfig() Config {
	return Config{Alpha: 0.5, Epsilon: 0.1, Games: 10000}
}

// LoadConfig reads a YAML config from path; absent keys keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("nim: read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("nim: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the hyperparameter ranges.
func (c Config) Validate() error {
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("%w: alpha %v", ErrBadConfig, c.Alpha)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("%w: epsilon %v", ErrBadConfig, c.Epsilon)
	}
	if c.Games < 0 {
		return fmt.Errorf("%w: games %d", ErrBadConfig, c.Games)
	}

	return nil
}
