package utils

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the simulation
type Config struct {
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	Generations int    `json:"generations"`
	Seed        int64  `json:"seed"` // 0 seeds from the clock
	UseParallel bool   `json:"use_parallel"`
	LogLevel    string `json:"log_level"`
	LogFormat   string `json:"log_format"`
}

// DefaultConfig returns a 10x10 grid advanced one generation past generation 0
func DefaultConfig() Config {
	return Config{
		Rows:        10,
		Cols:        10,
		Generations: 1,
		Seed:        0,
		UseParallel: false,
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// LoadConfig loads configuration from JSON file, starting from the defaults.
// Keys that do not belong to Config are rejected.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.Generations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] generations must not be negative, got %d", c.Generations)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	if err := checkLogFormat(c.LogFormat); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	return nil
}
