package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-text/model"
	"github.com/sheikhrachel/go-gol-text/utils"
)

// loadConfig returns the defaults for an empty path. A file that cannot be
// read, decoded or validated also yields the defaults, along with the reason.
func loadConfig(path string) (utils.Config, error) {
	if path == "" {
		return utils.DefaultConfig(), nil
	}

	config, err := utils.LoadConfig(path)
	if err != nil {
		return utils.DefaultConfig(), err
	}
	if err = config.Validate(); err != nil {
		return utils.DefaultConfig(), errors.Wrapf(err, "[loadConfig] rejected configuration from: %+v", path)
	}
	return config, nil
}

func newLogger(config utils.Config, w io.Writer) (*slog.Logger, error) {
	return utils.NewLogger(config.LogLevel, config.LogFormat, w)
}

// newRandomSource seeds from the clock when seed is 0
func newRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, src model.RandomSource) (
	*model.Grid,
	*model.GridPool,
	*model.TextRenderer,
	*utils.Stats,
	error,
) {
	pool, err := model.NewGridPool(config.Rows, config.Cols)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create grid pool")
	}

	grid, err := model.NewRandomGrid(config.Rows, config.Cols, src)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create initial grid")
	}

	return grid, pool, &model.TextRenderer{}, utils.NewStats(), nil
}

// displayGeneration writes the generation label followed by the rendered grid
func displayGeneration(w io.Writer, renderer *model.TextRenderer, generation int, grid *model.Grid) error {
	if _, err := fmt.Fprintf(w, "Generation %d\n", generation); err != nil {
		return errors.Wrap(err, "[displayGeneration] failed to write label")
	}
	return renderer.Display(w, grid)
}

func logGeneration(logger *slog.Logger, stats *utils.Stats) {
	logger.Debug("Generation computed",
		"generation", stats.Generation,
		"population", stats.Population,
		"births", stats.Births,
		"deaths", stats.Deaths,
	)
}
