package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, ""); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run prints the raw initial grid, then each generation from 0 to config.Generations.
// An empty configPath runs the built-in 10x10, one-generation simulation.
// Simulation output goes to stdout, logs to stderr.
func run(ctx context.Context, stdout, stderr io.Writer, configPath string) error {
	config, loadErr := loadConfig(configPath)

	logger, err := newLogger(config, stderr)
	if err != nil {
		return err
	}
	if loadErr != nil {
		logger.Warn("Using default configuration", "path", configPath, "error", loadErr)
	}

	grid, pool, renderer, stats, err := initializeGame(config, newRandomSource(config.Seed))
	if err != nil {
		return err
	}
	stats.Update(0, grid.CountLivingCells(), 0, 0)
	logGeneration(logger, stats)

	if _, err = fmt.Fprintln(stdout, grid.Raw()); err != nil {
		return err
	}

	for generation := 0; ; generation++ {
		if err = displayGeneration(stdout, renderer, generation, grid); err != nil {
			return err
		}
		if generation >= config.Generations {
			break
		}

		next, err := grid.NextGeneration(ctx, config, pool)
		if err != nil {
			return err
		}

		births, deaths, err := grid.Transitions(next)
		if err != nil {
			return err
		}
		stats.Update(generation+1, next.CountLivingCells(), births, deaths)
		logGeneration(logger, stats)

		// The superseded generation has no readers left
		pool.Release(grid)
		grid = next
	}

	logger.Info("Simulation finished",
		"generations", stats.Generation,
		"population", stats.Population,
		"avg_population", stats.AveragePopulation,
		"total_births", stats.TotalBirths,
		"total_deaths", stats.TotalDeaths,
	)
	return nil
}
