package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol-text/utils"
)

var rawGridPattern = regexp.MustCompile(`^\[\[[01](, [01])*\](, \[[01](, [01])*\])*\]$`)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

// assertOutputShape checks the raw line followed by labeled generations
func assertOutputShape(t *testing.T, out string, rows, cols, generations int) {
	t.Helper()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1+(generations+1)*(rows+1))
	assert.Regexp(t, rawGridPattern, lines[0])

	for gen := 0; gen <= generations; gen++ {
		start := 1 + gen*(rows+1)
		assert.Equal(t, fmt.Sprintf("Generation %d", gen), lines[start])
		for _, row := range lines[start+1 : start+1+rows] {
			assert.Len(t, row, cols)
			assert.Empty(t, strings.Trim(row, "* "))
		}
	}
}

func TestRun_BuiltInDefaults(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), &stdout, &stderr, ""))

	assertOutputShape(t, stdout.String(), 10, 10, 1)
	assert.Empty(t, stderr.String(), "default log level must keep stderr quiet")
}

func TestRun_UnusableConfigFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"malformed json":     `not json`,
		"fails validation":   `{"rows": 0, "generations": 3}`,
		"unknown keys":       `{"width": 60, "height": 30, "frame_rate": "150ms"}`,
		"invalid log format": `{"rows": 4, "log_format": "xml"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.NoError(t, run(context.Background(), &stdout, &stderr, writeConfig(t, body)))

			assertOutputShape(t, stdout.String(), 10, 10, 1)
			assert.Contains(t, stderr.String(), "Using default configuration")
		})
	}

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), &stdout, &stderr, filepath.Join(t.TempDir(), "missing.json")))
	assertOutputShape(t, stdout.String(), 10, 10, 1)
	assert.Contains(t, stderr.String(), "Using default configuration")
}

func TestRun_SeededIsDeterministic(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"rows": 6, "cols": 8, "generations": 4, "seed": 2024}`)

	var first, second bytes.Buffer
	require.NoError(t, run(context.Background(), &first, &bytes.Buffer{}, path))
	require.NoError(t, run(context.Background(), &second, &bytes.Buffer{}, path))

	assert.Equal(t, first.String(), second.String())
	assertOutputShape(t, first.String(), 6, 8, 4)
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	sequential := writeConfig(t, `{"rows": 12, "cols": 9, "generations": 5, "seed": 77}`)
	parallel := writeConfig(t, `{"rows": 12, "cols": 9, "generations": 5, "seed": 77, "use_parallel": true}`)

	var want, got bytes.Buffer
	require.NoError(t, run(context.Background(), &want, &bytes.Buffer{}, sequential))
	require.NoError(t, run(context.Background(), &got, &bytes.Buffer{}, parallel))
	assert.Equal(t, want.String(), got.String())
}

func TestRun_DebugLogsGenerations(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"rows": 3, "cols": 3, "generations": 2, "seed": 5, "log_level": "debug"}`)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), &stdout, &stderr, path))

	assert.Equal(t, 3, strings.Count(stderr.String(), "Generation computed"))
	assert.Contains(t, stderr.String(), "Simulation finished")
	assert.NotContains(t, stdout.String(), "Generation computed")
}

func TestLoadConfig_ReportsWhyDefaultsWereUsed(t *testing.T) {
	t.Parallel()

	config, err := loadConfig(writeConfig(t, `{"rows": -1}`))
	assert.True(t, errors.Is(err, utils.ErrInvalidConfig))
	assert.Equal(t, utils.DefaultConfig(), config)

	config, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultConfig(), config)
}

func TestRun_ZeroGenerations(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	path := writeConfig(t, `{"rows": 2, "cols": 3, "generations": 0, "seed": 1}`)
	require.NoError(t, run(context.Background(), &stdout, &bytes.Buffer{}, path))
	assertOutputShape(t, stdout.String(), 2, 3, 0)
}
