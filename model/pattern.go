package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-text/rules"
)

var ErrMalformedPattern = errors.New("malformed grid pattern")

// ParseGrid builds a grid from rendered lines: '*' is alive, ' ' is dead.
// All lines must have the same non-zero length.
func ParseGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrMalformedPattern, "[ParseGrid] no rows")
	}

	g, err := NewGrid(len(lines), len(lines[0]))
	if err != nil {
		return nil, errors.Wrap(err, "[ParseGrid] failed to allocate grid")
	}

	for row, line := range lines {
		if len(line) != g.cols {
			return nil, errors.Wrapf(ErrMalformedPattern, "[ParseGrid] row %d has length %d, want %d", row, len(line), g.cols)
		}
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case gridPosAlive:
				g.cells[row][col] = rules.Alive
			case gridPosDead:
				g.cells[row][col] = rules.Dead
			default:
				return nil, errors.Wrapf(ErrMalformedPattern, "[ParseGrid] unexpected %q at (%d, %d)", line[col], row, col)
			}
		}
	}

	return g, nil
}
