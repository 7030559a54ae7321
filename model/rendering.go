package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = '*'
	gridPosDead  = ' '
)

// Render returns one line per row, '*' for a live cell and ' ' for a dead one
func Render(g *Grid) []string {
	lines := make([]string, 0, g.rows)
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		sb.Reset()
		sb.Grow(g.cols)
		for col := 0; col < g.cols; col++ {
			if g.cells[row][col].IsAlive() {
				sb.WriteByte(gridPosAlive)
			} else {
				sb.WriteByte(gridPosDead)
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// TextRenderer writes rendered grids to a stream
type TextRenderer struct{}

// Display writes the rendered grid, one line per row
func (r *TextRenderer) Display(w io.Writer, g *Grid) error {
	for _, line := range Render(g) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "[Display] failed to write grid row")
		}
	}
	return nil
}
