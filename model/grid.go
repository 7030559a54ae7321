package model

import (
	"context"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-text/rules"
	"github.com/sheikhrachel/go-gol-text/utils"
)

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrOutOfBounds       = errors.New("cell position out of bounds")
	ErrNilRandomSource   = errors.New("random source is nil")
	ErrSizeMismatch      = errors.New("grid dimensions differ")
)

// RandomSource is satisfied by *math/rand.Rand
type RandomSource interface {
	Intn(n int) int
}

// Grid is a fixed-size, row-major board of cells
type Grid struct {
	rows  int
	cols  int
	cells [][]rules.Cell
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows: %d, cols: %d", rows, cols)
	}
	return newGrid(rows, cols), nil
}

func newGrid(rows, cols int) *Grid {
	cells := make([][]rules.Cell, rows)
	for i := range cells {
		cells[i] = make([]rules.Cell, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// NewRandomGrid creates a grid where every cell is independently alive with probability 1/2
func NewRandomGrid(rows, cols int, src RandomSource) (*Grid, error) {
	if src == nil {
		return nil, errors.Wrap(ErrNilRandomSource, "[NewRandomGrid]")
	}
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRandomGrid] failed to allocate grid")
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.cells[row][col] = rules.Cell(src.Intn(2))
		}
	}
	return g, nil
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Clear marks every cell dead
func (g *Grid) Clear() {
	for row := range g.cells {
		clear(g.cells[row])
	}
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (rules.Cell, error) {
	if !g.inBounds(row, col) {
		return rules.Dead, errors.Wrapf(ErrOutOfBounds, "[Get] (%d, %d) in %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.cells[row][col], nil
}

// Set sets the state of a cell
func (g *Grid) Set(row, col int, cell rules.Cell) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d, %d) in %dx%d grid", row, col, g.rows, g.cols)
	}
	g.cells[row][col] = cell
	return nil
}

// CountLiveNeighbors counts the live cells among the up to 8 in-bounds positions around (row, col)
func (g *Grid) CountLiveNeighbors(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, errors.Wrapf(ErrOutOfBounds, "[CountLiveNeighbors] (%d, %d) in %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.countLiveNeighbors(row, col), nil
}

// countLiveNeighbors skips positions outside the grid rather than treating them as dead cells
func (g *Grid) countLiveNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c].IsAlive() {
				count++
			}
		}
	}

	return count
}

// NextCellState returns the state (row, col) takes in the next generation
func (g *Grid) NextCellState(row, col int) (rules.Cell, error) {
	if !g.inBounds(row, col) {
		return rules.Dead, errors.Wrapf(ErrOutOfBounds, "[NextCellState] (%d, %d) in %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.nextCellState(row, col), nil
}

func (g *Grid) nextCellState(row, col int) rules.Cell {
	return rules.NextState(g.cells[row][col], g.countLiveNeighbors(row, col))
}

// destination never aliases g, so every cell of one pass reads the same snapshot
func (g *Grid) destination(pool *GridPool) *Grid {
	if pool.fits(g) {
		return pool.acquire()
	}
	return newGrid(g.rows, g.cols)
}

// NextGenerationSequential computes the next generation on the calling goroutine.
// g is left untouched.
func (g *Grid) NextGenerationSequential(pool *GridPool) *Grid {
	next := g.destination(pool)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			next.cells[row][col] = g.nextCellState(row, col)
		}
	}
	return next
}

// NextGenerationParallel computes the next generation with one band of rows per worker.
// Workers only read g and only write their own rows of the result.
func (g *Grid) NextGenerationParallel(ctx context.Context, pool *GridPool) (*Grid, error) {
	next := g.destination(pool)
	if g.rows == 0 {
		return next, nil
	}

	var (
		eg, egCtx     = errgroup.WithContext(ctx)
		numWorkers    = min(runtime.NumCPU(), g.rows)
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				for col := 0; col < g.cols; col++ {
					next.cells[row][col] = g.nextCellState(row, col)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		pool.Release(next)
		return nil, errors.Wrap(err, "[NextGenerationParallel] generation aborted")
	}

	return next, nil
}

// NextGeneration calculates the next generation based on configuration
func (g *Grid) NextGeneration(ctx context.Context, config utils.Config, pool *GridPool) (*Grid, error) {
	if config.UseParallel {
		return g.NextGenerationParallel(ctx, pool)
	}
	return g.NextGenerationSequential(pool), nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row][col].IsAlive() {
				count++
			}
		}
	}
	return
}

// Transitions counts the cells born and the cells that died going from g to next
func (g *Grid) Transitions(next *Grid) (births, deaths int, err error) {
	if next == nil || g.rows != next.rows || g.cols != next.cols {
		return 0, 0, errors.Wrap(ErrSizeMismatch, "[Transitions]")
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			switch was, is := g.cells[row][col], next.cells[row][col]; {
			case !was.IsAlive() && is.IsAlive():
				births++
			case was.IsAlive() && !is.IsAlive():
				deaths++
			}
		}
	}
	return
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.rows, g.cols)
	for row := 0; row < g.rows; row++ {
		copy(c.cells[row], g.cells[row])
	}
	return c
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Raw returns the grid as nested bracketed lists of 0 and 1, e.g. [[0, 1], [1, 0]]
func (g *Grid) Raw() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for col := 0; col < g.cols; col++ {
			if col > 0 {
				sb.WriteString(", ")
			}
			if g.cells[row][col].IsAlive() {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
