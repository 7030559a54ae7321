package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridPool recycles superseded generations of a single grid size.
// A released grid must have no readers left.
type GridPool struct {
	rows  int
	cols  int
	grids sync.Pool
}

// NewGridPool creates a pool for rows x cols grids
func NewGridPool(rows, cols int) (*GridPool, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGridPool] rows: %d, cols: %d", rows, cols)
	}
	return &GridPool{rows: rows, cols: cols}, nil
}

func (p *GridPool) fits(g *Grid) bool {
	return p != nil && g != nil && g.rows == p.rows && g.cols == p.cols
}

// acquire returns an all-dead grid, reusing a released one when available
func (p *GridPool) acquire() *Grid {
	if g, ok := p.grids.Get().(*Grid); ok {
		g.Clear()
		return g
	}
	return newGrid(p.rows, p.cols)
}

// Release hands a superseded generation back for reuse.
// Grids of another size, and a nil pool, are ignored.
func (p *GridPool) Release(g *Grid) {
	if !p.fits(g) {
		return
	}
	p.grids.Put(g)
}
