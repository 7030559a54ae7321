package rules

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3.
Every other neighbor count leaves the cell dead.
*/
func NextState(current Cell, neighbors int) Cell {
	if ApplyConwayRules(neighbors, current.IsAlive()) {
		return Alive
	}
	return Dead
}

// ApplyConwayRules is the boolean form of NextState: (alive && neighbors == 2) || neighbors == 3
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
