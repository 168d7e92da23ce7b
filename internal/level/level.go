package level

import (
	"github.com/pkg/errors"
)

// Level is a rectangular grid of cells stored row-major.
type Level struct {
	Rows    int
	Columns int
	Data    []Cell
}

// Position is a cell coordinate inside a level.
type Position struct {
	Row    int
	Column int
}

// New builds a level from rows of cell characters. All rows must have the
// same length and contain only known cell characters.
func New(rows []string) (*Level, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("level is empty")
	}

	columns := len(rows[0])
	lvl := &Level{
		Rows:    len(rows),
		Columns: columns,
		Data:    make([]Cell, 0, len(rows)*columns),
	}
	for r, line := range rows {
		if len(line) != columns {
			return nil, errors.Errorf("row %d has %d cells, want %d", r, len(line), columns)
		}
		for c := 0; c < len(line); c++ {
			cell := Cell(line[c])
			if cell.Kind() == Unknown {
				return nil, errors.Errorf("unknown cell %q at row %d, column %d", line[c], r, c)
			}
			lvl.Data = append(lvl.Data, cell)
		}
	}
	return lvl, nil
}

// At returns the cell at the given row and column. Out-of-range coordinates
// read as a wall.
func (l *Level) At(row, column int) Cell {
	if !l.Contains(row, column) {
		return WallCell
	}
	return l.Data[row*l.Columns+column]
}

// Contains reports whether the coordinate lies inside the level.
func (l *Level) Contains(row, column int) bool {
	return row >= 0 && row < l.Rows && column >= 0 && column < l.Columns
}

// Find returns the first cell of the given kind in row-major order.
func (l *Level) Find(kind Kind) (Position, bool) {
	for i, cell := range l.Data {
		if cell.Kind() == kind {
			return Position{Row: i / l.Columns, Column: i % l.Columns}, true
		}
	}
	return Position{}, false
}

// LeverCount returns one more than the highest lever index used in the level.
func (l *Level) LeverCount() int {
	count := 0
	for _, cell := range l.Data {
		if idx := cell.LeverIndex(); idx+1 > count {
			count = idx + 1
		}
	}
	return count
}
