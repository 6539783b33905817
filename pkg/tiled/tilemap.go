package tiled

import (
	"errors"
	"fmt"
)

// Map errors.
var (
	ErrInvalidColumns = errors.New("map columns must be positive")
	ErrRaggedMap      = errors.New("map length is not a multiple of its columns")
)

// Map is an immutable grid of cells stored row by row.
type Map struct {
	columns int
	cells   []Cell
}

// NewMap creates a map with the given row width. The cells are copied.
func NewMap(columns int, cells []Cell) (*Map, error) {
	if columns <= 0 {
		return nil, ErrInvalidColumns
	}
	if len(cells)%columns != 0 {
		return nil, fmt.Errorf("%w: %d cells, %d columns", ErrRaggedMap, len(cells), columns)
	}
	return &Map{
		columns: columns,
		cells:   append([]Cell(nil), cells...),
	}, nil
}

// Columns returns the row width.
func (m *Map) Columns() int { return m.columns }

// Rows returns the number of rows.
func (m *Map) Rows() int { return len(m.cells) / m.columns }

// Len returns the number of cells.
func (m *Map) Len() int { return len(m.cells) }

// At returns the cell at a linear index.
func (m *Map) At(index int) Cell { return m.cells[index] }

// Cell returns the cell at (col, row), or 0 when out of bounds.
func (m *Map) Cell(col, row int) Cell {
	if col < 0 || row < 0 || col >= m.columns || row >= m.Rows() {
		return 0
	}
	return m.cells[row*m.columns+col]
}

// Each calls fn for every non-empty cell in index order.
func (m *Map) Each(fn func(index int, c Cell)) {
	for i, c := range m.cells {
		if c.Empty() {
			continue
		}
		fn(i, c)
	}
}

// demoColumns is the row width of the demo map.
const demoColumns = 9

// demoCells shows every flip combination of sheet tiles 1 to 3, one tile per
// odd column, separated by empty rows.
var demoCells = []Cell{
	0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 0, 2684354561, 0, 3221225473, 0, 1610612737, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1073741825, 0, 536870913, 0, 2147483649, 0, 3758096385, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 2, 0, 2684354562, 0, 3221225474, 0, 1610612738, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1073741826, 0, 536870914, 0, 2147483650, 0, 3758096386, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 3, 0, 2684354563, 0, 3221225475, 0, 1610612739, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1073741827, 0, 536870915, 0, 2147483651, 0, 3758096387, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 536870913, 2684354561, 3, 2147483650, 2147483651, 1610612737, 3758096385, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// DemoMap returns the built-in 9x15 demo map.
func DemoMap() *Map {
	m, err := NewMap(demoColumns, demoCells)
	if err != nil {
		panic(err)
	}
	return m
}
