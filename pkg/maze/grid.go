package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned by [New] when rows or columns is not a
// positive number.
var ErrInvalidDimensions = errors.New("rows and columns must be positive")

// AllowFunc decides whether the position (row, column) is part of the maze.
// It must be pure; it is invoked exactly once per grid position during
// construction.
type AllowFunc func(row, column int) bool

// AllowAll is the masking predicate that keeps every position.
func AllowAll(row, column int) bool { return true }

// Router is the carving policy invoked once per grid construction. Carve
// receives the grid and its raw row-major cell slice (nil entries are masked
// slots) and mutates link state in place. See the router package for the
// concrete policies.
type Router interface {
	Carve(g *Grid, cells []*Cell)
}

// Grid is a rectangular maze: a row-major array of optional cells, dense
// per-cell attribute slots, and the link overlay the router carves into it.
//
// The attribute slot for a cell lives at index row*columns+column, so all
// hot-path lookups are array indexing rather than hashing.
type Grid struct {
	rows    int
	columns int
	cells   []*Cell       // row-major; nil marks a masked slot
	attrs   []*attributes // parallel to cells; nil for masked slots
	ordered []Cell        // unmasked cells in row-major insertion order

	maxDistance int
	hasMax      bool
}

// New builds a grid of rows×columns cells, allocating a cell for every
// position the allowed predicate keeps and leaving the rest masked. Neighbour
// maps are computed eagerly and never include masked or out-of-bounds
// positions. The router is then invoked once to carve the link graph; a nil
// router leaves every wall intact.
func New(rows, columns int, allowed AllowFunc, r Router) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, columns)
	}

	g := &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]*Cell, rows*columns),
		attrs:   make([]*attributes, rows*columns),
	}

	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			if !allowed(row, column) {
				continue
			}
			idx := row*columns + column
			cell := Cell{Row: row, Column: column}
			g.cells[idx] = &cell
			g.ordered = append(g.ordered, cell)
		}
	}

	for _, cell := range g.ordered {
		a := &attributes{neighbours: make(map[Compass]Cell, 4)}
		for _, dir := range Directions() {
			row, column, ok := dir.CheckedNeighbour(rows, columns, cell.Row, cell.Column)
			if !ok {
				continue
			}
			if n := g.cells[row*columns+column]; n != nil {
				a.neighbours[dir] = *n
			}
		}
		g.attrs[cell.Row*columns+cell.Column] = a
	}

	if r != nil {
		r.Carve(g, g.cells)
	}
	return g, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the grid width.
func (g *Grid) Columns() int { return g.columns }

// Cells returns every unmasked cell in row-major order.
func (g *Grid) Cells() []Cell { return g.ordered }

// Cell returns the cell at (row, column), with ok=false when the position is
// out of bounds or masked.
func (g *Grid) Cell(row, column int) (Cell, bool) {
	idx, ok := Offset(g.rows, g.columns, row, column)
	if !ok || g.cells[idx] == nil {
		return Cell{}, false
	}
	return *g.cells[idx], true
}

// attributesOf returns the attribute slot for cell. Asking for a cell the
// grid does not own breaks a construction invariant, so it panics rather
// than failing softly.
func (g *Grid) attributesOf(cell Cell) *attributes {
	if idx, ok := Offset(g.rows, g.columns, cell.Row, cell.Column); ok {
		if a := g.attrs[idx]; a != nil {
			return a
		}
	}
	panic(fmt.Sprintf("maze: no attributes for cell %s", cell))
}

// Neighbours returns the precomputed adjacency map for cell: every direction
// with an in-bounds, unmasked target. The returned map is a copy; adjacency
// never changes after construction.
func (g *Grid) Neighbours(cell Cell) map[Compass]Cell {
	src := g.attributesOf(cell).neighbours
	out := make(map[Compass]Cell, len(src))
	for dir, n := range src {
		out[dir] = n
	}
	return out
}

// Neighbour returns the cell one step in direction dir from cell, with
// ok=false when no such neighbour exists.
func (g *Grid) Neighbour(cell Cell, dir Compass) (Cell, bool) {
	n, ok := g.attributesOf(cell).neighbours[dir]
	return n, ok
}

// Links returns the carved directions of cell in compass order. The set is
// empty until a router links the cell.
func (g *Grid) Links(cell Cell) []Compass {
	links := g.attributesOf(cell).links
	var out []Compass
	for _, dir := range Directions() {
		if links.has(dir) {
			out = append(out, dir)
		}
	}
	return out
}

// Linked reports whether cell has a carved passage in direction dir.
func (g *Grid) Linked(cell Cell, dir Compass) bool {
	return g.attributesOf(cell).links.has(dir)
}

// Link opens the passage from cell in direction dir, recording dir on the
// cell and the reverse direction on the neighbour so the two sides can never
// drift apart. When cell has no neighbour in that direction the call is a
// no-op and ok is false; probing absent directions is expected behaviour for
// carving policies.
func (g *Grid) Link(cell Cell, dir Compass) (Cell, bool) {
	a := g.attributesOf(cell)
	n, ok := a.neighbours[dir]
	if !ok {
		return Cell{}, false
	}
	a.links.add(dir)
	g.attributesOf(n).links.add(dir.Reverse())
	return n, true
}

// Unlink removes the passage from cell in direction dir from both endpoints,
// with the same no-op contract as [Grid.Link].
func (g *Grid) Unlink(cell Cell, dir Compass) (Cell, bool) {
	a := g.attributesOf(cell)
	n, ok := a.neighbours[dir]
	if !ok {
		return Cell{}, false
	}
	a.links.remove(dir)
	g.attributesOf(n).links.remove(dir.Reverse())
	return n, true
}

// ApplyDistances copies every (cell, value) pair of a solver result into the
// grid and tracks the running maximum for render colour scaling. Cells absent
// from the result keep no distance. Replaying a solve overwrites previous
// values.
func (g *Grid) ApplyDistances(all map[Cell]int) {
	for cell, distance := range all {
		a := g.attributesOf(cell)
		a.distance = distance
		a.hasDistance = true
		if !g.hasMax || distance > g.maxDistance {
			g.maxDistance = distance
			g.hasMax = true
		}
	}
}

// Distance returns the applied distance of cell, with ok=false when no
// solver result has been applied to it.
func (g *Grid) Distance(cell Cell) (int, bool) {
	a := g.attributesOf(cell)
	return a.distance, a.hasDistance
}

// MaxDistance returns the largest applied distance, with ok=false before any
// solve has been applied.
func (g *Grid) MaxDistance() (int, bool) {
	return g.maxDistance, g.hasMax
}
