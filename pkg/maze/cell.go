package maze

import "fmt"

// Cell is a grid position. It is a pure value type: two cells are equal
// exactly when their coordinates are equal, and a Cell carries no identity
// beyond them.
type Cell struct {
	Row    int
	Column int
}

// String returns the cell coordinates as "row,column".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Column)
}

// attributes holds the per-cell state owned by a Grid: the neighbour map
// computed once at construction, the mutable link set, and the optional
// solved distance.
type attributes struct {
	neighbours  map[Compass]Cell
	links       dirSet
	distance    int
	hasDistance bool
}
