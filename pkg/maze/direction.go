package maze

// Compass identifies one of the four unit-offset directions on a rectangular
// grid. The zero value is North.
type Compass uint8

// Compass directions in their fixed enumeration order.
const (
	North Compass = iota
	East
	South
	West
)

// compassNames indexes display names by Compass value.
var compassNames = [...]string{"north", "east", "south", "west"}

// Directions returns every compass direction in a fixed, stable order
// (North, East, South, West). Neighbour enumeration, rendering and tests all
// rely on this order being reproducible.
func Directions() [4]Compass {
	return [4]Compass{North, East, South, West}
}

// Reverse returns the opposite direction. It is an involution:
// d.Reverse().Reverse() == d for every d.
func (c Compass) Reverse() Compass {
	switch c {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Neighbour returns the coordinates one step in direction c from (row,
// column). The arithmetic is unchecked; callers must have validated that the
// move stays inside the grid, e.g. via [Compass.CheckedNeighbour].
func (c Compass) Neighbour(row, column int) (int, int) {
	switch c {
	case North:
		return row - 1, column
	case East:
		return row, column + 1
	case South:
		return row + 1, column
	default:
		return row, column - 1
	}
}

// CheckedNeighbour returns the coordinates one step in direction c from
// (row, column), with ok=false when the step would leave the rows×columns
// rectangle.
func (c Compass) CheckedNeighbour(rows, columns, row, column int) (int, int, bool) {
	switch {
	case c == North && row > 0,
		c == East && column < columns-1,
		c == South && row < rows-1,
		c == West && column > 0:
		r, cl := c.Neighbour(row, column)
		return r, cl, true
	}
	return 0, 0, false
}

// Offset converts (row, column) to a row-major linear index into a
// rows×columns array, with ok=false when the position is out of bounds.
func Offset(rows, columns, row, column int) (int, bool) {
	if row < 0 || row >= rows || column < 0 || column >= columns {
		return 0, false
	}
	return row*columns + column, true
}

// String returns the lowercase direction name.
func (c Compass) String() string {
	if int(c) < len(compassNames) {
		return compassNames[c]
	}
	return "unknown"
}

// dirSet is a set of compass directions packed into a bitmask. It backs the
// per-cell link state, keeping link queries free of map lookups.
type dirSet uint8

func (s dirSet) has(c Compass) bool { return s&(1<<c) != 0 }

func (s *dirSet) add(c Compass) { *s |= 1 << c }

func (s *dirSet) remove(c Compass) { *s &^= 1 << c }
