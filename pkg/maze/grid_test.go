package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows, columns int, allowed AllowFunc) *Grid {
	t.Helper()
	g, err := New(rows, columns, allowed, nil)
	require.NoError(t, err)
	return g
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 3}, {3, -1}} {
		_, err := New(dims[0], dims[1], AllowAll, nil)
		require.ErrorIs(t, err, ErrInvalidDimensions, "%v", dims)
	}
}

func TestCellCount(t *testing.T) {
	g := mustGrid(t, 2, 3, AllowAll)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Columns())
	assert.Len(t, g.Cells(), 6)
}

func TestCellPositions(t *testing.T) {
	g := mustGrid(t, 2, 3, AllowAll)
	for row := 0; row < g.Rows(); row++ {
		for column := 0; column < g.Columns(); column++ {
			cell, ok := g.Cell(row, column)
			require.True(t, ok, "missing cell %d,%d", row, column)
			assert.Equal(t, row, cell.Row)
			assert.Equal(t, column, cell.Column)
		}
	}
}

func TestCellBounds(t *testing.T) {
	g := mustGrid(t, 3, 3, AllowAll)
	_, ok := g.Cell(0, 3)
	assert.False(t, ok)
	_, ok = g.Cell(4, 0)
	assert.False(t, ok)
	_, ok = g.Cell(-1, 0)
	assert.False(t, ok)
}

func TestMaskedCellCountMatchesPredicate(t *testing.T) {
	tests := []struct {
		name    string
		allowed AllowFunc
	}{
		{"all", AllowAll},
		{"alternate", func(r, c int) bool { return r%2 != c%2 }},
		{"corners cut", func(r, c int) bool { return !((r == 0 || r == 4) && (c == 0 || c == 4)) }},
		{"single column", func(r, c int) bool { return c == 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, 5, 5, tt.allowed)
			want := 0
			for r := 0; r < 5; r++ {
				for c := 0; c < 5; c++ {
					if tt.allowed(r, c) {
						want++
					}
				}
			}
			assert.Len(t, g.Cells(), want)
		})
	}
}

func TestMaskedCellsAbsent(t *testing.T) {
	alternate := func(r, c int) bool { return r%2 != c%2 }
	g := mustGrid(t, 2, 3, alternate)

	assert.Len(t, g.Cells(), 3)
	_, ok := g.Cell(0, 0)
	assert.False(t, ok)
	_, ok = g.Cell(0, 1)
	assert.True(t, ok)
}

func TestNeighboursAtCorners(t *testing.T) {
	g := mustGrid(t, 3, 3, AllowAll)

	tests := []struct {
		name     string
		row, col int
		present  []Compass
		absent   []Compass
	}{
		{"top left", 0, 0, []Compass{East, South}, []Compass{North, West}},
		{"top right", 0, 2, []Compass{South, West}, []Compass{North, East}},
		{"bottom left", 2, 0, []Compass{North, East}, []Compass{South, West}},
		{"bottom right", 2, 2, []Compass{North, West}, []Compass{East, South}},
		{"centre", 1, 1, []Compass{North, East, South, West}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, ok := g.Cell(tt.row, tt.col)
			require.True(t, ok)
			neighbours := g.Neighbours(cell)
			for _, dir := range tt.present {
				n, ok := neighbours[dir]
				require.True(t, ok, "expected %s neighbour", dir)
				wantRow, wantCol := dir.Neighbour(tt.row, tt.col)
				assert.Equal(t, Cell{Row: wantRow, Column: wantCol}, n)
			}
			for _, dir := range tt.absent {
				_, ok := neighbours[dir]
				assert.False(t, ok, "unexpected %s neighbour", dir)
			}
		})
	}
}

func TestNeighboursSkipMasked(t *testing.T) {
	// Mask the centre of a 3x3 grid; its orthogonal neighbours must not see it.
	g := mustGrid(t, 3, 3, func(r, c int) bool { return !(r == 1 && c == 1) })

	top, ok := g.Cell(0, 1)
	require.True(t, ok)
	_, ok = g.Neighbour(top, South)
	assert.False(t, ok)

	left, ok := g.Cell(1, 0)
	require.True(t, ok)
	_, ok = g.Neighbour(left, East)
	assert.False(t, ok)
}

func TestLinkSymmetry(t *testing.T) {
	g := mustGrid(t, 2, 2, AllowAll)

	cell01, _ := g.Cell(0, 1)
	cell11, _ := g.Cell(1, 1)

	linked, ok := g.Link(cell11, North)
	require.True(t, ok)
	assert.Equal(t, cell01, linked)

	assert.True(t, g.Linked(cell11, North))
	assert.True(t, g.Linked(cell01, South))
	assert.Equal(t, []Compass{North}, g.Links(cell11))
	assert.Equal(t, []Compass{South}, g.Links(cell01))
}

func TestLinkWithoutNeighbourIsNoOp(t *testing.T) {
	g := mustGrid(t, 2, 2, AllowAll)
	cell01, _ := g.Cell(0, 1)

	_, ok := g.Link(cell01, North)
	assert.False(t, ok)
	assert.Empty(t, g.Links(cell01))
}

func TestUnlinkRestoresBothEndpoints(t *testing.T) {
	g := mustGrid(t, 2, 2, AllowAll)
	cell01, _ := g.Cell(0, 1)
	cell11, _ := g.Cell(1, 1)

	linked, ok := g.Link(cell11, North)
	require.True(t, ok)
	require.Equal(t, cell01, linked)

	unlinked, ok := g.Unlink(cell01, South)
	require.True(t, ok)
	assert.Equal(t, cell11, unlinked)

	assert.Empty(t, g.Links(cell01))
	assert.Empty(t, g.Links(cell11))
}

func TestApplyDistances(t *testing.T) {
	g := mustGrid(t, 2, 2, AllowAll)
	cell00, _ := g.Cell(0, 0)
	cell01, _ := g.Cell(0, 1)
	cell11, _ := g.Cell(1, 1)

	_, ok := g.MaxDistance()
	require.False(t, ok)

	g.ApplyDistances(map[Cell]int{cell00: 0, cell01: 1, cell11: 2})

	d, ok := g.Distance(cell01)
	require.True(t, ok)
	assert.Equal(t, 1, d)

	max, ok := g.MaxDistance()
	require.True(t, ok)
	assert.Equal(t, 2, max)

	// Cells absent from the result keep no distance.
	cell10, _ := g.Cell(1, 0)
	_, ok = g.Distance(cell10)
	assert.False(t, ok)

	// Replaying a solve overwrites.
	g.ApplyDistances(map[Cell]int{cell11: 5})
	d, _ = g.Distance(cell11)
	assert.Equal(t, 5, d)
	max, _ = g.MaxDistance()
	assert.Equal(t, 5, max)
}

func TestAttributesForUnknownCellPanics(t *testing.T) {
	g := mustGrid(t, 2, 2, func(r, c int) bool { return r != 0 || c != 0 })

	assert.Panics(t, func() { g.Links(Cell{Row: 0, Column: 0}) })
	assert.Panics(t, func() { g.Links(Cell{Row: 9, Column: 9}) })
}
