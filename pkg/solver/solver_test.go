package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mazely/pkg/maze"
	"github.com/matzehuels/mazely/pkg/router"
)

func mustGrid(t *testing.T, rows, columns int, allowed maze.AllowFunc, r maze.Router) *maze.Grid {
	t.Helper()
	g, err := maze.New(rows, columns, allowed, r)
	require.NoError(t, err)
	return g
}

func TestSolveSideWinderFixture(t *testing.T) {
	g := mustGrid(t, 3, 3, maze.AllowAll, router.NewSideWinder(router.NewStep(1, 1)))
	d := Solve(g, 2, 0)

	assert.Equal(t, maze.Cell{Row: 2, Column: 0}, d.Start())

	far, _ := g.Cell(2, 2)
	assert.Equal(t, 6, d.Distance(far))
	assert.Equal(t, 6, d.Max())

	wantSizes := []int{1, 1, 1, 1, 2, 2, 1}
	for distance, size := range wantSizes {
		assert.Len(t, d.Cells(distance), size, "distance %d", distance)
	}
	assert.Empty(t, d.Cells(7))
}

func TestSolveStartIsZero(t *testing.T) {
	g := mustGrid(t, 4, 4, maze.AllowAll, router.NewBinaryTree(router.NewSource(2)))
	d := Solve(g, 1, 2)

	start := d.Start()
	assert.Equal(t, maze.Cell{Row: 1, Column: 2}, start)
	assert.Equal(t, 0, d.Distance(start))
	assert.Len(t, d.Cells(0), 1)
}

func TestSolveInvalidStartPanics(t *testing.T) {
	g := mustGrid(t, 2, 2, maze.AllowAll, nil)
	assert.Panics(t, func() { Solve(g, 5, 0) })

	masked := mustGrid(t, 2, 2, func(r, c int) bool { return r != 0 || c != 0 }, nil)
	assert.Panics(t, func() { Solve(masked, 0, 0) })
}

func TestSolveUnvisitedCellPanics(t *testing.T) {
	// No carving: nothing is reachable beyond the start.
	g := mustGrid(t, 2, 2, maze.AllowAll, nil)
	d := Solve(g, 0, 0)

	assert.Len(t, d.All(), 1)
	other, _ := g.Cell(1, 1)
	assert.Panics(t, func() { d.Distance(other) })
}

func TestSolveSkipsUnreachableCells(t *testing.T) {
	g := mustGrid(t, 1, 4, maze.AllowAll, nil)
	left, _ := g.Cell(0, 0)
	g.Link(left, maze.East)

	d := Solve(g, 0, 0)
	assert.Len(t, d.All(), 2)

	second, _ := g.Cell(0, 1)
	assert.Equal(t, 1, d.Distance(second))
	_, reachable := d.All()[maze.Cell{Row: 0, Column: 3}]
	assert.False(t, reachable)
}

// referenceBFS is an independent shortest-hop implementation the solver is
// checked against.
func referenceBFS(g *maze.Grid, start maze.Cell) map[maze.Cell]int {
	dist := map[maze.Cell]int{start: 0}
	frontier := []maze.Cell{start}
	for len(frontier) > 0 {
		var next []maze.Cell
		for _, cell := range frontier {
			for _, dir := range maze.Directions() {
				if !g.Linked(cell, dir) {
					continue
				}
				n, ok := g.Neighbour(cell, dir)
				if !ok {
					continue
				}
				if _, seen := dist[n]; !seen {
					dist[n] = dist[cell] + 1
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
	return dist
}

func TestSolveMatchesReference(t *testing.T) {
	tests := []struct {
		name   string
		router maze.Router
	}{
		{"binarytree", router.NewBinaryTree(router.NewSource(31))},
		{"sidewinder", router.NewSideWinder(router.NewSource(32))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, 8, 11, maze.AllowAll, tt.router)
			start, _ := g.Cell(7, 0)
			want := referenceBFS(g, start)
			assert.Equal(t, want, Solve(g, 7, 0).All())
		})
	}
}

func TestSolveCorrectOnCyclicLinkGraph(t *testing.T) {
	// Carve a full lattice: every wall open, maximally cyclic. Closest
	// discovery must still win, so distances equal Manhattan distance.
	g := mustGrid(t, 4, 4, maze.AllowAll, nil)
	for _, cell := range g.Cells() {
		g.Link(cell, maze.East)
		g.Link(cell, maze.South)
	}

	d := Solve(g, 0, 0)
	for _, cell := range g.Cells() {
		assert.Equal(t, cell.Row+cell.Column, d.Distance(cell), "cell %s", cell)
	}
}
