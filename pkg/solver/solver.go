// Package solver computes shortest-hop distances over a carved maze.
//
// Solve walks the link graph breadth-first from a start cell, so every
// discovered cell is recorded at its closest distance even when the link
// graph contains cycles. Only carved links are followed; cells the carving
// never connected to the start are simply absent from the result.
package solver

import (
	"fmt"

	"github.com/matzehuels/mazely/pkg/maze"
)

// Distances is the result of a solve: the hop count of every cell reachable
// from the start via carved links, plus an index from distance to the cells
// at exactly that distance.
type Distances struct {
	cells   map[maze.Cell]int
	byDepth map[int][]maze.Cell
	max     int
}

// newDistances builds the distance index from a cell→distance mapping.
func newDistances(cells map[maze.Cell]int) *Distances {
	d := &Distances{
		cells:   cells,
		byDepth: make(map[int][]maze.Cell),
	}
	for cell, distance := range cells {
		d.byDepth[distance] = append(d.byDepth[distance], cell)
		if distance > d.max {
			d.max = distance
		}
	}
	return d
}

// Start returns the cell at distance zero. A solve always produces exactly
// one, so its absence is a broken invariant and panics.
func (d *Distances) Start() maze.Cell {
	cells := d.byDepth[0]
	if len(cells) == 0 {
		panic("solver: no cell at distance zero")
	}
	return cells[0]
}

// Cells returns every cell at exactly the given distance, or an empty slice
// when none exists.
func (d *Distances) Cells(distance int) []maze.Cell {
	return d.byDepth[distance]
}

// Distance returns the stored hop count for cell. Asking for a cell the
// solve never visited is a programming error and panics; use [Distances.All]
// to test reachability.
func (d *Distances) Distance(cell maze.Cell) int {
	distance, ok := d.cells[cell]
	if !ok {
		panic(fmt.Sprintf("solver: no distance for cell %s", cell))
	}
	return distance
}

// All returns the full cell→distance mapping, in the shape
// maze.Grid.ApplyDistances consumes.
func (d *Distances) All() map[maze.Cell]int {
	return d.cells
}

// Max returns the largest distance in the result.
func (d *Distances) Max() int { return d.max }

// Solve computes the hop-count distance from (row, column) to every cell
// reachable through carved links, using an explicit-queue breadth-first
// expansion. Starting from a masked or out-of-range position is a fatal
// programming error and panics; callers validate coordinates first.
func Solve(g *maze.Grid, row, column int) *Distances {
	start, ok := g.Cell(row, column)
	if !ok {
		panic(fmt.Sprintf("solver: invalid starting cell %d,%d", row, column))
	}

	cells := map[maze.Cell]int{start: 0}
	queue := []maze.Cell{start}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		depth := cells[cell]

		for _, dir := range g.Links(cell) {
			next, ok := g.Neighbour(cell, dir)
			if !ok {
				// A link without a neighbour cannot be produced by
				// Grid.Link; treat it as corruption.
				panic(fmt.Sprintf("solver: link %s from %s has no neighbour", dir, cell))
			}
			if _, seen := cells[next]; !seen {
				cells[next] = depth + 1
				queue = append(queue, next)
			}
		}
	}
	return newDistances(cells)
}
