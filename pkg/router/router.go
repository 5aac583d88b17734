// Package router provides the carving policies that turn a freshly built
// grid into a maze.
//
// A policy implements the maze.Router interface: Carve receives the grid and
// its raw row-major cell slice and must visit every unmasked cell at least
// once. Masked-slot skipping is shared driver infrastructure ([EachCell],
// [EachRow]), not policy code, so every policy sees only real cells.
//
// Two concrete policies are provided. [BinaryTree] links each cell to a
// random pick of its North/East neighbours, biasing corridors along those
// axes with one fully open border row and column. [SideWinder] accumulates
// horizontal runs per row and commits one random ceiling link per run,
// producing one fully open corridor along the top row.
//
// Every probabilistic choice draws from an injected [Source], so a
// deterministic source reproduces byte-identical mazes. [NewSource] seeds a
// PCG generator for production use; [Step] is a fixed arithmetic series for
// regression fixtures.
package router

import (
	"math/rand/v2"

	"github.com/matzehuels/mazely/pkg/maze"
)

// Source is the minimal randomness capability a policy needs: a uniform
// integer in [0, n). *rand.Rand from math/rand/v2 satisfies it, as does any
// fixed deterministic sequence.
type Source interface {
	IntN(n int) int
}

// NewSource returns a seeded PCG-backed Source. The same seed always yields
// the same maze for the same policy and grid.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Step is a deterministic Source producing the arithmetic series start,
// start+increment, start+2*increment, ... reduced modulo the requested bound.
// It exists so tests and documentation can pin down exact maze fixtures.
type Step struct {
	next      int
	increment int
}

// NewStep returns a Step series beginning at start.
func NewStep(start, increment int) *Step {
	return &Step{next: start, increment: increment}
}

// IntN returns the next series value modulo n.
func (s *Step) IntN(n int) int {
	v := s.next % n
	s.next += s.increment
	return v
}

// NoOp is a Router that carves nothing. Grids built with it keep every wall,
// which is what structural tests want.
type NoOp struct{}

// Carve implements maze.Router and does nothing.
func (NoOp) Carve(*maze.Grid, []*maze.Cell) {}

// EachCell invokes visit for every unmasked cell in row-major order. cells is
// the raw slice handed to Carve; nil entries are masked slots and skipped.
func EachCell(cells []*maze.Cell, visit func(maze.Cell)) {
	for _, c := range cells {
		if c != nil {
			visit(*c)
		}
	}
}

// EachRow invokes visit once per grid row with the row's unmasked cells in
// column order, giving run-based policies a "current row" context. Rows whose
// cells are all masked still produce a visit with an empty slice.
func EachRow(g *maze.Grid, cells []*maze.Cell, visit func(row int, cells []maze.Cell)) {
	columns := g.Columns()
	row := make([]maze.Cell, 0, columns)
	for r := 0; r < g.Rows(); r++ {
		row = row[:0]
		for _, c := range cells[r*columns : (r+1)*columns] {
			if c != nil {
				row = append(row, *c)
			}
		}
		visit(r, row)
	}
}
