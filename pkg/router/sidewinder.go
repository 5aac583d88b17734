package router

import "github.com/matzehuels/mazely/pkg/maze"

// SideWinder carves row by row. Each row accumulates a "run" of horizontally
// linked cells; when the run closes, one member is picked uniformly and
// linked North, then the run restarts. A run closes when the cell has no East
// neighbour, or on a coin flip below the top row. The top row can never
// link North, so it always ends up as one fully open corridor, matching
// BinaryTree's open border.
type SideWinder struct {
	src Source
}

// NewSideWinder returns a SideWinder policy drawing from src.
func NewSideWinder(src Source) *SideWinder {
	return &SideWinder{src: src}
}

// Carve implements maze.Router. The run buffer is owned here and reset per
// row.
func (s *SideWinder) Carve(g *maze.Grid, cells []*maze.Cell) {
	run := make([]maze.Cell, 0, g.Columns())
	EachRow(g, cells, func(_ int, row []maze.Cell) {
		run = run[:0]
		for _, c := range row {
			run = append(run, c)
			if s.closes(g, c) {
				// Linking North is a no-op for the top row and under
				// masked regions; that is the defined behaviour.
				g.Link(run[s.src.IntN(len(run))], maze.North)
				run = run[:0]
			} else {
				g.Link(c, maze.East)
			}
		}
	})
}

// closes decides whether the current run ends at c. The East check must come
// first so the end of a row never consumes a random draw.
func (s *SideWinder) closes(g *maze.Grid, c maze.Cell) bool {
	if _, ok := g.Neighbour(c, maze.East); !ok {
		return true
	}
	return c.Row > 0 && s.src.IntN(2) == 0
}
