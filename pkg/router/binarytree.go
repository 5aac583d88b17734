package router

import "github.com/matzehuels/mazely/pkg/maze"

// BinaryTree carves by linking every cell towards North or East, chosen
// uniformly when both neighbours exist. The bias produces long corridors
// along those two axes, with the top row and the rightmost column each
// forming one fully open border corridor (they lack the competing
// neighbour).
type BinaryTree struct {
	src Source
}

// NewBinaryTree returns a BinaryTree policy drawing from src.
func NewBinaryTree(src Source) *BinaryTree {
	return &BinaryTree{src: src}
}

// Carve implements maze.Router.
func (b *BinaryTree) Carve(g *maze.Grid, cells []*maze.Cell) {
	EachCell(cells, func(c maze.Cell) {
		if dir, ok := b.direction(g, c); ok {
			g.Link(c, dir)
		}
	})
}

// direction picks the carving direction for c: the single present candidate,
// or a uniform draw when both North and East neighbours exist. ok is false
// when the cell has neither, which happens at the top-right corner and next
// to masked regions.
func (b *BinaryTree) direction(g *maze.Grid, c maze.Cell) (maze.Compass, bool) {
	candidates := make([]maze.Compass, 0, 2)
	for _, dir := range [...]maze.Compass{maze.North, maze.East} {
		if _, ok := g.Neighbour(c, dir); ok {
			candidates = append(candidates, dir)
		}
	}

	switch len(candidates) {
	case 0:
		return 0, false
	case 1:
		return candidates[0], true
	default:
		return candidates[b.src.IntN(len(candidates))], true
	}
}
