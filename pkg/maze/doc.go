// Package maze provides the core data model for rectangular mazes: a masked
// grid of cells, precomputed adjacency, and a mutable symmetric link overlay.
//
// # Overview
//
// A [Grid] is built once from dimensions and a masking predicate. Every
// position allowed by the predicate gets a [Cell] and a precomputed neighbour
// map; masked positions stay empty and never appear in adjacency. After
// construction only the link overlay changes, and only through [Grid.Link]
// and [Grid.Unlink], which keep both endpoints of a passage in sync.
//
// # Basic Usage
//
// Construct a grid with [New], passing a [Router] that carves the passages:
//
//	g, err := maze.New(5, 5, maze.AllowAll, router.NewBinaryTree(src))
//	if err != nil {
//	    return err
//	}
//	for _, c := range g.Cells() {
//	    // inspect g.Links(c), g.Neighbours(c), ...
//	}
//
// A correctly implemented router leaves the grid with a fully connected,
// cycle-free link graph; the grid itself does not verify this.
//
// # Masking
//
// The masking predicate is a plain func (row, column) bool. [AllowAll] keeps
// every position; [ParseMask] builds a predicate from a text stencil where
// 'X' marks excluded positions. Masking can produce irregular, holed grids;
// adjacency is always filtered through the mask, so carving policies never
// see a masked position.
//
// # Error Model
//
// Linking or unlinking a direction with no neighbour is a defined no-op
// (ok=false), because carving policies routinely probe directions that do not
// exist at edges or next to masked cells. Looking up attributes for a cell
// the grid does not own is a programming error and panics.
//
// # Concurrency
//
// Grid instances are not safe for concurrent use. Construction, carving and
// solving happen in strict sequence on a single goroutine.
package maze
