package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mazely/pkg/maze"
)

// DefaultCellSize is the edge length in pixels of one cell in raster output.
const DefaultCellSize = 10

// minCellSize keeps the wall-segment geometry positive.
const minCellSize = 8

// Raster palette.
var (
	colorBackground = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorOutline    = color.RGBA{A: 255}
	colorNear       = colorful.Color{R: 1, G: 1, B: 1} // white, distance 0
	colorFar        = colorful.Color{R: 0, G: 0, B: 1} // blue, max distance
)

// ImageOptions configures raster rendering.
type ImageOptions struct {
	// CellSize is the pixel edge length per cell. Values below 8 leave no
	// room for wall segments and are rejected. Zero means DefaultCellSize.
	CellSize int
}

// Image draws the grid as a raster: a grey background framing a black
// outlined box, one interior rectangle per unmasked cell, and the East/South
// wall segment between two cells erased exactly where the corresponding link
// exists. When a cell has an applied distance its fill is interpolated
// linearly from white to blue by distance over max distance.
func Image(g *maze.Grid, opts *ImageOptions) (image.Image, error) {
	size := DefaultCellSize
	if opts != nil && opts.CellSize != 0 {
		size = opts.CellSize
	}
	if size < minCellSize {
		return nil, fmt.Errorf("cell size %d too small: minimum is %d", size, minCellSize)
	}

	dc := gg.NewContext(size*(g.Columns()+2), size*(g.Rows()+2))
	dc.SetColor(colorBackground)
	dc.Clear()

	// Maze body: black box the cells get cut out of.
	fillRect(dc, size-1, size-1, size*g.Columns()+1, size*g.Rows()+1, colorOutline)

	for _, cell := range g.Cells() {
		fill := cellFill(g, cell)
		x := size*(cell.Column+1) + 1
		y := size*(cell.Row+1) + 1
		fillRect(dc, x, y, size-3, size-3, fill)

		if g.Linked(cell, maze.East) {
			fillRect(dc, size*(cell.Column+2)-2, size*(cell.Row+1)+3, 3, size-7, fill)
		}
		if g.Linked(cell, maze.South) {
			fillRect(dc, size*(cell.Column+1)+3, size*(cell.Row+2)-2, size-7, 3, fill)
		}
	}
	return dc.Image(), nil
}

// WritePNG renders the grid with [Image] and encodes it as PNG.
func WritePNG(w io.Writer, g *maze.Grid, opts *ImageOptions) error {
	img, err := Image(g, opts)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// cellFill returns the interior colour for cell: plain white, or the
// white→blue gradient position when a distance is applied.
func cellFill(g *maze.Grid, cell maze.Cell) color.Color {
	distance, ok := g.Distance(cell)
	if !ok {
		return colorNear
	}
	max, ok := g.MaxDistance()
	if !ok {
		panic("render: distance applied without max distance")
	}
	if max == 0 {
		return colorNear
	}
	return colorNear.BlendRgb(colorFar, float64(distance)/float64(max))
}

func fillRect(dc *gg.Context, x, y, w, h int, c color.Color) {
	dc.SetColor(c)
	dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	dc.Fill()
}
