package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mazely/pkg/maze"
)

func pixel(t *testing.T, img interface {
	At(x, y int) color.Color
}, x, y int) color.RGBA {
	t.Helper()
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestImageGeometryAndPalette(t *testing.T) {
	corners := func(r, c int) bool { return !((r == 0 || r == 4) && (c == 0 || c == 4)) }
	g := mustGrid(t, 5, 5, corners)
	centre, _ := g.Cell(2, 2)
	for _, dir := range maze.Directions() {
		_, ok := g.Link(centre, dir)
		require.True(t, ok)
	}

	img, err := Image(g, nil)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 70, bounds.Dx())
	assert.Equal(t, 70, bounds.Dy())

	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, pixel(t, img, 5, 5), "border is grey")
	assert.Equal(t, color.RGBA{A: 255}, pixel(t, img, 15, 15), "masked cell is black")
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, pixel(t, img, 25, 25), "cell interior is white")

	// The East wall of the centre cell is erased: the pixel between cell
	// (2,2) and (2,3) interiors takes the cell fill.
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, pixel(t, img, 39, 35), "erased east wall")
	// The un-linked wall between (1,1) and (1,2) stays black.
	assert.Equal(t, color.RGBA{A: 255}, pixel(t, img, 29, 25), "intact wall")
}

func TestImageDistanceGradient(t *testing.T) {
	g := mustGrid(t, 1, 2, maze.AllowAll)
	near, _ := g.Cell(0, 0)
	far, _ := g.Cell(0, 1)
	g.Link(near, maze.East)
	g.ApplyDistances(map[maze.Cell]int{near: 0, far: 1})

	img, err := Image(g, nil)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, pixel(t, img, 15, 15), "distance 0 is white")
	assert.Equal(t, color.RGBA{B: 255, A: 255}, pixel(t, img, 25, 15), "max distance is blue")
}

func TestImageRejectsTinyCells(t *testing.T) {
	g := mustGrid(t, 2, 2, maze.AllowAll)
	_, err := Image(g, &ImageOptions{CellSize: 4})
	assert.Error(t, err)
}

func TestWritePNGRoundTrip(t *testing.T) {
	g := mustGrid(t, 3, 3, maze.AllowAll)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, g, &ImageOptions{CellSize: 12}))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 12*5, decoded.Bounds().Dx())
	assert.Equal(t, 12*5, decoded.Bounds().Dy())
}
