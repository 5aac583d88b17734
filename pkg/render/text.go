package render

import (
	"strings"

	"github.com/matzehuels/mazely/pkg/maze"
)

// Text art glyphs. Cell interiors are cellWidth glyphs wide; the distance
// digit, when present, sits in the centre position.
const (
	cellWidth = 3

	glyphCorner = '+'
	glyphHDiv   = '-'
	glyphVDiv   = '|'
	glyphCell   = ' '
	glyphLink   = ' '
	glyphMasked = '█'
)

// digits are the base-36 glyphs used for distance values.
const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// Text renders the grid as deterministic ASCII art. Every row contributes a
// body line whose vertical dividers vanish exactly where an East link exists,
// and a closing divider line whose dashes vanish exactly where a South link
// exists. Masked slots render as a solid block fill. An unlinked 2×2 grid
// renders as:
//
//	+---+---+
//	|   |   |
//	+---+---+
//	|   |   |
//	+---+---+
func Text(g *maze.Grid) string {
	var b strings.Builder

	writeBorder(&b, g.Columns())
	for row := 0; row < g.Rows(); row++ {
		writeBody(&b, g, row)
		writeDivider(&b, g, row)
	}
	return b.String()
}

// TextWithCursor renders like [Text] with glyph substituted into the centre
// of the given cell's interior. The interactive walkthrough uses it to mark
// the player position without re-deriving the text geometry.
func TextWithCursor(g *maze.Grid, cell maze.Cell, glyph rune) string {
	lines := strings.Split(Text(g), "\n")
	body := []rune(lines[1+2*cell.Row])
	body[cell.Column*(cellWidth+1)+1+cellWidth/2] = glyph
	lines[1+2*cell.Row] = string(body)
	return strings.Join(lines, "\n")
}

// writeBorder emits the unconditional top line of corners and dashes.
func writeBorder(b *strings.Builder, columns int) {
	b.WriteRune(glyphCorner)
	for c := 0; c < columns; c++ {
		for i := 0; i < cellWidth; i++ {
			b.WriteRune(glyphHDiv)
		}
		b.WriteRune(glyphCorner)
	}
	b.WriteRune('\n')
}

// writeBody emits one row of cell interiors and vertical dividers.
func writeBody(b *strings.Builder, g *maze.Grid, row int) {
	b.WriteRune(glyphVDiv)
	for column := 0; column < g.Columns(); column++ {
		cell, present := g.Cell(row, column)

		centre, pad := glyphCell, glyphCell
		if !present {
			centre, pad = glyphMasked, glyphMasked
		} else if d, ok := g.Distance(cell); ok && d < len(digits) {
			centre = rune(digits[d])
		}
		for i := 0; i < cellWidth; i++ {
			if i == cellWidth/2 {
				b.WriteRune(centre)
			} else {
				b.WriteRune(pad)
			}
		}

		if present && g.Linked(cell, maze.East) {
			b.WriteRune(glyphLink)
		} else {
			b.WriteRune(glyphVDiv)
		}
	}
	b.WriteRune('\n')
}

// writeDivider emits the line of corners and horizontal dividers below row.
func writeDivider(b *strings.Builder, g *maze.Grid, row int) {
	b.WriteRune(glyphCorner)
	for column := 0; column < g.Columns(); column++ {
		glyph := glyphHDiv
		if cell, present := g.Cell(row, column); present && g.Linked(cell, maze.South) {
			glyph = glyphLink
		}
		for i := 0; i < cellWidth; i++ {
			b.WriteRune(glyph)
		}
		b.WriteRune(glyphCorner)
	}
	b.WriteRune('\n')
}
