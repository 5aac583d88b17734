// Package render turns a carved maze into its visual representations: ASCII
// text art, a PNG raster image, and a Graphviz node-link diagram.
//
// All three renderers read only public Grid state (cell presence, link
// state, applied distances) and must reproduce the link set exactly:
// a wall segment or divider glyph disappears precisely where a link exists.
// That correspondence is the correctness bridge between the abstract graph
// and what the user sees, and the fixture tests pin it down byte for byte.
//
// [Text] emits fixed-width cells, three glyphs wide, with '+' corners,
// '-'/'|' dividers, a solid fill for masked slots, and the applied distance
// as a base-36 digit when present.
//
// [Image] draws a fixed-size-per-cell raster: grey background, black
// outline, one interior rectangle per unmasked cell (white, or blended
// white→blue by distance over max distance), with East/South wall segments
// erased where links exist. [WritePNG] encodes it losslessly.
//
// [DOT] emits the carved link graph in Graphviz format with nodes pinned to
// their grid positions; [SVG] renders that through Graphviz.
package render
