// Package render draws a laid-out plot onto a drawing surface.
//
// # Overview
//
// [Render] walks a fixed sequence of layers, each painted over the previous
// one:
//
//  1. background
//  2. minor grid, then major grid (when enabled by the theme)
//  3. axis border and tick marks
//  4. error bands
//  5. series line segments
//  6. series markers
//  7. tick labels
//  8. axis titles and the plot title
//  9. legend box and entries
//
// The renderer holds no state between calls. It reads geometry from a
// layout.Layout and colors and fonts from the plot's theme, and emits only
// surface primitives, so the same code produces PNG, SVG and on-screen
// output.
//
// # Format Conversion
//
// [ToPDF] converts an SVG document to PDF with the external rsvg-convert
// tool (from librsvg).
//
//	svg := vectorSurface.Bytes()
//	pdf, err := render.ToPDF(ctx, svg)
package render
