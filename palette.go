package penrose

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the drawing colors.
type Palette struct {
	Kite    colorful.Color // fill of acute triangles
	Dart    colorful.Color // fill of obtuse triangles
	Outline colorful.Color // fill of both kinds in Outline style
	Stroke  colorful.Color
}

// DefaultPalette is mid grey kites, dark grey darts, white outline fill
// and black strokes.
func DefaultPalette() Palette {
	return Palette{
		Kite:    colorful.Color{R: 128.0 / 255, G: 128.0 / 255, B: 128.0 / 255},
		Dart:    colorful.Color{R: 64.0 / 255, G: 64.0 / 255, B: 64.0 / 255},
		Outline: colorful.Color{R: 1, G: 1, B: 1},
		Stroke:  colorful.Color{},
	}
}

// Fill returns the fill color of a triangle of kind k drawn in style s.
func (p Palette) Fill(k Kind, s Style) colorful.Color {
	if s == Outline {
		return p.Outline
	}
	if k == Obtuse {
		return p.Dart
	}
	return p.Kite
}

var namedColors = map[string]string{
	"black": "#000000",
	"white": "#ffffff",
}

// parseColor reads "#rrggbb" or one of the names black and white.
func parseColor(s string) (colorful.Color, error) {
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		s = hex
	}
	return colorful.Hex(s)
}

// svgColor formats c for an SVG style attribute.
func svgColor(c colorful.Color) string {
	return c.Clamped().Hex()
}
