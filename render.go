package penrose

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbeda/geom"
	"github.com/lucasb-eyer/go-colorful"
)

// Renderer draws one generation to a named target.
type Renderer interface {
	Render(g Generation, name string) error
}

// surface is what paint draws on. Points are in tiling coordinates with
// y growing downwards.
type surface interface {
	Polygon(pts [3]Point, fill, stroke colorful.Color)
	Line(e Edge, stroke colorful.Color)
}

// paint draws the visible triangles of g on s and returns how many were drawn.
func paint(s surface, g Generation, cfg Config) int {
	drawn := 0
	for _, t := range g {
		if !inAny(cfg.Regions, t) {
			continue
		}
		drawn++
		fill := cfg.Palette.Fill(t.Kind, cfg.Style)
		if cfg.Style == Filled {
			s.Polygon(t.Points(), fill, cfg.Palette.Stroke)
			continue
		}
		s.Polygon(t.Points(), fill, fill)
		for _, e := range outlineEdges(t, cfg.EdgeTolerance) {
			s.Line(e, cfg.Palette.Stroke)
		}
	}
	return drawn
}

// outlineEdges returns the edges of t that lie on the outline of its kite
// or dart, leaving out the edge shared with the other half.
func outlineEdges(t Triangle, tol float64) []Edge {
	e := t.Edges()
	ab, bc, ca := e[0], e[1], e[2]
	l := [3]float64{ab.Length(), bc.Length(), ca.Length()}
	long := max(l[0], l[1], l[2])
	short := min(l[0], l[1], l[2])

	var out []Edge
	if t.Kind == Obtuse {
		switch {
		case almostEqual(l[0], long, tol):
			out = append(out, ab, bc)
		case almostEqual(l[1], long, tol):
			out = append(out, bc)
		case almostEqual(l[2], long, tol):
			out = append(out, ca, bc)
		}
		return out
	}
	if almostEqual(l[0], short, tol) {
		out = append(out, ab, ca)
	}
	if almostEqual(l[1], short, tol) {
		out = append(out, bc, ab)
	}
	if almostEqual(l[2], short, tol) {
		out = append(out, ca)
	}
	return out
}

// strictlyInside reports whether p lies inside r, borders excluded.
func strictlyInside(r geom.Rect, p Point) bool {
	return r.Min.X < p.X && p.X < r.Max.X && r.Min.Y < p.Y && p.Y < r.Max.Y
}

// inAny reports whether a vertex of t lies strictly inside one of rects.
// An empty list matches every triangle.
func inAny(rects []geom.Rect, t Triangle) bool {
	if len(rects) == 0 {
		return true
	}
	for _, r := range rects {
		for _, p := range t.Points() {
			if strictlyInside(r, p) {
				return true
			}
		}
	}
	return false
}

// Stats describes a generation as drawn.
type Stats struct {
	Triangles int     // triangles passing the draw regions
	Kites     float64 // half a kite per acute triangle in the counting regions
	Darts     float64 // half a dart per obtuse triangle in the counting regions
	// LastEdges holds |AB|, |BC| and |CA| of the last triangle.
	LastEdges [3]float64
}

// Measure computes the statistics of g under cfg.
func Measure(g Generation, cfg Config) Stats {
	var st Stats
	for _, t := range g {
		if inAny(cfg.Regions, t) {
			st.Triangles++
		}
		if !inAny(cfg.CountRegions, t) {
			continue
		}
		if t.Kind == Obtuse {
			st.Darts += 0.5
		} else {
			st.Kites += 0.5
		}
	}
	if len(g) > 0 {
		for i, e := range g[len(g)-1].Edges() {
			st.LastEdges[i] = e.Length()
		}
	}
	return st
}

// FileRenderer writes generations to files, choosing the writer from the
// file extension: .svg, .pdf and .png go through canvas, .tif, .tiff and
// .bmp through the raster painter. The name "-" streams SVG to Stdout.
type FileRenderer struct {
	Config Config
	Stdout io.Writer
}

// NewFileRenderer returns a FileRenderer streaming to os.Stdout.
func NewFileRenderer(cfg Config) *FileRenderer {
	return &FileRenderer{Config: cfg, Stdout: os.Stdout}
}

// Render implements Renderer.
func (r *FileRenderer) Render(g Generation, name string) error {
	if name == "-" {
		return StreamSVG(r.Stdout, g, r.Config)
	}
	ext := strings.ToLower(filepath.Ext(name))
	var write func(string) error
	switch ext {
	case ".svg", ".pdf", ".png":
		write = func(tmp string) error {
			ctx := NewContext(r.Config.Width, r.Config.Height)
			ctx.SetStrokeWidth(r.Config.StrokeWidth)
			paint(ctx, g, r.Config)
			return ctx.WriteFile(tmp, ext)
		}
	case ".tif", ".tiff", ".bmp":
		write = func(tmp string) error {
			return writeRaster(tmp, ext, Rasterize(g, r.Config))
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := safeWrite(name, write); err != nil {
		return err
	}
	Logger().Info("saved", slog.String("file", name), slog.Int("triangles", len(g)))
	return nil
}
