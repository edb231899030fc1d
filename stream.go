package penrose

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"
)

// svgSurface writes straight to an svgo document. svgo takes integer
// coordinates, so points are rounded.
type svgSurface struct {
	s     *svg.SVG
	width float64
}

func round(v float64) int {
	return int(math.Round(v))
}

func (s svgSurface) Polygon(pts [3]Point, fill, stroke colorful.Color) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = round(p.X), round(p.Y)
	}
	s.s.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g",
		svgColor(fill), svgColor(stroke), s.width))
}

func (s svgSurface) Line(e Edge, stroke colorful.Color) {
	s.s.Line(round(e.P1.X), round(e.P1.Y), round(e.P2.X), round(e.P2.Y),
		fmt.Sprintf("stroke:%s;stroke-width:%g", svgColor(stroke), s.width))
}

// StreamSVG writes g as an SVG document to w without buffering the
// drawing, for piping a generation to another program.
func StreamSVG(w io.Writer, g Generation, cfg Config) error {
	cw := &errWriter{w: w}
	doc := svg.New(cw)
	doc.Start(round(cfg.Width), round(cfg.Height))
	paint(svgSurface{s: doc, width: cfg.StrokeWidth}, g, cfg)
	doc.End()
	return cw.err
}

// errWriter remembers the first write error, svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
