package penrose

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// pngResolution is the canvas rasterizer resolution, one pixel per unit.
const pngResolution = 1.0

// Context draws tiling coordinates, y growing downwards, on a canvas whose
// origin is at the bottom left: every y is flipped against the height.
type Context struct {
	c      *canvas.Canvas
	ctx    *canvas.Context
	height float64
}

func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		height: height,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// WriteFile writes the canvas to fname in the format named by ext.
func (ctx *Context) WriteFile(fname, ext string) error {
	switch ext {
	case ".png":
		return ctx.WritePNG(fname)
	case ".svg":
		return ctx.WriteSVG(fname)
	case ".pdf":
		return ctx.WritePDF(fname)
	}
	return fmt.Errorf("%w %s", ErrUnsupportedFormat, ext)
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(pngResolution))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.ctx.SetStrokeColor(col)
}

func (ctx *Context) SetStrokeWidth(width float64) {
	ctx.ctx.SetStrokeWidth(width)
}

// MoveTo moves the path to x,y without connecting the path.
func (ctx *Context) MoveTo(x, y float64) {
	ctx.ctx.MoveTo(x, ctx.height-y)
}

// LineTo adds a linear path to x,y.
func (ctx *Context) LineTo(x, y float64) {
	ctx.ctx.LineTo(x, ctx.height-y)
}

// Stroke strokes the current path and resets it.
func (ctx *Context) Stroke() {
	ctx.ctx.Stroke()
}

// Polygon fills and strokes the closed path through pts.
func (ctx *Context) Polygon(pts [3]Point, fill, stroke colorful.Color) {
	p := &canvas.Path{}
	p.MoveTo(pts[0].X, ctx.height-pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, ctx.height-pt.Y)
	}
	p.Close()
	ctx.SetFillColor(fill)
	ctx.SetStrokeColor(stroke)
	ctx.ctx.DrawPath(0, 0, p)
}

// Line strokes a single edge.
func (ctx *Context) Line(e Edge, stroke colorful.Color) {
	ctx.SetStrokeColor(stroke)
	ctx.MoveTo(e.P1.X, e.P1.Y)
	ctx.LineTo(e.P2.X, e.P2.Y)
	ctx.Stroke()
}
