package penrose

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ggSurface paints on a gg context, which already has y growing downwards.
type ggSurface struct {
	dc    *gg.Context
	width float64
}

func (s ggSurface) Polygon(pts [3]Point, fill, stroke colorful.Color) {
	s.dc.NewSubPath()
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.dc.SetColor(fill)
	s.dc.FillPreserve()
	s.dc.SetColor(stroke)
	s.dc.SetLineWidth(s.width)
	s.dc.Stroke()
}

func (s ggSurface) Line(e Edge, stroke colorful.Color) {
	s.dc.SetColor(stroke)
	s.dc.SetLineWidth(s.width)
	s.dc.DrawLine(e.P1.X, e.P1.Y, e.P2.X, e.P2.Y)
	s.dc.Stroke()
}

// Rasterize paints g on a white image the size of the canvas.
func Rasterize(g Generation, cfg Config) image.Image {
	dc := gg.NewContext(int(math.Ceil(cfg.Width)), int(math.Ceil(cfg.Height)))
	dc.SetColor(color.White)
	dc.Clear()
	paint(ggSurface{dc: dc, width: cfg.StrokeWidth}, g, cfg)
	return dc.Image()
}

// writeRaster encodes img to fname as TIFF or BMP.
func writeRaster(fname, ext string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	switch ext {
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = fmt.Errorf("%w %s", ErrUnsupportedFormat, ext)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
