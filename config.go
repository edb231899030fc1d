package penrose

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/jbeda/geom"
)

// Style selects how triangles are painted.
type Style int

const (
	// Filled paints every triangle with its kind's fill and a stroke
	// around all three edges.
	Filled Style = iota
	// Outline paints every triangle in the outline fill (white by default)
	// and strokes only the kite and dart outlines, hiding the split
	// between the two halves.
	Outline
)

func (s Style) String() string {
	if s == Outline {
		return "outline"
	}
	return "filled"
}

// ParseStyle accepts "filled" or "outline".
func ParseStyle(s string) (Style, error) {
	switch s {
	case "filled":
		return Filled, nil
	case "outline":
		return Outline, nil
	}
	return 0, fmt.Errorf("unknown style %q", s)
}

// Config holds every tunable of a run. It is built once at startup and
// passed by value; nothing in the package modifies it.
type Config struct {
	Count  int     // triangles in the seed ring
	Size   float64 // seed leg length
	Center Point   // shared apex of the seed ring

	Width, Height float64 // canvas size

	// Regions limits drawing to triangles with a vertex strictly inside
	// one of the rectangles. Empty draws everything.
	Regions []geom.Rect
	// CountRegions limits the kite and dart statistics the same way.
	CountRegions []geom.Rect

	Style         Style
	Palette       Palette
	StrokeWidth   float64
	EdgeTolerance float64 // absolute tolerance for outline edge lengths

	Workers int // goroutines used by SubdivideParallel
}

// DefaultConfig returns the settings of the classic run: a ten triangle
// seed of size 4250 on a 2500x3500 canvas, drawn in two regions.
func DefaultConfig() Config {
	regions := []geom.Rect{
		{Min: Pt(100, 100), Max: Pt(1500, 3300)},
		{Min: Pt(1500, 2100), Max: Pt(2200, 2558)},
	}
	return Config{
		Count:         10,
		Size:          4250,
		Center:        Pt(550, 1375),
		Width:         2500,
		Height:        3500,
		Regions:       regions,
		CountRegions:  regions,
		Style:         Filled,
		Palette:       DefaultPalette(),
		StrokeWidth:   0.5,
		EdgeTolerance: 2.0,
		Workers:       runtime.NumCPU(),
	}
}

// LoadConfig reads a config file on top of DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()
	cfg, err := ParseConfig(file)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

var configLineRE = regexp.MustCompile(`^([a-z_]+)\s*=\s*(.*)$`)

// ParseConfig reads "key = value" lines on top of DefaultConfig. Blank
// lines and lines starting with '#' or ';' are skipped. Rectangles are
// written "x0,y0,x1,y1" and lists of them are separated by ';'.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		m := configLineRE.FindStringSubmatch(line)
		if m == nil {
			return Config{}, fmt.Errorf("line %d: expected key = value, got %q", lineNo, line)
		}
		if err := cfg.set(m[1], strings.TrimSpace(m[2])); err != nil {
			return Config{}, fmt.Errorf("line %d: %s: %w", lineNo, m[1], err)
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) set(key, val string) (err error) {
	switch key {
	case "count":
		c.Count, err = strconv.Atoi(val)
	case "size":
		c.Size, err = strconv.ParseFloat(val, 64)
	case "center":
		c.Center, err = parsePoint(val)
	case "width":
		c.Width, err = strconv.ParseFloat(val, 64)
	case "height":
		c.Height, err = strconv.ParseFloat(val, 64)
	case "regions":
		c.Regions, err = parseRects(val)
	case "count_regions":
		c.CountRegions, err = parseRects(val)
	case "style":
		c.Style, err = ParseStyle(val)
	case "kite_color":
		c.Palette.Kite, err = parseColor(val)
	case "dart_color":
		c.Palette.Dart, err = parseColor(val)
	case "outline_color":
		c.Palette.Outline, err = parseColor(val)
	case "stroke_color":
		c.Palette.Stroke, err = parseColor(val)
	case "stroke_width":
		c.StrokeWidth, err = strconv.ParseFloat(val, 64)
	case "edge_tolerance":
		c.EdgeTolerance, err = strconv.ParseFloat(val, 64)
	case "workers":
		c.Workers, err = strconv.Atoi(val)
	default:
		err = errors.New("unknown key")
	}
	return err
}

func parseFloats(s string, n int) ([]float64, error) {
	toks := strings.Split(s, ",")
	if len(toks) != n {
		return nil, fmt.Errorf("want %d numbers, got %q", n, s)
	}
	vals := make([]float64, n)
	for i, tok := range toks {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func parsePoint(s string) (Point, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return Point{}, err
	}
	return Pt(v[0], v[1]), nil
}

// parseRects reads "x0,y0,x1,y1; ...". "none" or an empty value clears
// the list.
func parseRects(s string) ([]geom.Rect, error) {
	if s == "" || s == "none" {
		return nil, nil
	}
	var rects []geom.Rect
	for _, part := range strings.Split(s, ";") {
		v, err := parseFloats(part, 4)
		if err != nil {
			return nil, err
		}
		r := geom.Rect{Min: Pt(v[0], v[1]), Max: Pt(v[0], v[1])}
		r.ExpandToContainCoord(Pt(v[2], v[3]))
		rects = append(rects, r)
	}
	return rects, nil
}
