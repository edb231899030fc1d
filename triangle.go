package penrose

import (
	"fmt"
	"math"
	"sort"

	"github.com/jbeda/geom"
)

// Tag is the two-valued vertex marking of the P2 matching rule. It decides
// how a triangle splits; it has nothing to do with drawing colors.
type Tag uint8

const (
	Tag0 Tag = 0
	Tag1 Tag = 1
)

// Flip returns the other tag.
func (t Tag) Flip() Tag {
	return t ^ 1
}

func tagOf(b bool) Tag {
	if b {
		return Tag1
	}
	return Tag0
}

// Vertex is a tagged position.
type Vertex struct {
	Pos Point
	Tag Tag
}

// retag returns a copy of v carrying tag t.
func (v Vertex) retag(t Tag) Vertex {
	return Vertex{Pos: v.Pos, Tag: t}
}

// Kind tells the two Robinson triangles apart.
type Kind uint8

const (
	// Acute is the golden triangle: two long sides, one short.
	// Two of them make a kite.
	Acute Kind = iota
	// Obtuse is the golden gnomon: one long side, two short.
	// Two of them make a dart.
	Obtuse
)

func (k Kind) String() string {
	switch k {
	case Acute:
		return "acute"
	case Obtuse:
		return "obtuse"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// children is how many triangles one deflation step makes out of one
// triangle of this kind.
func (k Kind) children() int {
	if k == Obtuse {
		return 2
	}
	return 3
}

// Triangle is a Robinson triangle. Vertex order is meaningful: A is the
// vertex shared with the neighbouring triangles of a seed ring, and
// renderers rely on the AB, BC, CA edge order.
type Triangle struct {
	Kind    Kind
	A, B, C Vertex
}

// Points returns the vertex positions in A, B, C order.
func (t Triangle) Points() [3]Point {
	return [3]Point{t.A.Pos, t.B.Pos, t.C.Pos}
}

// Edges returns AB, BC and CA.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		{t.A.Pos, t.B.Pos},
		{t.B.Pos, t.C.Pos},
		{t.C.Pos, t.A.Pos},
	}
}

// sideTolerance is the relative tolerance used by Validate.
const sideTolerance = 1e-6

// Validate checks that the geometry of t matches its kind: no zero-length
// edge, long:short ratio of phi, and two long sides for Acute or two short
// sides for Obtuse.
func (t Triangle) Validate() error {
	edges := t.Edges()
	l := []float64{edges[0].Length(), edges[1].Length(), edges[2].Length()}
	sort.Float64s(l)
	short, mid, long := l[0], l[1], l[2]
	if short == 0 || math.IsNaN(short) || math.IsInf(long, 0) {
		return fmt.Errorf("%w: %s triangle with edge lengths %v", ErrDegenerateTriangle, t.Kind, l)
	}
	if !relEqual(long/short, Phi, sideTolerance) {
		return fmt.Errorf("%w: %s triangle side ratio %g", ErrDegenerateTriangle, t.Kind, long/short)
	}
	midIsLong := relEqual(mid, long, sideTolerance)
	if (t.Kind == Acute) != midIsLong {
		return fmt.Errorf("%w: %s triangle with edge lengths %v", ErrDegenerateTriangle, t.Kind, l)
	}
	return nil
}

// Generation is one level of subdivision. The order is the drawing order.
type Generation []Triangle

// Count returns the number of acute and obtuse triangles.
func (g Generation) Count() (acute, obtuse int) {
	for _, t := range g {
		if t.Kind == Obtuse {
			obtuse++
		} else {
			acute++
		}
	}
	return acute, obtuse
}

// Bounds returns the smallest rectangle holding every vertex of g.
// The zero Rect is returned for an empty generation.
func (g Generation) Bounds() geom.Rect {
	if len(g) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: g[0].A.Pos, Max: g[0].A.Pos}
	for _, t := range g {
		for _, p := range t.Points() {
			r.ExpandToContainCoord(p)
		}
	}
	return r
}

// CheckGeneration validates every triangle of g and returns the first
// failure, annotated with its index.
func CheckGeneration(g Generation) error {
	for i, t := range g {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("triangle %d: %w", i, err)
		}
	}
	return nil
}
