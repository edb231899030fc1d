package penrose

import (
	"fmt"
	"math"
	"strings"
)

// SeedKind selects the initial ring of triangles.
type SeedKind int

const (
	// Sun is a ring of acute triangles around a shared apex.
	Sun SeedKind = iota
	// Star is a ring of obtuse triangles around a shared apex.
	Star
)

func (k SeedKind) String() string {
	switch k {
	case Sun:
		return "sun"
	case Star:
		return "star"
	}
	return fmt.Sprintf("SeedKind(%d)", int(k))
}

// ParseSeedKind accepts "sun" or "star", ignoring case.
func ParseSeedKind(s string) (SeedKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sun":
		return Sun, nil
	case "star":
		return Star, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeedKind, s)
}

func checkSeed(count int, size float64) error {
	if count <= 0 {
		return fmt.Errorf("%w: count %d", ErrInvalidSeedParameters, count)
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return fmt.Errorf("%w: size %g", ErrInvalidSeedParameters, size)
	}
	return nil
}

// rimPair returns the two rim offsets of the i-th triangle in a ring:
// r1 at angle i*36°, r2 at (i+1)*36°.
func rimPair(i int, r1, r2 float64) (Point, Point) {
	return Polar(r1, float64(i)*InteriorAngle), Polar(r2, float64(i+1)*InteriorAngle)
}

// InitialSun returns count acute triangles with their apex at center and
// legs of length size. Even triangles are mirrored so the ring closes; the
// apex and B are tagged 0, C is tagged 1. Ten triangles make the full sun.
func InitialSun(count int, size float64, center Point) (Generation, error) {
	if err := checkSeed(count, size); err != nil {
		return nil, err
	}
	g := make(Generation, 0, count)
	for i := 0; i < count; i++ {
		b, c := rimPair(i, size, size)
		if i%2 == 0 {
			b, c = c, b
		}
		g = append(g, Triangle{
			Kind: Acute,
			A:    Vertex{Pos: center, Tag: Tag0},
			B:    Vertex{Pos: center.Plus(b), Tag: Tag0},
			C:    Vertex{Pos: center.Plus(c), Tag: Tag1},
		})
	}
	return g, nil
}

// InitialStar returns count obtuse triangles with their apex at center,
// tagged 1. The legs alternate between size and size/Phi, swapped on odd
// triangles, and the rim tags alternate with the same parity.
func InitialStar(count int, size float64, center Point) (Generation, error) {
	if err := checkSeed(count, size); err != nil {
		return nil, err
	}
	g := make(Generation, 0, count)
	for i := 0; i < count; i++ {
		even := i%2 == 0
		s1, s2 := size, size/Phi
		if !even {
			s1, s2 = s2, s1
		}
		b, c := rimPair(i, s1, s2)
		g = append(g, Triangle{
			Kind: Obtuse,
			A:    Vertex{Pos: center, Tag: Tag1},
			B:    Vertex{Pos: center.Plus(b), Tag: tagOf(!even)},
			C:    Vertex{Pos: center.Plus(c), Tag: tagOf(even)},
		})
	}
	return g, nil
}

// NewSeed builds generation 0 of the given kind from cfg.
func NewSeed(kind SeedKind, cfg Config) (Generation, error) {
	switch kind {
	case Sun:
		return InitialSun(cfg.Count, cfg.Size, cfg.Center)
	case Star:
		return InitialStar(cfg.Count, cfg.Size, cfg.Center)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownSeedKind, kind)
}
