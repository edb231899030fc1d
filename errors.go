package penrose

import "errors"

var (
	// ErrInvalidSeedParameters is returned by the seed generators for a
	// non-positive triangle count or size.
	ErrInvalidSeedParameters = errors.New("invalid seed parameters")

	// ErrUnknownSeedKind is returned when a seed name is neither "sun" nor "star".
	ErrUnknownSeedKind = errors.New("unknown seed kind")

	// ErrNegativeDepth is returned by the driver for a depth below zero.
	ErrNegativeDepth = errors.New("negative depth")

	// ErrDegenerateTriangle marks a triangle whose geometry does not match
	// its kind.
	ErrDegenerateTriangle = errors.New("degenerate triangle")

	// ErrUnsupportedFormat is returned for an output name with no writer.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
