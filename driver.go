package penrose

import (
	"fmt"
	"log/slog"
)

// Run builds the seed of the given kind and calls fn with generations
// 0 through depth in order, each one the deflation of the previous.
// Only the current generation is kept alive. Run stops at the first error
// returned by fn.
func Run(cfg Config, kind SeedKind, depth int, fn func(index int, g Generation) error) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	g, err := NewSeed(kind, cfg)
	if err != nil {
		return err
	}
	for i := 0; ; i++ {
		Logger().Debug("generation", slog.Int("index", i), slog.Int("triangles", len(g)))
		if err := fn(i, g); err != nil {
			return fmt.Errorf("generation %d: %w", i, err)
		}
		if i == depth {
			return nil
		}
		g = SubdivideParallel(g, cfg.Workers)
	}
}

// Generations returns all depth+1 generations at once. Memory grows by
// roughly Phi^2 per level, so keep depth small or use Run.
func Generations(cfg Config, kind SeedKind, depth int) ([]Generation, error) {
	var gens []Generation
	err := Run(cfg, kind, depth, func(_ int, g Generation) error {
		gens = append(gens, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gens, nil
}
