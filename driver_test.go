package penrose

import (
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	cfg := DefaultConfig()
	var sizes []int
	err := Run(cfg, Sun, 4, func(i int, g Generation) error {
		if i != len(sizes) {
			t.Errorf("generation %d delivered out of order", i)
		}
		sizes = append(sizes, len(g))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{10, 30, 80, 210, 550}
	if len(sizes) != len(want) {
		t.Fatalf("got %d generations, want %d", len(sizes), len(want))
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("generation %d: %d triangles, want %d", i, sizes[i], want[i])
		}
	}
}

func TestRunDepthZero(t *testing.T) {
	calls := 0
	if err := Run(DefaultConfig(), Star, 0, func(int, Generation) error {
		calls++
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestRunErrors(t *testing.T) {
	cfg := DefaultConfig()
	if err := Run(cfg, Sun, -1, nil); !errors.Is(err, ErrNegativeDepth) {
		t.Errorf("negative depth: error = %v, want ErrNegativeDepth", err)
	}

	bad := cfg
	bad.Size = 0
	if err := Run(bad, Sun, 2, func(int, Generation) error { return nil }); !errors.Is(err, ErrInvalidSeedParameters) {
		t.Errorf("zero size: error = %v, want ErrInvalidSeedParameters", err)
	}

	stop := errors.New("stop")
	calls := 0
	err := Run(cfg, Sun, 5, func(i int, _ Generation) error {
		calls++
		if i == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("error = %v, want %v", err, stop)
	}
	if calls != 3 {
		t.Errorf("fn called %d times after an error at generation 2, want 3", calls)
	}
}

func TestGenerations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 1
	gens, err := Generations(cfg, Star, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(gens) != 4 {
		t.Fatalf("got %d generations, want 4", len(gens))
	}
	for i := 1; i < len(gens); i++ {
		next := Subdivide(gens[i-1])
		if len(next) != len(gens[i]) {
			t.Fatalf("generation %d: %d triangles, want %d", i, len(gens[i]), len(next))
		}
		for j := range next {
			if next[j] != gens[i][j] {
				t.Fatalf("generation %d triangle %d differs from Subdivide", i, j)
			}
		}
	}
}
