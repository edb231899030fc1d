package penrose

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Count != 10 || cfg.Size != 4250 || cfg.Center != Pt(550, 1375) {
		t.Errorf("seed defaults = %d, %g, %v", cfg.Count, cfg.Size, cfg.Center)
	}
	if cfg.Width != 2500 || cfg.Height != 3500 {
		t.Errorf("canvas = %gx%g, want 2500x3500", cfg.Width, cfg.Height)
	}
	if len(cfg.Regions) != 2 {
		t.Errorf("got %d regions, want 2", len(cfg.Regions))
	}
	if cfg.Workers < 1 {
		t.Errorf("workers = %d", cfg.Workers)
	}
}

func TestParseConfig(t *testing.T) {
	in := `
# a comment
; another one
count = 5
size = 100.5
center = 10, 20
width = 640
height=480
regions = 0,0,100,100; 200,300,150,250
count_regions = none
style = outline
kite_color = white
outline_color = #eeeeee
dart_color = #ff0000
stroke_width = 2
edge_tolerance = 0.01
workers = 3
`
	cfg, err := ParseConfig(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Count != 5 || cfg.Size != 100.5 || cfg.Center != Pt(10, 20) {
		t.Errorf("seed = %d, %g, %v", cfg.Count, cfg.Size, cfg.Center)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("canvas = %gx%g", cfg.Width, cfg.Height)
	}
	if len(cfg.Regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(cfg.Regions))
	}
	r := cfg.Regions[1]
	if r.Min != Pt(150, 250) || r.Max != Pt(200, 300) {
		t.Errorf("second region = %v, want normalized (150,250)-(200,300)", r)
	}
	if cfg.CountRegions != nil {
		t.Errorf("count regions = %v, want none", cfg.CountRegions)
	}
	if cfg.Style != Outline {
		t.Errorf("style = %v, want outline", cfg.Style)
	}
	if got := svgColor(cfg.Palette.Kite); got != "#ffffff" {
		t.Errorf("kite color = %s, want #ffffff", got)
	}
	if got := svgColor(cfg.Palette.Outline); got != "#eeeeee" {
		t.Errorf("outline color = %s, want #eeeeee", got)
	}
	if got := svgColor(cfg.Palette.Dart); got != "#ff0000" {
		t.Errorf("dart color = %s, want #ff0000", got)
	}
	if cfg.StrokeWidth != 2 || cfg.EdgeTolerance != 0.01 || cfg.Workers != 3 {
		t.Errorf("stroke %g, tolerance %g, workers %d", cfg.StrokeWidth, cfg.EdgeTolerance, cfg.Workers)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []string{
		"count = many",
		"colour = red",
		"center = 1",
		"regions = 1,2,3",
		"style = dotted",
		"kite_color = #12",
		"just words",
	}
	for _, in := range tests {
		if _, err := ParseConfig(strings.NewReader(in)); err == nil {
			t.Errorf("ParseConfig(%q) = nil error", in)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "tiling.conf")
	if err := os.WriteFile(fname, []byte("count = 4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Count != 4 || cfg.Size != 4250 {
		t.Errorf("count %d size %g, want 4 and the default size", cfg.Count, cfg.Size)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.conf")); err == nil {
		t.Error("LoadConfig of a missing file returned nil error")
	}
}
