package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scottkirkwood/penrose"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args    []string
		kind    penrose.SeedKind
		depth   int
		wantErr bool
	}{
		{[]string{"sun", "9", "sun_tiling.svg"}, penrose.Sun, 9, false},
		{[]string{"star", "0", "x.svg"}, penrose.Star, 0, false},
		{[]string{"moon", "3", "x.svg"}, 0, 0, true},
		{[]string{"sun", "-1", "x.svg"}, 0, 0, true},
		{[]string{"sun", "two", "x.svg"}, 0, 0, true},
		{[]string{"sun", "2"}, 0, 0, true},
	}
	for _, tt := range tests {
		kind, depth, _, err := parseArgs(tt.args)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseArgs(%q) = nil error", tt.args)
			}
			continue
		}
		if err != nil || kind != tt.kind || depth != tt.depth {
			t.Errorf("parseArgs(%q) = %v, %d, %v", tt.args, kind, depth, err)
		}
	}
}

func TestLoadConfigStyleOverride(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "t.conf")
	if err := os.WriteFile(fname, []byte("style = filled\nsize = 10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(fname, "outline")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != penrose.Outline || cfg.Size != 10 {
		t.Errorf("style %v size %g, want outline and 10", cfg.Style, cfg.Size)
	}
	if _, err := loadConfig("", "wavy"); err == nil {
		t.Error("unknown style accepted")
	}
}

func TestGenerateStdout(t *testing.T) {
	cfg := penrose.DefaultConfig()
	var buf bytes.Buffer
	if err := generate(cfg, penrose.Sun, 2, "-", true, &buf); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "<svg"); n != 1 {
		t.Errorf("got %d svg documents, want only the last generation", n)
	}
}

func TestGenerateLogsTiles(t *testing.T) {
	var logs bytes.Buffer
	penrose.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	defer penrose.SetLogger(nil)

	if err := generate(penrose.DefaultConfig(), penrose.Sun, 1, "-", false, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	out := logs.String()
	if n := strings.Count(out, "msg=tiles"); n != 2 {
		t.Errorf("got %d tiles lines, want 2:\n%s", n, out)
	}
	if !strings.Contains(out, "last_edges=") {
		t.Errorf("tiles line without last_edges:\n%s", out)
	}
}

func TestGenerateFiles(t *testing.T) {
	cfg := penrose.DefaultConfig()
	cfg.Size, cfg.Center = 40, penrose.Pt(32, 32)
	cfg.Width, cfg.Height = 64, 64
	cfg.Regions = nil
	out := filepath.Join(t.TempDir(), "tiling.bmp")
	if err := generate(cfg, penrose.Star, 2, out, false, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= 2; i++ {
		if _, err := os.Stat(penrose.OutputName(out, i)); err != nil {
			t.Errorf("generation %d: %v", i, err)
		}
	}
}
