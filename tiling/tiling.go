// Tiling draws a Penrose kite and dart tiling by repeatedly deflating a
// sun or star of Robinson triangles, one image per generation.
//
//	tiling sun 9 sun_tiling.svg
//
// writes sun_tiling0.svg (the seed) through sun_tiling9.svg.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/scottkirkwood/penrose"
)

var (
	configFlag  = flag.String("config", "", "Config file of key = value lines")
	styleFlag   = flag.String("style", "", "filled or outline, overrides the config")
	watchFlag   = flag.Bool("watch", false, "Rerun every time the config file is saved")
	checkFlag   = flag.Bool("check", false, "Validate the geometry of every generation")
	verboseFlag = flag.Bool("v", false, "Log every generation")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: tiling [flags] sun|star depth output.svg\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	penrose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	kind, depth, out, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(2)
	}
	if *watchFlag && *configFlag == "" {
		fmt.Fprintln(os.Stderr, "-watch needs -config")
		os.Exit(2)
	}

	run := func() error {
		cfg, err := loadConfig(*configFlag, *styleFlag)
		if err != nil {
			return err
		}
		return generate(cfg, kind, depth, out, *checkFlag, os.Stdout)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to draw tiling: %v\n", err)
		if !*watchFlag {
			os.Exit(1)
		}
	}
	if !*watchFlag {
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := penrose.Watch(ctx, *configFlag, run); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to watch %s: %v\n", *configFlag, err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (penrose.SeedKind, int, string, error) {
	if len(args) != 3 {
		return 0, 0, "", fmt.Errorf("want 3 arguments, got %d", len(args))
	}
	kind, err := penrose.ParseSeedKind(args[0])
	if err != nil {
		return 0, 0, "", err
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth < 0 {
		return 0, 0, "", fmt.Errorf("depth must be a non-negative integer, got %q", args[1])
	}
	return kind, depth, args[2], nil
}

func loadConfig(filename, style string) (penrose.Config, error) {
	cfg := penrose.DefaultConfig()
	if filename != "" {
		var err error
		if cfg, err = penrose.LoadConfig(filename); err != nil {
			return cfg, err
		}
	}
	if style != "" {
		s, err := penrose.ParseStyle(style)
		if err != nil {
			return cfg, err
		}
		cfg.Style = s
	}
	return cfg, nil
}

// generate renders every generation up to depth. Streaming to stdout
// ("-") only writes the last one.
func generate(cfg penrose.Config, kind penrose.SeedKind, depth int, out string, check bool, stdout io.Writer) error {
	r := penrose.NewFileRenderer(cfg)
	r.Stdout = stdout
	return penrose.Run(cfg, kind, depth, func(i int, g penrose.Generation) error {
		if check {
			if err := penrose.CheckGeneration(g); err != nil {
				return err
			}
		}
		st := penrose.Measure(g, cfg)
		penrose.Logger().Info("tiles",
			slog.Int("generation", i),
			slog.Int("drawn", st.Triangles),
			slog.Float64("kites", st.Kites),
			slog.Float64("darts", st.Darts),
			slog.Any("last_edges", st.LastEdges))
		if out == "-" && i != depth {
			return nil
		}
		return r.Render(g, penrose.OutputName(out, i))
	})
}
