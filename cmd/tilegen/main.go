// Command tilegen generates a procedural tile map from a 16-bit seed and prints it.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/worley-tiles/internal/entropy"
	"github.com/talgya/worley-tiles/internal/noise"
	"github.com/talgya/worley-tiles/internal/params"
	"github.com/talgya/worley-tiles/internal/render"
	"github.com/talgya/worley-tiles/internal/world"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	r, err := render.Select(render.Mode(cfg.Render), os.Stdout.Fd())
	if err != nil {
		slog.Error("invalid renderer", "error", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdin, os.Stdout, r); err != nil {
		slog.Error("generation aborted", "error", err)
		os.Exit(1)
	}
}

// run reads the seed, generates the map and renders it to out.
func run(cfg *Config, in io.Reader, out io.Writer, r render.Renderer) error {
	field, err := world.ParseFieldKind(cfg.Field)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Procedural Tile World Generator")

	seed, err := readSeed(cfg, in, out)
	if err != nil {
		if errors.Is(err, params.ErrInvalidSeed) {
			fmt.Fprintln(out, "Invalid Seed")
		}
		return err
	}

	sess := world.NewSession(seed)
	p := sess.Params

	fmt.Fprintf(out, "\nInitial Random Seed: %d\n", seed)
	fmt.Fprintf(out, "Binary Parameters: %s\n\n", params.Bits(seed))
	printParams(out, p)
	slog.Info("session started", "session", sess.ID, "seed", seed, "params", p)

	genCfg := world.DefaultGenConfig()
	genCfg.Field = field
	res, err := world.Generate(sess, genCfg)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	fmt.Fprintf(out, "Map Dimensions: %d, %d\n", res.Dims.W, res.Dims.H)
	fmt.Fprintf(out, "Noise Samples: %s\n\n", humanize.Comma(int64(res.Samples)))

	counts := world.CategoryCounts(res.Tiles)
	attrs := []any{"session", sess.ID, "tiles", humanize.Comma(int64(res.Tiles.Len()))}
	for c, n := range counts {
		attrs = append(attrs, strings.ToLower(world.Category(c).String()), n)
	}
	slog.Info("tile summary", attrs...)

	if err := r.Render(out, res.Tiles); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// printParams writes the decoded parameters, one per line.
func printParams(out io.Writer, p params.Params) {
	central := 0
	if p.StartCellCentral {
		central = 1
	}
	fmt.Fprintf(out, "Terrain Deformation Factor: %d\n", p.TerrainDeformFactor)
	fmt.Fprintf(out, "Start Position Central? %d\n\n", central)
	fmt.Fprintf(out, "Map Size Factor: %d\n", p.MapSizeFactor)
	fmt.Fprintf(out, "Noise Distance Metric: %d (%s)\n", p.NoiseDistanceMetric, noise.Metric(p.NoiseDistanceMetric))
	fmt.Fprintf(out, "Noise Multisampling Factor: %d\n", p.NoiseMultisampleFactor)
	fmt.Fprintf(out, "Min Tile Distance: %d\n\n", p.MinTileDistance)
}

// readSeed resolves the seed from -random, -seed, or a prompt on in.
func readSeed(cfg *Config, in io.Reader, out io.Writer) (uint16, error) {
	if cfg.Random {
		seed := entropy.RandomSeed()
		slog.Debug("random seed drawn", "seed", seed)
		return seed, nil
	}

	text := cfg.Seed
	if text == "" {
		fmt.Fprint(out, "Enter Random Seed: ")
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read seed: %w", err)
		}
		text = line
	}

	seed, err := params.ParseSeed(text)
	if err != nil {
		return 0, fmt.Errorf("seed %q: %w", strings.TrimSpace(text), err)
	}
	return seed, nil
}
