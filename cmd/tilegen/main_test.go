package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/talgya/worley-tiles/internal/params"
	"github.com/talgya/worley-tiles/internal/render"
	"github.com/talgya/worley-tiles/internal/world"
)

func TestRunSeedZeroFromPrompt(t *testing.T) {
	cfg := &Config{Field: "worley", LogLevel: "info"}
	var out bytes.Buffer
	if err := run(cfg, strings.NewReader("0\n"), &out, render.Plain{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Enter Random Seed: ",
		"Initial Random Seed: 0\n",
		"Binary Parameters: 0000000000000000\n",
		"Terrain Deformation Factor: 0\n",
		"Start Position Central? 0\n",
		"Map Size Factor: 1\n",
		"Noise Distance Metric: 0 (Euclidean)\n",
		"Noise Multisampling Factor: 0\n",
		"Min Tile Distance: 0\n",
		"Map Dimensions: 10, 15\n",
		"Noise Samples: 150\n",
		"Drawing grid of size 74\n",
		"6 6   6 6   6 6   6 \n",
		"Done.\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

func TestRunSeedFlagSkipsPrompt(t *testing.T) {
	cfg := &Config{Seed: "2048", Field: "worley"}
	var out bytes.Buffer
	if err := run(cfg, strings.NewReader(""), &out, render.Plain{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(out.String(), "Enter Random Seed") {
		t.Error("prompted despite -seed")
	}
	for _, want := range []string{
		"Binary Parameters: 0000000000010000\n",
		"Start Position Central? 1\n",
		"Map Size Factor: 1\n",
		"Noise Distance Metric: 0 (Euclidean)\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q\n%s", want, out.String())
		}
	}
}

func TestRunInvalidSeed(t *testing.T) {
	cfg := &Config{Field: "worley"}
	var out bytes.Buffer
	err := run(cfg, strings.NewReader("12ab\n"), &out, render.Plain{})
	if !errors.Is(err, params.ErrInvalidSeed) {
		t.Fatalf("run error = %v, want ErrInvalidSeed", err)
	}
	if !strings.Contains(out.String(), "Invalid Seed\n") {
		t.Errorf("missing user-facing error:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Drawing grid") {
		t.Error("generation ran after an invalid seed")
	}
}

func TestRunUnknownField(t *testing.T) {
	cfg := &Config{Seed: "1", Field: "perlin"}
	err := run(cfg, strings.NewReader(""), &bytes.Buffer{}, render.Plain{})
	if !errors.Is(err, world.ErrUnknownField) {
		t.Fatalf("run error = %v, want ErrUnknownField", err)
	}
}

func TestRunRandomSeed(t *testing.T) {
	cfg := &Config{Random: true, Field: "simplex"}
	var out bytes.Buffer
	if err := run(cfg, strings.NewReader(""), &out, render.Cursor{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Done.\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestConfigBind(t *testing.T) {
	t.Setenv("TILEGEN_RENDER", "plain")
	cfg := NewConfig()
	if cfg.Render != "plain" || cfg.Field != "worley" || cfg.LogLevel != "info" {
		t.Fatalf("NewConfig() = %+v", cfg)
	}

	fs := flag.NewFlagSet("tilegen", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "42", "-field", "simplex", "-log-level", "debug"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != "42" || cfg.Field != "simplex" {
		t.Fatalf("after Parse: %+v", cfg)
	}
	if lvl, err := cfg.Level(); err != nil || lvl.String() != "DEBUG" {
		t.Fatalf("Level() = %v, %v", lvl, err)
	}

	cfg.LogLevel = "loud"
	if _, err := cfg.Level(); err == nil {
		t.Fatal("Level() accepted an unknown level")
	}
}
