// Map generation: sizes the grid, samples a noise field over it and places
// tiles where the intensity and a random acceptance draw both pass.
package world

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/talgya/worley-tiles/internal/noise"
	"github.com/talgya/worley-tiles/internal/params"
)

// FieldKind selects the noise field sampled by Generate.
type FieldKind string

const (
	FieldWorley  FieldKind = "worley"
	FieldSimplex FieldKind = "simplex"
)

// ErrUnknownField is returned for an unrecognized FieldKind.
var ErrUnknownField = errors.New("unknown noise field")

// ParseFieldKind validates a field name.
func ParseFieldKind(s string) (FieldKind, error) {
	switch k := FieldKind(s); k {
	case FieldWorley, FieldSimplex:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// GenConfig holds map generation parameters.
type GenConfig struct {
	BaseGridSize       Dims    // Grid size per map size factor, before the random scale
	MinGridSize        Dims    // Floor applied to each axis
	IntensityThreshold float64 // Cells at or below this never get a tile
	RandomThreshold    float64 // Acceptance draw must exceed this
	Field              FieldKind

	// TuneNoise, when set, adjusts the Worley config after the metric has
	// been taken from the seed and before the field is populated.
	TuneNoise func(*noise.Config)

	// Stages run after placement. Nil means DefaultStages for the session.
	Stages []Stage
}

// DefaultGenConfig returns the standard configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		BaseGridSize:       Dims{W: 15, H: 15},
		MinGridSize:        Dims{W: 10, H: 10},
		IntensityThreshold: 0.25,
		RandomThreshold:    0.9,
		Field:              FieldWorley,
	}
}

// Result is the output of one generation run.
type Result struct {
	SessionID uuid.UUID
	Seed      uint16
	Params    params.Params
	Dims      Dims
	MSFactor  int // Samples per axis per grid cell
	Field     FieldKind
	Tiles     TileView // Placed tiles after all stages

	Samples      int // Noise queries made
	OutOfBounds  int // Queries that fell outside the field
	Insufficient int // Queries with too few feature points nearby
}

// FailedSamples returns the number of queries that produced no value.
func (r *Result) FailedSamples() int {
	return r.OutOfBounds + r.Insufficient
}

// Generate runs the placement pass and the post-placement stages for sess.
//
// Draw order on the session stream: grid width, grid height, field
// population, then one acceptance draw per cell whose intensity passes the
// threshold, visiting cells column by column.
func Generate(sess *Session, cfg GenConfig) (*Result, error) {
	p := sess.Params
	if cfg.Field == "" {
		cfg.Field = FieldWorley
	}

	// Determine map size.
	dims := Dims{}
	dims.W = gridDim(sess.Stream.NextScalarAbs(), cfg.BaseGridSize.W, p.MapSizeFactor, cfg.MinGridSize.W)
	dims.H = gridDim(sess.Stream.NextScalarAbs(), cfg.BaseGridSize.H, p.MapSizeFactor, cfg.MinGridSize.H)

	ms := 1 << p.NoiseMultisampleFactor

	slog.Info("map dimensions", "session", sess.ID, "width", dims.W, "height", dims.H, "multisample", ms)

	field, err := buildField(sess, cfg, noise.Size{X: dims.W * ms, Y: dims.H * ms})
	if err != nil {
		return nil, fmt.Errorf("build noise field: %w", err)
	}

	res := &Result{
		SessionID: sess.ID,
		Seed:      sess.Seed,
		Params:    p,
		Dims:      dims,
		MSFactor:  ms,
		Field:     cfg.Field,
	}

	tiles := NewTileSet(dims)
	for x := 0; x < dims.W; x++ {
		for y := 0; y < dims.H; y++ {
			intensity, ok := res.multisample(field, x, y)
			if !ok || intensity <= cfg.IntensityThreshold {
				continue
			}
			if sess.Stream.NextScalarAbs() <= cfg.RandomThreshold {
				continue
			}
			norm := max(intensity-cfg.IntensityThreshold, 0)
			if err := tiles.Add(Tile{Pos: Pos{X: x, Y: y}, Category: CategoryFor(norm)}); err != nil {
				return nil, fmt.Errorf("place tile: %w", err)
			}
		}
	}

	if res.FailedSamples() > 0 {
		slog.Warn("noise samples failed",
			"session", sess.ID,
			"out_of_bounds", res.OutOfBounds,
			"insufficient_candidates", res.Insufficient,
		)
	}

	stages := cfg.Stages
	if stages == nil {
		stages = DefaultStages(p.MinTileDistance, p.TerrainDeformFactor)
	}
	for _, st := range stages {
		before := tiles.Len()
		tiles = st.Apply(tiles)
		if tiles == nil {
			return nil, fmt.Errorf("stage %s returned no tiles", st.Name())
		}
		slog.Debug("stage complete", "session", sess.ID, "stage", st.Name(), "before", before, "after", tiles.Len())
	}

	res.Tiles = tiles.View()
	slog.Info("map generated", "session", sess.ID, "tiles", tiles.Len(), "samples", res.Samples)
	return res, nil
}

// gridDim scales base by a random factor in [0.5, 1] and the map size factor.
func gridDim(draw float64, base, sizeFactor, floor int) int {
	scale := min(max(draw, 0.5), 1.0)
	n := int(math.Round(scale * float64(base) * float64(sizeFactor)))
	return max(n, floor)
}

// buildField constructs the configured noise field over bounds.
func buildField(sess *Session, cfg GenConfig, bounds noise.Size) (noise.Field, error) {
	switch cfg.Field {
	case FieldWorley:
		ncfg := noise.DefaultConfig(bounds)
		ncfg.Metric = noise.Metric(sess.Params.NoiseDistanceMetric)
		if cfg.TuneNoise != nil {
			cfg.TuneNoise(&ncfg)
		}
		w, err := noise.NewWorley(sess.Stream, ncfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case FieldSimplex:
		seed := int64(sess.Stream.NextInteger())
		return noise.NewSimplex(noise.DefaultSimplexConfig(bounds, seed)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, cfg.Field)
	}
}

// multisample averages the field over the ms×ms sub-grid of cell (x, y).
// Failed samples are counted and left out of the average; ok is false when
// every sample failed.
func (r *Result) multisample(f noise.Field, x, y int) (intensity float64, ok bool) {
	ms := r.MSFactor
	sum := 0.0
	n := 0
	for i := 0; i < ms*ms; i++ {
		pt := noise.Point{X: float64(ms*x + i%ms), Y: float64(ms*y + i/ms)}
		v, err := f.Noise2D(pt)
		r.Samples++
		if err != nil {
			switch {
			case errors.Is(err, noise.ErrOutOfBounds):
				r.OutOfBounds++
			default:
				r.Insufficient++
			}
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
