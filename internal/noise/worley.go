package noise

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// Source supplies the random draws used to scatter feature points.
// *entropy.Stream satisfies it.
type Source interface {
	NextScalarAbs() float64
}

// Config holds Worley field parameters.
type Config struct {
	Bounds           Size    // Field extent in sample units
	Divisions        Size    // Grid cells per axis
	MaxPointsPerCell int     // Upper bound on feature points per cell
	F                int     // 1-indexed rank of the feature point that sets the value
	Metric           Metric  // Distance function
	MinkowskiOrder   float64 // Exponent for MetricMinkowski
}

// DefaultConfig returns the field defaults for the given extent.
func DefaultConfig(bounds Size) Config {
	return Config{
		Bounds:           bounds,
		Divisions:        Size{X: 3, Y: 3},
		MaxPointsPerCell: 5,
		F:                1,
		Metric:           MetricEuclidean,
		MinkowskiOrder:   DefaultMinkowskiOrder,
	}
}

// ErrInvalidConfig is returned for field parameters that cannot produce a usable field.
var ErrInvalidConfig = errors.New("invalid noise config")

// Validate checks that the config describes a usable field.
func (c Config) Validate() error {
	if c.Divisions.X < 1 || c.Divisions.Y < 1 {
		return fmt.Errorf("%w: divisions %dx%d", ErrInvalidConfig, c.Divisions.X, c.Divisions.Y)
	}
	if c.Bounds.X < c.Divisions.X || c.Bounds.Y < c.Divisions.Y {
		return fmt.Errorf("%w: bounds %dx%d smaller than divisions %dx%d",
			ErrInvalidConfig, c.Bounds.X, c.Bounds.Y, c.Divisions.X, c.Divisions.Y)
	}
	if c.MaxPointsPerCell < 0 {
		return fmt.Errorf("%w: max points per cell %d", ErrInvalidConfig, c.MaxPointsPerCell)
	}
	if c.F < 0 {
		return fmt.Errorf("%w: F %d", ErrInvalidConfig, c.F)
	}
	if !c.Metric.Valid() {
		return fmt.Errorf("%w: metric %d", ErrInvalidConfig, c.Metric)
	}
	if !(c.MinkowskiOrder > 0) {
		return fmt.Errorf("%w: minkowski order %v", ErrInvalidConfig, c.MinkowskiOrder)
	}
	return nil
}

// Worley is a cellular noise field. The bounded area is split into a grid of
// cells, each holding a random number of feature points. A query returns the
// distance to the F-th nearest feature point in the surrounding 3×3 cells.
//
// Queries are read-only; reconfiguring divisions or point counts repopulates
// every cell from the source.
type Worley struct {
	src Source
	cfg Config

	cellSize Size
	cells    [][]Point // Indexed y*divisions.X + x
}

// NewWorley creates and populates a field, drawing from src.
func NewWorley(src Source, cfg Config) (*Worley, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &Worley{src: src, cfg: cfg}
	w.populate()
	return w, nil
}

// Bounds returns the field extent.
func (w *Worley) Bounds() Size { return w.cfg.Bounds }

// Divisions returns the grid division counts.
func (w *Worley) Divisions() Size { return w.cfg.Divisions }

// CellSize returns the integer extent of one grid cell.
func (w *Worley) CellSize() Size { return w.cellSize }

// MaxPointsPerCell returns the per-cell point cap.
func (w *Worley) MaxPointsPerCell() int { return w.cfg.MaxPointsPerCell }

// F returns the feature rank used by queries.
func (w *Worley) F() int { return w.cfg.F }

// Metric returns the distance metric used by queries.
func (w *Worley) Metric() Metric { return w.cfg.Metric }

// MinkowskiOrder returns the exponent used by MetricMinkowski.
func (w *Worley) MinkowskiOrder() float64 { return w.cfg.MinkowskiOrder }

// SetDivisions changes the grid and repopulates all cells.
func (w *Worley) SetDivisions(d Size) error {
	cfg := w.cfg
	cfg.Divisions = d
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.cfg = cfg
	w.populate()
	return nil
}

// SetMaxPointsPerCell changes the per-cell cap and repopulates all cells.
func (w *Worley) SetMaxPointsPerCell(n int) error {
	cfg := w.cfg
	cfg.MaxPointsPerCell = n
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.cfg = cfg
	w.populate()
	return nil
}

// SetF changes the feature rank. Zero is accepted; queries then fail.
func (w *Worley) SetF(f int) error {
	if f < 0 {
		return fmt.Errorf("%w: F %d", ErrInvalidConfig, f)
	}
	w.cfg.F = f
	return nil
}

// SetMetric changes the distance metric.
func (w *Worley) SetMetric(m Metric) error {
	if !m.Valid() {
		return fmt.Errorf("%w: metric %d", ErrInvalidConfig, m)
	}
	w.cfg.Metric = m
	return nil
}

// SetMinkowskiOrder changes the exponent used by MetricMinkowski.
func (w *Worley) SetMinkowskiOrder(p float64) error {
	if !(p > 0) {
		return fmt.Errorf("%w: minkowski order %v", ErrInvalidConfig, p)
	}
	w.cfg.MinkowskiOrder = p
	return nil
}

// populate scatters feature points. Draw order per cell, in index order:
// point count, then x and y for each point.
func (w *Worley) populate() {
	div := w.cfg.Divisions
	w.cellSize = Size{X: w.cfg.Bounds.X / div.X, Y: w.cfg.Bounds.Y / div.Y}
	w.cells = make([][]Point, div.Area())

	total := 0
	for i := range w.cells {
		cx := i % div.X
		cy := i / div.X
		count := int(w.src.NextScalarAbs() * float64(w.cfg.MaxPointsPerCell))

		origin := Point{X: float64(cx * w.cellSize.X), Y: float64(cy * w.cellSize.Y)}
		pts := make([]Point, 0, count)
		for j := 0; j < count; j++ {
			rx := w.src.NextScalarAbs() * float64(w.cellSize.X)
			ry := w.src.NextScalarAbs() * float64(w.cellSize.Y)
			pts = append(pts, Point{X: origin.X + rx, Y: origin.Y + ry})
		}
		w.cells[i] = pts
		total += count
	}

	slog.Debug("worley field populated",
		"bounds", fmt.Sprintf("%dx%d", w.cfg.Bounds.X, w.cfg.Bounds.Y),
		"divisions", fmt.Sprintf("%dx%d", div.X, div.Y),
		"points", total,
	)
}

// Noise2D returns the normalized distance from p to its F-th nearest feature point.
func (w *Worley) Noise2D(p Point) (float64, error) {
	if !inBounds(p, w.cfg.Bounds) {
		return Sentinel, ErrOutOfBounds
	}

	candidates := w.candidates(w.homeCell(p))
	if w.cfg.F == 0 || w.cfg.F > len(candidates) {
		return Sentinel, ErrInsufficientCandidates
	}

	dists := make([]float64, len(candidates))
	for i, c := range candidates {
		dists[i] = w.cfg.Metric.Distance(p.Sub(c), w.cfg.MinkowskiOrder)
	}
	sort.Float64s(dists)

	return dists[w.cfg.F-1] / w.normalization(), nil
}

// homeCell maps p into grid-division space. A point on the far edge maps one
// past the last cell; its in-grid neighbours still contribute candidates.
func (w *Worley) homeCell(p Point) (int, int) {
	b, div := w.cfg.Bounds, w.cfg.Divisions
	cx := int(math.Floor(p.X / float64(b.X) * float64(div.X)))
	cy := int(math.Floor(p.Y / float64(b.Y) * float64(div.Y)))
	return cx, cy
}

// candidates gathers the points of the 3×3 block around (cx, cy), row by row.
// Cells outside the grid are skipped; there is no wraparound.
func (w *Worley) candidates(cx, cy int) []Point {
	div := w.cfg.Divisions
	var out []Point
	for i := 0; i < 9; i++ {
		x := cx + i%3 - 1
		y := cy + i/3 - 1
		if x < 0 || x > div.X-1 || y < 0 || y > div.Y-1 {
			continue
		}
		out = append(out, w.cells[y*div.X+x]...)
	}
	return out
}

// normalization is the metric length of one cell diagonal, scaled down so
// typical values land near [0, 1].
func (w *Worley) normalization() float64 {
	diag := Point{X: -float64(w.cellSize.X), Y: -float64(w.cellSize.Y)}
	return w.cfg.Metric.Distance(diag, w.cfg.MinkowskiOrder) * w.cfg.Metric.normScale()
}

// Points returns a copy of every feature point in cell index order.
func (w *Worley) Points() []Point {
	var out []Point
	for _, c := range w.cells {
		out = append(out, c...)
	}
	return out
}

// CellPoints returns a copy of the feature points of cell i.
func (w *Worley) CellPoints(i int) []Point {
	if i < 0 || i >= len(w.cells) {
		return nil
	}
	return append([]Point(nil), w.cells[i]...)
}
