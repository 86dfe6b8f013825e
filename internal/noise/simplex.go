package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// SimplexConfig holds OpenSimplex field parameters.
type SimplexConfig struct {
	Bounds      Size
	Seed        int64
	Octaves     int
	Frequency   float64 // Base frequency per sample unit
	Persistence float64 // Amplitude falloff per octave
}

// DefaultSimplexConfig returns a field tuned to give features a few cells across.
func DefaultSimplexConfig(bounds Size, seed int64) SimplexConfig {
	return SimplexConfig{
		Bounds:      bounds,
		Seed:        seed,
		Octaves:     3,
		Frequency:   0.15,
		Persistence: 0.5,
	}
}

// Simplex is a normalized multi-octave OpenSimplex field in [0, 1).
type Simplex struct {
	cfg   SimplexConfig
	noise opensimplex.Noise
}

// NewSimplex creates an OpenSimplex field.
func NewSimplex(cfg SimplexConfig) *Simplex {
	if cfg.Octaves < 1 {
		cfg.Octaves = 1
	}
	return &Simplex{
		cfg:   cfg,
		noise: opensimplex.NewNormalized(cfg.Seed),
	}
}

// Bounds returns the field extent.
func (s *Simplex) Bounds() Size { return s.cfg.Bounds }

// Noise2D samples the field. Only out-of-bounds queries fail.
func (s *Simplex) Noise2D(p Point) (float64, error) {
	if !inBounds(p, s.cfg.Bounds) {
		return Sentinel, ErrOutOfBounds
	}
	return s.octaves(p), nil
}

// octaves sums Octaves layers of doubling frequency and divides by the total
// amplitude so the result stays in the range of a single layer.
func (s *Simplex) octaves(p Point) float64 {
	var sum, norm float64
	amp, freq := 1.0, s.cfg.Frequency
	for range s.cfg.Octaves {
		sum += amp * s.noise.Eval2(p.X*freq, p.Y*freq)
		norm += amp
		amp *= s.cfg.Persistence
		freq *= 2
	}
	return sum / norm
}
