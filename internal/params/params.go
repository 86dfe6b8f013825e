// Package params decodes a 16-bit seed into generation parameters.
// Each parameter is a fixed bit field of the seed, bit 0 being the least significant.
// Bits 12–15 are not used by any parameter.
package params

import (
	"errors"
	"log/slog"
	"strings"
)

// Parameter ranges.
const (
	MaxDistanceMetric = 5
	MinMapSizeFactor  = 1
	MaxMapSizeFactor  = 4
)

// Params holds the parameters derived from a seed.
type Params struct {
	MapSizeFactor          int  // Bits 0–1, plus one: 1–4
	NoiseDistanceMetric    int  // Bits 2–4, capped at 5
	NoiseMultisampleFactor int  // Bits 5–6: 0–3
	MinTileDistance        int  // Bits 7–8: 0–3, not consumed yet
	TerrainDeformFactor    int  // Bits 9–10: 0–3, not consumed yet
	StartCellCentral       bool // Bit 11
}

// Decode extracts Params from seed. It is a pure function.
func Decode(seed uint16) Params {
	return Params{
		MapSizeFactor:          field(seed, 0, 2) + 1,
		NoiseDistanceMetric:    min(field(seed, 2, 3), MaxDistanceMetric),
		NoiseMultisampleFactor: field(seed, 5, 2),
		MinTileDistance:        field(seed, 7, 2),
		TerrainDeformFactor:    field(seed, 9, 2),
		StartCellCentral:       field(seed, 11, 1) == 1,
	}
}

// field returns the width-bit value starting at bit lo.
func field(seed uint16, lo, width uint) int {
	return int(seed>>lo) & (1<<width - 1)
}

// Bits renders the seed as 16 binary digits, least significant bit first.
func Bits(seed uint16) string {
	var b strings.Builder
	b.Grow(16)
	for i := 0; i < 16; i++ {
		if seed&(1<<i) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// LogValue implements slog.LogValuer.
func (p Params) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("map_size_factor", p.MapSizeFactor),
		slog.Int("noise_distance_metric", p.NoiseDistanceMetric),
		slog.Int("noise_multisample_factor", p.NoiseMultisampleFactor),
		slog.Int("min_tile_distance", p.MinTileDistance),
		slog.Int("terrain_deform_factor", p.TerrainDeformFactor),
		slog.Bool("start_cell_central", p.StartCellCentral),
	)
}

// ErrInvalidSeed is returned by ParseSeed for input containing non-digit characters.
var ErrInvalidSeed = errors.New("invalid seed")

// ParseSeed converts a decimal string into a seed. Surrounding whitespace is
// ignored and an empty string is seed 0. Values above 65535 wrap modulo 65536.
func ParseSeed(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	var seed uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ErrInvalidSeed
		}
		seed = seed*10 + uint16(c-'0')
	}
	return seed, nil
}
