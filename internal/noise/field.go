// Package noise provides the cellular (Worley) noise field sampled by map generation,
// plus an OpenSimplex field with the same query contract.
package noise

import (
	"errors"
	"fmt"
)

// Sentinel is the value returned alongside a query error.
const Sentinel = -1.0

// ErrNoSample is wrapped by every query failure.
var ErrNoSample = errors.New("no noise sample")

var (
	// ErrOutOfBounds means the query point lies outside the field bounds.
	ErrOutOfBounds = fmt.Errorf("%w: point out of bounds", ErrNoSample)
	// ErrInsufficientCandidates means the F-th nearest feature point does not exist
	// in the 3×3 neighbourhood of the query point, or F is zero.
	ErrInsufficientCandidates = fmt.Errorf("%w: insufficient candidate points", ErrNoSample)
)

// Point is a 2D coordinate in sample units.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is an integer extent or count pair.
type Size struct {
	X, Y int
}

// Area returns X·Y.
func (s Size) Area() int {
	return s.X * s.Y
}

// Field is a bounded 2D scalar field.
type Field interface {
	// Noise2D samples the field. On failure it returns Sentinel and an error
	// wrapping ErrNoSample.
	Noise2D(p Point) (float64, error)
	// Bounds returns the field extent; valid points lie in [0,X]×[0,Y].
	Bounds() Size
}

// inBounds reports whether p lies in [0,b.X]×[0,b.Y].
func inBounds(p Point, b Size) bool {
	return p.X >= 0 && p.X <= float64(b.X) && p.Y >= 0 && p.Y <= float64(b.Y)
}
