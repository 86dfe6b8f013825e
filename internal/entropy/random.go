// Package entropy provides the deterministic pseudo-random stream that drives map generation.
// A Stream is owned by exactly one generation session; interleaving draws from two sessions
// on the same Stream breaks reproducibility for both.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

// DefaultState is the stream state before any call to Seed.
const DefaultState uint16 = 34083

// Stream is a deterministic generator over a 16-bit state.
// Not safe for concurrent use.
type Stream struct {
	state    uint16
	interval int // Waveform selector for NextScalar; never reset by Seed
}

// NewStream creates a stream seeded with v.
func NewStream(v uint16) *Stream {
	return &Stream{state: v}
}

// Seed replaces the stream state. The waveform counter is left alone.
func (s *Stream) Seed(v uint16) {
	s.state = v
}

// State returns the current 16-bit state.
func (s *Stream) State() uint16 {
	return s.state
}

// Interval returns the number of scalar draws taken so far.
func (s *Stream) Interval() int {
	return s.interval
}

// NextInteger advances the state and returns it.
func (s *Stream) NextInteger() uint16 {
	s.advance()
	return s.state
}

// NextScalar returns a value in [-1, 1]. The waveform cycles through
// sin(s), cos(s²), sin(s³), cos(s⁴) across successive calls.
func (s *Stream) NextScalar() float64 {
	var out float64
	switch s.interval % 4 {
	case 0:
		out = math.Sin(float64(s.state))
	case 1:
		out = math.Cos(float64(wrapPow(s.state, 2)))
	case 2:
		out = math.Sin(float64(wrapPow(s.state, 3)))
	case 3:
		out = math.Cos(float64(wrapPow(s.state, 4)))
	}

	s.advance()
	s.interval++

	return out
}

// NextScalarAbs returns |NextScalar()|, in [0, 1].
func (s *Stream) NextScalarAbs() float64 {
	return math.Abs(s.NextScalar())
}

// advance applies state = state·ln(state) / atan2(state, cos(state)).
//
// The transform is undefined at state 0 (0·-Inf). Rather than special-casing
// it, the result goes through the same narrowing an x86 build performs, so
// 0 (and 1, which maps to 0) become a fixed point of the stream.
func (s *Stream) advance() {
	x := float64(s.state)
	v := (x * math.Log(x)) / math.Atan2(x, math.Cos(x))
	s.state = narrow(v)
}

// narrow truncates v toward zero into an int32 and keeps the low 16 bits.
func narrow(v float64) uint16 {
	if math.IsNaN(v) || v >= math.MaxInt32+1 || v < math.MinInt32 {
		// x86 yields the "integer indefinite" 0x80000000 here; its low 16 bits are zero.
		return 0
	}
	return uint16(uint32(int32(v)))
}

// wrapPow computes s^n with 32-bit signed wraparound.
func wrapPow(s uint16, n int) int32 {
	base := int32(s)
	out := base
	for i := 1; i < n; i++ {
		out *= base
	}
	return out
}

// RandomSeed returns a non-deterministic 16-bit seed from crypto/rand.
// Falls back to DefaultState if the system source fails.
func RandomSeed() uint16 {
	var buf [2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// This should never happen.
		return DefaultState
	}
	return binary.LittleEndian.Uint16(buf[:])
}
