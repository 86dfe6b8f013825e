package world

import (
	"github.com/google/uuid"

	"github.com/talgya/worley-tiles/internal/entropy"
	"github.com/talgya/worley-tiles/internal/params"
)

// Session owns the random stream of one generation run. Every draw in the
// run goes through Stream, so two runs must never share a Session.
// Not safe for concurrent use.
type Session struct {
	ID     uuid.UUID
	Seed   uint16
	Stream *entropy.Stream
	Params params.Params
}

// NewSession seeds a fresh stream and decodes the seed's parameters.
func NewSession(seed uint16) *Session {
	return &Session{
		ID:     uuid.New(),
		Seed:   seed,
		Stream: entropy.NewStream(seed),
		Params: params.Decode(seed),
	}
}
