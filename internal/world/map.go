package world

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrOutOfGrid is returned when adding a tile outside the grid.
	ErrOutOfGrid = errors.New("tile outside grid")
	// ErrOccupied is returned when adding a tile on an occupied position.
	ErrOccupied = errors.New("position already holds a tile")
)

// TileSet holds every tile of one generation run.
type TileSet struct {
	dims  Dims
	tiles []Tile      // Insertion order
	index map[Pos]int // Position → index into tiles
}

// NewTileSet creates an empty set for a grid of the given size.
func NewTileSet(dims Dims) *TileSet {
	return &TileSet{
		dims:  dims,
		index: make(map[Pos]int),
	}
}

// Dims returns the grid extent.
func (s *TileSet) Dims() Dims {
	return s.dims
}

// Add places a tile. At most one tile may occupy a position.
func (s *TileSet) Add(t Tile) error {
	if !s.dims.Contains(t.Pos) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfGrid, t.Pos.X, t.Pos.Y, s.dims.W, s.dims.H)
	}
	if _, ok := s.index[t.Pos]; ok {
		return fmt.Errorf("%w: (%d, %d)", ErrOccupied, t.Pos.X, t.Pos.Y)
	}
	s.index[t.Pos] = len(s.tiles)
	s.tiles = append(s.tiles, t)
	return nil
}

// At returns the tile at p, if any.
func (s *TileSet) At(p Pos) (Tile, bool) {
	i, ok := s.index[p]
	if !ok {
		return Tile{}, false
	}
	return s.tiles[i], true
}

// All iterates tiles in placement order.
func (s *TileSet) All() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for _, t := range s.tiles {
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of tiles.
func (s *TileSet) Len() int {
	return len(s.tiles)
}

// String returns a summary of the set.
func (s *TileSet) String() string {
	return fmt.Sprintf("TileSet(%dx%d, tiles=%d)", s.dims.W, s.dims.H, s.Len())
}

// TileView is read-only access to a tile set.
type TileView interface {
	Dims() Dims
	Len() int
	At(p Pos) (Tile, bool)
	All() iter.Seq[Tile]
}

// View returns a read-only view of s. Later additions to s are visible
// through it.
func (s *TileSet) View() TileView {
	return tileView{s: s}
}

type tileView struct {
	s *TileSet
}

func (v tileView) Dims() Dims { return v.s.Dims() }
func (v tileView) Len() int { return v.s.Len() }
func (v tileView) At(p Pos) (Tile, bool) { return v.s.At(p) }
func (v tileView) All() iter.Seq[Tile] { return v.s.All() }
func (v tileView) String() string { return v.s.String() }

// CategoryCounts returns the number of tiles in each band.
func CategoryCounts(s TileView) [NumCategories]int {
	var counts [NumCategories]int
	for t := range s.All() {
		if int(t.Category) < NumCategories {
			counts[t.Category]++
		}
	}
	return counts
}
