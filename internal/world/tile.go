// Package world provides the tile grid and the noise-driven generation pipeline.
// Tiles are sparse: most grid positions hold nothing.
package world

// Pos is an integer grid position.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Dims is the extent of a tile grid.
type Dims struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Contains reports whether p lies inside the grid.
func (d Dims) Contains(p Pos) bool {
	return p.X >= 0 && p.X < d.W && p.Y >= 0 && p.Y < d.H
}

// Category is the intensity band of a tile.
type Category uint8

const (
	CategoryLow    Category = iota // Normalized intensity below 0.25
	CategoryMedium                 // [0.25, 0.5)
	CategoryHigh                   // [0.5, 0.75)
	CategoryPeak                   // 0.75 and above
)

// NumCategories is the number of intensity bands.
const NumCategories = 4

// CategoryFor bands a normalized intensity.
func CategoryFor(norm float64) Category {
	switch {
	case norm < 0.25:
		return CategoryLow
	case norm < 0.5:
		return CategoryMedium
	case norm < 0.75:
		return CategoryHigh
	default:
		return CategoryPeak
	}
}

// Glyph returns the character the text renderers print for the category.
func (c Category) Glyph() byte {
	return '3' + byte(c)
}

// String returns a human-readable name for a category.
func (c Category) String() string {
	switch c {
	case CategoryLow:
		return "Low"
	case CategoryMedium:
		return "Medium"
	case CategoryHigh:
		return "High"
	case CategoryPeak:
		return "Peak"
	default:
		return "Unknown"
	}
}

// Tile is a placed grid cell. Tiles are values and are never modified after creation.
type Tile struct {
	Pos      Pos      `json:"pos"`
	Category Category `json:"category"`
}
