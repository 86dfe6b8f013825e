package world

// Stage is a pass run over the tiles after placement.
// A stage may return its input unchanged or a new set; it must not keep
// a reference to the input after returning.
type Stage interface {
	Name() string
	Apply(tiles *TileSet) *TileSet
}

// PruneStage is the neighbour-pruning pass. It carries the decoded minimum
// tile distance but does not remove anything yet.
type PruneStage struct {
	MinDistance int
}

func (PruneStage) Name() string { return "prune" }

func (PruneStage) Apply(tiles *TileSet) *TileSet { return tiles }

// CriteriaStage is the pass meant to guarantee essential tiles exist. No-op.
type CriteriaStage struct{}

func (CriteriaStage) Name() string { return "criteria" }

func (CriteriaStage) Apply(tiles *TileSet) *TileSet { return tiles }

// EventStage is the event-assignment pass. It carries the decoded terrain
// deform factor but assigns nothing yet.
type EventStage struct {
	DeformFactor int
}

func (EventStage) Name() string { return "events" }

func (EventStage) Apply(tiles *TileSet) *TileSet { return tiles }

// DefaultStages returns the post-placement passes in run order.
func DefaultStages(minTileDistance, terrainDeformFactor int) []Stage {
	return []Stage{
		PruneStage{MinDistance: minTileDistance},
		CriteriaStage{},
		EventStage{DeformFactor: terrainDeformFactor},
	}
}

// StageFunc adapts a function into a Stage.
type StageFunc struct {
	Label string
	Fn    func(*TileSet) *TileSet
}

func (s StageFunc) Name() string { return s.Label }

func (s StageFunc) Apply(tiles *TileSet) *TileSet { return s.Fn(tiles) }
