package engine

import (
	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/status"
	"github.com/lixenwraith/nova-strike/vmath"
)

// Resources bundles the shared services every system receives through the
// world; no system reaches for globals
type Resources struct {
	Clock  *PausableClock
	Rand   *vmath.FastRand
	Events *event.Queue
	Status *status.Registry

	Obstacles ObstacleQuery
	Score     ScoreSink
	Cues      CuePlayer
}

// NewResources creates a resource bundle with nop collaborators
// Callers replace the collaborator fields before constructing systems
func NewResources(seed uint64) *Resources {
	return &Resources{
		Clock:     NewPausableClock(),
		Rand:      vmath.NewFastRand(seed),
		Events:    event.NewQueue(),
		Status:    status.NewRegistry(),
		Obstacles: OpenField{},
		Score:     NopScore{},
		Cues:      NopCues{},
	}
}
