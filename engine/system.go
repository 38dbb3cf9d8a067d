package engine

import (
	"time"

	"github.com/lixenwraith/nova-strike/event"
)

// System is one simulation concern resumed once per fixed tick
type System interface {
	// Name returns the system's name for diagnostics
	Name() string

	// Priority orders systems within a tick, lower values run first
	Priority() int

	// Update advances the system by one fixed tick
	Update(dt time.Duration)

	// EventTypes lists the event types routed to HandleEvent
	EventTypes() []event.EventType

	// HandleEvent processes a routed event after systems have updated
	HandleEvent(ev event.GameEvent)
}
