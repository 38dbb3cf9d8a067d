package parameter

import (
	"time"
)

// Simulation Tick
const (
	// TickRate is fixed simulation steps per second
	TickRate = 60

	// TickDuration is the fixed simulation step length
	TickDuration = time.Second / TickRate
)

// Event Queue
const (
	// EventQueueSize is the ring buffer capacity, must be a power of two
	EventQueueSize = 256

	// EventBufferMask converts a monotonic index to a buffer slot
	EventBufferMask = EventQueueSize - 1
)
