package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhasePreUpdate  Phase = iota // 0: dispatch last tick's events
	PhaseUpdate                  // 1: creep task execution and selection
	PhasePostUpdate              // 2: spawning
	PhasePersist                 // 3: persisted memory maintenance
	PhaseCleanup                 // 4: stats, host step, destroy queued objects
)

// System is the interface every tick system implements. A non-nil error aborts the
// rest of the tick.
type System interface {
	Phase() Phase
	Update(dt time.Duration) error
}
