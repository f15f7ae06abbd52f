package system

import (
	"time"

	coresys "github.com/sheepfold/sheep/internal/core/system"
)

// Stepper is a host that advances its own clock, such as the simulated world.
type Stepper interface {
	Step()
}

// HostStepSystem ends the tick on an in-process host: aging, regeneration, destroying
// queued objects, advancing the clock. Phase 4 (Cleanup), always last.
type HostStepSystem struct {
	host Stepper
}

func NewHostStepSystem(h Stepper) *HostStepSystem {
	return &HostStepSystem{host: h}
}

func (s *HostStepSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *HostStepSystem) Update(_ time.Duration) error {
	s.host.Step()
	return nil
}
