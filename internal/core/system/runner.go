package system

import (
	"fmt"
	"sort"
	"time"
)

// Runner executes systems in phase order each tick. Systems sharing a phase run in
// registration order.
type Runner struct {
	systems []System
	sorted  bool
	ticks   uint64
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 8),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Tick runs every system once. The first failing system stops the tick; later
// systems do not run and the error is returned with the failing phase attached.
func (r *Runner) Tick(dt time.Duration) error {
	r.ensureSorted()
	r.ticks++
	for _, s := range r.systems {
		if err := s.Update(dt); err != nil {
			return fmt.Errorf("tick %d phase %d: %w", r.ticks, s.Phase(), err)
		}
	}
	return nil
}

// Ticks reports how many ticks have been started.
func (r *Runner) Ticks() uint64 { return r.ticks }

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
