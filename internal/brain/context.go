// Package brain is the per-tick decision engine for creeps: role and task bookkeeping,
// task execution, task selection, spawning and persisted-memory reaping.
package brain

import (
	"errors"

	"github.com/sheepfold/sheep/internal/core/event"
	"github.com/sheepfold/sheep/internal/host"
	"go.uber.org/zap"
)

// ErrNoRoom is returned when a creep or spawn cannot resolve its room. Callers treat it
// as fatal for the tick.
var ErrNoRoom = errors.New("couldn't resolve room")

// DefaultBody is the fixed spawn body: 2×MOVE, CARRY, WORK (250 energy).
var DefaultBody = []host.Part{host.PartMove, host.PartMove, host.PartCarry, host.PartWork}

// BodyPlanner picks the body for the next spawn given the room's available energy.
type BodyPlanner interface {
	BodyPlan(energyAvailable int) ([]host.Part, error)
}

// FixedBody always plans the same body.
type FixedBody []host.Part

func (b FixedBody) BodyPlan(int) ([]host.Part, error) { return b, nil }

// Context carries everything the engine needs across ticks. The caller owns it and hands
// the same Context to every tick; a fresh Context starts with an empty Registry.
type Context struct {
	Game     host.Game
	Memory   host.MemoryStore
	Registry *Registry
	Planner  BodyPlanner
	Bus      *event.Bus
	Log      *zap.Logger
}

// NewContext builds a Context with an empty Registry and the default body.
func NewContext(game host.Game, memory host.MemoryStore, bus *event.Bus, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		Game:     game,
		Memory:   memory,
		Registry: NewRegistry(),
		Planner:  FixedBody(DefaultBody),
		Bus:      bus,
		Log:      log,
	}
}

func emit[T any](c *Context, ev T) {
	if c.Bus != nil {
		event.Emit(c.Bus, ev)
	}
}

// announce makes the creep say its role. Purely cosmetic; failures are ignored.
func (c *Context) announce(creep host.Creep, role Role) {
	_ = creep.Say(role.String(), false)
}

func (c *Context) assign(creep host.Creep, rec *Record, t Task) {
	rec.Task = t
	c.announce(creep, rec.Role)
	emit(c, event.TaskAssigned{
		Tick:   c.Game.Time(),
		Creep:  creep.Name(),
		Kind:   t.Kind(),
		Target: string(t.Target()),
	})
}

func (c *Context) clear(creep host.Creep, rec *Record, reason string) {
	emit(c, event.TaskCleared{
		Tick:   c.Game.Time(),
		Creep:  creep.Name(),
		Kind:   kindOf(rec.Task),
		Reason: reason,
	})
	rec.Task = nil
}
