package brain

import (
	"context"
	"fmt"

	"github.com/sheepfold/sheep/internal/core/event"
	"go.uber.org/zap"
)

// DefaultReapInterval is how many ticks pass between memory cleanups.
const DefaultReapInterval = 1000

// ShouldReap reports whether tick is a cleanup tick.
func ShouldReap(tick uint32, interval uint32) bool {
	return interval > 0 && tick%interval == 0
}

// Reap deletes persisted memory for every name that is not a live creep. Spawning
// creeps count as alive. The Registry is not touched. Individual delete failures are
// logged and skipped; only a failure to list memory is returned.
func (c *Context) Reap(ctx context.Context) (int, error) {
	alive := make(map[string]struct{})
	for _, creep := range c.Game.Creeps() {
		alive[creep.Name()] = struct{}{}
	}

	names, err := c.Memory.Keys(ctx)
	if err != nil {
		return 0, fmt.Errorf("list creep memory: %w", err)
	}

	deleted := 0
	for _, name := range names {
		if _, ok := alive[name]; ok {
			continue
		}
		c.Log.Info("deleting memory for dead creep", zap.String("name", name))
		if err := c.Memory.Delete(ctx, name); err != nil {
			c.Log.Warn("couldn't delete creep memory", zap.String("name", name), zap.Error(err))
			continue
		}
		deleted++
		emit(c, event.MemoryReaped{Tick: c.Game.Time(), Name: name})
	}
	return deleted, nil
}
