package brain

import (
	"errors"

	"github.com/sheepfold/sheep/internal/host"
	"go.uber.org/zap"
)

// RunCreep advances one creep by one tick: execute the current task if its precondition
// holds, otherwise select a new one. Spawning creeps are skipped untouched.
//
// The only error is ErrNoRoom from task selection.
func (c *Context) RunCreep(creep host.Creep) error {
	if creep.Spawning() {
		return nil
	}
	name := creep.Name()
	c.Log.Debug("running creep", zap.String("name", name))

	rec := c.Registry.GetOrCreate(name)
	if c.execute(creep, rec) {
		return nil
	}
	return c.selectTask(creep, rec)
}

// execute performs one step of rec.Task. It returns false when there is no task or the
// task's precondition fails this tick, in which case the caller falls through to
// selection without clearing the task first.
func (c *Context) execute(creep host.Creep, rec *Record) bool {
	store := creep.Store()
	carrying := store.UsedCapacity(host.ResourceEnergy) > 0

	switch t := rec.Task.(type) {
	case nil:
		return false

	case Upgrade:
		if !carrying {
			return false
		}
		c.announce(creep, rec.Role)
		ctrl, ok := t.Controller.Resolve(c.Game)
		if !ok {
			c.clear(creep, rec, "gone")
			return true
		}
		c.settle(creep, rec, ctrl, creep.UpgradeController(ctrl), "upgrade")

	case Harvest:
		if store.FreeCapacity(host.ResourceEnergy) <= 0 {
			return false
		}
		c.announce(creep, rec.Role)
		src, ok := t.Source.Resolve(c.Game)
		if !ok {
			c.clear(creep, rec, "gone")
			return true
		}
		// adjacency is checked up front; a harvest error is never a range error here
		if !creep.Pos().IsNearTo(src.Pos()) {
			_ = creep.MoveTo(src)
			return true
		}
		if err := creep.Harvest(src); err != nil {
			c.Log.Warn("couldn't harvest", zap.String("creep", creep.Name()), zap.Error(err))
			c.clear(creep, rec, err.Error())
		}

	case Build:
		if !carrying {
			return false
		}
		c.announce(creep, rec.Role)
		site, ok := t.Site.Resolve(c.Game)
		if !ok {
			c.clear(creep, rec, "gone")
			return true
		}
		c.settle(creep, rec, site, creep.Build(site), "build")

	case FillSpawn:
		if !carrying {
			return false
		}
		c.announce(creep, rec.Role)
		spawn, ok := t.Spawn.Resolve(c.Game)
		if !ok {
			c.clear(creep, rec, "gone")
			return true
		}
		c.settle(creep, rec, spawn, creep.Transfer(spawn, host.ResourceEnergy, 0), "transfer energy")

	default:
		return false
	}
	return true
}

// settle interprets an action result: success keeps the task, "not in range" moves
// toward the target and keeps the task, anything else is logged and clears it.
func (c *Context) settle(creep host.Creep, rec *Record, target host.Object, err error, action string) {
	switch {
	case err == nil:
	case errors.Is(err, host.ErrNotInRange):
		_ = creep.MoveTo(target)
	default:
		c.Log.Warn("couldn't "+action, zap.String("creep", creep.Name()), zap.Error(err))
		c.clear(creep, rec, err.Error())
	}
}
