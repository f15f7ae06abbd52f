package brain

import (
	"fmt"

	"github.com/sheepfold/sheep/internal/host"
)

// selectTask picks a new task from the creep's room. Only the first candidate in the
// room's enumeration order is considered. When nothing matches, rec.Task is left as it
// was, so a creep whose task failed its precondition keeps that task.
func (c *Context) selectTask(creep host.Creep, rec *Record) error {
	room, ok := creep.Room()
	if !ok {
		return fmt.Errorf("creep %s: %w", creep.Name(), ErrNoRoom)
	}

	if creep.Store().UsedCapacity(host.ResourceEnergy) > 0 {
		switch rec.Role {
		case RoleBuilder:
			c.selectBuilder(creep, rec, room)
		case RoleWorker:
			c.selectWorker(creep, rec, room)
		}
		return nil
	}

	if sources := room.ActiveSources(); len(sources) > 0 {
		c.assign(creep, rec, Harvest{Source: host.RefOf(sources[0])})
	}
	return nil
}

func (c *Context) selectBuilder(creep host.Creep, rec *Record, room host.Room) {
	if sites := room.ConstructionSites(); len(sites) > 0 {
		site := sites[0]
		if site.ID() == "" {
			c.Log.Warn("construction site has no id")
			return
		}
		c.assign(creep, rec, Build{Site: host.RefOf(site)})
		return
	}
	if ctrl, ok := room.Controller(); ok {
		c.assign(creep, rec, Upgrade{Controller: host.RefOf(ctrl)})
	}
}

func (c *Context) selectWorker(creep host.Creep, rec *Record, room host.Room) {
	for _, spawn := range room.MySpawns() {
		if spawn.Store().FreeCapacity(host.ResourceEnergy) > 0 {
			c.assign(creep, rec, FillSpawn{Spawn: host.RefOf(spawn)})
			return
		}
	}
	if ctrl, ok := room.Controller(); ok {
		c.assign(creep, rec, Upgrade{Controller: host.RefOf(ctrl)})
	}
}
