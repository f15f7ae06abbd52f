package brain

import (
	"fmt"

	"github.com/sheepfold/sheep/internal/core/event"
	"github.com/sheepfold/sheep/internal/host"
	"go.uber.org/zap"
)

// SpawnName builds the name for the seq-th successful spawn of a tick.
func SpawnName(tick uint32, seq int) string {
	return fmt.Sprintf("%d-%d", tick, seq)
}

// RunSpawns gives every owned spawn one chance to build a creep. The sequence number is
// shared by all spawns of the tick and only advances on success, so names never repeat
// within a tick. It returns the number of creeps spawned.
func (c *Context) RunSpawns() (int, error) {
	tick := c.Game.Time()
	seq := 0
	for _, spawn := range c.Game.Spawns() {
		c.Log.Debug("running spawn", zap.String("spawn", spawn.Name()))

		room, ok := spawn.Room()
		if !ok {
			return seq, fmt.Errorf("spawn %s: %w", spawn.Name(), ErrNoRoom)
		}
		energy := room.EnergyAvailable()
		body, err := c.Planner.BodyPlan(energy)
		if err != nil {
			c.Log.Warn("couldn't plan body", zap.String("spawn", spawn.Name()), zap.Error(err))
			continue
		}
		if energy < host.BodyCost(body) {
			continue
		}

		name := SpawnName(tick, seq)
		role := RoleForSeq(seq)
		if err := spawn.SpawnCreep(body, name); err != nil {
			c.Log.Warn("couldn't spawn", zap.String("spawn", spawn.Name()), zap.String("name", name), zap.Error(err))
			continue
		}
		c.Registry.Register(name, role)
		emit(c, event.CreepSpawned{Tick: tick, Name: name, Role: role.String(), Spawn: spawn.Name()})
		seq++
	}
	return seq, nil
}
