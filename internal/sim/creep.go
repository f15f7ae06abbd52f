package sim

import (
	"github.com/sheepfold/sheep/internal/core/ecs"
	"github.com/sheepfold/sheep/internal/host"
	"go.uber.org/zap"
)

type creep struct {
	s  *State
	id ecs.EntityID
}

func (c *creep) data() (*creepData, bool) { return c.s.creeps.Get(c.id) }

func (c *creep) ID() host.ObjectID { return objectID(c.id) }

func (c *creep) Pos() host.Position {
	if d, ok := c.data(); ok {
		return d.pos
	}
	return host.Position{}
}

func (c *creep) Name() string {
	if d, ok := c.data(); ok {
		return d.name
	}
	return ""
}

func (c *creep) Spawning() bool {
	d, ok := c.data()
	return ok && d.spawnLeft > 0
}

func (c *creep) Room() (host.Room, bool) { return c.s.room(c.Pos().Room) }

func (c *creep) Store() host.Store {
	d, ok := c.data()
	if !ok {
		return host.Store{}
	}
	return host.Store{
		Amounts:  map[host.ResourceType]int{host.ResourceEnergy: d.energy},
		Capacity: CarryCapacity * host.CountParts(d.body, host.PartCarry),
	}
}

// Said returns the last message the creep said. Test and inspection helper.
func (c *creep) Said() string {
	if d, ok := c.data(); ok {
		return d.said
	}
	return ""
}

// ready returns the creep's data if it can act this tick.
func (c *creep) ready() (*creepData, error) {
	d, ok := c.data()
	if !ok {
		return nil, host.ErrNotFound
	}
	if d.spawnLeft > 0 {
		return nil, host.ErrBusy
	}
	return d, nil
}

func (c *creep) Say(msg string, _ bool) error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	d.said = msg
	return nil
}

// MoveTo takes one step toward target. Movement ignores terrain and other creeps.
func (c *creep) MoveTo(target host.Object) error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	if host.CountParts(d.body, host.PartMove) == 0 {
		return host.ErrNoBodyPart
	}
	if d.moved {
		return host.ErrTired
	}
	dest := target.Pos()
	if dest.Room != d.pos.Room {
		return host.ErrNoPath
	}
	if d.pos.IsNearTo(dest) {
		return nil
	}
	d.pos.X += sign(dest.X - d.pos.X)
	d.pos.Y += sign(dest.Y - d.pos.Y)
	d.moved = true

	if !d.hasMemory {
		d.hasMemory = true
		if err := c.s.saveMemory(d.name, map[string]any{"_move": map[string]any{"dest": string(target.ID()), "time": c.s.tick}}); err != nil {
			c.s.log.Warn("couldn't write creep memory", zap.String("name", d.name), zap.Error(err))
		}
	}
	return nil
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func (c *creep) Harvest(target host.Source) error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	work := host.CountParts(d.body, host.PartWork)
	if work == 0 {
		return host.ErrNoBodyPart
	}
	src, ok := c.s.sourceAt(target)
	if !ok {
		return host.ErrInvalidTarget
	}
	if !d.pos.IsNearTo(src.pos) {
		return host.ErrNotInRange
	}
	if src.energy == 0 {
		return host.ErrNotEnoughEnergy
	}
	n := min(work*HarvestPower, src.energy)
	src.energy -= n
	if src.regenIn == 0 {
		src.regenIn = SourceRegenTicks
	}
	// overflow is dropped
	free := CarryCapacity*host.CountParts(d.body, host.PartCarry) - d.energy
	d.energy += min(n, max(free, 0))
	return nil
}

func (c *creep) Build(target host.ConstructionSite) error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	work := host.CountParts(d.body, host.PartWork)
	if work == 0 {
		return host.ErrNoBodyPart
	}
	st, ok := c.s.siteAt(target)
	if !ok || st.progress >= st.total {
		return host.ErrInvalidTarget
	}
	if d.energy == 0 {
		return host.ErrNotEnoughEnergy
	}
	if !d.pos.InRangeTo(st.pos, RangeBuild) {
		return host.ErrNotInRange
	}
	n := min(work*BuildPower, d.energy, st.total-st.progress)
	st.progress += n
	d.energy -= n
	return nil
}

func (c *creep) UpgradeController(target host.Controller) error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	work := host.CountParts(d.body, host.PartWork)
	if work == 0 {
		return host.ErrNoBodyPart
	}
	ctrl, ok := c.s.controllerAt(target)
	if !ok {
		return host.ErrInvalidTarget
	}
	if d.energy == 0 {
		return host.ErrNotEnoughEnergy
	}
	if !d.pos.InRangeTo(ctrl.pos, RangeUpgrade) {
		return host.ErrNotInRange
	}
	n := min(work*UpgradePower, d.energy)
	d.energy -= n
	ctrl.progress += n
	for ctrl.progress >= ctrl.level*LevelProgress {
		ctrl.progress -= ctrl.level * LevelProgress
		ctrl.level++
		c.s.log.Info("controller upgraded", zap.String("room", ctrl.pos.Room), zap.Int("level", ctrl.level))
	}
	return nil
}

// Transfer only accepts spawns as targets.
func (c *creep) Transfer(target host.Object, r host.ResourceType, amount int) error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	if r != host.ResourceEnergy {
		return host.ErrInvalidArgs
	}
	sp, ok := c.s.spawnAt(target)
	if !ok {
		return host.ErrInvalidTarget
	}
	if d.energy == 0 {
		return host.ErrNotEnoughEnergy
	}
	if !d.pos.IsNearTo(sp.pos) {
		return host.ErrNotInRange
	}
	free := sp.capacity - sp.energy
	if free <= 0 {
		return host.ErrFull
	}
	n := min(d.energy, free)
	if amount > 0 {
		if amount > d.energy {
			return host.ErrNotEnoughEnergy
		}
		n = min(amount, free)
	}
	d.energy -= n
	sp.energy += n
	return nil
}

// ── target lookups ──
// Targets come from the engine as host interfaces; map them back to component data by ID.

func (s *State) entity(obj host.Object) (ecs.EntityID, bool) {
	if obj == nil {
		return 0, false
	}
	id, err := ecs.ParseEntityID(string(obj.ID()))
	if err != nil || !s.world.Alive(id) {
		return 0, false
	}
	return id, true
}

func (s *State) sourceAt(obj host.Object) (*sourceData, bool) {
	id, ok := s.entity(obj)
	if !ok {
		return nil, false
	}
	return s.sources.Get(id)
}

func (s *State) siteAt(obj host.Object) (*siteData, bool) {
	id, ok := s.entity(obj)
	if !ok {
		return nil, false
	}
	return s.sites.Get(id)
}

func (s *State) controllerAt(obj host.Object) (*controllerData, bool) {
	id, ok := s.entity(obj)
	if !ok {
		return nil, false
	}
	return s.controllers.Get(id)
}

func (s *State) spawnAt(obj host.Object) (*spawnData, bool) {
	id, ok := s.entity(obj)
	if !ok {
		return nil, false
	}
	return s.spawns.Get(id)
}
