package sim

import (
	"github.com/sheepfold/sheep/internal/core/ecs"
	"github.com/sheepfold/sheep/internal/host"
	"go.uber.org/zap"
)

// Handles are thin views over component data. They hold only the entity ID and read
// the stores on every call, so a handle to a destroyed object degrades to zero values
// and ErrNotFound instead of reading freed state.

func objectID(id ecs.EntityID) host.ObjectID { return host.ObjectID(id.String()) }

// ── source ──

type source struct {
	s  *State
	id ecs.EntityID
}

func (o *source) ID() host.ObjectID { return objectID(o.id) }

func (o *source) Pos() host.Position {
	if d, ok := o.s.sources.Get(o.id); ok {
		return d.pos
	}
	return host.Position{}
}

func (o *source) Energy() int {
	if d, ok := o.s.sources.Get(o.id); ok {
		return d.energy
	}
	return 0
}

// ── controller ──

type controller struct {
	s  *State
	id ecs.EntityID
}

func (o *controller) ID() host.ObjectID { return objectID(o.id) }

func (o *controller) Pos() host.Position {
	if d, ok := o.s.controllers.Get(o.id); ok {
		return d.pos
	}
	return host.Position{}
}

func (o *controller) Level() int {
	if d, ok := o.s.controllers.Get(o.id); ok {
		return d.level
	}
	return 0
}

func (o *controller) Progress() int {
	if d, ok := o.s.controllers.Get(o.id); ok {
		return d.progress
	}
	return 0
}

// ── construction site ──

type site struct {
	s  *State
	id ecs.EntityID
}

func (o *site) ID() host.ObjectID { return objectID(o.id) }

func (o *site) Pos() host.Position {
	if d, ok := o.s.sites.Get(o.id); ok {
		return d.pos
	}
	return host.Position{}
}

func (o *site) Progress() int {
	if d, ok := o.s.sites.Get(o.id); ok {
		return d.progress
	}
	return 0
}

func (o *site) ProgressTotal() int {
	if d, ok := o.s.sites.Get(o.id); ok {
		return d.total
	}
	return 0
}

// ── spawn ──

type spawn struct {
	s  *State
	id ecs.EntityID
}

func (o *spawn) ID() host.ObjectID { return objectID(o.id) }

func (o *spawn) Pos() host.Position {
	if d, ok := o.s.spawns.Get(o.id); ok {
		return d.pos
	}
	return host.Position{}
}

func (o *spawn) Name() string {
	if d, ok := o.s.spawns.Get(o.id); ok {
		return d.name
	}
	return ""
}

func (o *spawn) Room() (host.Room, bool) { return o.s.room(o.Pos().Room) }

func (o *spawn) Store() host.Store {
	d, ok := o.s.spawns.Get(o.id)
	if !ok {
		return host.Store{}
	}
	return host.Store{Amounts: map[host.ResourceType]int{host.ResourceEnergy: d.energy}, Capacity: d.capacity}
}

func (o *spawn) Spawning() bool {
	d, ok := o.s.spawns.Get(o.id)
	return ok && d.spawning != 0
}

// SpawnCreep starts building a creep. The creep exists (spawning) from this tick on,
// and the energy is taken from the room's spawns, this one first.
func (o *spawn) SpawnCreep(body []host.Part, name string) error {
	s := o.s
	d, ok := s.spawns.Get(o.id)
	if !ok {
		return host.ErrNotFound
	}
	if len(body) == 0 || name == "" {
		return host.ErrInvalidArgs
	}
	if _, taken := s.creepByName[name]; taken {
		return host.ErrNameExists
	}
	if d.spawning != 0 {
		return host.ErrBusy
	}
	rm, ok := o.Room()
	if !ok {
		return host.ErrInvalidTarget
	}
	cost := host.BodyCost(body)
	if rm.EnergyAvailable() < cost {
		return host.ErrNotEnoughEnergy
	}

	left := cost
	take := func(sp *spawnData) {
		n := min(left, sp.energy)
		sp.energy -= n
		left -= n
	}
	take(d)
	s.spawns.Each(func(_ ecs.EntityID, sp *spawnData) {
		if left > 0 && sp.pos.Room == d.pos.Room {
			take(sp)
		}
	})

	id := s.world.CreateEntity()
	s.creeps.Set(id, &creepData{
		name:      name,
		pos:       d.pos,
		body:      append([]host.Part(nil), body...),
		spawnLeft: SpawnTimePerPart * len(body),
		hasMemory: true,
	})
	s.creepByName[name] = id
	d.spawning = id

	if err := s.saveMemory(name, map[string]any{"spawn": d.name, "born": s.tick}); err != nil {
		s.log.Warn("couldn't write creep memory", zap.String("name", name), zap.Error(err))
	}
	return nil
}

// ── room ──

type room struct {
	s    *State
	name string
}

func (r *room) Name() string { return r.name }

// EnergyAvailable sums the energy held by the room's spawns.
func (r *room) EnergyAvailable() int {
	total := 0
	r.s.spawns.Each(func(_ ecs.EntityID, sp *spawnData) {
		if sp.pos.Room == r.name {
			total += sp.energy
		}
	})
	return total
}

func (r *room) Controller() (host.Controller, bool) {
	for _, id := range r.s.controllers.IDs() {
		if d, _ := r.s.controllers.Get(id); d.pos.Room == r.name {
			return &controller{s: r.s, id: id}, true
		}
	}
	return nil, false
}

func (r *room) ActiveSources() []host.Source {
	var out []host.Source
	r.s.sources.Each(func(id ecs.EntityID, d *sourceData) {
		if d.pos.Room == r.name && d.energy > 0 {
			out = append(out, &source{s: r.s, id: id})
		}
	})
	return out
}

func (r *room) ConstructionSites() []host.ConstructionSite {
	var out []host.ConstructionSite
	r.s.sites.Each(func(id ecs.EntityID, d *siteData) {
		if d.pos.Room == r.name && d.progress < d.total {
			out = append(out, &site{s: r.s, id: id})
		}
	})
	return out
}

func (r *room) MySpawns() []host.Spawn {
	var out []host.Spawn
	r.s.spawns.Each(func(id ecs.EntityID, d *spawnData) {
		if d.pos.Room == r.name {
			out = append(out, &spawn{s: r.s, id: id})
		}
	})
	return out
}
