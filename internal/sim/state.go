// Package sim is an in-process stand-in for the game host. It keeps a small tile world in
// ECS component stores and exposes it through the host interfaces, one tick at a time.
package sim

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sheepfold/sheep/internal/core/ecs"
	"github.com/sheepfold/sheep/internal/host"
	"go.uber.org/zap"
)

// World rules.
const (
	CarryCapacity    = 50
	HarvestPower     = 2 // energy per WORK per tick
	BuildPower       = 5
	UpgradePower     = 1
	SourceCapacity   = 3000
	SourceRegenTicks = 300
	SpawnCapacity    = 300
	SpawnRegen       = 1 // energy per tick while below capacity
	SpawnTimePerPart = 3
	CreepLifetime    = 1500
	LevelProgress    = 200 // controller progress per level
	RangeBuild       = 3
	RangeUpgrade     = 3
	DefaultSiteTotal = 300
)

type creepData struct {
	name      string
	pos       host.Position
	body      []host.Part
	energy    int
	age       int
	spawnLeft int // ticks until spawned; 0 once out
	moved     bool
	said      string
	hasMemory bool
}

type sourceData struct {
	pos      host.Position
	energy   int
	capacity int
	regenIn  int
}

type controllerData struct {
	pos      host.Position
	level    int
	progress int
}

type siteData struct {
	pos       host.Position
	structure string
	progress  int
	total     int
}

type spawnData struct {
	name     string
	pos      host.Position
	energy   int
	capacity int
	spawning ecs.EntityID
}

// State is the simulated world. It implements host.Game.
// Accessed only from the tick loop goroutine.
type State struct {
	world *ecs.World

	creeps      *ecs.PtrComponentStore[creepData]
	sources     *ecs.PtrComponentStore[sourceData]
	controllers *ecs.PtrComponentStore[controllerData]
	sites       *ecs.PtrComponentStore[siteData]
	spawns      *ecs.PtrComponentStore[spawnData]

	rooms       map[string]bool
	creepByName map[string]ecs.EntityID

	tick      uint32
	tickStart time.Time

	memory     host.MemoryStore
	memTimeout time.Duration
	log        *zap.Logger
}

// NewState builds a world from sc. Persisted memory entries listed in the scenario are
// written to mem so there is something stale to clean up.
func NewState(sc *Scenario, mem host.MemoryStore, log *zap.Logger) (*State, error) {
	w := ecs.NewWorld()
	s := &State{
		world:       w,
		creeps:      ecs.NewPtrComponentStore[creepData](),
		sources:     ecs.NewPtrComponentStore[sourceData](),
		controllers: ecs.NewPtrComponentStore[controllerData](),
		sites:       ecs.NewPtrComponentStore[siteData](),
		spawns:      ecs.NewPtrComponentStore[spawnData](),
		rooms:       make(map[string]bool),
		creepByName: make(map[string]ecs.EntityID),
		tick:        sc.StartTick,
		tickStart:   time.Now(),
		memory:      mem,
		memTimeout:  5 * time.Second,
		log:         log,
	}
	w.Register(s.creeps)
	w.Register(s.sources)
	w.Register(s.controllers)
	w.Register(s.sites)
	w.Register(s.spawns)

	for _, r := range sc.Rooms {
		s.rooms[r.Name] = true
		if c := r.Controller; c != nil {
			level := c.Level
			if level < 1 {
				level = 1
			}
			s.controllers.Set(w.CreateEntity(), &controllerData{pos: at(r.Name, c.X, c.Y), level: level})
		}
		for _, src := range r.Sources {
			energy := src.Energy
			if energy <= 0 {
				energy = SourceCapacity
			}
			s.sources.Set(w.CreateEntity(), &sourceData{pos: at(r.Name, src.X, src.Y), energy: energy, capacity: SourceCapacity})
		}
		for _, sp := range r.Spawns {
			if sp.Name == "" {
				return nil, fmt.Errorf("room %s: spawn without name", r.Name)
			}
			s.spawns.Set(w.CreateEntity(), &spawnData{name: sp.Name, pos: at(r.Name, sp.X, sp.Y), energy: sp.Energy, capacity: SpawnCapacity})
		}
		for _, site := range r.Sites {
			s.AddSite(at(r.Name, site.X, site.Y), site.Structure, site.Total)
		}
	}

	for _, c := range sc.Creeps {
		body, err := host.ParseBody(c.Body)
		if err != nil {
			return nil, fmt.Errorf("creep %s: %w", c.Name, err)
		}
		if _, dup := s.creepByName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate creep %s", c.Name)
		}
		id := w.CreateEntity()
		s.creeps.Set(id, &creepData{name: c.Name, pos: at(c.Room, c.X, c.Y), body: body, energy: c.Energy})
		s.creepByName[c.Name] = id
	}

	for _, name := range sc.Memory {
		if err := s.saveMemory(name, map[string]any{"stale": true}); err != nil {
			return nil, fmt.Errorf("seed memory %s: %w", name, err)
		}
	}
	return s, nil
}

func at(room string, x, y int) host.Position { return host.Position{Room: room, X: x, Y: y} }

// AddSite places a construction site and returns its ID.
func (s *State) AddSite(pos host.Position, structure string, total int) host.ObjectID {
	if total <= 0 {
		total = DefaultSiteTotal
	}
	id := s.world.CreateEntity()
	s.sites.Set(id, &siteData{pos: pos, structure: structure, total: total})
	return host.ObjectID(id.String())
}

// ── host.Game ──────────────────────────────────────────────────────

func (s *State) Time() uint32 { return s.tick }

// CPUUsed reports wall time spent in the current tick, in milliseconds.
func (s *State) CPUUsed() float64 {
	return float64(time.Since(s.tickStart).Microseconds()) / 1000
}

func (s *State) Creeps() []host.Creep {
	out := make([]host.Creep, 0, s.creeps.Len())
	for _, id := range s.creeps.IDs() {
		out = append(out, &creep{s: s, id: id})
	}
	return out
}

func (s *State) Spawns() []host.Spawn {
	out := make([]host.Spawn, 0, s.spawns.Len())
	for _, id := range s.spawns.IDs() {
		out = append(out, &spawn{s: s, id: id})
	}
	return out
}

func (s *State) GetObjectByID(oid host.ObjectID) (host.Object, bool) {
	id, err := ecs.ParseEntityID(string(oid))
	if err != nil || !s.world.Alive(id) {
		return nil, false
	}
	switch {
	case s.creeps.Has(id):
		return &creep{s: s, id: id}, true
	case s.sources.Has(id):
		return &source{s: s, id: id}, true
	case s.controllers.Has(id):
		return &controller{s: s, id: id}, true
	case s.sites.Has(id):
		return &site{s: s, id: id}, true
	case s.spawns.Has(id):
		return &spawn{s: s, id: id}, true
	}
	return nil, false
}

// Creep looks a creep up by name. Test helper and CLI inspection.
func (s *State) Creep(name string) (host.Creep, bool) {
	id, ok := s.creepByName[name]
	if !ok || !s.creeps.Has(id) {
		return nil, false
	}
	return &creep{s: s, id: id}, true
}

func (s *State) room(name string) (host.Room, bool) {
	if !s.rooms[name] {
		return nil, false
	}
	return &room{s: s, name: name}, true
}

// ── Step ──────────────────────────────────────────────────────────

// Step ends the current tick: creeps age and finish spawning, sources and spawns
// regenerate, completed sites and dead creeps are destroyed, and the clock advances.
func (s *State) Step() {
	var dead []ecs.EntityID
	s.creeps.Each(func(id ecs.EntityID, c *creepData) {
		c.moved = false
		if c.spawnLeft > 0 {
			c.spawnLeft--
			return
		}
		c.age++
		if c.age >= CreepLifetime {
			dead = append(dead, id)
		}
	})
	s.spawns.Each(func(_ ecs.EntityID, sp *spawnData) {
		if sp.spawning != 0 {
			if c, ok := s.creeps.Get(sp.spawning); !ok || c.spawnLeft == 0 {
				sp.spawning = 0
			}
		}
		if sp.energy < sp.capacity {
			sp.energy += SpawnRegen
		}
	})
	s.sources.Each(func(_ ecs.EntityID, src *sourceData) {
		if src.regenIn == 0 {
			return
		}
		src.regenIn--
		if src.regenIn == 0 {
			src.energy = src.capacity
		}
	})
	s.sites.Each(func(id ecs.EntityID, st *siteData) {
		if st.progress >= st.total {
			s.world.MarkForDestruction(id)
		}
	})

	// persisted memory outlives the creep
	for _, id := range dead {
		c, _ := s.creeps.Get(id)
		s.log.Debug("creep died", zap.String("name", c.name), zap.Uint32("tick", s.tick))
		delete(s.creepByName, c.name)
		s.world.MarkForDestruction(id)
	}
	s.world.FlushDestroyQueue()

	s.tick++
	s.tickStart = time.Now()
}

// Kill ends a creep's life at the next Step.
func (s *State) Kill(name string) bool {
	id, ok := s.creepByName[name]
	if !ok {
		return false
	}
	c, ok := s.creeps.Get(id)
	if !ok {
		return false
	}
	c.spawnLeft = 0
	c.age = CreepLifetime
	return true
}

// Summary is a snapshot for logging.
type Summary struct {
	Tick            uint32
	Creeps          int
	Sites           int
	ControllerLevel int
	Progress        int
}

func (s *State) Summary() Summary {
	sum := Summary{Tick: s.tick, Creeps: s.creeps.Len(), Sites: s.sites.Len()}
	s.controllers.Each(func(_ ecs.EntityID, c *controllerData) {
		sum.ControllerLevel += c.level
		sum.Progress += c.progress
	})
	return sum
}

func (s *State) saveMemory(name string, v any) error {
	if s.memory == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.memTimeout)
	defer cancel()
	return s.memory.Save(ctx, name, data)
}

// SetMemoryTimeout bounds each persisted-memory write.
func (s *State) SetMemoryTimeout(d time.Duration) {
	if d > 0 {
		s.memTimeout = d
	}
}
