package brain

import (
	"context"
	"sort"

	"github.com/sheepfold/sheep/internal/host"
)

// In-memory stand-ins for the host boundary. Only the behavior the engine observes is
// modeled; actions simply record that they were called and return a preset error.

type fakeGame struct {
	tick    uint32
	creeps  []*fakeCreep
	spawns  []*fakeSpawn
	objects map[host.ObjectID]host.Object
}

func newFakeGame(tick uint32) *fakeGame {
	return &fakeGame{tick: tick, objects: make(map[host.ObjectID]host.Object)}
}

func (g *fakeGame) Time() uint32      { return g.tick }
func (g *fakeGame) CPUUsed() float64  { return 0 }
func (g *fakeGame) add(o host.Object) { g.objects[o.ID()] = o }
func (g *fakeGame) remove(id host.ObjectID) {
	delete(g.objects, id)
}

func (g *fakeGame) Creeps() []host.Creep {
	out := make([]host.Creep, 0, len(g.creeps))
	for _, c := range g.creeps {
		out = append(out, c)
	}
	return out
}

func (g *fakeGame) Spawns() []host.Spawn {
	out := make([]host.Spawn, 0, len(g.spawns))
	for _, s := range g.spawns {
		out = append(out, s)
	}
	return out
}

func (g *fakeGame) GetObjectByID(id host.ObjectID) (host.Object, bool) {
	o, ok := g.objects[id]
	return o, ok
}

type fakeObj struct {
	id  host.ObjectID
	pos host.Position
}

func (o *fakeObj) ID() host.ObjectID  { return o.id }
func (o *fakeObj) Pos() host.Position { return o.pos }

type fakeSource struct {
	fakeObj
	energy int
}

func (s *fakeSource) Energy() int { return s.energy }

type fakeController struct{ fakeObj }

func (*fakeController) Level() int    { return 1 }
func (*fakeController) Progress() int { return 0 }

type fakeSite struct{ fakeObj }

func (*fakeSite) Progress() int      { return 0 }
func (*fakeSite) ProgressTotal() int { return 100 }

type fakeRoom struct {
	name       string
	energy     int
	controller *fakeController
	sources    []*fakeSource
	sites      []*fakeSite
	spawns     []*fakeSpawn
}

func (r *fakeRoom) Name() string         { return r.name }
func (r *fakeRoom) EnergyAvailable() int { return r.energy }

func (r *fakeRoom) Controller() (host.Controller, bool) {
	if r.controller == nil {
		return nil, false
	}
	return r.controller, true
}

func (r *fakeRoom) ActiveSources() []host.Source {
	var out []host.Source
	for _, s := range r.sources {
		if s.energy > 0 {
			out = append(out, s)
		}
	}
	return out
}

func (r *fakeRoom) ConstructionSites() []host.ConstructionSite {
	var out []host.ConstructionSite
	for _, s := range r.sites {
		out = append(out, s)
	}
	return out
}

func (r *fakeRoom) MySpawns() []host.Spawn {
	var out []host.Spawn
	for _, s := range r.spawns {
		out = append(out, s)
	}
	return out
}

type fakeSpawn struct {
	fakeObj
	name     string
	room     *fakeRoom
	energy   int
	capacity int
	spawnErr error
	spawned  []string
}

func (s *fakeSpawn) Name() string   { return s.name }
func (s *fakeSpawn) Spawning() bool { return false }

func (s *fakeSpawn) Room() (host.Room, bool) {
	if s.room == nil {
		return nil, false
	}
	return s.room, true
}

func (s *fakeSpawn) Store() host.Store {
	return host.Store{Amounts: map[host.ResourceType]int{host.ResourceEnergy: s.energy}, Capacity: s.capacity}
}

func (s *fakeSpawn) SpawnCreep(_ []host.Part, name string) error {
	if s.spawnErr != nil {
		return s.spawnErr
	}
	s.spawned = append(s.spawned, name)
	return nil
}

type fakeCreep struct {
	fakeObj
	name     string
	spawning bool
	room     *fakeRoom
	energy   int
	capacity int

	said  []string
	moves []host.ObjectID
	acts  []string

	upgradeErr  error
	harvestErr  error
	buildErr    error
	transferErr error
}

func (c *fakeCreep) Name() string   { return c.name }
func (c *fakeCreep) Spawning() bool { return c.spawning }

func (c *fakeCreep) Room() (host.Room, bool) {
	if c.room == nil {
		return nil, false
	}
	return c.room, true
}

func (c *fakeCreep) Store() host.Store {
	return host.Store{Amounts: map[host.ResourceType]int{host.ResourceEnergy: c.energy}, Capacity: c.capacity}
}

func (c *fakeCreep) Say(msg string, _ bool) error {
	c.said = append(c.said, msg)
	return nil
}

func (c *fakeCreep) MoveTo(target host.Object) error {
	c.moves = append(c.moves, target.ID())
	return nil
}

func (c *fakeCreep) Harvest(host.Source) error {
	c.acts = append(c.acts, "harvest")
	return c.harvestErr
}

func (c *fakeCreep) Build(host.ConstructionSite) error {
	c.acts = append(c.acts, "build")
	return c.buildErr
}

func (c *fakeCreep) UpgradeController(host.Controller) error {
	c.acts = append(c.acts, "upgrade")
	return c.upgradeErr
}

func (c *fakeCreep) Transfer(host.Object, host.ResourceType, int) error {
	c.acts = append(c.acts, "transfer")
	return c.transferErr
}

// fakeMemory is a host.MemoryStore backed by a map.
type fakeMemory struct {
	data      map[string][]byte
	deleteErr map[string]error
	keysErr   error
}

func newFakeMemory(names ...string) *fakeMemory {
	m := &fakeMemory{data: make(map[string][]byte), deleteErr: make(map[string]error)}
	for _, n := range names {
		m.data[n] = []byte("{}")
	}
	return m
}

func (m *fakeMemory) Keys(context.Context) ([]string, error) {
	if m.keysErr != nil {
		return nil, m.keysErr
	}
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *fakeMemory) Load(_ context.Context, name string) ([]byte, bool, error) {
	d, ok := m.data[name]
	return d, ok, nil
}

func (m *fakeMemory) Save(_ context.Context, name string, data []byte) error {
	m.data[name] = data
	return nil
}

func (m *fakeMemory) Delete(_ context.Context, name string) error {
	if err := m.deleteErr[name]; err != nil {
		return err
	}
	delete(m.data, name)
	return nil
}

// world is a one-room fixture: controller at (25,25), one source at (10,10), one spawn
// at (20,20). Creeps are added by the individual tests.
type world struct {
	game  *fakeGame
	room  *fakeRoom
	ctrl  *fakeController
	src   *fakeSource
	spawn *fakeSpawn
}

func newWorld(tick uint32) *world {
	g := newFakeGame(tick)
	room := &fakeRoom{name: "W1N1", energy: 300}
	ctrl := &fakeController{fakeObj{id: "ctrl", pos: host.Position{Room: "W1N1", X: 25, Y: 25}}}
	src := &fakeSource{fakeObj: fakeObj{id: "src", pos: host.Position{Room: "W1N1", X: 10, Y: 10}}, energy: 3000}
	spawn := &fakeSpawn{
		fakeObj:  fakeObj{id: "spawn1", pos: host.Position{Room: "W1N1", X: 20, Y: 20}},
		name:     "Spawn1",
		room:     room,
		energy:   300,
		capacity: 300,
	}
	room.controller = ctrl
	room.sources = []*fakeSource{src}
	room.spawns = []*fakeSpawn{spawn}
	g.add(ctrl)
	g.add(src)
	g.add(spawn)
	g.spawns = []*fakeSpawn{spawn}
	return &world{game: g, room: room, ctrl: ctrl, src: src, spawn: spawn}
}

func (w *world) creep(name string, energy int, pos host.Position) *fakeCreep {
	c := &fakeCreep{
		fakeObj:  fakeObj{id: host.ObjectID("creep-" + name), pos: pos},
		name:     name,
		room:     w.room,
		energy:   energy,
		capacity: 50,
	}
	w.game.creeps = append(w.game.creeps, c)
	w.game.add(c)
	return c
}

func (w *world) site(id string) *fakeSite {
	s := &fakeSite{fakeObj{id: host.ObjectID(id), pos: host.Position{Room: "W1N1", X: 30, Y: 30}}}
	w.room.sites = append(w.room.sites, s)
	w.game.add(s)
	return s
}

func at(x, y int) host.Position { return host.Position{Room: "W1N1", X: x, Y: y} }
