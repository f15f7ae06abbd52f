// Package host describes the boundary between the creep engine and the game host.
//
// Everything behind these interfaces is owned by the host: world objects may vanish between
// ticks, so the engine only ever keeps ObjectIDs and resolves them again every tick.
package host

// ObjectID names a host object by stable identity. It carries no ownership.
type ObjectID string

// ResourceType names a storable resource.
type ResourceType string

const ResourceEnergy ResourceType = "energy"

// Position is a tile inside a named room.
type Position struct {
	Room string
	X    int
	Y    int
}

// RangeTo returns the chebyshev distance to o, or -1 when o is in another room.
func (p Position) RangeTo(o Position) int {
	if p.Room != o.Room {
		return -1
	}
	dx, dy := abs(p.X-o.X), abs(p.Y-o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// InRangeTo reports whether o is in the same room and at most r tiles away.
func (p Position) InRangeTo(o Position, r int) bool {
	d := p.RangeTo(o)
	return d >= 0 && d <= r
}

// IsNearTo reports whether o is adjacent to (or on) p.
func (p Position) IsNearTo(o Position) bool { return p.InRangeTo(o, 1) }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Store is a snapshot of an object's resource store.
type Store struct {
	Amounts  map[ResourceType]int
	Capacity int
}

// UsedCapacity returns the amount of r currently stored.
func (s Store) UsedCapacity(r ResourceType) int { return s.Amounts[r] }

// FreeCapacity returns how much more of r fits. The store is shared by all resources.
func (s Store) FreeCapacity(_ ResourceType) int {
	used := 0
	for _, n := range s.Amounts {
		used += n
	}
	if free := s.Capacity - used; free > 0 {
		return free
	}
	return 0
}

// Object is anything with an identity and a position.
type Object interface {
	ID() ObjectID
	Pos() Position
}

type Source interface {
	Object
	Energy() int
}

type Controller interface {
	Object
	Level() int
	Progress() int
}

// ConstructionSite may report an empty ID while the host has not assigned one yet.
type ConstructionSite interface {
	Object
	Progress() int
	ProgressTotal() int
}

type Spawn interface {
	Object
	Name() string
	Room() (Room, bool)
	Store() Store
	Spawning() bool
	SpawnCreep(body []Part, name string) error
}

// Creep is a live unit handle. Handles are only valid during the tick they were obtained in.
type Creep interface {
	Object
	Name() string
	Spawning() bool
	Room() (Room, bool)
	Store() Store
	Say(msg string, public bool) error
	MoveTo(target Object) error
	Harvest(target Source) error
	Build(target ConstructionSite) error
	UpgradeController(target Controller) error
	// Transfer moves amount of r into target; amount <= 0 transfers everything carried.
	Transfer(target Object, r ResourceType, amount int) error
}

// Room exposes the discoverable objects of one room. Enumeration order is host-defined.
type Room interface {
	Name() string
	EnergyAvailable() int
	Controller() (Controller, bool)
	ActiveSources() []Source
	ConstructionSites() []ConstructionSite
	MySpawns() []Spawn
}

// Game is the world query API for the current tick.
type Game interface {
	Time() uint32
	CPUUsed() float64
	Creeps() []Creep
	Spawns() []Spawn
	GetObjectByID(id ObjectID) (Object, bool)
}
