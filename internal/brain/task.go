package brain

import "github.com/sheepfold/sheep/internal/host"

// Task is a creep's current goal. It is a closed sum type: the only implementations are
// Upgrade, Harvest, Build and FillSpawn. A nil Task means the creep has no task.
//
// Targets are weak references; they are resolved again every tick and may have vanished.
type Task interface {
	Kind() string
	Target() host.ObjectID
	sealed()
}

type Upgrade struct {
	Controller host.Ref[host.Controller]
}

type Harvest struct {
	Source host.Ref[host.Source]
}

type Build struct {
	Site host.Ref[host.ConstructionSite]
}

type FillSpawn struct {
	Spawn host.Ref[host.Spawn]
}

func (Upgrade) Kind() string   { return "upgrade" }
func (Harvest) Kind() string   { return "harvest" }
func (Build) Kind() string     { return "build" }
func (FillSpawn) Kind() string { return "fill_spawn" }

func (t Upgrade) Target() host.ObjectID   { return t.Controller.ID() }
func (t Harvest) Target() host.ObjectID   { return t.Source.ID() }
func (t Build) Target() host.ObjectID     { return t.Site.ID() }
func (t FillSpawn) Target() host.ObjectID { return t.Spawn.ID() }

func (Upgrade) sealed()   {}
func (Harvest) sealed()   {}
func (Build) sealed()     {}
func (FillSpawn) sealed() {}

// kindOf names a possibly-nil task.
func kindOf(t Task) string {
	if t == nil {
		return "idle"
	}
	return t.Kind()
}
