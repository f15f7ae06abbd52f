package event

// Events raised by the creep engine. Roles and task kinds travel as their display
// names so this package stays free of engine imports.

type CreepSpawned struct {
	Tick  uint32
	Name  string
	Role  string
	Spawn string
}

type TaskAssigned struct {
	Tick   uint32
	Creep  string
	Kind   string
	Target string
}

type TaskCleared struct {
	Tick   uint32
	Creep  string
	Kind   string
	Reason string
}

type MemoryReaped struct {
	Tick uint32
	Name string
}
