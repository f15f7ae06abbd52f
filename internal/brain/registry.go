package brain

// Record is the engine's per-creep state.
type Record struct {
	Role Role
	Task Task
}

// Registry maps creep names to their Record. It lives as long as the engine process and
// is never evicted; only the host's persisted memory is pruned.
type Registry struct {
	records map[string]*Record
}

func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*Record, 64)}
}

// GetOrCreate returns the record for name, creating (Worker, no task) on first touch.
func (r *Registry) GetOrCreate(name string) *Record {
	rec, ok := r.records[name]
	if !ok {
		rec = &Record{Role: RoleWorker}
		r.records[name] = rec
	}
	return rec
}

// Register installs a fresh record at spawn time. Any record left under a recycled name
// is replaced, so a new creep never inherits a dead creep's role or task.
func (r *Registry) Register(name string, role Role) *Record {
	rec := &Record{Role: role}
	r.records[name] = rec
	return rec
}

func (r *Registry) Lookup(name string) (*Record, bool) {
	rec, ok := r.records[name]
	return rec, ok
}

func (r *Registry) Len() int { return len(r.records) }
