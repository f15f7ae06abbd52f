package host

import "context"

// MemoryStore is the host's persisted per-creep storage, keyed by creep name.
// It lives outside the engine process; entries outlive the creeps they belong to
// until something deletes them.
type MemoryStore interface {
	Keys(ctx context.Context) ([]string, error)
	Load(ctx context.Context, name string) ([]byte, bool, error)
	Save(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
}
