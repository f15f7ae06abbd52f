package persist

import (
	"context"
	"fmt"
	"sort"

	"github.com/sheepfold/sheep/internal/config"
	"github.com/sheepfold/sheep/internal/host"
	"go.uber.org/zap"
)

// MapStore is an in-process host.MemoryStore. Contents are lost with the process.
type MapStore struct {
	data map[string][]byte
}

func NewMapStore() *MapStore {
	return &MapStore{data: make(map[string][]byte)}
}

func (m *MapStore) Keys(context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MapStore) Load(_ context.Context, name string) ([]byte, bool, error) {
	d, ok := m.data[name]
	return d, ok, nil
}

func (m *MapStore) Save(_ context.Context, name string, data []byte) error {
	m.data[name] = append([]byte(nil), data...)
	return nil
}

func (m *MapStore) Delete(_ context.Context, name string) error {
	delete(m.data, name)
	return nil
}

// Open builds the memory store selected by cfg.Driver. The returned close func releases
// whatever connection the store holds.
func Open(ctx context.Context, cfg config.StorageConfig, log *zap.Logger) (host.MemoryStore, func(), error) {
	switch cfg.Driver {
	case "memory":
		return NewMapStore(), func() {}, nil

	case "postgres":
		db, err := NewDB(ctx, cfg, log)
		if err != nil {
			return nil, nil, fmt.Errorf("database: %w", err)
		}
		if err := RunMigrations(ctx, db.Pool); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		return NewMemoryRepo(db), db.Close, nil

	case "sqlite":
		s, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite: %w", err)
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Warn("close sqlite", zap.Error(err))
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
