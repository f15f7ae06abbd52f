package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// MemoryRepo stores per-creep memory in Postgres. It implements host.MemoryStore.
type MemoryRepo struct {
	db *DB
}

func NewMemoryRepo(db *DB) *MemoryRepo {
	return &MemoryRepo{db: db}
}

func (r *MemoryRepo) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT name FROM creep_memory ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query creep memory: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan creep memory: %w", err)
	}
	return names, nil
}

func (r *MemoryRepo) Load(ctx context.Context, name string) ([]byte, bool, error) {
	var data string
	err := r.db.Pool.QueryRow(ctx,
		`SELECT data FROM creep_memory WHERE name = $1`, name,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(data), true, nil
}

func (r *MemoryRepo) Save(ctx context.Context, name string, data []byte) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO creep_memory (name, data, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		name, string(data),
	)
	return err
}

func (r *MemoryRepo) Delete(ctx context.Context, name string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM creep_memory WHERE name = $1`, name)
	return err
}
