package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteMemory stores per-creep memory in a local SQLite file. It implements
// host.MemoryStore and shares the Postgres migration set.
type SQLiteMemory struct {
	conn *sqlx.DB
}

type memoryRow struct {
	Name string `db:"name"`
	Data string `db:"data"`
}

// OpenSQLite opens or creates the database at path and migrates it.
// Use ":memory:" for a throwaway store.
func OpenSQLite(ctx context.Context, path string) (*SQLiteMemory, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one connection: an in-memory database exists per connection
	conn.SetMaxOpenConns(1)

	if err := migrate(ctx, conn.DB, "sqlite3"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteMemory{conn: conn}, nil
}

func (s *SQLiteMemory) Close() error {
	return s.conn.Close()
}

func (s *SQLiteMemory) Keys(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.conn.SelectContext(ctx, &names, `SELECT name FROM creep_memory ORDER BY name`); err != nil {
		return nil, fmt.Errorf("query creep memory: %w", err)
	}
	return names, nil
}

func (s *SQLiteMemory) Load(ctx context.Context, name string) ([]byte, bool, error) {
	var row memoryRow
	err := s.conn.GetContext(ctx, &row, `SELECT name, data FROM creep_memory WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(row.Data), true, nil
}

func (s *SQLiteMemory) Save(ctx context.Context, name string, data []byte) error {
	_, err := s.conn.NamedExecContext(ctx,
		`INSERT INTO creep_memory (name, data, updated_at)
		 VALUES (:name, :data, CURRENT_TIMESTAMP)
		 ON CONFLICT (name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		memoryRow{Name: name, Data: string(data)},
	)
	return err
}

func (s *SQLiteMemory) Delete(ctx context.Context, name string) error {
	_, err := s.conn.ExecContext(ctx, `DELETE FROM creep_memory WHERE name = ?`, name)
	return err
}
