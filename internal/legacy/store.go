package legacy

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
)

// KeyPrefix is the key namespace day schedules were stored under in the
// local store, followed by the date as YYYY-MM-DD.
const KeyPrefix = "agenda-"

// Store enumerates and reads the legacy local key-value store. The batch
// migration is its only consumer.
type Store interface {
	// Keys returns all keys starting with prefix, in key order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Get returns the raw value stored under key.
	// Returns sql.ErrNoRows-wrapped error if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// DeletePrefix removes every key starting with prefix and returns the
	// number of keys removed. Called only after an error-free migration.
	DeletePrefix(ctx context.Context, prefix string) (int, error)

	Close() error
}

// sqliteStore reads the SQLite file the old desktop build used as its local
// store: a single local_data(key, value) table.
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens the legacy store file at path. The file is opened
// read-write because cleanup deletes migrated keys.
func OpenSQLite(path string) (Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("legacy.OpenSQLite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("legacy.OpenSQLite: ping: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	const q = `SELECT key FROM local_data WHERE key LIKE ? || '%' ORDER BY key`

	rows, err := s.db.QueryContext(ctx, q, prefix)
	if err != nil {
		return nil, fmt.Errorf("legacy.Store.Keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("legacy.Store.Keys: scan: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("legacy.Store.Keys: rows: %w", err)
	}
	return keys, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM local_data WHERE key = ?`

	var value []byte
	if err := s.db.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		return nil, fmt.Errorf("legacy.Store.Get %q: %w", key, err)
	}
	return value, nil
}

func (s *sqliteStore) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	const q = `DELETE FROM local_data WHERE key LIKE ? || '%'`

	res, err := s.db.ExecContext(ctx, q, prefix)
	if err != nil {
		return 0, fmt.Errorf("legacy.Store.DeletePrefix: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("legacy.Store.DeletePrefix: %w", err)
	}
	return int(n), nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
