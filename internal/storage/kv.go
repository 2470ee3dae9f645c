package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetValue returns the document stored under key. ok is false when the key
// has never been written.
func (s *Store) GetValue(key string) (value []byte, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, true, nil
}

// DeleteValue removes key. Deleting a missing key is not an error.
func (s *Store) DeleteValue(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// UpdateValue rewrites the document under key inside one write transaction.
// fn receives the current value (ok is false when the key is missing) and
// returns the value to store. An error from fn rolls back and is returned
// unchanged. Concurrent writers, including other processes, are serialized.
func (s *Store) UpdateValue(key string, fn func(old []byte, ok bool) ([]byte, error)) (err error) {
	ctx := context.Background()
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("storage: cannot update %q: %w", key, err)
	}
	defer conn.Close()

	// IMMEDIATE takes the write lock up front so two readers cannot both
	// decide on a stale document.
	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return fmt.Errorf("storage: cannot lock %q: %w", key, err)
	}
	defer func() {
		if err != nil {
			_, _ = conn.ExecContext(ctx, "ROLLBACK")
		}
	}()

	var old []byte
	ok := true
	err = conn.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&old)
	if errors.Is(err, sql.ErrNoRows) {
		ok, err = false, nil
	}
	if err != nil {
		return fmt.Errorf("storage: cannot read %q: %w", key, err)
	}

	next, err := fn(old, ok)
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, next,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	if _, err = conn.ExecContext(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("storage: cannot commit %q: %w", key, err)
	}
	return nil
}
