package repository

import (
	"context"
	"database/sql"
	"errors"
)

// LocalStore is a string-keyed durable key-value store backed by SQLite.
// It plays the role browser local storage plays for the original client:
// small serialized records under fixed keys, written synchronously.
type LocalStore struct {
	db *sql.DB
}

// NewLocalStore creates a new LocalStore.
func NewLocalStore(db *sql.DB) *LocalStore {
	return &LocalStore{db: db}
}

// Get returns the value stored under key. The second return value reports
// whether the key was present.
func (s *LocalStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM local_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *LocalStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO local_store (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// Delete removes key. Deleting an absent key is not an error.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM local_store WHERE key = ?`, key)
	return err
}
