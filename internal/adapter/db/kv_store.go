package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"zenflow/internal/core/ports"
)

const (
	createKVStoreTableQuery = `
CREATE TABLE IF NOT EXISTS kv_store (
  name VARCHAR(191) NOT NULL PRIMARY KEY,
  payload LONGTEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
);
`
	loadQuery   = `SELECT payload FROM kv_store WHERE name = ?`
	saveQuery   = `INSERT INTO kv_store (name, payload) VALUES (?, ?) ON DUPLICATE KEY UPDATE payload = VALUES(payload)`
	deleteQuery = `DELETE FROM kv_store WHERE name = ?`
)

// KVStore keeps every key as one row of the kv_store table.
type KVStore struct {
	db *sqlx.DB
}

var _ ports.Store = (*KVStore)(nil)

func NewKVStore(db *sqlx.DB) *KVStore {
	return &KVStore{db: db}
}

func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, createKVStoreTableQuery)
	return err
}

func (s *KVStore) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	if err := s.db.GetContext(ctx, &payload, loadQuery, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

func (s *KVStore) Save(ctx context.Context, key string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, saveQuery, key, string(payload))
	return err
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, deleteQuery, key)
	return err
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
