package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"zenflow/internal/core/ports"
)

const (
	createKVStoreTableQuery = `
CREATE TABLE IF NOT EXISTS kv_store (
  name TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	loadQuery   = `SELECT payload FROM kv_store WHERE name = $1`
	saveQuery   = `INSERT INTO kv_store (name, payload) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
	deleteQuery = `DELETE FROM kv_store WHERE name = $1`
)

func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	if url == "" {
		return nil, errors.New("POSTGRES_URL is not set")
	}
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

type KVStore struct {
	pool *pgxpool.Pool
}

var _ ports.Store = (*KVStore)(nil)

func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, createKVStoreTableQuery)
	return err
}

func (s *KVStore) Load(ctx context.Context, key string) ([]byte, error) {
	var payload string
	if err := s.pool.QueryRow(ctx, loadQuery, key).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(payload), nil
}

func (s *KVStore) Save(ctx context.Context, key string, payload []byte) error {
	_, err := s.pool.Exec(ctx, saveQuery, key, string(payload))
	return err
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, deleteQuery, key)
	return err
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
