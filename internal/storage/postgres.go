package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore keeps the whole dashboard blob in a single jsonb row per
// namespace. Useful when several machines share one dashboard.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database and creates the blobs table if
// it does not exist.
func NewPostgresStore(conn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", conn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	schema := `
		CREATE TABLE IF NOT EXISTS dashboard_blobs (
			namespace  TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create blobs table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Load returns the blob for the namespace, or an empty object when absent.
func (p *PostgresStore) Load(ctx context.Context, namespace string) (json.RawMessage, error) {
	var data []byte
	query := `SELECT data FROM dashboard_blobs WHERE namespace = $1`
	err := p.db.QueryRowContext(ctx, query, namespace).Scan(&data)
	if err == sql.ErrNoRows {
		return EmptyBlob, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load blob: %w", err)
	}
	return data, nil
}

// Save upserts the blob for the namespace.
func (p *PostgresStore) Save(ctx context.Context, namespace string, data json.RawMessage) error {
	query := `
		INSERT INTO dashboard_blobs (namespace, data, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (namespace)
		DO UPDATE SET data = EXCLUDED.data, updated_at = CURRENT_TIMESTAMP`
	if _, err := p.db.ExecContext(ctx, query, namespace, []byte(data)); err != nil {
		return fmt.Errorf("save blob: %w", err)
	}
	return nil
}

// Healthy pings the database.
func (p *PostgresStore) Healthy(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the database handle.
func (p *PostgresStore) Close() error {
	return p.db.Close()
}
