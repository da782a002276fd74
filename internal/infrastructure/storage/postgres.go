package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"wikiweird/internal/domain"
	"wikiweird/internal/ports"
)

const snapshotTable = "country_articles"

// PostgresStore persists the snapshot as (country, position, payload) rows so
// bucket order survives round trips.
type PostgresStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.SnapshotStore = (*PostgresStore)(nil)

// OpenPostgres connects, verifies the connection, and ensures the schema.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := NewPostgresStore(db)
	if err := store.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// NewPostgresStore wires a store over an existing connection pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	schema := `CREATE TABLE IF NOT EXISTS ` + snapshotTable + ` (
        country    TEXT        NOT NULL,
        position   INTEGER     NOT NULL,
        payload    JSONB       NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        PRIMARY KEY (country, position)
    )`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Save replaces the stored snapshot wholesale inside one transaction;
// snapshots are rebuilt per run, never patched.
func (s *PostgresStore) Save(ctx context.Context, snapshot domain.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+snapshotTable); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	now := time.Now().UTC()
	for country, articles := range snapshot {
		if len(articles) == 0 {
			continue
		}
		insert := s.builder.Insert(snapshotTable).
			Columns("country", "position", "payload", "updated_at")
		for position, article := range articles {
			payload, err := json.Marshal(article)
			if err != nil {
				return fmt.Errorf("marshal article %s: %w", article.ID, err)
			}
			insert = insert.Values(country, position, payload, now)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert for %s: %w", country, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s: %w", country, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load rebuilds the snapshot in stored bucket order.
func (s *PostgresStore) Load(ctx context.Context) (domain.Snapshot, error) {
	query, args, err := s.builder.
		Select("country", "payload").
		From(snapshotTable).
		OrderBy("country", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	snapshot := domain.Snapshot{}
	for rows.Next() {
		var country string
		var payload []byte
		if err := rows.Scan(&country, &payload); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		var article domain.Article
		if err := json.Unmarshal(payload, &article); err != nil {
			return nil, fmt.Errorf("parse payload for %s: %w", country, err)
		}
		snapshot[country] = append(snapshot[country], article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return snapshot, nil
}

// LastUpdated reports the most recent row timestamp; zero when empty.
func (s *PostgresStore) LastUpdated(ctx context.Context) (time.Time, error) {
	query, args, err := s.builder.
		Select("COALESCE(MAX(updated_at), 'epoch'::timestamptz)").
		From(snapshotTable).
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("build last-updated: %w", err)
	}

	var updated time.Time
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&updated); err != nil {
		return time.Time{}, fmt.Errorf("query last-updated: %w", err)
	}
	if updated.Unix() <= 0 {
		return time.Time{}, nil
	}
	return updated, nil
}

// Describe names the backing store for health reporting.
func (s *PostgresStore) Describe() string {
	return "postgres:" + snapshotTable
}
