// Package store provides persistence for the pet snapshot: a flat file store
// and a SQLite-backed store.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogers-f/moodpet/internal/domain"

	_ "modernc.org/sqlite"
)

// schemaV1 defines the initial database schema. The CHECK keeps the table to
// a single row.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS pet_state (
	id               INTEGER PRIMARY KEY CHECK (id = 1),
	name             TEXT NOT NULL DEFAULT '',
	hunger           REAL NOT NULL DEFAULT 0,
	happiness        REAL NOT NULL DEFAULT 0,
	sadness          REAL NOT NULL DEFAULT 0,
	anger            REAL NOT NULL DEFAULT 0,
	boredom          REAL NOT NULL DEFAULT 0,
	health           REAL NOT NULL DEFAULT 0,
	energy           REAL NOT NULL DEFAULT 0,
	last_update_nano INTEGER NOT NULL DEFAULT 0
);
`

// NewDB opens a SQLite database at the given path with recommended pragmas
// and runs the V1 schema migration.
func NewDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, domain.WrapPetError(domain.ErrStoreInit, fmt.Errorf("open database: %w", err))
	}

	// Limit connections to 1 for SQLite (WAL allows concurrent reads but single writer).
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, domain.WrapPetError(domain.ErrStoreInit, fmt.Errorf("migrate schema: %w", err))
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(), schemaV1)
	return err
}

// SQLiteStore keeps the pet snapshot in the single pet_state row.
type SQLiteStore struct {
	DB *sql.DB
}

// NewSQLiteStore wraps an open database created by NewDB.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

// Save upserts the snapshot.
func (s *SQLiteStore) Save(ctx context.Context, snap domain.Snapshot) error {
	const q = `INSERT INTO pet_state (id, name, hunger, happiness, sadness, anger, boredom, health, energy, last_update_nano)
VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	hunger = excluded.hunger,
	happiness = excluded.happiness,
	sadness = excluded.sadness,
	anger = excluded.anger,
	boredom = excluded.boredom,
	health = excluded.health,
	energy = excluded.energy,
	last_update_nano = excluded.last_update_nano`

	st := snap.Status
	_, err := s.DB.ExecContext(ctx, q,
		snap.Name,
		st.Hunger, st.Happiness, st.Sadness, st.Anger, st.Boredom, st.Health, st.Energy,
		snap.LastUpdate.UnixNano(),
	)
	if err != nil {
		return domain.WrapPetError(domain.ErrStoreWrite, fmt.Errorf("save pet state: %w", err))
	}
	return nil
}

// Load returns the stored snapshot, or nil if none has been saved.
func (s *SQLiteStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	const q = `SELECT name, hunger, happiness, sadness, anger, boredom, health, energy, last_update_nano
FROM pet_state
WHERE id = 1`

	row := s.DB.QueryRowContext(ctx, q)

	var snap domain.Snapshot
	var nano int64
	st := &snap.Status
	err := row.Scan(&snap.Name, &st.Hunger, &st.Happiness, &st.Sadness, &st.Anger, &st.Boredom, &st.Health, &st.Energy, &nano)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, domain.WrapPetError(domain.ErrStoreRead, fmt.Errorf("load pet state: %w", err))
	}
	snap.LastUpdate = unixNano(nano)
	return &snap, nil
}

func unixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
