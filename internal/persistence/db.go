// Package persistence provides SQLite-based save storage: JSON snapshot
// blobs keyed by slot, a small metadata table, and an append-only chronicle
// of notable run events for post-mortem queries.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DefaultSaveKey is the slot autosaves go to.
const DefaultSaveKey = "autosave"

// DB wraps a SQLite connection for save storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sim_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS chronicle (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		abs_day INTEGER NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_chronicle_day ON chronicle(abs_day);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSnapshot stores a snapshot blob under a slot key (full replace).
func (db *DB) SaveSnapshot(key string, blob []byte) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO saves (key, value) VALUES (?, ?)",
		key, string(blob),
	)
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", key, err)
	}
	slog.Info("snapshot saved", "key", key, "bytes", len(blob))
	return nil
}

// LoadSnapshot reads a snapshot blob. A missing slot returns (nil, nil) so
// callers can fall back to a fresh game.
func (db *DB) LoadSnapshot(key string) ([]byte, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM saves WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", key, err)
	}
	return []byte(value), nil
}

// DeleteSnapshot removes a save slot.
func (db *DB) DeleteSnapshot(key string) error {
	_, err := db.conn.Exec("DELETE FROM saves WHERE key = ?", key)
	return err
}

// SaveMeta stores a key-value pair in the metadata table.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO sim_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value. Missing keys return "".
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM sim_meta WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// ChronicleEntry is one recorded run event.
type ChronicleEntry struct {
	AbsDay      int    `db:"abs_day"`
	Category    string `db:"category"`
	Description string `db:"description"`
}

// AppendChronicle records run events. The chronicle is append-only.
func (db *DB) AppendChronicle(entries []ChronicleEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range entries {
		_, err := tx.Exec(
			"INSERT INTO chronicle (abs_day, category, description) VALUES (?, ?, ?)",
			e.AbsDay, e.Category, e.Description,
		)
		if err != nil {
			return fmt.Errorf("append chronicle: %w", err)
		}
	}

	return tx.Commit()
}

// RecentChronicle returns the most recent N chronicle entries.
func (db *DB) RecentChronicle(limit int) ([]ChronicleEntry, error) {
	var entries []ChronicleEntry
	err := db.conn.Select(&entries,
		"SELECT abs_day, category, description FROM chronicle ORDER BY id DESC LIMIT ?",
		limit,
	)
	return entries, err
}
