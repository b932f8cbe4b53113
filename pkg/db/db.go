// Package db provides the persistence layer used by the application. It
// wraps a SQLite database and stores the history of generated experiences.
// History is bounded: only the ten most recent entries per client are kept,
// with the oldest evicted on insert. Callers are expected to open a single
// DB instance using New and reuse it for all operations.
package db

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// historyLimit caps stored entries per client.
const historyLimit = 10

// DB wraps a sql.DB connection and exposes helper methods for the
// application's persistence layer.
type DB struct {
	*sql.DB
}

// New opens the SQLite database located at path. If the file does not exist
// it is created along with the required schema.
func New(path string) (*DB, error) {
	d, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS history (id INTEGER PRIMARY KEY AUTOINCREMENT, client_id TEXT NOT NULL, mood TEXT NOT NULL, experience TEXT NOT NULL, created_at TIMESTAMP NOT NULL)`,
		`CREATE INDEX IF NOT EXISTS idx_history_client ON history(client_id, id)`,
	}
	for _, s := range stmts {
		if _, err := d.Exec(s); err != nil {
			d.Close()
			return nil, fmt.Errorf("init db: %w", err)
		}
	}
	return &DB{d}, nil
}

// HistoryEntry is one archived experience. Experience holds the full JSON
// snapshot exactly as it was returned to the client.
type HistoryEntry struct {
	ID         int64           `json:"id"`
	Mood       string          `json:"mood"`
	Experience json.RawMessage `json:"experience"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// AddHistory archives a generated experience for clientID and evicts
// anything beyond the ten most recent entries, oldest first. The experience
// value is stored as JSON.
func (db *DB) AddHistory(ctx context.Context, clientID, mood string, experience any) error {
	b, err := json.Marshal(experience)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO history(client_id, mood, experience, created_at) VALUES(?, ?, ?, ?)`,
		clientID, mood, string(b), time.Now().UTC()); err != nil {
		return err
	}
	// Trim in the same call so the cap holds after every insert.
	_, err = db.ExecContext(ctx,
		`DELETE FROM history WHERE client_id=? AND id NOT IN (SELECT id FROM history WHERE client_id=? ORDER BY id DESC LIMIT ?)`,
		clientID, clientID, historyLimit)
	return err
}

// ListHistory returns the stored entries for clientID, newest first. At most
// ten entries exist by construction.
func (db *DB) ListHistory(ctx context.Context, clientID string) ([]HistoryEntry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, mood, experience, created_at FROM history WHERE client_id=? ORDER BY id DESC`,
		clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var raw string
		if err := rows.Scan(&e.ID, &e.Mood, &raw, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Experience = json.RawMessage(raw)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// NewClientID generates a random identifier used to scope history rows to an
// anonymous browser session.
func NewClientID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
