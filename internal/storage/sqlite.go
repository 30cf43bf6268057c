// Package storage provides SQLite-based persistence for the client: the
// persistent session identity, saved room bookmarks, and a history of
// visited rooms. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Bookmark is a saved room context: enough to rejoin without retyping.
type Bookmark struct {
	ID         int64
	Room       string
	Password   string
	Nickname   string
	LastJoined time.Time
}

// Visit is one row of room history.
type Visit struct {
	ID       int64
	Room     string
	Nickname string
	JoinedAt time.Time
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS identity (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			session_id TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS bookmarks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			room TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			nickname TEXT NOT NULL,
			last_joined DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_bookmarks_last_joined ON bookmarks(last_joined DESC);

		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			room TEXT NOT NULL,
			nickname TEXT NOT NULL,
			joined_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_visits_joined_at ON visits(joined_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SessionID returns the persistent client session ID, generating and
// storing one on first use. The server reuses it to resume the viewer's
// identity across reconnects.
func (s *Store) SessionID() (string, error) {
	var id string
	err := s.db.QueryRow("SELECT session_id FROM identity WHERE id = 1").Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("storage: cannot query session id: %w", err)
	}

	id = uuid.NewString()
	if _, err := s.db.Exec("INSERT INTO identity (id, session_id) VALUES (1, ?)", id); err != nil {
		return "", fmt.Errorf("storage: cannot save session id: %w", err)
	}
	return id, nil
}

// SetSessionID stores a server-assigned session id, replacing any held
// identity. Used when the server issues a fresh id on connect.
func (s *Store) SetSessionID(id string) error {
	_, err := s.db.Exec(
		`INSERT INTO identity (id, session_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET session_id = excluded.session_id`,
		id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session id: %w", err)
	}
	return nil
}

// SaveBookmark records a successful join so the room can be restored
// later. Rejoining an already-bookmarked room refreshes its credentials
// and timestamp.
func (s *Store) SaveBookmark(room, password, nickname string) error {
	_, err := s.db.Exec(
		`INSERT INTO bookmarks (room, password, nickname, last_joined)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(room) DO UPDATE SET
		   password = excluded.password,
		   nickname = excluded.nickname,
		   last_joined = CURRENT_TIMESTAMP`,
		room, password, nickname,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save bookmark: %w", err)
	}
	return nil
}

// LastBookmark returns the most recently joined room, or nil if none.
func (s *Store) LastBookmark() (*Bookmark, error) {
	row := s.db.QueryRow(
		`SELECT id, room, password, nickname, last_joined
		 FROM bookmarks
		 ORDER BY last_joined DESC
		 LIMIT 1`,
	)

	var b Bookmark
	var lastJoined any
	err := row.Scan(&b.ID, &b.Room, &b.Password, &b.Nickname, &lastJoined)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bookmark: %w", err)
	}
	b.LastJoined = parseTimestamp(lastJoined)
	return &b, nil
}

// Bookmarks returns saved rooms, most recently joined first.
func (s *Store) Bookmarks(limit int) ([]Bookmark, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, room, password, nickname, last_joined
		 FROM bookmarks
		 ORDER BY last_joined DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bookmarks: %w", err)
	}
	defer rows.Close()

	var entries []Bookmark
	for rows.Next() {
		var b Bookmark
		var lastJoined any
		if err := rows.Scan(&b.ID, &b.Room, &b.Password, &b.Nickname, &lastJoined); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.LastJoined = parseTimestamp(lastJoined)
		entries = append(entries, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteBookmark removes a saved room by name.
func (s *Store) DeleteBookmark(room string) error {
	_, err := s.db.Exec("DELETE FROM bookmarks WHERE room = ?", room)
	if err != nil {
		return fmt.Errorf("storage: cannot delete bookmark: %w", err)
	}
	return nil
}

// RecordVisit appends one row of room history.
// Returns the ID of the inserted record.
func (s *Store) RecordVisit(room, nickname string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO visits (room, nickname) VALUES (?, ?)",
		room, nickname,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record visit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentVisits returns room history, newest first.
func (s *Store) RecentVisits(limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, room, nickname, joined_at
		 FROM visits
		 ORDER BY joined_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var joinedAt any
		if err := rows.Scan(&v.ID, &v.Room, &v.Nickname, &joinedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		v.JoinedAt = parseTimestamp(joinedAt)
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return visits, nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
