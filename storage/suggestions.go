// Package storage persists the suggestion audit log. Conversation history
// is never written; only what the AI suggested and what the user decided
// lands on disk, so the log can be reviewed without exposing chats.
package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SuggestionRecord is one audited suggestion and its outcome.
type SuggestionRecord struct {
	ID          string
	SessionID   string
	Command     string
	Explanation string
	// Decision is "accept", "reject", or "edit".
	Decision string
	// FinalCommand is what actually ran; empty for rejected suggestions.
	FinalCommand string
	CreatedAt    time.Time
}

// SuggestionLog stores suggestion records in a SQLite database under the
// data directory.
type SuggestionLog struct {
	db *sql.DB
}

// OpenSuggestionLog opens (creating if needed) the audit database.
func OpenSuggestionLog(dataDir string) (*SuggestionLog, error) {
	dbPath := filepath.Join(dataDir, "suggestions.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log := &SuggestionLog{db: db}
	if err := log.initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return log, nil
}

func (l *SuggestionLog) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS suggestions (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		command TEXT NOT NULL,
		explanation TEXT,
		decision TEXT NOT NULL,
		final_command TEXT,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_suggestions_session ON suggestions(session_id);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Record stores one decided suggestion and returns its id.
func (l *SuggestionLog) Record(rec SuggestionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := l.db.Exec(
		`INSERT INTO suggestions (id, session_id, command, explanation, decision, final_command, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.SessionID, rec.Command, rec.Explanation, rec.Decision, rec.FinalCommand, rec.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record suggestion: %w", err)
	}
	return rec.ID, nil
}

// List returns the most recent records, newest first.
func (l *SuggestionLog) List(limit int) ([]SuggestionRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := l.db.Query(
		`SELECT id, session_id, command, explanation, decision, final_command, created_at
		 FROM suggestions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	defer rows.Close()

	var records []SuggestionRecord
	for rows.Next() {
		var rec SuggestionRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Command, &rec.Explanation,
			&rec.Decision, &rec.FinalCommand, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// BySession returns every record for one session, oldest first.
func (l *SuggestionLog) BySession(sessionID string) ([]SuggestionRecord, error) {
	rows, err := l.db.Query(
		`SELECT id, session_id, command, explanation, decision, final_command, created_at
		 FROM suggestions WHERE session_id = ? ORDER BY created_at ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	defer rows.Close()

	var records []SuggestionRecord
	for rows.Next() {
		var rec SuggestionRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Command, &rec.Explanation,
			&rec.Decision, &rec.FinalCommand, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the database handle.
func (l *SuggestionLog) Close() error {
	return l.db.Close()
}
