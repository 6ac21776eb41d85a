package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ProjectRecord is one row of the projects table, grounded in
// original_source/voiceagent-platform/agents/code_agent/project_manager.py's
// ProjectManager (a JSON file there; a table here, consistent with this
// gateway keeping all durable state in one SQLite file).
type ProjectRecord struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// EnsureProject creates project id if it doesn't already exist, implementing
// the builtin code agent's ProjectStore.
func (db *DB) EnsureProject(projectID, description string) error {
	ctx := context.Background()
	var discard string
	err := db.QueryRowContext(ctx, "SELECT id FROM projects WHERE id = ?", projectID).Scan(&discard)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("store: ensure project: %w", err)
	}
	_, err = db.ExecContext(ctx,
		"INSERT INTO projects (id, name, description, created_at) VALUES (?, ?, ?, ?)",
		projectID, projectID, description, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store: create project: %w", err)
	}
	return nil
}

// ListProjects returns every known project ID, implementing the builtin code
// agent's ProjectStore.
func (db *DB) ListProjects() ([]string, error) {
	rows, err := db.Query("SELECT id FROM projects ORDER BY created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("store: list projects: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// GetCodingSession returns the saved Claude session ID for projectID, or ""
// if none is saved, grounded in session_store.py's get_session.
func (db *DB) GetCodingSession(ctx context.Context, projectID string) (string, error) {
	var sessionID string
	err := db.QueryRowContext(ctx, "SELECT session_id FROM coding_sessions WHERE project_id = ?", projectID).Scan(&sessionID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("store: get coding session: %w", err)
	}
	return sessionID, nil
}

// SaveCodingSession persists sessionID for projectID, overwriting any
// previous one, grounded in session_store.py's save_session.
func (db *DB) SaveCodingSession(ctx context.Context, projectID, sessionID string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO coding_sessions (project_id, session_id, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(project_id) DO UPDATE SET session_id = excluded.session_id, updated_at = excluded.updated_at`,
		projectID, sessionID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store: save coding session: %w", err)
	}
	return nil
}

// ClearCodingSession drops the saved session for projectID, grounded in
// session_store.py's clear_session.
func (db *DB) ClearCodingSession(ctx context.Context, projectID string) error {
	_, err := db.ExecContext(ctx, "DELETE FROM coding_sessions WHERE project_id = ?", projectID)
	if err != nil {
		return fmt.Errorf("store: clear coding session: %w", err)
	}
	return nil
}
