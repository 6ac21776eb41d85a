// Package codingbackend wires the code agent's Backend and ProjectStore
// ports to a real filesystem workspace and the claude CLI, adapted from
// original_source/voiceagent-platform/agents/code_agent/project_manager.py
// (workspace layout) and claude_bridge.py (task execution, session
// persistence), with the JSON-file project registry and the SQLite-backed
// session cache both replaced by internal/store's calls on the gateway's one
// SQLite file.
package codingbackend

import (
	"os"
	"path/filepath"
	"strings"
)

// ProjectRegistry is the subset of internal/store's *DB the project store
// needs for the project index (name/description survive in SQLite; files
// live on disk).
type ProjectRegistry interface {
	EnsureProject(projectID, description string) error
	ListProjects() ([]string, error)
}

// FSProjectStore implements the builtin code agent's ProjectStore by
// combining a SQLite-backed project index with a per-project directory tree
// under workspaceDir, mirroring project_manager.py's ProjectManager split
// between the "_projects.json" index and the on-disk files.
type FSProjectStore struct {
	registry     ProjectRegistry
	workspaceDir string
}

// NewFSProjectStore binds a project store to workspaceDir, creating it if
// necessary.
func NewFSProjectStore(registry ProjectRegistry, workspaceDir string) (*FSProjectStore, error) {
	if err := os.MkdirAll(workspaceDir, 0o750); err != nil {
		return nil, err
	}
	return &FSProjectStore{registry: registry, workspaceDir: workspaceDir}, nil
}

// EnsureProject creates the project's index row and its workspace directory.
func (s *FSProjectStore) EnsureProject(projectID, description string) error {
	if err := s.registry.EnsureProject(projectID, description); err != nil {
		return err
	}
	return os.MkdirAll(s.ProjectDir(projectID), 0o750)
}

// ListProjects returns every known project ID.
func (s *FSProjectStore) ListProjects() ([]string, error) {
	return s.registry.ListProjects()
}

// ListFiles walks projectID's workspace directory and returns every file's
// path relative to it, matching project_manager.py's list_files.
func (s *FSProjectStore) ListFiles(projectID string) ([]string, error) {
	dir := s.ProjectDir(projectID)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}
	var files []string
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ProjectDir returns the absolute workspace directory for projectID.
func (s *FSProjectStore) ProjectDir(projectID string) string {
	return filepath.Join(s.workspaceDir, sanitizeProjectID(projectID))
}

// sanitizeProjectID strips path separators so a spoken project name can
// never escape the workspace root.
func sanitizeProjectID(id string) string {
	id = strings.ReplaceAll(id, "/", "_")
	id = strings.ReplaceAll(id, "\\", "_")
	id = strings.ReplaceAll(id, "..", "_")
	if id == "" {
		id = "default"
	}
	return id
}
