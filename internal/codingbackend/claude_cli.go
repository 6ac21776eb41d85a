package codingbackend

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/agent/builtin"
)

// SessionStore persists the claude CLI's resumable session ID per project,
// grounded in session_store.py's save_session/get_session/clear_session.
type SessionStore interface {
	GetCodingSession(ctx context.Context, projectID string) (string, error)
	SaveCodingSession(ctx context.Context, projectID, sessionID string) error
	ClearCodingSession(ctx context.Context, projectID string) error
}

// streamMessage is one line of the claude CLI's --output-format stream-json
// output; only the fields claude_bridge.py actually reads are decoded.
type streamMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Result    string `json:"result"`
	Message   struct {
		Content []struct {
			Type  string         `json:"type"`
			Text  string         `json:"text"`
			Name  string         `json:"name"`
			Input map[string]any `json:"input"`
		} `json:"content"`
	} `json:"message"`
}

// CLIBackend runs coding tasks by shelling out to the claude CLI in
// non-interactive print mode, one project directory per cwd, resuming the
// project's saved session across calls. Grounded in claude_bridge.py's
// ClaudeCodingBridge, translated from the Python SDK's async query()
// iterator to the CLI's line-delimited JSON stream.
type CLIBackend struct {
	projectDir  func(projectID string) string
	sessions    SessionStore
	binary      string
	allowedTool string
	maxTurns    int
	logger      *slog.Logger

	mu          sync.Mutex
	liveSession map[string]string // project -> session id, mirrors ClaudeCodingBridge._sessions
}

// NewCLIBackend constructs a Backend that runs projectDir(id) as the claude
// CLI's working directory for project id. binary defaults to "claude".
func NewCLIBackend(projectDir func(string) string, sessions SessionStore, binary string, logger *slog.Logger) *CLIBackend {
	if binary == "" {
		binary = "claude"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIBackend{
		projectDir:  projectDir,
		sessions:    sessions,
		binary:      binary,
		allowedTool: "Read,Write,Edit,Bash,Glob,Grep",
		maxTurns:    30,
		logger:      logger,
		liveSession: map[string]string{},
	}
}

func (b *CLIBackend) systemPrompt(projectID string) string {
	return fmt.Sprintf(
		"Du arbeitest am Projekt '%s' im aktuellen Verzeichnis.\n\n"+
			"Regeln:\n"+
			"- Schreibe sauberen, gut strukturierten Code\n"+
			"- Erstelle sinnvolle Verzeichnisstrukturen\n"+
			"- Fuege Fehlerbehandlung hinzu wo noetig\n"+
			"- Wenn Tests sinnvoll sind, erstelle sie\n"+
			"- Halte dich an die Aufgabenbeschreibung\n"+
			"- Antworte auf Deutsch\n"+
			"- Fasse am Ende zusammen was du getan hast", projectID)
}

func (b *CLIBackend) resumeSession(ctx context.Context, projectID string) string {
	b.mu.Lock()
	sid := b.liveSession[projectID]
	b.mu.Unlock()
	if sid != "" {
		return sid
	}
	sid, err := b.sessions.GetCodingSession(ctx, projectID)
	if err != nil {
		b.logger.Warn("codingbackend: loading saved session failed", "project", projectID, "error", err)
		return ""
	}
	return sid
}

// Execute runs one coding task against projectID's workspace, implementing
// builtin.Backend.
func (b *CLIBackend) Execute(ctx context.Context, projectID, task string) (builtin.CodingResult, error) {
	args := []string{
		"-p", task,
		"--output-format", "stream-json",
		"--verbose",
		"--allowed-tools", b.allowedTool,
		"--max-turns", fmt.Sprintf("%d", b.maxTurns),
		"--append-system-prompt", b.systemPrompt(projectID),
	}
	if resume := b.resumeSession(ctx, projectID); resume != "" {
		args = append(args, "--resume", resume)
	}

	cmd := exec.CommandContext(ctx, b.binary, args...)
	cmd.Dir = b.projectDir(projectID)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return builtin.CodingResult{}, fmt.Errorf("codingbackend: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return builtin.CodingResult{}, fmt.Errorf("codingbackend: starting claude cli: %w", err)
	}

	result, sessionID := b.consumeStream(stdout)
	waitErr := cmd.Wait()

	if sessionID != "" {
		b.mu.Lock()
		b.liveSession[projectID] = sessionID
		b.mu.Unlock()
		if err := b.sessions.SaveCodingSession(ctx, projectID, sessionID); err != nil {
			b.logger.Warn("codingbackend: saving session failed", "project", projectID, "error", err)
		}
	}

	if waitErr != nil && result.Summary == "" {
		return builtin.CodingResult{Success: false, Error: waitErr.Error()}, nil
	}
	result.Success = true
	return result, nil
}

// consumeStream decodes the claude CLI's stream-json output the way
// claude_bridge.py walks assistant/result messages: text and tool_use blocks
// accumulate into the summary, Edit/Write file_path inputs accumulate into
// FilesChanged, and the final result message yields the resumable session ID.
func (b *CLIBackend) consumeStream(stdout interface{ Read([]byte) (int, error) }) (builtin.CodingResult, string) {
	var result builtin.CodingResult
	var parts []string
	seenFile := map[string]bool{}
	sessionID := ""

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var msg streamMessage
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "assistant":
			for _, block := range msg.Message.Content {
				if block.Text != "" {
					parts = append(parts, block.Text)
				}
				if block.Name != "" {
					result.ToolsUsed = append(result.ToolsUsed, block.Name)
					if block.Name == "Edit" || block.Name == "Write" {
						if fp, ok := block.Input["file_path"].(string); ok && fp != "" && !seenFile[fp] {
							seenFile[fp] = true
							result.FilesChanged = append(result.FilesChanged, fp)
						}
					}
				}
			}
		case "result":
			if msg.Result != "" {
				parts = append(parts, msg.Result)
			}
			if msg.SessionID != "" {
				sessionID = msg.SessionID
			}
		}
	}

	if len(parts) > 0 {
		result.Summary = strings.Join(parts, "\n")
	} else {
		result.Summary = "Aufgabe abgeschlossen."
	}
	return result, sessionID
}

// ProjectStatus asks claude for a short, read-only summary of projectID,
// implementing builtin.Backend. Grounded in claude_bridge.py's
// get_project_status (Read/Glob/Grep only, short max-turns).
func (b *CLIBackend) ProjectStatus(ctx context.Context, projectID string) (string, error) {
	args := []string{
		"-p", "Was ist der aktuelle Stand dieses Projekts?",
		"--output-format", "stream-json",
		"--verbose",
		"--allowed-tools", "Read,Glob,Grep",
		"--max-turns", "5",
		"--append-system-prompt", "Gib eine kurze Zusammenfassung des Projekts. Halte dich kurz (max 3-4 Saetze), da dies per Sprache vorgelesen wird. Antworte auf Deutsch.",
	}
	if resume := b.resumeSession(ctx, projectID); resume != "" {
		args = append(args, "--resume", resume)
	}

	cmd := exec.CommandContext(ctx, b.binary, args...)
	cmd.Dir = b.projectDir(projectID)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("codingbackend: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("codingbackend: starting claude cli: %w", err)
	}
	result, _ := b.consumeStream(stdout)
	if err := cmd.Wait(); err != nil && result.Summary == "" {
		return "", errors.New("konnte status nicht abrufen: " + err.Error())
	}
	return result.Summary, nil
}

// ClearSession drops the in-memory and persisted session for projectID,
// implementing builtin.Backend.
func (b *CLIBackend) ClearSession(projectID string) {
	b.mu.Lock()
	delete(b.liveSession, projectID)
	b.mu.Unlock()
	if err := b.sessions.ClearCodingSession(context.Background(), projectID); err != nil {
		b.logger.Warn("codingbackend: clearing saved session failed", "project", projectID, "error", err)
	}
}
