package builtin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/agent"
)

const codeAgentInstructions = `Du bist ein Programmier-Assistent der per Telefon komplexe Coding-Aufgaben erledigen kann.

=== DEIN STIL ===
- Sei freundlich und hilfsbereit
- Erklaere was du tust, kurz und verstaendlich
- Antworte immer sprachfreundlich (wird vorgelesen!)

=== ABLAUF ===
1. Hoere was der Benutzer will
2. Nutze 'coding_aufgabe' fuer die eigentliche Programmierarbeit
3. Die Aufgabe laeuft im Hintergrund weiter
4. Erklaere das Ergebnis kurz und verstaendlich

=== REGELN ===
- Erklaere Ergebnisse kurz (fuer Sprachausgabe!)
- Fasse zusammen was gemacht wurde, nicht jede einzelne Zeile Code
- Bei Fehlern: Erklaere was schief ging und frage ob du es fixen sollst
- Nutze 'projekt_status' wenn der User nach dem Stand fragt

=== ZURUECK ZUR ZENTRALE ===
Wenn der Anrufer "exit", "zurueck", "menue" oder "hauptmenue" sagt:
- Nutze SOFORT das Tool 'zurueck_zur_zentrale'`

// CodingResult is what a Backend reports back for one coding task.
type CodingResult struct {
	Success      bool
	Summary      string
	FilesChanged []string
	ToolsUsed    []string
	Error        string
}

// VoiceSummary renders the result the way it will be read aloud: short,
// outcome-first, never a raw stack trace.
func (r CodingResult) VoiceSummary() string {
	if !r.Success {
		return fmt.Sprintf("Die Aufgabe ist fehlgeschlagen: %s", r.Error)
	}
	if r.Summary != "" {
		return r.Summary
	}
	if len(r.FilesChanged) == 0 {
		return "Erledigt, es wurden keine Dateien geaendert."
	}
	return fmt.Sprintf("Erledigt. %d Datei(en) geaendert: %s", len(r.FilesChanged), strings.Join(r.FilesChanged, ", "))
}

// Backend runs one coding task against a project workspace. Production
// wiring shells out to a coding CLI agent the way original_source's
// ClaudeCodingBridge did; tests can supply a stub.
type Backend interface {
	Execute(ctx context.Context, projectID, task string) (CodingResult, error)
	ProjectStatus(ctx context.Context, projectID string) (string, error)
	ClearSession(projectID string)
}

// ProjectStore tracks known coding projects and their files.
type ProjectStore interface {
	EnsureProject(projectID, description string) error
	ListProjects() ([]string, error)
	ListFiles(projectID string) ([]string, error)
}

// ProgressBroadcaster publishes coding_progress events, wired to the
// dashboard's WebSocket hub (§6).
type ProgressBroadcaster interface {
	BroadcastCodingProgress(projectID, status, action string, filesChanged, toolsUsed []string)
}

type noopBroadcaster struct{}

func (noopBroadcaster) BroadcastCodingProgress(string, string, string, []string, []string) {}

// CodeAgent lets a caller drive a coding-assistant backend by voice. Running
// tasks are tracked per call but not cancelled when the call ends, matching
// original_source's "laufende Tasks nicht abbrechen" comment.
type CodeAgent struct {
	backend   Backend
	projects  ProjectStore
	broadcast ProgressBroadcaster
	logger    *slog.Logger

	mu      sync.Mutex
	running map[string]context.CancelFunc
}

// NewCodeAgent wires a CodeAgent to its backend, project store, and progress
// broadcaster (the latter may be nil to discard progress events).
func NewCodeAgent(backend Backend, projects ProjectStore, broadcast ProgressBroadcaster, logger *slog.Logger) *CodeAgent {
	if broadcast == nil {
		broadcast = noopBroadcaster{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CodeAgent{
		backend:   backend,
		projects:  projects,
		broadcast: broadcast,
		logger:    logger,
		running:   map[string]context.CancelFunc{},
	}
}

func (a *CodeAgent) Name() string        { return "code_agent" }
func (a *CodeAgent) DisplayName() string { return "Programmier-Assistent" }
func (a *CodeAgent) Description() string {
	return "Programmier-Assistent. Kann komplette Features bauen, Bugs fixen, Code refactoren und Tests laufen lassen."
}
func (a *CodeAgent) Keywords() []string {
	return []string{
		"programmieren", "code", "python", "javascript", "typescript",
		"script", "berechne", "rechne", "programm", "funktion",
		"algorithmus", "automatisiere", "skript", "bash", "api",
		"feature", "bug", "fix", "refactor", "test", "deploy",
		"erstelle", "baue", "implementiere", "entwickle",
	}
}
func (a *CodeAgent) PreferredModel() string { return "" }
func (a *CodeAgent) Instructions() string   { return codeAgentInstructions }

func (a *CodeAgent) Tools() []agent.ToolSchema {
	return []agent.ToolSchema{
		{
			Name: "coding_aufgabe",
			Description: "Fuehrt eine Programmier-Aufgabe im Hintergrund aus. Kann Code schreiben, Dateien " +
				"bearbeiten, Bugs fixen, Tests laufen lassen, ganze Features bauen.",
			Parameters: map[string]any{
				"aufgabe": map[string]any{"type": "string", "description": "Detaillierte Beschreibung der Aufgabe."},
				"projekt": map[string]any{"type": "string", "description": "Projekt-Name, Standard ist 'default'."},
			},
			Required: []string{"aufgabe"},
		},
		{
			Name:        "projekt_status",
			Description: "Zeigt den aktuellen Stand eines Projekts.",
			Parameters: map[string]any{
				"projekt": map[string]any{"type": "string", "description": "Projekt-Name, Standard ist 'default'."},
			},
		},
		{
			Name:        "projekte_auflisten",
			Description: "Listet alle vorhandenen Projekte auf.",
		},
		{
			Name:        "session_zuruecksetzen",
			Description: "Setzt die Coding-Session eines Projekts zurueck.",
			Parameters: map[string]any{
				"projekt": map[string]any{"type": "string", "description": "Projekt-Name."},
			},
			Required: []string{"projekt"},
		},
		{
			Name:        "zurueck_zur_zentrale",
			Description: "Kehrt zurueck zur Zentrale. Nutze dies wenn der Anrufer 'exit', 'zurueck', 'menue' oder 'hauptmenue' sagt.",
		},
	}
}

func (a *CodeAgent) OnCallStart(context.Context, *agent.CallContext) {}

// OnCallEnd deliberately leaves any running background tasks alone; they
// keep running and report progress via the broadcaster.
func (a *CodeAgent) OnCallEnd(context.Context, *agent.CallContext) {}

func (a *CodeAgent) OnActivated(context.Context, *agent.CallContext)   {}
func (a *CodeAgent) OnDeactivated(context.Context, *agent.CallContext) {}

func (a *CodeAgent) ExecuteTool(ctx context.Context, cc *agent.CallContext, name string, args map[string]any) (agent.ToolResult, error) {
	switch name {
	case "coding_aufgabe":
		return a.codingAufgabe(ctx, args)
	case "projekt_status":
		return a.projektStatus(ctx, args)
	case "projekte_auflisten":
		return a.projekteAuflisten()
	case "session_zuruecksetzen":
		projekt, _ := args["projekt"].(string)
		if projekt == "" {
			return agent.Text("Fehler: Kein Projekt angegeben."), nil
		}
		a.backend.ClearSession(projekt)
		return agent.Text(fmt.Sprintf("Session fuer Projekt '%s' wurde zurueckgesetzt.", projekt)), nil
	case "zurueck_zur_zentrale":
		return agent.Switch(agent.MainAgentName), nil
	default:
		return agent.Text(fmt.Sprintf("Unbekannte Funktion: %s", name)), nil
	}
}

func (a *CodeAgent) codingAufgabe(ctx context.Context, args map[string]any) (agent.ToolResult, error) {
	task, _ := args["aufgabe"].(string)
	if task == "" {
		return agent.Text("Fehler: Keine Aufgabe angegeben."), nil
	}
	project, _ := args["projekt"].(string)
	if project == "" {
		project = "default"
	}

	desc := task
	if len(desc) > 100 {
		desc = desc[:100]
	}
	if err := a.projects.EnsureProject(project, "Erstellt fuer Aufgabe: "+desc); err != nil {
		return agent.ToolResult{}, fmt.Errorf("project setup: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	a.mu.Lock()
	a.running[project] = cancel
	a.mu.Unlock()

	a.logger.Info("code agent: starting background task", "project", project)
	go func() {
		defer cancel()
		result, err := a.backend.Execute(runCtx, project, task)
		if err != nil {
			result = CodingResult{Success: false, Error: err.Error()}
		}
		status := "completed"
		if !result.Success {
			status = "failed"
		}
		action := "Fertig"
		if !result.Success {
			action = "Fehler: " + result.Error
		}
		a.broadcast.BroadcastCodingProgress(project, status, action, result.FilesChanged, result.ToolsUsed)
		a.mu.Lock()
		delete(a.running, project)
		a.mu.Unlock()
	}()

	return agent.Text(fmt.Sprintf("Alles klar, ich arbeite im Hintergrund an '%s'.", desc)), nil
}

func (a *CodeAgent) projektStatus(ctx context.Context, args map[string]any) (agent.ToolResult, error) {
	project, _ := args["projekt"].(string)
	if project == "" {
		project = "default"
	}
	files, err := a.projects.ListFiles(project)
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("list files: %w", err)
	}
	if len(files) == 0 {
		return agent.Text(fmt.Sprintf("Projekt '%s' ist leer. Noch keine Dateien vorhanden.", project)), nil
	}
	status, err := a.backend.ProjectStatus(ctx, project)
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("project status: %w", err)
	}
	return agent.Text(status), nil
}

func (a *CodeAgent) projekteAuflisten() (agent.ToolResult, error) {
	projects, err := a.projects.ListProjects()
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("list projects: %w", err)
	}
	if len(projects) == 0 {
		return agent.Text("Noch keine Projekte vorhanden."), nil
	}
	var b strings.Builder
	b.WriteString("Vorhandene Projekte:")
	for _, p := range projects {
		files, _ := a.projects.ListFiles(p)
		fmt.Fprintf(&b, "\n- %s: %d Dateien", p, len(files))
	}
	return agent.Text(b.String()), nil
}
