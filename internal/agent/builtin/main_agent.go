package builtin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/agent"
)

const mainAgentBaseInstructions = `Du bist die Zentrale der VoiceAgent Plattform.

=== DEIN STIL ===
- Professionell, praezise und effizient
- Antworte IMMER so kurz wie moeglich - maximal 1-2 Saetze
- Wiederhole NIEMALS was der Anrufer gesagt hat
- Kein Geplaenkel, kein Fuelltext, kein Smalltalk
- Komm sofort zum Punkt

=== BEGRUESSUNG ===
"Hallo, Sie sind in der Zentrale."

=== WEITERLEITUNG ===
Wenn du erkennst wohin der Anrufer moechte:
- Sage kurz: "Alles klar, ich verbinde dich mit dem [Agent-Name]."
- Nutze dann SOFORT das Tool 'wechsel_zu_agent'

Wenn der Anrufer fragt was du kannst, nutze 'zeige_optionen' und stelle die Moeglichkeiten vor.

=== REGELN ===
- Halte Antworten ULTRA-KURZ (1-2 Saetze maximal)
- Wiederhole NICHT was der Anrufer gesagt hat - handle direkt
- Wenn unklar: Frage kurz und direkt nach
- KEIN Smalltalk - du bist eine effiziente Vermittlung
- Leite so schnell wie moeglich zum richtigen Agenten weiter`

// MainAgent is the post-unlock dispatcher: it greets the caller and routes
// to whichever specialist agent matches their intent. Reachable agents are
// discovered dynamically from the shared registry, excluding itself and the
// security gate, mirroring original_source's main_agent.py.
type MainAgent struct {
	registry *agent.Registry
	logger   *slog.Logger
}

// NewMainAgent constructs the dispatcher bound to the shared registry so its
// tool enum and options listing stay in sync with whatever gets registered.
func NewMainAgent(registry *agent.Registry, logger *slog.Logger) *MainAgent {
	if logger == nil {
		logger = slog.Default()
	}
	return &MainAgent{registry: registry, logger: logger}
}

func (a *MainAgent) Name() string          { return agent.MainAgentName }
func (a *MainAgent) DisplayName() string   { return "Zentrale" }
func (a *MainAgent) Description() string   { return "Begruesst Anrufer und leitet zum passenden Fachagenten weiter." }
func (a *MainAgent) Keywords() []string {
	return []string{"zentrale", "hauptmenue", "menue", "zurueck", "optionen", "was kannst du", "hilfe", "help", "start"}
}
func (a *MainAgent) PreferredModel() string { return "" }

func (a *MainAgent) specialists() []agent.Agent {
	var out []agent.Agent
	for _, other := range a.registry.All() {
		if other.Name() == agent.MainAgentName || other.Name() == agent.SecurityGateName {
			continue
		}
		out = append(out, other)
	}
	return out
}

func (a *MainAgent) Instructions() string {
	specialists := a.specialists()
	if len(specialists) == 0 {
		return mainAgentBaseInstructions
	}
	var b strings.Builder
	b.WriteString(mainAgentBaseInstructions)
	b.WriteString("\n\n=== VERFUEGBARE AGENTEN ===")
	for _, s := range specialists {
		fmt.Fprintf(&b, "\n- %s (%s): %s", s.DisplayName(), s.Name(), s.Description())
	}
	return b.String()
}

func (a *MainAgent) Tools() []agent.ToolSchema {
	specialists := a.specialists()
	names := make([]string, 0, len(specialists))
	for _, s := range specialists {
		names = append(names, s.Name())
	}
	if len(names) == 0 {
		names = []string{"code_agent"}
	}
	return []agent.ToolSchema{
		{
			Name:        "wechsel_zu_agent",
			Description: "Wechselt zum gewuenschten Fachagenten. Nutze dies sobald klar ist wohin der Anrufer moechte.",
			Parameters: map[string]any{
				"agent_name": map[string]any{
					"type":        "string",
					"enum":        names,
					"description": "Name des Ziel-Agenten",
				},
			},
			Required: []string{"agent_name"},
		},
		{
			Name:        "zeige_optionen",
			Description: "Listet alle verfuegbaren Fachagenten mit Beschreibung auf. Nutze dies wenn der Anrufer fragt was es gibt.",
		},
	}
}

func (a *MainAgent) OnCallStart(context.Context, *agent.CallContext)    {}
func (a *MainAgent) OnCallEnd(context.Context, *agent.CallContext)      {}
func (a *MainAgent) OnActivated(context.Context, *agent.CallContext)   {}
func (a *MainAgent) OnDeactivated(context.Context, *agent.CallContext) {}

func (a *MainAgent) ExecuteTool(ctx context.Context, cc *agent.CallContext, name string, args map[string]any) (agent.ToolResult, error) {
	switch name {
	case "wechsel_zu_agent":
		target, _ := args["agent_name"].(string)
		if target == "" {
			return agent.Text("Fehler: Kein Agent angegeben."), nil
		}
		if a.registry.Get(target) == nil {
			var names []string
			for _, s := range a.specialists() {
				names = append(names, s.Name())
			}
			return agent.Text(fmt.Sprintf("Agent '%s' nicht gefunden. Verfuegbar: %s", target, strings.Join(names, ", "))), nil
		}
		return agent.Switch(target), nil

	case "zeige_optionen":
		specialists := a.specialists()
		if len(specialists) == 0 {
			return agent.Text("Aktuell sind keine Fachagenten verfuegbar."), nil
		}
		var b strings.Builder
		fmt.Fprintf(&b, "=== %d Fachagenten verfuegbar ===\n", len(specialists))
		for _, s := range specialists {
			fmt.Fprintf(&b, "- %s: %s\n", s.DisplayName(), s.Description())
		}
		b.WriteString("\nSage einfach den Namen des Agenten um dich verbinden zu lassen.")
		return agent.Text(b.String()), nil

	default:
		return agent.Text(fmt.Sprintf("Unbekannte Funktion: %s", name)), nil
	}
}
