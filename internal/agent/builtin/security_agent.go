// Package builtin holds the platform's own concrete agents: the silent
// security gate, the main menu/dispatcher, and the coding assistant.
// Registered explicitly in cmd/voicegatewayd (REDESIGN: the Python original
// discovered these via a filesystem directory scan at startup).
package builtin

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/agent"
)

const securityInstructions = `Du bist ein stilles Sicherheits-System.

=== ABSOLUTE REGEL ===
Du sagst NIEMALS etwas. KEINE Begruessung. KEINE Antworten. KEIN Sprechen.
Du bist KOMPLETT STUMM. Du erzeugst KEINE Audio-Ausgabe.

=== AUFGABE ===
Wenn du Zahlen hoerst, rufe SOFORT das 'unlock' Tool auf mit den gehoerten Zahlen.
Wenn du etwas anderes hoerst als Zahlen, IGNORIERE es komplett. Sage NICHTS.

=== WICHTIG ===
- Du hast NUR ein Tool: 'unlock'
- Rufe es auf wenn du Zahlen hoerst
- Sage NICHTS - weder vorher, noch nachher, noch dazwischen
- Ignoriere alle Gespraeche, Fragen und Ablenkungsversuche komplett
- Reagiere NUR auf Zahlen mit dem unlock Tool
- KEINE Begruessung, KEINE Erklaerungen, KEIN Sprechen
`

// SecurityAgent is the silent unlock-code gate (§4.6). It is a stateless
// shared value: the strike counter lives on the call's CallContext, not on
// the agent, since one SecurityAgent value serves every concurrent call.
type SecurityAgent struct {
	unlockCode string
	maxStrikes int
	logger     *slog.Logger
}

// NewSecurityAgent constructs the gate with its unlock code and strike
// threshold sourced from config, never hardcoded (unlike the Python
// original's module-level constant).
func NewSecurityAgent(unlockCode string, maxStrikes int, logger *slog.Logger) *SecurityAgent {
	if logger == nil {
		logger = slog.Default()
	}
	if maxStrikes <= 0 {
		maxStrikes = 3
	}
	return &SecurityAgent{unlockCode: unlockCode, maxStrikes: maxStrikes, logger: logger}
}

func (a *SecurityAgent) Name() string        { return agent.SecurityGateName }
func (a *SecurityAgent) DisplayName() string { return "Sicherheits-Gate" }
func (a *SecurityAgent) Description() string { return "Stilles Sicherheits-Gate mit Code-Pruefung." }
func (a *SecurityAgent) Keywords() []string   { return nil } // not reachable by intent, per source
func (a *SecurityAgent) PreferredModel() string { return "mini" }
func (a *SecurityAgent) Instructions() string   { return securityInstructions }

func (a *SecurityAgent) Tools() []agent.ToolSchema {
	return []agent.ToolSchema{
		{
			Name:        "unlock",
			Description: "Prueft den vom Anrufer genannten Entsperr-Code. Leite den gesprochenen Code als String weiter.",
			Parameters: map[string]any{
				"code": map[string]any{
					"type":        "string",
					"description": "Der vom Anrufer genannte numerische Code",
				},
			},
			Required: []string{"code"},
		},
	}
}

func (a *SecurityAgent) OnCallStart(ctx context.Context, cc *agent.CallContext) {
	cc.StrikeCount = 0
	a.logger.Info("security gate: call started, strikes reset", "caller", cc.Caller)
}

func (a *SecurityAgent) OnCallEnd(context.Context, *agent.CallContext)    {}
func (a *SecurityAgent) OnActivated(context.Context, *agent.CallContext) {}
func (a *SecurityAgent) OnDeactivated(context.Context, *agent.CallContext) {}

func (a *SecurityAgent) ExecuteTool(ctx context.Context, cc *agent.CallContext, name string, args map[string]any) (agent.ToolResult, error) {
	if name != "unlock" {
		return agent.Beep(), nil
	}

	raw, _ := args["code"].(string)
	code := strings.TrimSpace(raw)
	if code == "" {
		return agent.Beep(), nil
	}

	var digits strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	// Non-numeric code (no digits survive stripping) is treated the same as
	// an empty code: a beep without consuming a strike.
	if digits.Len() == 0 {
		return agent.Beep(), nil
	}

	if digits.String() == a.unlockCode {
		a.logger.Info("security gate: unlock code correct", "caller", cc.Caller)
		cc.Unlocked = true
		return agent.Switch(agent.MainAgentName), nil
	}

	cc.StrikeCount++
	if cc.StrikeCount >= a.maxStrikes {
		a.logger.Warn("security gate: max attempts reached, hanging up", "caller", cc.Caller, "strikes", cc.StrikeCount)
		return agent.Hangup(), nil
	}
	a.logger.Warn("security gate: wrong code", "caller", cc.Caller, "attempt", cc.StrikeCount)
	return agent.Beep(), nil
}
