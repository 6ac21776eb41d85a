// Package agent implements the pluggable agent layer: the Agent interface,
// the tool-result tagged union agents communicate through, the compile-time
// registry (REDESIGN: dynamic directory-scan discovery -> explicit
// registration), and the per-call active-agent manager.
//
// Grounded in original_source/voiceagent-platform/core/app/agents/registry.py
// and core/app/agents/manager.py for the registration/switch/tool-exposure
// shape, and in other_examples' MrWong99-glyphoxa internal/engine/s2s
// Engine for the lazy-session / lock discipline pattern.
package agent

import (
	"context"
	"fmt"
	"strings"
)

// ToolSchema describes one function the realtime AI model may call.
type ToolSchema struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON-schema "properties" map
	Required    []string
}

// ResultKind discriminates the ToolResult tagged union (REDESIGN: the seven
// string sentinels of §4.4 become this union's members directly; agents
// construct a ToolResult with Text/Switch/Hangup/... and never return a raw
// sentinel string for another layer to parse).
type ResultKind int

const (
	// KindText is a plain string delivered to the model as-is.
	KindText ResultKind = iota
	// KindSwitch requests switching the active agent.
	KindSwitch
	// KindHangup is a security-initiated hangup (records a failed attempt).
	KindHangup
	// KindHangupUser is a caller-requested hangup.
	KindHangupUser
	// KindBeep plays the access-denied beep and mutes AI audio.
	KindBeep
	// KindBeepQuiet sends the function output but suppresses a new response.
	KindBeepQuiet
	// KindModelSwitch requests a sticky user-chosen model change.
	KindModelSwitch
	// KindModelSwitched is the internal marker fed back to the realtime
	// session after an in-place model switch has already happened.
	KindModelSwitched
)

// ToolResult is the internal tagged-union representation of what an agent's
// ExecuteTool call produced.
type ToolResult struct {
	Kind   ResultKind
	Text   string // KindText, KindBeepQuiet (the quiet message)
	Target string // KindSwitch (agent name), KindModelSwitch (model key)
}

// Text wraps a plain text result delivered to the model.
func Text(s string) ToolResult { return ToolResult{Kind: KindText, Text: s} }

// Switch requests switching the active agent to target.
func Switch(target string) ToolResult { return ToolResult{Kind: KindSwitch, Target: target} }

// Hangup requests a security-initiated hangup.
func Hangup() ToolResult { return ToolResult{Kind: KindHangup} }

// HangupUser requests a caller-initiated hangup.
func HangupUser() ToolResult { return ToolResult{Kind: KindHangupUser} }

// Beep requests the access-denied beep.
func Beep() ToolResult { return ToolResult{Kind: KindBeep} }

// BeepQuiet sends msg as the function output without triggering a response.
func BeepQuiet(msg string) ToolResult { return ToolResult{Kind: KindBeepQuiet, Text: msg} }

// ModelSwitch requests a sticky user-chosen model change to key.
func ModelSwitch(key string) ToolResult { return ToolResult{Kind: KindModelSwitch, Target: key} }

// ModelSwitched is the internal marker returned to the realtime session.
func ModelSwitched() ToolResult { return ToolResult{Kind: KindModelSwitched} }

// CallContext is the per-call mutable state agents read and write while
// handling a tool call. Agents themselves are stateless values (§3); all
// call-specific state lives here, owned exclusively by the Call's goroutine.
type CallContext struct {
	Caller          string
	Unlocked        bool
	StrikeCount     int
	UserChosenModel string
	ActiveModel     string
}

// Agent is a stable, reusable description of one conversational persona plus
// its tool surface. Agent values are shared read-only across calls; any
// mutable state an implementation needs (e.g. a background job tracker) must
// guard itself internally (§3 Ownership).
type Agent interface {
	Name() string
	DisplayName() string
	Description() string
	Keywords() []string
	Tools() []ToolSchema
	Instructions() string
	// PreferredModel returns the model key this agent forces callers into,
	// or "" if it has no preference and the sticky user choice applies.
	PreferredModel() string

	OnCallStart(ctx context.Context, cc *CallContext)
	OnCallEnd(ctx context.Context, cc *CallContext)
	OnActivated(ctx context.Context, cc *CallContext)
	OnDeactivated(ctx context.Context, cc *CallContext)

	ExecuteTool(ctx context.Context, cc *CallContext, name string, args map[string]any) (ToolResult, error)
}

// IntentScore returns a bag-of-keywords match score in [0,1] for how well
// this agent's keywords match the given caller utterance.
func IntentScore(a Agent, utterance string) float64 {
	keywords := a.Keywords()
	if len(keywords) == 0 {
		return 0
	}
	lower := strings.ToLower(utterance)
	hits := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			hits++
		}
	}
	return float64(hits) / float64(len(keywords))
}

// globalHangupTool and globalModelSwitchTool are always concatenated onto
// the active agent's own tools by the Manager (§4.4 Tool exposure).
var (
	globalHangupTool = ToolSchema{
		Name:        "auflegen",
		Description: "Beendet den Anruf auf Wunsch des Anrufers.",
	}
	globalModelSwitchTool = ToolSchema{
		Name:        "model_wechseln",
		Description: "Wechselt das zugrunde liegende KI-Modell (mini oder premium).",
		Parameters: map[string]any{
			"model": map[string]any{"type": "string", "enum": []string{"mini", "premium"}},
		},
		Required: []string{"model"},
	}
)

const (
	// ToolAuflegen is the always-available user-hangup tool name.
	ToolAuflegen = "auflegen"
	// ToolModelWechseln is the always-available model-switch tool name.
	ToolModelWechseln = "model_wechseln"
)

// errNotUnlocked is the fixed string §4.4 requires when a locked call tries
// to dispatch any tool belonging to a non-security-gate agent.
const errNotUnlocked = "call not unlocked"

// toolErrorText formats a caught execution error as the fixed "Fehler bei
// <name>: <msg>" string required by §7, so the model never sees a raw error.
func toolErrorText(name string, err error) string {
	return fmt.Sprintf("Fehler bei %s: %s", name, err.Error())
}
