package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// SecurityGateName is the well-known name the security-gate agent must
// register under; Manager special-cases it for the unlock-enforcement rule
// and the whitelist-bypass path (§4.4/§4.6).
const SecurityGateName = "security_agent"

// MainAgentName is the well-known name of the default post-unlock agent.
const MainAgentName = "main_agent"

// Manager is the per-call ActiveAgentContext (§3): it holds the current
// agent, the call's mutable CallContext, and a monotonic switch-generation
// counter used to drop stale events from a superseded agent/session
// (Open Question 1 in DESIGN.md).
type Manager struct {
	registry *Registry
	logger   *slog.Logger

	mu         sync.Mutex
	active     Agent
	call       *CallContext
	generation uint64
}

// NewManager constructs a Manager bound to registry. Call StartCall to
// initialize the active agent for a new call.
func NewManager(registry *Registry, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{registry: registry, logger: logger}
}

// StartCall sets the active agent to initialAgent (defaulting to the
// security gate), resets unlocked=false, and fires OnCallStart/OnActivated.
// If whitelisted is true, the call skips the gate entirely: the active
// agent becomes the main agent and unlocked is set true immediately, per
// §4.4/§4.6's whitelist-bypass rule.
func (m *Manager) StartCall(ctx context.Context, caller string, initialAgent string, whitelisted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := initialAgent
	if name == "" {
		name = SecurityGateName
	}
	unlocked := false
	if whitelisted {
		name = MainAgentName
		unlocked = true
	}

	a := m.registry.Get(name)
	if a == nil {
		return fmt.Errorf("agent manager: unknown initial agent %q", name)
	}

	m.call = &CallContext{Caller: caller, Unlocked: unlocked}
	m.active = a
	m.generation++

	a.OnCallStart(ctx, m.call)
	a.OnActivated(ctx, m.call)
	return nil
}

// EndCall fires OnDeactivated/OnCallEnd for the currently active agent.
func (m *Manager) EndCall(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return
	}
	m.active.OnDeactivated(ctx, m.call)
	m.active.OnCallEnd(ctx, m.call)
}

// Active returns the currently active agent.
func (m *Manager) Active() Agent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Call returns the per-call mutable context.
func (m *Manager) Call() *CallContext {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.call
}

// Generation returns the current switch-generation counter, incremented on
// every SwitchAgent (and on StartCall). Callers holding a session/event tied
// to an older generation must treat it as stale (Open Question 1).
func (m *Manager) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation
}

// SwitchAgent deactivates the current agent and activates target, firing the
// corresponding hooks and advancing the switch-generation counter. Switching
// to the already-active agent is a documented no-op (§8 idempotence).
func (m *Manager) SwitchAgent(ctx context.Context, target string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil && m.active.Name() == target {
		return nil
	}
	next := m.registry.Get(target)
	if next == nil {
		return fmt.Errorf("agent manager: unknown target agent %q", target)
	}
	if m.active != nil {
		m.active.OnDeactivated(ctx, m.call)
	}
	m.active = next
	m.generation++
	next.OnActivated(ctx, m.call)
	return nil
}

// Tools returns the active agent's tool schemas concatenated with the two
// always-available globals, per §4.4's Tool exposure rule. model_wechseln is
// suppressed when the active agent forces a model via PreferredModel.
func (m *Manager) Tools() []ToolSchema {
	m.mu.Lock()
	active := m.active
	m.mu.Unlock()
	if active == nil {
		return nil
	}
	tools := append([]ToolSchema{}, active.Tools()...)
	tools = append(tools, globalHangupTool)
	if active.PreferredModel() == "" {
		tools = append(tools, globalModelSwitchTool)
	}
	return tools
}

// ExecuteTool dispatches name/args to the active agent, enforcing the
// security gate (§4.4: locked calls may only reach the security gate's own
// tools) and converting execution panics-as-errors into the fixed
// "Fehler bei <name>: <msg>" text (§7). The two global tools (auflegen,
// model_wechseln) are handled directly without delegating to the agent.
func (m *Manager) ExecuteTool(ctx context.Context, name string, args map[string]any) ToolResult {
	m.mu.Lock()
	active := m.active
	call := m.call
	m.mu.Unlock()

	if active == nil || call == nil {
		return Text(errNotUnlocked)
	}

	switch name {
	case ToolAuflegen:
		return HangupUser()
	case ToolModelWechseln:
		if active.PreferredModel() != "" {
			return Text(errNotUnlocked)
		}
		key, _ := args["model"].(string)
		return ModelSwitch(key)
	}

	if !call.Unlocked && active.Name() != SecurityGateName {
		return Text(errNotUnlocked)
	}

	result, err := safeExecute(ctx, active, call, name, args)
	if err != nil {
		return Text(toolErrorText(name, err))
	}
	return result
}

// safeExecute calls ExecuteTool inside a deferred-recover guard so a panicking
// agent cannot take down the call's dispatch loop (§7 propagation policy:
// observer/tool exceptions must never escape into shared loops).
func safeExecute(ctx context.Context, a Agent, cc *CallContext, name string, args map[string]any) (result ToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return a.ExecuteTool(ctx, cc, name, args)
}
