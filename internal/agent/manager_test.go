package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingAgent struct {
	stubAgent
	activations   *int
	deactivations *int
	result        ToolResult
	err           error
	panics        bool
}

func (r recordingAgent) OnActivated(context.Context, *CallContext) {
	if r.activations != nil {
		*r.activations++
	}
}

func (r recordingAgent) OnDeactivated(context.Context, *CallContext) {
	if r.deactivations != nil {
		*r.deactivations++
	}
}

func (r recordingAgent) ExecuteTool(ctx context.Context, cc *CallContext, name string, args map[string]any) (ToolResult, error) {
	if r.panics {
		panic("boom")
	}
	if r.err != nil {
		return ToolResult{}, r.err
	}
	return r.result, nil
}

func newGateAndMain() (*Registry, *int, *int) {
	var mainActivations, gateActivations int
	r := NewRegistry()
	r.Register(recordingAgent{stubAgent: stubAgent{name: SecurityGateName}, activations: &gateActivations}, nil)
	r.Register(recordingAgent{stubAgent: stubAgent{name: MainAgentName}, activations: &mainActivations, result: Text("hi")}, nil)
	return r, &mainActivations, &gateActivations
}

func TestManagerStartCallDefaultsToSecurityGate(t *testing.T) {
	r, _, gateActivations := newGateAndMain()
	m := NewManager(r, nil)

	require.NoError(t, m.StartCall(context.Background(), "+49123", "", false))
	require.Equal(t, SecurityGateName, m.Active().Name())
	require.False(t, m.Call().Unlocked)
	require.Equal(t, 1, *gateActivations)
}

func TestManagerStartCallWhitelistedBypassesGate(t *testing.T) {
	r, mainActivations, gateActivations := newGateAndMain()
	m := NewManager(r, nil)

	require.NoError(t, m.StartCall(context.Background(), "+49123", "", true))
	require.Equal(t, MainAgentName, m.Active().Name())
	require.True(t, m.Call().Unlocked)
	require.Equal(t, 0, *gateActivations)
	require.Equal(t, 1, *mainActivations)
}

func TestManagerSwitchAgentSameTargetIsNoop(t *testing.T) {
	r, mainActivations, _ := newGateAndMain()
	m := NewManager(r, nil)
	require.NoError(t, m.StartCall(context.Background(), "+49123", "", true))

	genBefore := m.Generation()
	require.NoError(t, m.SwitchAgent(context.Background(), MainAgentName))
	require.Equal(t, genBefore, m.Generation(), "switching to the already-active agent must not advance generation")
	require.Equal(t, 1, *mainActivations, "no duplicate activation on a same-target switch")
}

func TestManagerSwitchAgentUnknownTarget(t *testing.T) {
	r, _, _ := newGateAndMain()
	m := NewManager(r, nil)
	require.NoError(t, m.StartCall(context.Background(), "+49123", "", true))

	err := m.SwitchAgent(context.Background(), "does_not_exist")
	require.Error(t, err)
}

func TestManagerSwitchAgentFiresHooksAndBumpsGeneration(t *testing.T) {
	var codeActivations, codeDeactivations int
	r, _, _ := newGateAndMain()
	r.Register(recordingAgent{stubAgent: stubAgent{name: "code_agent"}, activations: &codeActivations, deactivations: &codeDeactivations}, nil)
	m := NewManager(r, nil)
	require.NoError(t, m.StartCall(context.Background(), "+49123", "", true))

	genBefore := m.Generation()
	require.NoError(t, m.SwitchAgent(context.Background(), "code_agent"))
	require.Greater(t, m.Generation(), genBefore)
	require.Equal(t, 1, codeActivations)
	require.Equal(t, "code_agent", m.Active().Name())
}

func TestManagerExecuteToolEnforcesSecurityGateWhenLocked(t *testing.T) {
	r, _, _ := newGateAndMain()
	m := NewManager(r, nil)
	require.NoError(t, m.StartCall(context.Background(), "+49123", "", false))

	// Active agent is the gate itself, so its own tools still run.
	result := m.ExecuteTool(context.Background(), "unlock", map[string]any{})
	require.NotEqual(t, Text(errNotUnlocked), result)
}

func TestManagerExecuteToolLockedBlocksNonGateAgent(t *testing.T) {
	r := NewRegistry()
	r.Register(recordingAgent{stubAgent: stubAgent{name: SecurityGateName}}, nil)
	mainStub := recordingAgent{stubAgent: stubAgent{name: MainAgentName}, result: Text("should not run")}
	r.Register(mainStub, nil)
	m := NewManager(r, nil)
	require.NoError(t, m.StartCall(context.Background(), "+49123", "", false))
	// force-switch the manager's active agent to main without unlocking, to
	// simulate a hypothetical bypass attempt.
	m.mu.Lock()
	m.active = mainStub
	m.mu.Unlock()

	result := m.ExecuteTool(context.Background(), "whatever_tool", map[string]any{})
	require.Equal(t, Text(errNotUnlocked), result)
}

func TestManagerExecuteToolGlobalHangupAlwaysAvailable(t *testing.T) {
	r, _, _ := newGateAndMain()
	m := NewManager(r, nil)
	require.NoError(t, m.StartCall(context.Background(), "+49123", "", true))

	result := m.ExecuteTool(context.Background(), ToolAuflegen, map[string]any{})
	require.Equal(t, HangupUser(), result)
}

func TestManagerExecuteToolModelSwitchSuppressedWhenAgentForcesModel(t *testing.T) {
	r := NewRegistry()
	r.Register(recordingAgent{stubAgent: stubAgent{name: SecurityGateName}}, nil)
	r.Register(recordingAgent{stubAgent: stubAgent{name: MainAgentName, model: "mini"}}, nil)
	m := NewManager(r, nil)
	require.NoError(t, m.StartCall(context.Background(), "+49123", "", true))

	tools := m.Tools()
	for _, tool := range tools {
		require.NotEqual(t, ToolModelWechseln, tool.Name, "model_wechseln must be suppressed when the agent forces a model")
	}

	result := m.ExecuteTool(context.Background(), ToolModelWechseln, map[string]any{"model": "premium"})
	require.Equal(t, Text(errNotUnlocked), result)
}

func TestManagerExecuteToolCatchesPanicAsError(t *testing.T) {
	r := NewRegistry()
	r.Register(recordingAgent{stubAgent: stubAgent{name: SecurityGateName}}, nil)
	r.Register(recordingAgent{stubAgent: stubAgent{name: MainAgentName}, panics: true}, nil)
	m := NewManager(r, nil)
	require.NoError(t, m.StartCall(context.Background(), "+49123", "", true))

	result := m.ExecuteTool(context.Background(), "crash_tool", map[string]any{})
	require.Equal(t, KindText, result.Kind)
	require.Contains(t, result.Text, "Fehler bei crash_tool")
}

func TestManagerExecuteToolWrapsExecutionError(t *testing.T) {
	r := NewRegistry()
	r.Register(recordingAgent{stubAgent: stubAgent{name: SecurityGateName}}, nil)
	r.Register(recordingAgent{stubAgent: stubAgent{name: MainAgentName}, err: errors.New("boom")}, nil)
	m := NewManager(r, nil)
	require.NoError(t, m.StartCall(context.Background(), "+49123", "", true))

	result := m.ExecuteTool(context.Background(), "bad_tool", map[string]any{})
	require.Equal(t, "Fehler bei bad_tool: boom", result.Text)
}
