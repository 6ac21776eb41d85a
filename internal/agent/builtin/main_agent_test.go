package builtin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/agent"
)

func TestMainAgentSwitchesToKnownSpecialist(t *testing.T) {
	registry := agent.NewRegistry()
	registry.Register(NewSecurityAgent("1234", 3, nil), nil)
	codeAgent := NewCodeAgent(nil, nil, nil, nil)
	registry.Register(codeAgent, nil)
	m := NewMainAgent(registry, nil)
	registry.Register(m, nil)

	cc := &agent.CallContext{Caller: "+49123"}
	result, err := m.ExecuteTool(context.Background(), cc, "wechsel_zu_agent", map[string]any{"agent_name": codeAgent.Name()})
	require.NoError(t, err)
	require.Equal(t, agent.Switch(codeAgent.Name()), result)
}

func TestMainAgentUnknownSpecialistReturnsText(t *testing.T) {
	registry := agent.NewRegistry()
	registry.Register(NewSecurityAgent("1234", 3, nil), nil)
	m := NewMainAgent(registry, nil)
	registry.Register(m, nil)

	cc := &agent.CallContext{Caller: "+49123"}
	result, err := m.ExecuteTool(context.Background(), cc, "wechsel_zu_agent", map[string]any{"agent_name": "ghost_agent"})
	require.NoError(t, err)
	require.Equal(t, agent.KindText, result.Kind)
	require.Contains(t, result.Text, "nicht gefunden")
}

func TestMainAgentZeigeOptionenListsSpecialistsExcludingGateAndSelf(t *testing.T) {
	registry := agent.NewRegistry()
	registry.Register(NewSecurityAgent("1234", 3, nil), nil)
	codeAgent := NewCodeAgent(nil, nil, nil, nil)
	registry.Register(codeAgent, nil)
	m := NewMainAgent(registry, nil)
	registry.Register(m, nil)

	cc := &agent.CallContext{Caller: "+49123"}
	result, err := m.ExecuteTool(context.Background(), cc, "zeige_optionen", map[string]any{})
	require.NoError(t, err)
	require.Equal(t, agent.KindText, result.Kind)
	require.Contains(t, result.Text, codeAgent.DisplayName())
	require.NotContains(t, result.Text, "Sicherheits-Gate")
}

func TestMainAgentMissingAgentNameArgument(t *testing.T) {
	registry := agent.NewRegistry()
	m := NewMainAgent(registry, nil)
	cc := &agent.CallContext{Caller: "+49123"}
	result, err := m.ExecuteTool(context.Background(), cc, "wechsel_zu_agent", map[string]any{})
	require.NoError(t, err)
	require.Equal(t, agent.Text("Fehler: Kein Agent angegeben."), result)
}
