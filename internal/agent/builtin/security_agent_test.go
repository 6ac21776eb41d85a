package builtin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/agent"
)

func TestSecurityAgentCorrectCodeSwitches(t *testing.T) {
	a := NewSecurityAgent("7234", 3, nil)
	cc := &agent.CallContext{Caller: "+49123"}

	result, err := a.ExecuteTool(context.Background(), cc, "unlock", map[string]any{"code": "7 2 3 4"})
	require.NoError(t, err)
	require.Equal(t, agent.Switch(agent.MainAgentName), result)
	require.True(t, cc.Unlocked)
}

func TestSecurityAgentWrongCodeBeepsAndIncrementsStrikes(t *testing.T) {
	a := NewSecurityAgent("7234", 3, nil)
	cc := &agent.CallContext{Caller: "+49123"}

	result, err := a.ExecuteTool(context.Background(), cc, "unlock", map[string]any{"code": "1111"})
	require.NoError(t, err)
	require.Equal(t, agent.Beep(), result)
	require.Equal(t, 1, cc.StrikeCount)
}

func TestSecurityAgentThirdWrongCodeHangsUp(t *testing.T) {
	a := NewSecurityAgent("7234", 3, nil)
	cc := &agent.CallContext{Caller: "+49123"}

	for i := 0; i < 2; i++ {
		result, err := a.ExecuteTool(context.Background(), cc, "unlock", map[string]any{"code": "1111"})
		require.NoError(t, err)
		require.Equal(t, agent.Beep(), result)
	}

	result, err := a.ExecuteTool(context.Background(), cc, "unlock", map[string]any{"code": "1111"})
	require.NoError(t, err)
	require.Equal(t, agent.Hangup(), result)
	require.Equal(t, 3, cc.StrikeCount)
}

func TestSecurityAgentEmptyCodeBeepsWithoutStrike(t *testing.T) {
	a := NewSecurityAgent("7234", 3, nil)
	cc := &agent.CallContext{Caller: "+49123"}

	result, err := a.ExecuteTool(context.Background(), cc, "unlock", map[string]any{"code": ""})
	require.NoError(t, err)
	require.Equal(t, agent.Beep(), result)
	require.Equal(t, 0, cc.StrikeCount, "empty code must not consume a strike")
}

func TestSecurityAgentNonNumericCodeBeepsWithoutStrike(t *testing.T) {
	a := NewSecurityAgent("7234", 3, nil)
	cc := &agent.CallContext{Caller: "+49123"}

	result, err := a.ExecuteTool(context.Background(), cc, "unlock", map[string]any{"code": "hallo welt"})
	require.NoError(t, err)
	require.Equal(t, agent.Beep(), result)
	require.Equal(t, 0, cc.StrikeCount, "non-numeric code must not consume a strike")
}

func TestSecurityAgentOnCallStartResetsStrikes(t *testing.T) {
	a := NewSecurityAgent("7234", 3, nil)
	cc := &agent.CallContext{Caller: "+49123", StrikeCount: 2}
	a.OnCallStart(context.Background(), cc)
	require.Equal(t, 0, cc.StrikeCount)
}

func TestSecurityAgentOnlyExposesUnlockTool(t *testing.T) {
	a := NewSecurityAgent("7234", 3, nil)
	tools := a.Tools()
	require.Len(t, tools, 1)
	require.Equal(t, "unlock", tools[0].Name)
}

func TestSecurityAgentUnknownToolBeeps(t *testing.T) {
	a := NewSecurityAgent("7234", 3, nil)
	cc := &agent.CallContext{Caller: "+49123"}
	result, err := a.ExecuteTool(context.Background(), cc, "anything_else", map[string]any{})
	require.NoError(t, err)
	require.Equal(t, agent.Beep(), result)
}
