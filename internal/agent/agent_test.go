package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToolResultConstructors(t *testing.T) {
	require.Equal(t, ToolResult{Kind: KindText, Text: "Gewechselt."}, Text("Gewechselt."))
	require.Equal(t, ToolResult{Kind: KindSwitch, Target: "main_agent"}, Switch("main_agent"))
	require.Equal(t, ToolResult{Kind: KindHangup}, Hangup())
	require.Equal(t, ToolResult{Kind: KindHangupUser}, HangupUser())
	require.Equal(t, ToolResult{Kind: KindBeep}, Beep())
	require.Equal(t, ToolResult{Kind: KindModelSwitch, Target: "premium"}, ModelSwitch("premium"))
	require.Equal(t, ToolResult{Kind: KindBeepQuiet, Text: "Code ungueltig."}, BeepQuiet("Code ungueltig."))
	require.Equal(t, ToolResult{Kind: KindModelSwitched}, ModelSwitched())
}

type fakeAgent struct {
	keywords []string
}

func (f fakeAgent) Name() string           { return "fake" }
func (f fakeAgent) DisplayName() string    { return "Fake" }
func (f fakeAgent) Description() string    { return "" }
func (f fakeAgent) Keywords() []string     { return f.keywords }
func (f fakeAgent) Tools() []ToolSchema    { return nil }
func (f fakeAgent) Instructions() string   { return "" }
func (f fakeAgent) PreferredModel() string { return "" }
func (f fakeAgent) OnCallStart(context.Context, *CallContext)   {}
func (f fakeAgent) OnCallEnd(context.Context, *CallContext)     {}
func (f fakeAgent) OnActivated(context.Context, *CallContext)   {}
func (f fakeAgent) OnDeactivated(context.Context, *CallContext) {}
func (f fakeAgent) ExecuteTool(context.Context, *CallContext, string, map[string]any) (ToolResult, error) {
	return Text(""), nil
}

func TestIntentScore(t *testing.T) {
	a := fakeAgent{keywords: []string{"code", "programmieren", "python"}}
	score := IntentScore(a, "ich moechte gerne programmieren lernen")
	require.InDelta(t, 1.0/3.0, score, 1e-9)
}

func TestIntentScoreNoKeywords(t *testing.T) {
	a := fakeAgent{}
	require.Equal(t, 0.0, IntentScore(a, "irgendwas"))
}

func TestIntentScoreNoMatch(t *testing.T) {
	a := fakeAgent{keywords: []string{"catalog", "ideas"}}
	require.Equal(t, 0.0, IntentScore(a, "ganz anderes thema"))
}
