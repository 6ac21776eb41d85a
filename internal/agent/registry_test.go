package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubAgent struct {
	name     string
	keywords []string
	model    string
}

func (s stubAgent) Name() string           { return s.name }
func (s stubAgent) DisplayName() string    { return s.name }
func (s stubAgent) Description() string    { return "" }
func (s stubAgent) Keywords() []string     { return s.keywords }
func (s stubAgent) Tools() []ToolSchema    { return []ToolSchema{{Name: s.name + "_tool"}} }
func (s stubAgent) Instructions() string   { return "" }
func (s stubAgent) PreferredModel() string { return s.model }
func (s stubAgent) OnCallStart(context.Context, *CallContext)   {}
func (s stubAgent) OnCallEnd(context.Context, *CallContext)     {}
func (s stubAgent) OnActivated(context.Context, *CallContext)   {}
func (s stubAgent) OnDeactivated(context.Context, *CallContext) {}
func (s stubAgent) ExecuteTool(context.Context, *CallContext, string, map[string]any) (ToolResult, error) {
	return Text(s.name + " ok"), nil
}

func TestRegistryDuplicateNameOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register(stubAgent{name: "main_agent", model: "mini"}, nil)
	r.Register(stubAgent{name: "main_agent", model: "premium"}, nil)

	got := r.Get("main_agent")
	require.NotNil(t, got)
	require.Equal(t, "premium", got.PreferredModel())
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()
	require.Nil(t, r.Get("nope"))
}

func TestRegistryAllSortedByName(t *testing.T) {
	r := NewRegistry()
	r.Register(stubAgent{name: "zeta"}, nil)
	r.Register(stubAgent{name: "alpha"}, nil)
	r.Register(stubAgent{name: "mu"}, nil)

	all := r.All()
	require.Len(t, all, 3)
	require.Equal(t, []string{"alpha", "mu", "zeta"}, []string{all[0].Name(), all[1].Name(), all[2].Name()})
}

func TestRegistryFindForIntent(t *testing.T) {
	r := NewRegistry()
	r.Register(stubAgent{name: "code_agent", keywords: []string{"python", "programmieren", "code"}}, nil)
	r.Register(stubAgent{name: "catalog_agent", keywords: []string{"produkt", "katalog", "bestellen"}}, nil)

	got := r.FindForIntent("ich will programmieren lernen")
	require.NotNil(t, got)
	require.Equal(t, "code_agent", got.Name())
}

func TestRegistryFindForIntentNoMatch(t *testing.T) {
	r := NewRegistry()
	r.Register(stubAgent{name: "code_agent", keywords: []string{"python"}}, nil)
	require.Nil(t, r.FindForIntent("komplett unrelated text"))
}
