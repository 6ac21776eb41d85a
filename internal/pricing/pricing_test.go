package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/config"
)

func TestUsageDeltaClampsNegative(t *testing.T) {
	prev := Usage{InputText: 100, InputAudio: 50, OutputText: 10, OutputAudio: 5}
	cur := Usage{InputText: 80, InputAudio: 60, OutputText: 10, OutputAudio: 5}

	delta := cur.Delta(prev)
	require.Equal(t, int64(0), delta.InputText, "decrease must clamp to 0, never go negative")
	require.Equal(t, int64(10), delta.InputAudio)
	require.Equal(t, int64(0), delta.OutputText)
	require.Equal(t, int64(0), delta.OutputAudio)
}

func TestTableCostUSDUsesCurrentModelRates(t *testing.T) {
	table := NewTable(map[string]config.PricingRate{
		"mini": {InputText: 1, InputAudio: 2, OutputText: 3, OutputAudio: 4},
	})

	cost := table.CostUSD("mini", Usage{InputText: 1_000_000, InputAudio: 500_000, OutputText: 0, OutputAudio: 250_000})
	// 1*1_000_000 + 2*500_000 + 4*250_000 = 1_000_000 + 1_000_000 + 1_000_000 = 3_000_000 tokens*rate -> /1e6
	require.InDelta(t, 3.0, cost, 1e-9)
}

func TestTableCostUSDUnknownModel(t *testing.T) {
	table := NewTable(map[string]config.PricingRate{"mini": {InputText: 1}})
	require.Equal(t, 0.0, table.CostUSD("premium", Usage{InputText: 1_000_000}))
}

func TestTableCostUSDZeroUsage(t *testing.T) {
	table := NewTable(map[string]config.PricingRate{"mini": {InputText: 5, InputAudio: 5, OutputText: 5, OutputAudio: 5}})
	require.Equal(t, 0.0, table.CostUSD("mini", Usage{}))
}
