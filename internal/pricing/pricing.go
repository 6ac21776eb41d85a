// Package pricing implements the static per-model USD-per-1M-token rate
// table and the cost-delta formula applied to cumulative usage counters.
package pricing

import "github.com/nikolashermanns-netizen/voiceagent-platform/internal/config"

// Usage is a snapshot of cumulative token counters for one of the four
// billing categories, matching RealtimeSession's cumulative counters.
type Usage struct {
	InputText   int64
	InputAudio  int64
	OutputText  int64
	OutputAudio int64
}

// Delta returns the per-category increase from prev to u. Negative deltas
// (which should not occur across a model switch) are clamped to 0.
func (u Usage) Delta(prev Usage) Usage {
	clamp := func(a, b int64) int64 {
		d := a - b
		if d < 0 {
			return 0
		}
		return d
	}
	return Usage{
		InputText:   clamp(u.InputText, prev.InputText),
		InputAudio:  clamp(u.InputAudio, prev.InputAudio),
		OutputText:  clamp(u.OutputText, prev.OutputText),
		OutputAudio: clamp(u.OutputAudio, prev.OutputAudio),
	}
}

// Table holds the resolved pricing rates keyed by model key ("mini"|"premium").
type Table struct {
	rates map[string]config.PricingRate
}

// NewTable builds a pricing Table from the configured rates.
func NewTable(rates map[string]config.PricingRate) *Table {
	t := &Table{rates: map[string]config.PricingRate{}}
	for k, v := range rates {
		t.rates[k] = v
	}
	return t
}

// CostUSD computes Σ(delta_tokens_i × rate_i) / 1e6 for the given model key,
// using that model's current rates.
func (t *Table) CostUSD(modelKey string, delta Usage) float64 {
	rate, ok := t.rates[modelKey]
	if !ok {
		return 0
	}
	const perMillion = 1.0 / 1_000_000.0
	return (float64(delta.InputText)*rate.InputText +
		float64(delta.InputAudio)*rate.InputAudio +
		float64(delta.OutputText)*rate.OutputText +
		float64(delta.OutputAudio)*rate.OutputAudio) * perMillion
}
