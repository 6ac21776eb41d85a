package agent

import (
	"log/slog"
	"sort"
	"sync"
)

// Registry is a map from stable agent name to its Agent value, populated
// once at startup via explicit compile-time registration (REDESIGN: the
// Python original's filesystem directory scan is replaced by a static
// registration list gathered in cmd/voicegatewayd, but duplicate names still
// log-and-overwrite exactly like original_source's AgentRegistry.register).
type Registry struct {
	mu     sync.RWMutex
	agents map[string]Agent
}

// NewRegistry creates an empty agent registry.
func NewRegistry() *Registry {
	return &Registry{agents: map[string]Agent{}}
}

// Register adds a to the registry under a.Name(). A duplicate name
// overwrites the previous entry and logs a warning, matching
// original_source's registry.py behavior.
func (r *Registry) Register(a Agent, logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.agents[a.Name()]; exists && logger != nil {
		logger.Warn("agent registry: duplicate agent name, overwriting", "name", a.Name())
	}
	r.agents[a.Name()] = a
}

// Get returns the agent registered under name, or nil if none.
func (r *Registry) Get(name string) Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.agents[name]
}

// All returns every registered agent, sorted by name for deterministic
// iteration (e.g. when computing intent scores across all candidates).
func (r *Registry) All() []Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Agent, 0, len(r.agents))
	for _, a := range r.agents {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// FindForIntent returns the agent whose keywords best match utterance,
// using the bag-of-keywords score from IntentScore. Returns nil if no agent
// scores above zero.
func (r *Registry) FindForIntent(utterance string) Agent {
	var best Agent
	var bestScore float64
	for _, a := range r.All() {
		score := IntentScore(a, utterance)
		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}
