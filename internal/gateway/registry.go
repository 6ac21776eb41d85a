// Package gateway wires the SIP call engine, the orchestrator, security
// gate, and dashboard together into one running process, and tracks the
// calls in flight so the dashboard's REST surface and Prometheus metrics
// have something to act on. The call map and mutex discipline are grounded
// in bridge/service.go's Service (tgSessions map[int64]*endpoints.TgEndpoint
// guarded by a single mutex), generalized from one fixed Telegram peer to
// many concurrent SIP calls.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/callengine"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/orchestrator"
)

// Registry tracks every call the engine has handed off, from the moment the
// IncomingCallHandler is invoked until OnCallEnded fires, implementing the
// dashboard's CallController and the metrics package's ActiveCallsProvider
// and RTPStatsProvider.
type Registry struct {
	logger *slog.Logger

	mu      sync.Mutex
	pending map[string]*callengine.Call // awaiting AcceptCall, keyed by call ID
	active  map[string]*activeCall      // accepted, orchestrator.Call running
}

type activeCall struct {
	bridge *callengine.Call
	orch   *orchestrator.Call
}

// NewRegistry constructs an empty Registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:  logger,
		pending: map[string]*callengine.Call{},
		active:  map[string]*activeCall{},
	}
}

// AddPending records an incoming call awaiting an accept/reject decision,
// called from the engine's IncomingCallHandler before any firewall/blacklist
// check resolves.
func (r *Registry) AddPending(call *callengine.Call) {
	r.mu.Lock()
	r.pending[call.ID] = call
	r.mu.Unlock()
}

// RemovePending drops callID from the pending set once it has been accepted
// or rejected, regardless of which.
func (r *Registry) RemovePending(callID string) {
	r.mu.Lock()
	delete(r.pending, callID)
	r.mu.Unlock()
}

// Promote moves callID from pending to active once the orchestrator.Call has
// been constructed and started, so dashboard control actions and metrics
// aggregation can find it by ID.
func (r *Registry) Promote(callID string, bridge *callengine.Call, orch *orchestrator.Call) {
	r.mu.Lock()
	delete(r.pending, callID)
	r.active[callID] = &activeCall{bridge: bridge, orch: orch}
	r.mu.Unlock()
}

// Remove drops callID from the active set once its call has ended.
func (r *Registry) Remove(callID string) {
	r.mu.Lock()
	delete(r.active, callID)
	r.mu.Unlock()
}

func (r *Registry) find(callID string) *activeCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active[callID]
}

// AcceptCall implements dashboard.CallController: it answers a call still
// awaiting a manual operator decision.
func (r *Registry) AcceptCall(callID string) error {
	r.mu.Lock()
	call, ok := r.pending[callID]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("gateway: no pending call %q", callID)
	}
	call.Accept()
	return nil
}

// Hangup implements dashboard.CallController.
func (r *Registry) Hangup(callID string) error {
	ac := r.find(callID)
	if ac == nil {
		return fmt.Errorf("gateway: no active call %q", callID)
	}
	return ac.orch.Hangup()
}

// MuteAI implements dashboard.CallController.
func (r *Registry) MuteAI(callID string) error {
	ac := r.find(callID)
	if ac == nil {
		return fmt.Errorf("gateway: no active call %q", callID)
	}
	return ac.orch.MuteAI()
}

// UnmuteAI implements dashboard.CallController.
func (r *Registry) UnmuteAI(callID string) error {
	ac := r.find(callID)
	if ac == nil {
		return fmt.Errorf("gateway: no active call %q", callID)
	}
	return ac.orch.UnmuteAI()
}

// SwitchAgent implements dashboard.CallController.
func (r *Registry) SwitchAgent(callID, target string) error {
	ac := r.find(callID)
	if ac == nil {
		return fmt.Errorf("gateway: no active call %q", callID)
	}
	return ac.orch.SwitchAgent(context.Background(), target)
}

// GetActiveCallCount implements metrics.ActiveCallsProvider.
func (r *Registry) GetActiveCallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// snapshot returns the bridges of every active call without holding the lock
// during the (cheap, atomic) counter reads below.
func (r *Registry) snapshot() []*callengine.Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*callengine.Call, 0, len(r.active))
	for _, ac := range r.active {
		out = append(out, ac.bridge)
	}
	return out
}

// AggregatePacketsSent implements metrics.RTPStatsProvider.
func (r *Registry) AggregatePacketsSent() uint64 {
	var total uint64
	for _, c := range r.snapshot() {
		total += c.PacketsSent()
	}
	return total
}

// AggregatePacketsReceived implements metrics.RTPStatsProvider.
func (r *Registry) AggregatePacketsReceived() uint64 {
	var total uint64
	for _, c := range r.snapshot() {
		total += c.PacketsReceived()
	}
	return total
}

// AggregateBytesSent implements metrics.RTPStatsProvider.
func (r *Registry) AggregateBytesSent() uint64 {
	var total uint64
	for _, c := range r.snapshot() {
		total += c.BytesSent()
	}
	return total
}

// AggregateBytesReceived implements metrics.RTPStatsProvider.
func (r *Registry) AggregateBytesReceived() uint64 {
	var total uint64
	for _, c := range r.snapshot() {
		total += c.BytesReceived()
	}
	return total
}
