package gateway

import (
	"context"
	"log/slog"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/agent"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/callengine"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/dashboard"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/orchestrator"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/pricing"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/realtime"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/security"
)

// Handler builds callengine.IncomingCallHandler, running the firewall and
// blacklist checks before a call is ever accepted, using the security gate's
// strike/blacklist model for arbitrary callers rather than a single fixed peer.
// Agents is the shared, read-only agent registry; each accepted call gets its
// own *agent.Manager (the per-call ActiveAgentContext), built inside
// orchestrator.NewCall, so concurrent callers never share unlocked/strike
// state (§3).
type Handler struct {
	Registry   *Registry
	Agents     *agent.Registry
	Hub        *dashboard.Hub
	Firewall   *security.Firewall
	Blacklist  *security.BlacklistStore
	Pricing    *pricing.Table
	Recorder   orchestrator.CallRecorder
	ModelIDs   map[string]string
	Realtime   realtime.Config
	Logger     *slog.Logger
}

// Handle implements callengine.IncomingCallHandler: it evaluates the
// blacklist, then the firewall, then either rejects the call immediately or
// registers it as pending for a whitelisted/gated accept. The blacklist
// check is more specific (per-caller) and always runs first, independent of
// the firewall's IP allow-list (§4.7); whitelist only governs gate-bypass
// for callers who are not blacklisted, and never overrides a blacklist hit.
func (h *Handler) Handle(ctx context.Context, call *callengine.Call) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	blacklisted := false
	whitelisted := false
	if h.Blacklist != nil {
		var err error
		blacklisted, err = h.Blacklist.IsBlacklisted(ctx, call.CallerURI)
		if err != nil {
			logger.Warn("gateway: blacklist check failed", "error", err)
		}
		whitelisted, err = h.Blacklist.IsWhitelisted(ctx, call.CallerURI)
		if err != nil {
			logger.Warn("gateway: whitelist check failed", "error", err)
		}
	}
	if blacklisted {
		logger.Info("gateway: call rejected (blacklisted)", "call_id", call.ID, "caller", call.CallerURI)
		call.Reject(403)
		h.broadcastRejected(call, "blacklist")
		return
	}

	if h.Firewall != nil && !h.Firewall.Allow(call.RemoteIP, call.CallerURI) {
		logger.Warn("gateway: call rejected by firewall", "call_id", call.ID, "remote_ip", call.RemoteIP)
		call.Reject(403)
		h.broadcastRejected(call, "firewall")
		return
	}

	h.Registry.AddPending(call)

	orch := orchestrator.NewCall(call.CallerURI, orchestrator.Deps{
		Agents:    h.Agents,
		Bridge:    call,
		Broadcast: h.Hub,
		Blacklist: h.Blacklist,
		Pricing:   h.Pricing,
		Recorder:  h.Recorder,
		ModelIDs:  h.ModelIDs,
		Logger:    logger.With("call_id", call.ID),
	})
	call.SetObserver(orch)

	if err := orch.Start(ctx, h.Realtime, whitelisted); err != nil {
		logger.Error("gateway: starting call failed", "call_id", call.ID, "error", err)
		h.Registry.RemovePending(call.ID)
		call.Reject(500)
		return
	}

	h.Registry.Promote(call.ID, call, orch)
	call.Accept()

	go h.awaitEnd(call)
}

// broadcastRejected emits the call_rejected dashboard event required by §7's
// trunk/firewall/blacklist rejection path. h.Hub may be nil in tests that
// exercise the gate without a dashboard wired up.
func (h *Handler) broadcastRejected(call *callengine.Call, reason string) {
	if h.Hub == nil {
		return
	}
	h.Hub.Broadcast("call_rejected", map[string]any{
		"call_id": call.ID,
		"caller":  call.CallerURI,
		"reason":  reason,
	})
}

// awaitEnd removes callID from the active set once the SIP leg ends, keeping
// the registry (and therefore the dashboard/metrics view of active calls)
// in sync with the engine's own lifecycle.
func (h *Handler) awaitEnd(call *callengine.Call) {
	<-call.Done()
	h.Registry.Remove(call.ID)
}
