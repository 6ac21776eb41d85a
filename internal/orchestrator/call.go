// Package orchestrator implements the tool-sentinel interpreter (§4.5): the
// glue between the realtime AI session, the agent manager, the SIP bridge,
// the security gate, and persistence. It owns no state beyond one Call per
// accepted SIP leg (REDESIGN §9: process-wide globals for current model,
// cumulative cost, and audio stats become fields on this per-Call struct,
// never package-level variables).
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/agent"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/pricing"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/realtime"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/resample"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/security"
)

// beepFrame is a pre-generated ~150 ms 800 Hz sine with a 10 ms fade-in/out
// at 48 kHz mono PCM16, enqueued verbatim on wrong-code/invalid-code events
// (§4.5 step 3). Computed once at package init.
var beepFrame = generateBeep(48000, 800, 150*time.Millisecond, 10*time.Millisecond)

// SIPBridge is the audio/control surface the orchestrator drives; satisfied
// by internal/callengine's per-call handle.
type SIPBridge interface {
	SendAudio(pcm48 []byte) error
	ClearAudioQueue() int
	Hangup(reason string) error
}

// Broadcaster publishes dashboard events (§6); satisfied by internal/dashboard's hub.
type Broadcaster interface {
	Broadcast(eventType string, payload map[string]any)
}

type noopBroadcaster struct{}

func (noopBroadcaster) Broadcast(string, map[string]any) {}

// CallRecorder persists the CallRecord at hangup (§3/§6).
type CallRecorder interface {
	RecordCall(ctx context.Context, id, caller string, startedAt, endedAt time.Time, modelKey string, costUSD float64) error
}

type noopRecorder struct{}

func (noopRecorder) RecordCall(context.Context, string, string, time.Time, time.Time, string, float64) error {
	return nil
}

// Call is one accepted SIP leg's full orchestration state: the realtime AI
// session, the active-agent manager, the security timer, and the running
// usage/cost totals. It is the single writer of its own state (§3).
type Call struct {
	ID     string
	Caller string

	logger    *slog.Logger
	manager   *agent.Manager
	session   *realtime.Session
	bridge    SIPBridge
	broadcast Broadcaster
	blacklist *security.BlacklistStore
	pricing   *pricing.Table
	recorder  CallRecorder

	modelIDs map[string]string // model key ("mini"/"premium") -> provider model id

	mu         sync.Mutex
	startedAt  time.Time
	costUSD    float64
	lastUsage  realtime.Usage
	timer      *security.InactivityTimer
	endedOnce  bool
}

// Deps bundles Call's external collaborators so NewCall's signature stays
// readable as the component count grows. Agents is the shared, read-only
// agent registry (§3: "agents are shared read-only across calls"); NewCall
// builds a fresh *agent.Manager from it per Call, since the Manager itself
// *is* the per-call ActiveAgentContext and must not be shared across
// concurrently accepted SIP legs.
type Deps struct {
	Agents    *agent.Registry
	Bridge    SIPBridge
	Broadcast Broadcaster
	Blacklist *security.BlacklistStore
	Pricing   *pricing.Table
	Recorder  CallRecorder
	ModelIDs  map[string]string // "mini" -> provider model id, "premium" -> provider model id
	Logger    *slog.Logger
}

// NewCall constructs a Call bound to caller and its collaborators. Start
// must be called to begin the security-gate (or bypass) flow.
func NewCall(caller string, deps Deps) *Call {
	if deps.Broadcast == nil {
		deps.Broadcast = noopBroadcaster{}
	}
	if deps.Recorder == nil {
		deps.Recorder = noopRecorder{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Call{
		ID:        uuid.NewString(),
		Caller:    caller,
		logger:    deps.Logger,
		manager:   agent.NewManager(deps.Agents, deps.Logger),
		bridge:    deps.Bridge,
		broadcast: deps.Broadcast,
		blacklist: deps.Blacklist,
		pricing:   deps.Pricing,
		recorder:  deps.Recorder,
		modelIDs:  deps.ModelIDs,
		startedAt: time.Now(),
	}
}

// Start checks whitelist status, picks the initial agent, opens the realtime
// session (text-only if the security gate is active), and starts the
// inactivity timer (§4.6/§4.7 control flow).
func (c *Call) Start(ctx context.Context, sessionCfg realtime.Config, whitelisted bool) error {
	initial := agent.SecurityGateName
	if whitelisted {
		initial = agent.MainAgentName
	}
	if err := c.manager.StartCall(ctx, c.Caller, initial, whitelisted); err != nil {
		return fmt.Errorf("orchestrator: start call: %w", err)
	}

	active := c.manager.Active()
	sessionCfg.TextOnly = active.Name() == agent.SecurityGateName
	sessionCfg.Instructions = active.Instructions()
	sessionCfg.Tools = toRealtimeTools(c.manager.Tools())

	modelKey := active.PreferredModel()
	if modelKey == "" {
		modelKey = "mini"
	}
	c.session = realtime.NewSession(sessionCfg, (*callObserver)(c), c.onToolCall, c.logger)
	if err := c.session.Connect(ctx, modelKey, c.modelIDs[modelKey]); err != nil {
		return fmt.Errorf("orchestrator: connect realtime session: %w", err)
	}
	c.manager.Call().ActiveModel = modelKey

	c.mu.Lock()
	c.timer = security.NewInactivityTimer(c.onInactivityTimeout)
	c.mu.Unlock()

	c.broadcast.Broadcast("call_incoming", map[string]any{"call_id": c.ID, "caller": c.Caller})
	c.broadcast.Broadcast("call_active", map[string]any{"call_id": c.ID, "caller": c.Caller})
	if whitelisted {
		c.cancelTimer()
	}
	return c.session.TriggerGreeting()
}

// HandleCallerAudio resamples 48 kHz SIP audio down to 16 kHz and forwards
// it to the realtime session.
func (c *Call) HandleCallerAudio(pcm48 []byte) error {
	return c.session.SendAudio(resample.SIPToAIInput(pcm48))
}

// OnAudioReceived implements callengine.Observer: every 20 ms frame the call
// engine decodes from the SIP leg is forwarded to the realtime session.
func (c *Call) OnAudioReceived(pcm48 []byte) {
	if err := c.HandleCallerAudio(pcm48); err != nil {
		c.logger.Warn("orchestrator: forwarding caller audio failed", "error", err)
	}
}

// OnCallEnded implements callengine.Observer: the call engine invokes this
// exactly once per accepted call, regardless of which side hung up.
func (c *Call) OnCallEnded(reason string) {
	(*callObserver)(c).OnCallEnded(reason)
}

// Hangup ends the call from the operator dashboard (§6's hangup action).
func (c *Call) Hangup() error {
	return c.bridge.Hangup("operator_hangup")
}

// MuteAI silences the AI's outbound audio without ending the call (§6's
// mute_ai action). The mute is sticky until UnmuteAI is called.
func (c *Call) MuteAI() error {
	c.session.Mute(false)
	return nil
}

// UnmuteAI reverses MuteAI (§6's unmute_ai action).
func (c *Call) UnmuteAI() error {
	c.session.Unmute()
	return nil
}

// SwitchAgent moves the call to target from the operator dashboard (§6's
// switch_agent action), reusing the same path a model's wechsel_zu_agent
// tool call takes.
func (c *Call) SwitchAgent(ctx context.Context, target string) error {
	if msg := c.handleSwitch(ctx, target); strings.HasPrefix(msg, "Fehler") {
		return errors.New(msg)
	}
	return nil
}

func (c *Call) cancelTimer() {
	c.mu.Lock()
	t := c.timer
	c.mu.Unlock()
	if t != nil {
		t.Stop()
	}
}

func (c *Call) resetTimer() {
	c.mu.Lock()
	t := c.timer
	c.mu.Unlock()
	if t != nil {
		t.Reset()
	}
}

func (c *Call) onInactivityTimeout() {
	ctx := context.Background()
	c.logger.Warn("orchestrator: inactivity timeout, hanging up", "caller", c.Caller)
	if c.blacklist != nil {
		_ = c.blacklist.RecordFailedCall(ctx, c.Caller)
		_, _ = c.blacklist.CheckAndAutoBlacklist(ctx, c.Caller)
	}
	_ = c.bridge.Hangup("security_timeout")
}

// onToolCall is the realtime.ToolCallHandler wired into the session; it
// implements §4.5's 8-step OnFunctionCall contract.
func (c *Call) onToolCall(ctx context.Context, callID, name string, args map[string]any) string {
	c.broadcast.Broadcast("function_call", map[string]any{"call_id": c.ID, "tool": name, "args": args})

	result := c.manager.ExecuteTool(ctx, name, args)

	switch result.Kind {
	case agent.KindBeep:
		c.session.Mute(true)
		_ = c.bridge.SendAudio(beepFrame)
		c.resetTimer()
		return "Code ungueltig."

	case agent.KindHangup:
		c.session.Mute(false)
		c.cancelTimer()
		if c.blacklist != nil {
			_ = c.blacklist.RecordFailedCall(ctx, c.Caller)
			_, _ = c.blacklist.CheckAndAutoBlacklist(ctx, c.Caller)
		}
		_ = c.bridge.Hangup("security_hangup")
		return "Anruf wird beendet."

	case agent.KindHangupUser:
		c.cancelTimer()
		_ = c.bridge.Hangup("user_hangup")
		return "Auf Wiederhoeren."

	case agent.KindModelSwitch:
		cc := c.manager.Call()
		cc.UserChosenModel = result.Target
		return c.switchModel(ctx, result.Target)

	case agent.KindSwitch:
		return c.handleSwitch(ctx, result.Target)

	case agent.KindBeepQuiet:
		return "__BEEP_QUIET__:" + result.Text

	default: // KindText
		c.broadcast.Broadcast("function_result", map[string]any{"call_id": c.ID, "tool": name, "result": result.Text})
		return result.Text
	}
}

func (c *Call) handleSwitch(ctx context.Context, target string) string {
	if err := c.manager.SwitchAgent(ctx, target); err != nil {
		return fmt.Sprintf("Fehler bei wechsel_zu_agent: %s", err.Error())
	}
	cc := c.manager.Call()
	active := c.manager.Active()

	if target != agent.SecurityGateName {
		cc.Unlocked = true
		c.cancelTimer()
	}
	c.broadcast.Broadcast("agent_changed", map[string]any{"call_id": c.ID, "agent": target})

	wantModel := active.PreferredModel()
	if wantModel == "" {
		wantModel = cc.UserChosenModel
	}
	if wantModel == "" {
		wantModel = "mini"
	}

	if wantModel != c.currentModelKey() {
		return c.switchModel(ctx, wantModel)
	}

	_ = c.session.SetTextOnly(active.Name() == agent.SecurityGateName)
	_ = c.session.UpdateSession(toRealtimeTools(c.manager.Tools()), active.Instructions())
	return "Gewechselt."
}

func (c *Call) switchModel(ctx context.Context, key string) string {
	modelID := c.modelIDs[key]
	if modelID == "" {
		modelID = key
	}
	if err := c.session.SwitchModelLive(ctx, key, modelID); err != nil {
		c.logger.Error("orchestrator: model switch failed", "error", err)
		return fmt.Sprintf("Fehler bei model_wechseln: %s", err.Error())
	}
	active := c.manager.Active()
	_ = c.session.SetTextOnly(active.Name() == agent.SecurityGateName)
	_ = c.session.UpdateSession(toRealtimeTools(c.manager.Tools()), active.Instructions())
	c.broadcast.Broadcast("model_changed", map[string]any{"call_id": c.ID, "model": key})
	return "__MODEL_SWITCHED__"
}

func (c *Call) currentModelKey() string {
	return c.manager.Call().ActiveModel
}

func toRealtimeTools(tools []agent.ToolSchema) []realtime.ToolSchema {
	out := make([]realtime.ToolSchema, len(tools))
	for i, t := range tools {
		out[i] = realtime.ToolSchema{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
			Required:    t.Required,
		}
	}
	return out
}

// callObserver adapts *Call to realtime.Observer without exporting the
// session-event methods on Call's own public surface.
type callObserver Call

func (o *callObserver) call() *Call { return (*Call)(o) }

func (o *callObserver) OnTranscript(text string, final bool) {
	c := o.call()
	c.broadcast.Broadcast("transcript", map[string]any{"call_id": c.ID, "text": text, "final": final})
	if final && c.manager.Active() != nil && c.manager.Active().Name() == agent.SecurityGateName {
		c.resetTimer()
	}
}

func (o *callObserver) OnAudioDelta(pcm24 []byte) {
	c := o.call()
	_ = c.bridge.SendAudio(resample.AIOutputToSIP(pcm24))
}

func (o *callObserver) OnSpeechStarted() {
	c := o.call()
	c.broadcast.Broadcast("ai_state", map[string]any{"call_id": c.ID, "state": "user_speaking"})
	if dropped := c.bridge.ClearAudioQueue(); dropped > 0 {
		c.logger.Info("orchestrator: barge-in, cleared outgoing queue", "dropped", dropped)
	}
}

func (o *callObserver) OnSpeechStopped() {
	o.call().broadcast.Broadcast("ai_state", map[string]any{"call_id": o.call().ID, "state": "thinking"})
}

func (o *callObserver) OnStateChanged(s realtime.State) {
	c := o.call()
	c.broadcast.Broadcast("ai_state", map[string]any{"call_id": c.ID, "state": s.String()})
}

func (o *callObserver) OnUsageUpdate(u realtime.Usage) {
	c := o.call()
	c.mu.Lock()
	prev := c.lastUsage
	c.lastUsage = u
	c.mu.Unlock()

	delta := pricing.Usage(u).Delta(pricing.Usage(prev))
	modelKey := c.manager.Call().ActiveModel
	if modelKey == "" {
		modelKey = "mini"
	}
	cost := c.pricing.CostUSD(modelKey, delta)

	c.mu.Lock()
	c.costUSD += cost
	total := c.costUSD
	c.mu.Unlock()

	c.broadcast.Broadcast("call_cost", map[string]any{"call_id": c.ID, "cost_usd": total})
}

func (o *callObserver) OnModelChanged(modelKey string) {
	c := o.call()
	c.manager.Call().ActiveModel = modelKey
}

func (o *callObserver) OnCallEnded(reason string) {
	c := o.call()
	c.mu.Lock()
	if c.endedOnce {
		c.mu.Unlock()
		return
	}
	c.endedOnce = true
	c.mu.Unlock()

	c.cancelTimer()
	c.manager.EndCall(context.Background())
	c.broadcast.Broadcast("call_ended", map[string]any{"call_id": c.ID, "reason": reason})

	c.mu.Lock()
	cost := c.costUSD
	c.mu.Unlock()
	modelKey := c.manager.Call().ActiveModel
	if err := c.recorder.RecordCall(context.Background(), c.ID, c.Caller, c.startedAt, time.Now(), modelKey, cost); err != nil {
		c.logger.Error("orchestrator: recording call failed", "error", err)
	}
}

func (o *callObserver) OnError(err error) {
	o.call().logger.Warn("orchestrator: realtime session error", "error", err)
}
