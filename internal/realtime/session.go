// Package realtime implements the bidirectional realtime AI WebSocket
// session: connect/session.update, audio append, tool-call dispatch,
// response lifecycle tracking, usage accounting, and the live model switch
// that preserves cumulative usage.
//
// Transport and event-loop shape are grounded in other_examples'
// teslashibe-go-reachy pkg/voice/bundled/openai.go (gorilla/websocket dial
// with Bearer auth, a dedicated handleMessages read-loop switching on the
// server event "type", session.update/input_audio_buffer.append/
// response.create/response.cancel client events). The session-handle
// surface and reconnect discipline are grounded in MrWong99-glyphoxa's
// pkg/provider/s2s/provider.go and internal/engine/s2s/s2s-engine.go.
package realtime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// State is the session's conversational state machine.
type State int

const (
	StateIdle State = iota
	StateListening
	StateUserSpeaking
	StateThinking
	StateSpeaking
)

func (s State) String() string {
	switch s {
	case StateListening:
		return "listening"
	case StateUserSpeaking:
		return "user_speaking"
	case StateThinking:
		return "thinking"
	case StateSpeaking:
		return "speaking"
	default:
		return "idle"
	}
}

// Usage is the cumulative per-category token count.
type Usage struct {
	InputText   int64
	InputAudio  int64
	OutputText  int64
	OutputAudio int64
}

// ToolSchema mirrors agent.ToolSchema without importing the agent package,
// keeping this package reusable independent of the agent/orchestrator layer.
type ToolSchema struct {
	Name        string
	Description string
	Parameters  map[string]any
	Required    []string
}

// ToolCallHandler is invoked synchronously on a completed function-call-
// arguments event; it returns the string to feed back into the session
// protocol (plain text, or the "__MODEL_SWITCHED__"/"__BEEP_QUIET__:" wire
// markers the session special-cases).
type ToolCallHandler func(ctx context.Context, callID, name string, args map[string]any) string

// Observer receives session lifecycle events (REDESIGN: typed SessionObserver
// replacing the source's many optional callback fields).
type Observer interface {
	OnTranscript(text string, final bool)
	OnAudioDelta(pcm24 []byte)
	OnSpeechStarted()
	OnSpeechStopped()
	OnStateChanged(s State)
	OnUsageUpdate(u Usage)
	OnModelChanged(modelKey string)
	OnCallEnded(reason string)
	OnError(err error)
}

// NoopObserver is a safe default that discards every event.
type NoopObserver struct{}

func (NoopObserver) OnTranscript(string, bool)    {}
func (NoopObserver) OnAudioDelta([]byte)          {}
func (NoopObserver) OnSpeechStarted()             {}
func (NoopObserver) OnSpeechStopped()             {}
func (NoopObserver) OnStateChanged(State)         {}
func (NoopObserver) OnUsageUpdate(Usage)          {}
func (NoopObserver) OnModelChanged(string)        {}
func (NoopObserver) OnCallEnded(string)            {}
func (NoopObserver) OnError(error)                {}

// Config configures a Session's connection and session.update payload.
type Config struct {
	BaseURL      string // e.g. wss://api.openai.com/v1/realtime
	APIKey       string
	Voice        string
	TextOnly     bool
	Instructions string
	Tools        []ToolSchema

	VADThreshold      float64
	VADPrefixPadding  time.Duration
	VADSilenceDur     time.Duration
	AutoResponse      bool

	DialTimeout time.Duration
}

// Session is one realtime AI WebSocket session, one per Call. It is
// reconnected in place (same struct, new socket) on a live model switch,
// preserving cumulative usage across the reconnect.
type Session struct {
	cfg    Config
	logger *slog.Logger
	obs    Observer
	onTool ToolCallHandler

	mu                   sync.Mutex
	conn                 *websocket.Conn
	modelKey             string
	modelID              string
	connected            bool
	responseInProgress   bool
	textOnly             bool
	muted                bool
	autoUnmuteAfter      bool
	pendingClose         bool
	state                State
	usage                Usage
	generation           uint64 // bumped on every Connect; stale receive-loops must not mutate state
	lastFunctionCallArgs map[string]*strings.Builder
}

// NewSession constructs a Session bound to the given tool-call handler and
// observer. Connect must be called before use.
func NewSession(cfg Config, obs Observer, onTool ToolCallHandler, logger *slog.Logger) *Session {
	if obs == nil {
		obs = NoopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 10 * time.Second
	}
	return &Session{
		cfg:                  cfg,
		logger:               logger,
		obs:                  obs,
		onTool:               onTool,
		textOnly:             cfg.TextOnly,
		lastFunctionCallArgs: map[string]*strings.Builder{},
	}
}

// Connect dials modelID's WebSocket endpoint, sends the initial
// session.update, and starts the receive loop. It may be called again after
// Close (e.g. during SwitchModelLive) to reconnect in place.
func (s *Session) Connect(ctx context.Context, modelKey, modelID string) error {
	url := fmt.Sprintf("%s?model=%s", s.cfg.BaseURL, modelID)
	header := http.Header{}
	header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	header.Set("OpenAI-Beta", "realtime=v1")

	dialer := websocket.Dialer{HandshakeTimeout: s.cfg.DialTimeout}
	conn, _, err := dialer.DialContext(ctx, url, header)
	if err != nil {
		return fmt.Errorf("realtime: dial: %w", err)
	}

	s.mu.Lock()
	s.conn = conn
	s.modelKey = modelKey
	s.modelID = modelID
	s.connected = true
	s.pendingClose = false
	s.responseInProgress = false
	s.state = StateListening
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	if err := s.sendSessionUpdate(); err != nil {
		s.Close()
		return fmt.Errorf("realtime: session.update: %w", err)
	}

	go s.receiveLoop(gen, conn)
	return nil
}

// Close tears down the current WebSocket connection.
func (s *Session) Close() error {
	s.mu.Lock()
	conn := s.conn
	s.connected = false
	s.conn = nil
	s.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

// Connected reports whether the session currently has a live socket.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// ResponseInProgress reports whether a response is currently being
// generated.
func (s *Session) ResponseInProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.responseInProgress
}

// State returns the current conversational state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Usage returns a snapshot of the cumulative token counters.
func (s *Session) Usage() Usage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usage
}

// Mute suppresses outbound audio deltas from reaching the observer (used
// while a beep plays).
func (s *Session) Mute(autoUnmuteAfterResponse bool) {
	s.mu.Lock()
	s.muted = true
	s.autoUnmuteAfter = autoUnmuteAfterResponse
	s.mu.Unlock()
}

// Unmute re-enables outbound audio delta delivery.
func (s *Session) Unmute() {
	s.mu.Lock()
	s.muted = false
	s.autoUnmuteAfter = false
	s.mu.Unlock()
}

// SendAudio appends pcm16 to the input audio buffer: a no-op if not
// connected or pending close.
func (s *Session) SendAudio(pcm16 []byte) error {
	s.mu.Lock()
	ok := s.connected && !s.pendingClose
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return s.sendJSON(map[string]any{
		"type":  "input_audio_buffer.append",
		"audio": base64.StdEncoding.EncodeToString(pcm16),
	})
}

// TriggerGreeting issues response.create only if no response is already in
// progress; otherwise it is a documented no-op.
func (s *Session) TriggerGreeting() error {
	s.mu.Lock()
	if s.responseInProgress {
		s.mu.Unlock()
		s.logger.Info("realtime: trigger_greeting no-op, response in progress")
		return nil
	}
	s.mu.Unlock()
	return s.sendJSON(map[string]string{"type": "response.create"})
}

// Interrupt cancels the in-flight response, used on barge-in.
func (s *Session) Interrupt() error {
	return s.sendJSON(map[string]string{"type": "response.cancel"})
}

// SendFunctionResult sends the function-call-output item for callID, then —
// unless quiet is true — waits for response_in_progress to clear (or 1s,
// whichever first) before issuing response.create. The quiet variant only
// sends the output and leaves the session in "listening".
func (s *Session) SendFunctionResult(callID, text string, quiet bool) error {
	if err := s.sendJSON(map[string]any{
		"type": "conversation.item.create",
		"item": map[string]any{
			"type":    "function_call_output",
			"call_id": callID,
			"output":  text,
		},
	}); err != nil {
		return err
	}
	if quiet {
		s.mu.Lock()
		s.state = StateListening
		s.mu.Unlock()
		return nil
	}

	deadline := time.NewTimer(time.Second)
	defer deadline.Stop()
	for {
		if !s.ResponseInProgress() {
			break
		}
		select {
		case <-deadline.C:
			goto send
		case <-time.After(20 * time.Millisecond):
		}
	}
send:
	return s.sendJSON(map[string]string{"type": "response.create"})
}

// UpdateSession re-sends session.update with new tools/instructions in
// place, without reconnecting.
func (s *Session) UpdateSession(tools []ToolSchema, instructions string) error {
	s.mu.Lock()
	s.cfg.Tools = tools
	s.cfg.Instructions = instructions
	s.mu.Unlock()
	return s.sendSessionUpdate()
}

// SetTextOnly toggles the text-only modality (security gate vs. speech-
// enabled agents) and re-sends session.update.
func (s *Session) SetTextOnly(textOnly bool) error {
	s.mu.Lock()
	s.textOnly = textOnly
	s.mu.Unlock()
	return s.sendSessionUpdate()
}

// SwitchModelLive performs an in-place model switch (§4.3): snapshot usage,
// disconnect, reconnect against the new model, restore usage, re-send tools
// and instructions, and notify the observer of the new model.
func (s *Session) SwitchModelLive(ctx context.Context, modelKey, modelID string) error {
	s.mu.Lock()
	snapshot := s.usage
	s.mu.Unlock()

	_ = s.Close()

	if err := s.Connect(ctx, modelKey, modelID); err != nil {
		return fmt.Errorf("realtime: switch_model_live: %w", err)
	}

	s.mu.Lock()
	s.usage = snapshot
	s.mu.Unlock()

	s.obs.OnModelChanged(modelKey)
	return nil
}

func (s *Session) sendSessionUpdate() error {
	s.mu.Lock()
	modalities := []string{"text", "audio"}
	if s.textOnly {
		modalities = []string{"text"}
	}
	tools := make([]map[string]any, len(s.cfg.Tools))
	for i, t := range s.cfg.Tools {
		required := t.Required
		if required == nil {
			required = []string{}
		}
		tools[i] = map[string]any{
			"type":        "function",
			"name":        t.Name,
			"description": t.Description,
			"parameters": map[string]any{
				"type":       "object",
				"properties": t.Parameters,
				"required":   required,
			},
		}
	}
	voice := s.cfg.Voice
	if voice == "" {
		voice = "alloy"
	}
	prefixMs := int(s.cfg.VADPrefixPadding.Milliseconds())
	if prefixMs == 0 {
		prefixMs = 300
	}
	silenceMs := int(s.cfg.VADSilenceDur.Milliseconds())
	if silenceMs == 0 {
		silenceMs = 500
	}
	threshold := s.cfg.VADThreshold
	if threshold == 0 {
		threshold = 0.5
	}
	instructions := s.cfg.Instructions
	s.mu.Unlock()

	return s.sendJSON(map[string]any{
		"type": "session.update",
		"session": map[string]any{
			"modalities":          modalities,
			"instructions":        instructions,
			"voice":               voice,
			"input_audio_format":  "pcm16",
			"output_audio_format": "pcm16",
			"input_audio_transcription": map[string]any{
				"model": "whisper-1",
			},
			"turn_detection": map[string]any{
				"type":                "server_vad",
				"threshold":           threshold,
				"prefix_padding_ms":   prefixMs,
				"silence_duration_ms": silenceMs,
			},
			"tools":       tools,
			"tool_choice": "auto",
		},
	})
}

func (s *Session) sendJSON(v any) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("realtime: not connected")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return fmt.Errorf("realtime: not connected")
	}
	return s.conn.WriteMessage(websocket.TextMessage, b)
}

// receiveLoop owns conn for as long as it is the current generation; only
// the loop matching the session's current generation may mutate connected/
// state on exit, preventing a race where a stale loop flips a freshly
// reconnected session back to disconnected (§4.3 Receive-loop discipline).
func (s *Session) receiveLoop(gen uint64, conn *websocket.Conn) {
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			s.mu.Lock()
			stale := gen != s.generation
			s.mu.Unlock()
			if stale {
				return
			}
			s.mu.Lock()
			hadResponse := s.responseInProgress
			s.connected = false
			s.mu.Unlock()
			if !hadResponse {
				s.obs.OnCallEnded("ai_disconnect")
			}
			return
		}

		var evt map[string]any
		if err := json.Unmarshal(message, &evt); err != nil {
			s.logger.Warn("realtime: malformed event", "error", err)
			continue
		}

		s.mu.Lock()
		if gen != s.generation {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		s.handleEvent(evt)
	}
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.obs.OnStateChanged(state)
}

func (s *Session) handleEvent(evt map[string]any) {
	typ, _ := evt["type"].(string)
	switch typ {
	case "input_audio_buffer.speech_started":
		s.setState(StateUserSpeaking)
		s.mu.Lock()
		s.responseInProgress = false
		s.mu.Unlock()
		s.obs.OnSpeechStarted()

	case "input_audio_buffer.speech_stopped":
		s.setState(StateThinking)
		s.obs.OnSpeechStopped()

	case "response.created":
		s.mu.Lock()
		s.responseInProgress = true
		s.mu.Unlock()

	case "response.audio.delta":
		s.setState(StateSpeaking)
		s.mu.Lock()
		muted := s.muted
		s.mu.Unlock()
		if muted {
			return
		}
		delta, _ := evt["delta"].(string)
		raw, err := base64.StdEncoding.DecodeString(delta)
		if err == nil {
			s.obs.OnAudioDelta(raw)
		}

	case "response.audio_transcript.delta":
		text, _ := evt["delta"].(string)
		s.obs.OnTranscript(text, false)

	case "response.audio_transcript.done":
		text, _ := evt["transcript"].(string)
		s.obs.OnTranscript(text, true)

	case "conversation.item.input_audio_transcription.completed":
		text, _ := evt["transcript"].(string)
		s.obs.OnTranscript(text, true)

	case "response.function_call_arguments.delta":
		callID, _ := evt["call_id"].(string)
		delta, _ := evt["delta"].(string)
		s.mu.Lock()
		b, ok := s.lastFunctionCallArgs[callID]
		if !ok {
			b = &strings.Builder{}
			s.lastFunctionCallArgs[callID] = b
		}
		b.WriteString(delta)
		s.mu.Unlock()

	case "response.function_call_arguments.done":
		s.handleFunctionCallDone(evt)

	case "response.done":
		s.mu.Lock()
		s.responseInProgress = false
		autoUnmute := s.autoUnmuteAfter
		s.autoUnmuteAfter = false
		if autoUnmute {
			s.muted = false
		}
		s.extractUsageLocked(evt)
		usage := s.usage
		s.mu.Unlock()
		s.setState(StateListening)
		s.obs.OnUsageUpdate(usage)

	case "error":
		s.handleError(evt)
	}
}

func (s *Session) handleFunctionCallDone(evt map[string]any) {
	callID, _ := evt["call_id"].(string)
	name, _ := evt["name"].(string)
	argsRaw, _ := evt["arguments"].(string)

	s.mu.Lock()
	if b, ok := s.lastFunctionCallArgs[callID]; ok && argsRaw == "" {
		argsRaw = b.String()
	}
	delete(s.lastFunctionCallArgs, callID)
	s.mu.Unlock()

	var args map[string]any
	if argsRaw != "" {
		_ = json.Unmarshal([]byte(argsRaw), &args) // fail-soft to empty map per §4.3 step 1
	}
	if args == nil {
		args = map[string]any{}
	}

	if s.onTool == nil {
		return
	}
	result := s.onTool(context.Background(), callID, name, args)

	switch {
	case result == "__MODEL_SWITCHED__":
		go func() {
			time.Sleep(300 * time.Millisecond)
			_ = s.TriggerGreeting()
		}()
	case strings.HasPrefix(result, "__BEEP_QUIET__:"):
		_ = s.SendFunctionResult(callID, strings.TrimPrefix(result, "__BEEP_QUIET__:"), true)
	default:
		_ = s.SendFunctionResult(callID, result, false)
	}
}

func (s *Session) handleError(evt map[string]any) {
	msg := ""
	if e, ok := evt["error"].(map[string]any); ok {
		msg, _ = e["message"].(string)
	}
	if strings.Contains(strings.ToLower(msg), "already has an active response") {
		s.logger.Warn("realtime: provider reports active response, ignoring", "message", msg)
		return
	}
	s.mu.Lock()
	s.responseInProgress = false
	s.mu.Unlock()
	s.obs.OnError(fmt.Errorf("realtime: provider error: %s", msg))
}

// extractUsageLocked must be called with s.mu held; it adds response.done's
// usage deltas to the cumulative counters (§4.3 Usage accounting).
func (s *Session) extractUsageLocked(evt map[string]any) {
	resp, ok := evt["response"].(map[string]any)
	if !ok {
		return
	}
	usage, ok := resp["usage"].(map[string]any)
	if !ok {
		return
	}
	getDetail := func(key, field string) int64 {
		details, ok := usage[key].(map[string]any)
		if !ok {
			return 0
		}
		v, _ := details[field].(float64)
		return int64(v)
	}
	s.usage.InputText += getDetail("input_token_details", "text_tokens")
	s.usage.InputAudio += getDetail("input_token_details", "audio_tokens")
	s.usage.OutputText += getDetail("output_token_details", "text_tokens")
	s.usage.OutputAudio += getDetail("output_token_details", "audio_tokens")
}
