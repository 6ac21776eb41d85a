// Package callengine maintains the registered SIP identity and bridges one
// accepted call's RTP media to 48kHz PCM16, per §4.1. It is built on
// github.com/emiago/diago (UA registration, dialog handling, SDP/media
// negotiation) and github.com/emiago/sipgo (transport), exactly as the
// reference bridge wires them in its cmd/sip-tg-bridge/main.go, with the
// Telegram side of that bridge replaced by the Observer/SIPBridge contract
// the orchestrator drives.
package callengine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/emiago/diago"
	"github.com/emiago/diago/media/sdp"
	"github.com/emiago/sipgo"
	"github.com/emiago/sipgo/sip"
	"github.com/google/uuid"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/callengine/endpoints"
)

// Config is the SIP/RTP engine's own slice of the gateway configuration.
type Config struct {
	ProviderHost   string
	BindPort       int
	Transport      string
	ExternalIP     string
	AuthUser       string
	AuthPassword   string
	AuthRealm      string
	RegisterEvery  time.Duration
	RTPPortMin     int
	RTPPortMax     int
	FrameDuration  time.Duration
	InviteTimeout  time.Duration
	EnableDTMF     bool
	MaxActiveCalls int64
}

// IncomingCallHandler is invoked once per INVITE, before answering (§4.1).
// It must return quickly; the actual accept/reject decision (e.g. firewall
// or blacklist checks) happens asynchronously by calling call.Accept() or
// call.Reject(status) from within or after this function returns.
type IncomingCallHandler func(ctx context.Context, call *Call)

// Engine maintains a registered SIP identity and dispatches incoming
// dialogs to an IncomingCallHandler.
type Engine struct {
	cfg        Config
	logger     *slog.Logger
	sip        *diago.Diago
	onIncoming IncomingCallHandler

	registered  atomic.Bool
	activeCalls atomic.Int64
}

func NewEngine(cfg Config, onIncoming IncomingCallHandler, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ua, err := sipgo.NewUA()
	if err != nil {
		return nil, fmt.Errorf("callengine: sip ua init: %w", err)
	}

	udpTransport := diago.Transport{Transport: "udp", BindHost: "0.0.0.0", BindPort: cfg.BindPort, ExternalHost: cfg.ExternalIP}
	tcpTransport := diago.Transport{Transport: "tcp", BindHost: "0.0.0.0", BindPort: cfg.BindPort, ExternalHost: cfg.ExternalIP}

	// diago's MediaConfig takes the codec offer list but, as of the pinned
	// version, has no RTP port range knob; cfg.RTPPortMin/Max is still
	// threaded through so the firewall (internal/security) can be told the
	// same range operators must open, even though the engine itself can't
	// enforce it directly (see DESIGN.md).
	d := diago.NewDiago(ua,
		diago.WithTransport(udpTransport),
		diago.WithTransport(tcpTransport),
		diago.WithLogger(logger),
		diago.WithMediaConfig(diago.MediaConfig{
			Codecs: negotiationCodecs(cfg.FrameDuration, cfg.EnableDTMF),
		}),
	)

	return &Engine{cfg: cfg, logger: logger, sip: d, onIncoming: onIncoming}, nil
}

// IsRegistered reports whether the last registration attempt succeeded.
func (e *Engine) IsRegistered() bool { return e.registered.Load() }

// ActiveCallCount returns the number of calls currently in progress.
func (e *Engine) ActiveCallCount() int { return int(e.activeCalls.Load()) }

// Start registers with the SIP server (retrying silently on failure, per
// §4.1's failure semantics) and serves incoming dialogs until ctx is
// canceled.
func (e *Engine) Start(ctx context.Context) error {
	if e.cfg.AuthUser != "" && e.cfg.AuthPassword != "" {
		go e.registerLoop(ctx)
	}
	return e.sip.Serve(ctx, func(inDialog *diago.DialogServerSession) {
		e.handleIncoming(ctx, inDialog)
	})
}

func (e *Engine) registerLoop(ctx context.Context) {
	backoff := time.Second
	const maxBackoff = 60 * time.Second
	for {
		recipient := e.registerRecipient()
		err := e.sip.Register(ctx, recipient, diago.RegisterOptions{
			Username:  e.cfg.AuthUser,
			Password:  e.cfg.AuthPassword,
			ProxyHost: e.cfg.ProviderHost,
			Expiry:    e.registerEvery(),
		})
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			e.registered.Store(false)
			e.logger.Warn("callengine: sip registration failed, retrying", "error", err, "backoff", backoff)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}
		e.registered.Store(true)
		backoff = time.Second
		select {
		case <-ctx.Done():
			return
		case <-time.After(e.registerEvery()):
		}
	}
}

func (e *Engine) registerEvery() time.Duration {
	if e.cfg.RegisterEvery <= 0 {
		return 300 * time.Second
	}
	return e.cfg.RegisterEvery
}

func (e *Engine) registerRecipient() sip.Uri {
	host, port := splitHostPort(e.cfg.ProviderHost)
	recipient := sip.Uri{User: e.cfg.AuthUser, Host: host}
	if port > 0 {
		recipient.Port = port
	}
	if e.cfg.Transport != "" {
		recipient.UriParams = sip.HeaderParams{"transport": e.cfg.Transport}
	}
	return recipient
}

func (e *Engine) handleIncoming(ctx context.Context, inDialog *diago.DialogServerSession) {
	callID := uuid.NewString()
	callerURI := inDialog.FromUser()
	remoteIP := remoteAddrOf(inDialog)
	callLogger := e.logger.With("call_id", callID, "sip_from", callerURI, "remote_ip", remoteIP)

	if e.cfg.MaxActiveCalls > 0 && e.activeCalls.Load() >= e.cfg.MaxActiveCalls {
		callLogger.Warn("callengine: call rejected (busy)")
		_ = inDialog.Respond(sip.StatusBusyHere, "Busy", nil)
		return
	}
	e.activeCalls.Add(1)
	defer e.activeCalls.Add(-1)
	defer inDialog.Close()

	call := newCall(ctx, callID, callerURI, remoteIP, callLogger)

	if err := inDialog.Trying(); err != nil {
		callLogger.Warn("callengine: sip trying failed", "error", err)
	}
	if err := inDialog.Ringing(); err != nil {
		callLogger.Warn("callengine: sip ringing failed", "error", err)
	}

	e.onIncoming(ctx, call)

	timeout := e.cfg.InviteTimeout
	if timeout <= 0 {
		timeout = 32 * time.Second
	}

	var d decision
	select {
	case d = <-call.decisionCh:
	case <-time.After(timeout):
		callLogger.Info("callengine: invite timed out awaiting accept/reject")
		_ = inDialog.Respond(sip.StatusRequestTimeout, "Request Timeout", nil)
		return
	case <-inDialog.Context().Done():
		return
	}
	if !d.accept {
		status := d.status
		if status == 0 {
			status = int(sip.StatusForbidden)
		}
		_ = inDialog.Respond(sip.StatusCode(status), "Rejected", nil)
		return
	}

	if err := validateSDP(inDialog.InviteRequest.Body(), e.cfg.FrameDuration); err != nil {
		callLogger.Warn("callengine: sdp policy rejected", "error", err)
		_ = inDialog.Respond(sip.StatusNotAcceptableHere, "Unsupported SDP", nil)
		return
	}

	codecs := negotiationCodecs(e.cfg.FrameDuration, e.cfg.EnableDTMF)
	if err := inDialog.AnswerOptions(diago.AnswerOptions{Codecs: codecs}); err != nil {
		callLogger.Warn("callengine: sip answer failed", "error", err)
		return
	}

	sipMedia, err := endpoints.NewSipEndpoint(inDialog, endpoints.SIPMediaConfig{
		JitterMinPackets: 10,
		FrameDuration:    e.cfg.FrameDuration,
	})
	if err != nil {
		callLogger.Warn("callengine: media negotiation failed", "error", err)
		_ = inDialog.Respond(sip.StatusNotAcceptableHere, "Media negotiation failed", nil)
		return
	}
	callLogger.Info("callengine: codec negotiated", "codec", sipMedia.Codec.Name, "payload_type", sipMedia.Codec.PayloadType)

	call.startPump(sipMedia, call.observer)
	defer call.stopPump()

	select {
	case <-inDialog.Context().Done():
		call.endCall("remote_bye")
	case <-call.ctx.Done():
	}
}

func validateSDP(body []byte, frameDur time.Duration) error {
	if body == nil {
		return errors.New("missing SDP")
	}
	if frameDur <= 0 {
		frameDur = 20 * time.Millisecond
	}
	expectedPtime := int(frameDur / time.Millisecond)
	desc := sdp.SessionDescription{}
	if err := sdp.Unmarshal(body, &desc); err != nil {
		return err
	}
	attrs := desc.Values("a")
	ptime, hasPtime := parseSDPTimeAttr(attrs, "ptime")
	if hasPtime && ptime != expectedPtime {
		return errors.New("unsupported ptime")
	}
	return nil
}

func parseSDPTimeAttr(attrs []string, key string) (int, bool) {
	prefix := key + ":"
	for _, attr := range attrs {
		if !strings.HasPrefix(attr, prefix) {
			continue
		}
		value := strings.TrimPrefix(attr, prefix)
		ptime, err := strconv.Atoi(strings.TrimSpace(value))
		if err == nil {
			return ptime, true
		}
	}
	return 0, false
}

func splitHostPort(host string) (string, int) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", 0
	}
	if h, p, err := net.SplitHostPort(host); err == nil {
		if port, err := strconv.Atoi(p); err == nil {
			return h, port
		}
	}
	return host, 0
}

func remoteAddrOf(inDialog *diago.DialogServerSession) string {
	if inDialog == nil || inDialog.InviteRequest == nil {
		return ""
	}
	if via := inDialog.InviteRequest.Via(); via != nil {
		return via.Host
	}
	return ""
}
