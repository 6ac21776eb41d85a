package callengine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/emiago/diago/media"
	msdk "github.com/livekit/media-sdk"
	"github.com/livekit/protocol/logger"
	"github.com/pion/rtp"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/callengine/endpoints"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/callengine/pcm"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/callengine/pipeline"
)

const (
	outboundQueueLimit = 1000
	frameDuration      = 20 * time.Millisecond
)

// Observer receives the two events the engine produces for an accepted
// call (§4.1): decoded audio in arrival order, and a single end-of-call
// notification.
type Observer interface {
	OnAudioReceived(pcm48 []byte)
	OnCallEnded(reason string)
}

type decision struct {
	accept bool
	status int
}

// Call is one accepted or pending SIP dialog. It implements the
// orchestrator's SIPBridge contract (SendAudio/ClearAudioQueue/Hangup) and
// owns the RTP read/write pump, adapted from bridge/media_bridge.go's
// readSIP/writeSIP with the Telegram side replaced by a bounded outbound
// queue and an Observer callback.
type Call struct {
	ID        string
	CallerURI string
	RemoteIP  string
	logger    *slog.Logger
	sip       *endpoints.SipEndpoint
	observer  Observer

	decisionCh chan decision
	decided    sync.Once

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	outbound chan []byte

	mu        sync.Mutex
	residual  []byte
	endedOnce sync.Once
	endReason string

	packetsSent     atomic.Uint64
	packetsReceived atomic.Uint64
	bytesSent       atomic.Uint64
	bytesReceived   atomic.Uint64
}

// PacketsSent, PacketsReceived, BytesSent and BytesReceived report this
// call's RTP traffic counters, aggregated across active calls by
// metrics.RTPStatsProvider.
func (c *Call) PacketsSent() uint64     { return c.packetsSent.Load() }
func (c *Call) PacketsReceived() uint64 { return c.packetsReceived.Load() }
func (c *Call) BytesSent() uint64       { return c.bytesSent.Load() }
func (c *Call) BytesReceived() uint64   { return c.bytesReceived.Load() }

func newCall(ctx context.Context, id, callerURI, remoteIP string, logger *slog.Logger) *Call {
	cctx, cancel := context.WithCancel(ctx)
	return &Call{
		ID:         id,
		CallerURI:  callerURI,
		RemoteIP:   remoteIP,
		logger:     logger,
		decisionCh: make(chan decision, 1),
		ctx:        cctx,
		cancel:     cancel,
		outbound:   make(chan []byte, outboundQueueLimit),
	}
}

// SetObserver attaches the audio/end-of-call sink. The IncomingCallHandler
// must call this before (or synchronously with) Accept(), since media pump
// startup reads c.observer once the decision arrives.
func (c *Call) SetObserver(o Observer) {
	c.observer = o
}

// Accept tells the engine to answer the pending INVITE. A no-op once a
// decision has already been made or the invite timeout already fired.
func (c *Call) Accept() {
	c.decided.Do(func() { c.decisionCh <- decision{accept: true} })
}

// Reject tells the engine to answer the pending INVITE with statusCode
// (e.g. 403 for firewall/blacklist rejections).
func (c *Call) Reject(statusCode int) {
	c.decided.Do(func() { c.decisionCh <- decision{accept: false, status: statusCode} })
}

func (c *Call) bindMedia(sip *endpoints.SipEndpoint, observer Observer) {
	c.sip = sip
	c.observer = observer
}

// SendAudio implements orchestrator.SIPBridge: it splits pcm48 at 20 ms
// frame boundaries (1920 bytes at 48kHz mono PCM16) and enqueues full
// frames, keeping a residual buffer across calls (§4.1 framing rules).
// Frames are dropped oldest-first once the queue holds 1000.
func (c *Call) SendAudio(pcm48 []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.residual = append(c.residual, pcm48...)
	const frameBytes = 1920
	for len(c.residual) >= frameBytes {
		frame := make([]byte, frameBytes)
		copy(frame, c.residual[:frameBytes])
		c.residual = c.residual[frameBytes:]
		select {
		case c.outbound <- frame:
		default:
			select {
			case <-c.outbound:
			default:
			}
			select {
			case c.outbound <- frame:
			default:
			}
		}
	}
	return nil
}

// ClearAudioQueue drops all queued outbound frames for barge-in and
// returns how many were dropped.
func (c *Call) ClearAudioQueue() int {
	dropped := 0
	for {
		select {
		case <-c.outbound:
			dropped++
		default:
			return dropped
		}
	}
}

// Done returns a channel closed once the call's context is canceled, i.e.
// once either side has hung up or the media pump has stopped.
func (c *Call) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Hangup ends the call from the application side.
func (c *Call) Hangup(reason string) error {
	c.endCall(reason)
	return nil
}

func (c *Call) endCall(reason string) {
	c.endedOnce.Do(func() {
		c.endReason = reason
		c.cancel()
	})
}

func (c *Call) startPump(sip *endpoints.SipEndpoint, observer Observer) {
	c.bindMedia(sip, observer)
	c.wg.Add(2)
	go c.readLoop()
	go c.writeLoop()
}

func (c *Call) stopPump() {
	c.cancel()
	c.wg.Wait()
	if c.observer != nil {
		c.observer.OnCallEnded(c.reasonOrDefault())
	}
}

func (c *Call) reasonOrDefault() string {
	if c.endReason == "" {
		return "remote_bye"
	}
	return c.endReason
}

// readLoop decodes inbound RTP into 48kHz PCM16 and delivers it to the
// observer, grounded in MediaBridge.readSIP.
func (c *Call) readLoop() {
	defer c.wg.Done()
	if c.sip == nil || c.sip.LKCodec == nil || c.sip.RTPReader() == nil {
		return
	}
	outFormat := pcm.AudioFormat{SampleRate: 48000, Channels: 1, FrameDur: frameDuration}
	playout := pcm.NewPCMPlayoutBuffer(outFormat.FrameBytes())
	pt := c.sip.PayloadType()
	hc, err := pipeline.BuildSipDecodeChain(pipeline.SipDecodeConfig{
		Codec:         c.sip.LKCodec,
		PayloadType:   pt,
		InputChannels: c.sip.Channels,
		OutputFormat:  outFormat,
		PlayoutBuffer: playout,
		EnableJitter:  c.sip.EnableJitter,
		Log:           logger.GetLogger(),
	})
	if err != nil {
		c.logger.Warn("callengine: decode chain setup failed", "error", err)
		return
	}
	defer hc.Close()

	go c.deliverLoop(playout, outFormat.FrameBytes())

	rtpBuf := make([]byte, media.RTPBufSize)
	pkt := &rtp.Packet{}
	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}
		*pkt = rtp.Packet{}
		if _, err := c.sip.RTPReader().ReadRTP(rtpBuf, pkt); err != nil {
			if !errors.Is(err, io.EOF) {
				c.logger.Warn("callengine: rtp read failed", "error", err)
			}
			c.endCall("media_timeout")
			return
		}
		if uint8(pkt.PayloadType) != pt || len(pkt.Payload) == 0 {
			continue
		}
		payload := append([]byte(nil), pkt.Payload...)
		if err := hc.HandleRTP(&pkt.Header, payload); err != nil {
			c.logger.Warn("callengine: rtp handler failed", "error", err)
			c.endCall("media_timeout")
			return
		}
		c.packetsReceived.Add(1)
		c.bytesReceived.Add(uint64(len(payload)))
	}
}

// deliverLoop pulls exactly one decoded frame per tick off the playout
// buffer (never stalling the RTP clock even on underflow) and hands it to
// the observer in arrival order.
func (c *Call) deliverLoop(playout *pcm.PCMPlayoutBuffer, frameBytes int) {
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()
	buf := make([]byte, frameBytes)
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			playout.ReadInto(buf)
			if c.observer != nil {
				out := make([]byte, frameBytes)
				copy(out, buf)
				c.observer.OnAudioReceived(out)
			}
		}
	}
}

// writeLoop paces outbound 20 ms frames onto the RTP stream, substituting
// silence on underflow so the RTP clock never stalls, grounded in
// MediaBridge.writeSIP.
func (c *Call) writeLoop() {
	defer c.wg.Done()
	if c.sip == nil || c.sip.LKCodec == nil || c.sip.RTPWriter() == nil {
		return
	}
	pt := c.sip.PayloadType()
	enc, err := pipeline.BuildSipEncodePipeline(pipeline.SipEncodeConfig{
		Codec:       c.sip.LKCodec,
		PayloadType: pt,
		RTPClock:    c.sip.RTPClockRate,
		SourceRate:  48000,
		RTPWriter:   c.sip.RTPWriter(),
	})
	if err != nil {
		c.logger.Warn("callengine: encode pipeline setup failed", "error", err)
		return
	}

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()
	silence := make([]byte, 1920)
	var tmpCh msdk.PCM16Sample
	var inBuf msdk.PCM16Sample
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			frame := silence
			select {
			case f := <-c.outbound:
				frame = f
			default:
			}
			inBuf = pcm.PCM16BytesToSample(inBuf, frame)
			tmpCh = pcm.PCM16ConvertChannels(tmpCh, inBuf, 1, c.sip.Channels)
			if err := enc.Writer.WriteSample(tmpCh); err != nil {
				c.logger.Warn("callengine: rtp encode/write failed", "error", err)
				return
			}
			c.packetsSent.Add(1)
			c.bytesSent.Add(uint64(len(frame)))
		}
	}
}
