// Package endpoints wraps a negotiated diago SIP dialog's media session in
// the codec/RTP handles the call engine's pump needs, adapted from the
// reference bridge's bridge/endpoints package (with the Telegram endpoint
// dropped — this gateway only ever bridges SIP to the realtime AI session).
package endpoints

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emiago/diago"
	"github.com/emiago/diago/media"
	msdk "github.com/livekit/media-sdk"
	msdkrtp "github.com/livekit/media-sdk/rtp"
	msdksdp "github.com/livekit/media-sdk/sdp"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/callengine/pcm"
)

// SIPDialog is the subset of diago's dialog session the engine needs to
// pull a negotiated media session and its diago-level RTP reader/writer.
type SIPDialog interface {
	MediaSession() *media.MediaSession
	Media() *diago.DialogMedia
}

// SipEndpoint is the negotiated codec plus its diago RTP handles for one
// call.
type SipEndpoint struct {
	LKCodec   msdkrtp.AudioCodec
	LKSDPName string

	FrameSize int
	Codec     media.Codec

	rtpReader media.RTPReader
	rtpWriter media.RTPWriter

	SampleRate   int
	RTPClockRate int
	Channels     int

	FrameDur     time.Duration
	EnableJitter bool
}

type SIPMediaConfig struct {
	JitterMinPackets uint16
	FrameDuration    time.Duration
}

func NewSipEndpoint(dialog SIPDialog, cfg SIPMediaConfig) (*SipEndpoint, error) {
	session := dialog.MediaSession()
	if session == nil {
		return nil, errors.New("sip media session not ready")
	}
	pickAudio := func() (media.Codec, error) {
		if commons := session.CommonCodecs(); len(commons) > 0 {
			if c, ok := media.CodecAudioFromList(commons); ok {
				return c, nil
			}
			return media.Codec{}, fmt.Errorf("no audio codec negotiated (common codecs are DTMF-only): %v", commons)
		}
		if c, ok := media.CodecAudioFromList(session.Codecs); ok {
			return c, nil
		}
		return media.Codec{}, errors.New("no audio codec negotiated")
	}
	codec, err := pickAudio()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(codec.Name) {
	case "opus", "pcmu", "pcma", "g722":
	default:
		return nil, fmt.Errorf("unsupported sip codec %q", codec.Name)
	}
	if strings.ToLower(codec.Name) == "opus" {
		if codec.NumChannels != 1 && codec.NumChannels != 2 {
			return nil, fmt.Errorf("unsupported sip channel count %d", codec.NumChannels)
		}
	} else if codec.NumChannels != 1 {
		return nil, fmt.Errorf("unsupported sip channel count %d", codec.NumChannels)
	}

	rtpReader := dialog.Media().RTPPacketReader.Reader()
	rtpWriter := dialog.Media().RTPPacketWriter.Writer()

	sdpName := media.CanonicalSDPName(codec)
	if strings.TrimSpace(sdpName) == "" {
		return nil, fmt.Errorf("cannot map sip codec %q to media-sdk", codec.Name)
	}

	lk := msdksdp.CodecByName(sdpName)
	audioCodec, ok := lk.(msdkrtp.AudioCodec)
	if !ok || audioCodec == nil || !msdk.CodecEnabled(lk) {
		return nil, fmt.Errorf("media-sdk codec not available: %q", sdpName)
	}

	info := audioCodec.Info()
	frameDur := cfg.FrameDuration
	if frameDur <= 0 {
		frameDur = 20 * time.Millisecond
	}

	return &SipEndpoint{
		LKCodec:      audioCodec,
		LKSDPName:    sdpName,
		FrameSize:    int(float64(info.SampleRate)*frameDur.Seconds()) * maxInt(1, codec.NumChannels) * 2,
		Codec:        codec,
		rtpReader:    rtpReader,
		rtpWriter:    rtpWriter,
		SampleRate:   info.SampleRate,
		RTPClockRate: info.RTPClockRate,
		Channels:     maxInt(1, codec.NumChannels),
		FrameDur:     frameDur,
		EnableJitter: cfg.JitterMinPackets > 0,
	}, nil
}

func (s *SipEndpoint) PayloadType() uint8 { return uint8(s.Codec.PayloadType) }

func (s *SipEndpoint) RTPReader() media.RTPReader { return s.rtpReader }

func (s *SipEndpoint) RTPWriter() media.RTPWriter { return s.rtpWriter }

func (s *SipEndpoint) Format() pcm.AudioFormat {
	return pcm.AudioFormat{SampleRate: s.SampleRate, Channels: s.Channels, FrameDur: s.FrameDur}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
