package callengine

import (
	"time"

	"github.com/emiago/diago/media"
)

// negotiationCodecs builds the diago media.Codec offer list in the fixed
// priority order §4.1 requires: Opus/48000 > G.722/16000 > PCMA/8000 >
// PCMU/8000. diago negotiates by walking this list against the peer's SDP
// and picking the first common entry, so offer order alone enforces the
// priority; static payload types follow RFC 3551 (G.722=9, PCMA=8,
// PCMU=0), Opus and telephone-event get dynamic ones, the same
// static/dynamic split as the teacher's SIPCodecs in bridge/service.go.
func negotiationCodecs(frameDur time.Duration, enableDTMF bool) []media.Codec {
	if frameDur <= 0 {
		frameDur = 20 * time.Millisecond
	}
	codecs := []media.Codec{
		{Name: "opus", PayloadType: 111, SampleRate: 48000, SampleDur: frameDur, NumChannels: 2},
		{Name: "G722", PayloadType: 9, SampleRate: 8000, SampleDur: frameDur, NumChannels: 1},
		{Name: "PCMA", PayloadType: 8, SampleRate: 8000, SampleDur: frameDur, NumChannels: 1},
		{Name: "PCMU", PayloadType: 0, SampleRate: 8000, SampleDur: frameDur, NumChannels: 1},
	}
	if enableDTMF {
		codecs = append(codecs, media.Codec{Name: "telephone-event", PayloadType: 101, SampleRate: 8000, SampleDur: frameDur, NumChannels: 1})
	}
	return codecs
}
