// Package pcm holds the fixed-size PCM16 framing helpers the call engine's
// RTP encode/decode pump needs, adapted from bridge/pcm in the reference
// SIP bridge.
package pcm

import "time"

// AudioFormat describes PCM16 audio framing.
type AudioFormat struct {
	SampleRate int
	Channels   int
	FrameDur   time.Duration
}

func (f AudioFormat) FrameSamples() int {
	sr := f.SampleRate
	if sr < 1 {
		sr = 1
	}
	ch := f.Channels
	if ch < 1 {
		ch = 1
	}
	return int(float64(sr) * f.FrameDur.Seconds() * float64(ch))
}

func (f AudioFormat) FrameBytes() int {
	return f.FrameSamples() * 2
}
