// Package resample implements the shared PCM16 mono resampling primitive
// used on both legs of a call: the SIP trunk runs at 48 kHz, the realtime AI
// session listens at 16 kHz and speaks at 24 kHz. Grounded in this module's
// own drift-tolerant PCM helpers (internal/pcm) for framing and in
// birddigital-signalwire-telephony's AudioConverter.resamplePCM16 for the
// linear-interpolation fallback path; high-ratio conversions are handed to
// github.com/tphakala/go-audio-resampler's band-limited resampler so voice
// quality does not degrade on the 48<->16 hop.
package resample

import (
	"encoding/binary"
	"math"

	bandlimited "github.com/tphakala/go-audio-resampler"
)

// Resample converts little-endian mono PCM16 samples from one sample rate to
// another. It is a pure function: equal rates return the input unchanged
// (bit-exact). Output length is floor(in_samples * toRate / fromRate).
func Resample(pcm16le []byte, fromRate, toRate int) []byte {
	if fromRate <= 0 || toRate <= 0 || fromRate == toRate {
		return pcm16le
	}
	samples := bytesToInt16(pcm16le)
	if len(samples) == 0 {
		return nil
	}

	var out []int16
	if r, ok := bandLimitedResample(samples, fromRate, toRate); ok {
		out = r
	} else {
		out = linearResample(samples, fromRate, toRate)
	}
	return int16ToBytes(out)
}

// SIPToAIInput resamples the SIP-side 48 kHz capture down to the 16 kHz the
// realtime AI session expects on its input_audio_buffer.
func SIPToAIInput(pcm48 []byte) []byte {
	return Resample(pcm48, 48000, 16000)
}

// AIOutputToSIP resamples the realtime AI session's 24 kHz speech output up
// to the 48 kHz the SIP bridge plays out.
func AIOutputToSIP(pcm24 []byte) []byte {
	return Resample(pcm24, 24000, 48000)
}

// bandLimitedResample delegates to go-audio-resampler for a better-quality
// conversion than plain linear interpolation; it reports ok=false so callers
// fall back to the linear path if the library declines the ratio (e.g.
// exotic rates it wasn't built for).
func bandLimitedResample(in []int16, fromRate, toRate int) ([]int16, bool) {
	r, err := bandlimited.NewSimple(float64(fromRate), float64(toRate))
	if err != nil {
		return nil, false
	}
	inF := make([]float64, len(in))
	for i, s := range in {
		inF[i] = float64(s)
	}
	outF, err := r.Process(inF)
	if err != nil || len(outF) == 0 {
		return nil, false
	}
	out := make([]int16, len(outF))
	for i, s := range outF {
		out[i] = clampInt16(s)
	}
	return out, true
}

// linearResample is the birddigital-style fallback: simple linear
// interpolation between neighboring samples, "good enough for telephony".
func linearResample(in []int16, fromRate, toRate int) []int16 {
	numOut := (len(in) * toRate) / fromRate
	if numOut <= 0 {
		return nil
	}
	out := make([]int16, numOut)
	ratio := float64(fromRate) / float64(toRate)
	for i := 0; i < numOut; i++ {
		srcPos := float64(i) * ratio
		srcIdx := int(srcPos)
		if srcIdx >= len(in)-1 {
			srcIdx = len(in) - 2
		}
		if srcIdx < 0 {
			srcIdx = 0
		}
		frac := srcPos - float64(srcIdx)
		var s1, s2 int16
		s1 = in[srcIdx]
		if srcIdx+1 < len(in) {
			s2 = in[srcIdx+1]
		} else {
			s2 = s1
		}
		v := float64(s1)*(1-frac) + float64(s2)*frac
		out[i] = clampInt16(v)
	}
	return out
}

func clampInt16(v float64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

func bytesToInt16(b []byte) []int16 {
	n := len(b) / 2
	out := make([]int16, n)
	for i := 0; i < n; i++ {
		out[i] = int16(binary.LittleEndian.Uint16(b[i*2 : i*2+2]))
	}
	return out
}

func int16ToBytes(in []int16) []byte {
	out := make([]byte, len(in)*2)
	for i, s := range in {
		binary.LittleEndian.PutUint16(out[i*2:i*2+2], uint16(s))
	}
	return out
}
