package resample

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func sineSamples(n, freq, rate int) []byte {
	out := make([]byte, n*2)
	for i := 0; i < n; i++ {
		v := math.Sin(2*math.Pi*float64(freq)*float64(i)/float64(rate)) * 20000
		binary.LittleEndian.PutUint16(out[i*2:i*2+2], uint16(int16(v)))
	}
	return out
}

func TestResampleIdentity(t *testing.T) {
	in := sineSamples(480, 440, 48000)
	out := Resample(in, 48000, 48000)
	require.Equal(t, in, out, "equal rates must be bit-exact")
}

func TestResampleOutputLength(t *testing.T) {
	in := sineSamples(960, 440, 48000) // 20ms at 48kHz
	out := SIPToAIInput(in)
	wantSamples := (960 * 16000) / 48000
	require.Equal(t, wantSamples*2, len(out))
}

func TestResampleRoundTripLengthRatio(t *testing.T) {
	in := sineSamples(960, 440, 48000)
	down := SIPToAIInput(in)       // 48k -> 16k
	back := Resample(down, 16000, 48000)

	gotSamples := len(back) / 2
	wantSamples := len(in) / 2
	// floor/floor round-trip may be off by a sample or two; within tolerance.
	diff := gotSamples - wantSamples
	if diff < 0 {
		diff = -diff
	}
	require.LessOrEqual(t, diff, 2)
}

func TestAIOutputToSIPLengthRatio(t *testing.T) {
	in := sineSamples(240, 440, 24000) // 10ms at 24kHz
	out := AIOutputToSIP(in)
	wantSamples := (240 * 48000) / 24000
	require.Equal(t, wantSamples*2, len(out))
}

func TestResampleEmptyInput(t *testing.T) {
	require.Nil(t, Resample(nil, 48000, 16000))
}

func TestResampleInvalidRates(t *testing.T) {
	in := sineSamples(10, 440, 48000)
	require.Equal(t, in, Resample(in, 0, 16000))
	require.Equal(t, in, Resample(in, 48000, 0))
}
