package orchestrator

import (
	"encoding/binary"
	"math"
	"time"
)

// generateBeep renders a mono PCM16 little-endian sine tone with a linear
// fade-in/out, used for the access-denied beep (§4.5 step 3).
func generateBeep(sampleRate, freqHz int, duration, fade time.Duration) []byte {
	n := int(float64(sampleRate) * duration.Seconds())
	fadeSamples := int(float64(sampleRate) * fade.Seconds())
	out := make([]byte, n*2)
	for i := 0; i < n; i++ {
		amp := 1.0
		if i < fadeSamples {
			amp = float64(i) / float64(fadeSamples)
		} else if i >= n-fadeSamples {
			amp = float64(n-1-i) / float64(fadeSamples)
		}
		v := amp * math.Sin(2*math.Pi*float64(freqHz)*float64(i)/float64(sampleRate))
		binary.LittleEndian.PutUint16(out[i*2:i*2+2], uint16(int16(v*math.MaxInt16*0.8)))
	}
	return out
}
