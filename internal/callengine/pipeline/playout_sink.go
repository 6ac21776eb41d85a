package pipeline

import (
	"fmt"

	msdk "github.com/livekit/media-sdk"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/callengine/pcm"
)

// playoutSink receives decoded PCM16 samples from the media-sdk RTP
// pipeline, converts channel layout if needed, chunks into fixed frames and
// writes them into a PCMPlayoutBuffer for the engine's delivery tick to
// drain. Adapted from the reference bridge's tgPlayoutSink, generalized
// since this side no longer talks to Telegram.
type playoutSink struct {
	sampleRate int
	inCh       int
	outCh      int

	assembler    *pcm.FrameAssembler
	outFrameSize int
	out          *pcm.PCMPlayoutBuffer

	tmp msdk.PCM16Sample
	b   []byte
}

func newPlayoutSink(sampleRate, inCh, outCh, outFrameSize int, out *pcm.PCMPlayoutBuffer) *playoutSink {
	if sampleRate <= 0 {
		sampleRate = 48000
	}
	if inCh <= 0 {
		inCh = 1
	}
	if outCh <= 0 {
		outCh = 1
	}
	if outFrameSize <= 0 {
		outFrameSize = 1
	}
	return &playoutSink{
		sampleRate:   sampleRate,
		inCh:         inCh,
		outCh:        outCh,
		outFrameSize: outFrameSize,
		assembler:    pcm.NewFrameAssembler(outFrameSize),
		out:          out,
	}
}

func (w *playoutSink) String() string {
	return fmt.Sprintf("PlayoutSink(%dHz %dch->%dch)", w.sampleRate, w.inCh, w.outCh)
}

func (w *playoutSink) SampleRate() int { return w.sampleRate }

func (w *playoutSink) WriteSample(sample msdk.PCM16Sample) error {
	if w.inCh != w.outCh {
		w.tmp = pcm.PCM16ConvertChannels(w.tmp, sample, w.inCh, w.outCh)
		sample = w.tmp
	}
	w.b = pcm.PCM16SampleToBytes(w.b, sample)
	for _, frame := range w.assembler.Push(w.b) {
		w.out.WriteFrame(frame)
	}
	return nil
}
