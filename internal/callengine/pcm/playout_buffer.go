package pcm

import "sync"

// PCMPlayoutBuffer is a fixed-frame-size byte FIFO that decouples bursty
// RTP decode from the engine's steady 20 ms delivery tick. Underflow
// yields a silence frame rather than blocking; overflow is bounded by the
// caller dropping old frames (the call engine never grows this past a
// handful of frames since decode and delivery run on the same cadence).
type PCMPlayoutBuffer struct {
	frameSize int

	mu  sync.Mutex
	buf []byte
}

func NewPCMPlayoutBuffer(frameSize int) *PCMPlayoutBuffer {
	if frameSize < 1 {
		frameSize = 1
	}
	return &PCMPlayoutBuffer{
		frameSize: frameSize,
		buf:       make([]byte, 0, frameSize*50),
	}
}

func (b *PCMPlayoutBuffer) FrameSize() int { return b.frameSize }

func (b *PCMPlayoutBuffer) LenFrames() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buf) / b.frameSize
}

// WriteFrame appends exactly one frame. If size mismatches, it is ignored.
func (b *PCMPlayoutBuffer) WriteFrame(frame []byte) {
	if len(frame) != b.frameSize {
		return
	}
	b.mu.Lock()
	b.buf = append(b.buf, frame...)
	b.mu.Unlock()
}

// DropFrames drops up to n oldest frames and returns how many were dropped.
func (b *PCMPlayoutBuffer) DropFrames(n int) int {
	if n <= 0 {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	available := len(b.buf) / b.frameSize
	if available <= 0 {
		return 0
	}
	if n > available {
		n = available
	}
	b.buf = b.buf[n*b.frameSize:]
	return n
}

// ReadInto writes one frame into dst, zero-filling (silence) if there
// wasn't enough buffered data yet.
func (b *PCMPlayoutBuffer) ReadInto(dst []byte) (ok bool) {
	if len(dst) != b.frameSize {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.buf) < b.frameSize {
		for i := range dst {
			dst[i] = 0
		}
		return false
	}
	copy(dst, b.buf[:b.frameSize])
	b.buf = b.buf[b.frameSize:]
	return true
}
