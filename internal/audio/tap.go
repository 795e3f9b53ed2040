package audio

import (
	"io"
	"sync"
)

// Tap sits between a source and the output device. It counts bytes for
// position reporting and keeps the most recent decoded samples so the
// level meter can read them without disturbing playback.
type Tap struct {
	r io.Reader

	mu       sync.Mutex
	pos      int64
	ring     []int16
	w        int
	fill     int
	carry    byte
	hasCarry bool
}

// NewTap wraps r, retaining the last keep samples.
func NewTap(r io.Reader, keep int) *Tap {
	if keep < 1 {
		keep = 1
	}
	return &Tap{r: r, ring: make([]int16, keep)}
}

func (t *Tap) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 {
		t.mu.Lock()
		t.pos += int64(n)
		t.push(p[:n])
		t.mu.Unlock()
	}
	return n, err
}

// push decodes little-endian byte pairs into the sample ring. A trailing
// odd byte is carried to the next call so sample boundaries survive
// arbitrary read sizes.
func (t *Tap) push(b []byte) {
	i := 0
	if t.hasCarry && len(b) > 0 {
		t.put(int16(uint16(t.carry) | uint16(b[0])<<8))
		t.hasCarry = false
		i = 1
	}
	for ; i+1 < len(b); i += 2 {
		t.put(int16(uint16(b[i]) | uint16(b[i+1])<<8))
	}
	if i < len(b) {
		t.carry = b[i]
		t.hasCarry = true
	}
}

func (t *Tap) put(s int16) {
	t.ring[t.w] = s
	t.w = (t.w + 1) % len(t.ring)
	if t.fill < len(t.ring) {
		t.fill++
	}
}

// Pos returns the number of PCM bytes handed to the device so far.
func (t *Tap) Pos() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pos
}

// Samples returns up to n of the most recent samples, oldest first.
func (t *Tap) Samples(n int) []int16 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n > t.fill {
		n = t.fill
	}
	if n <= 0 {
		return nil
	}
	out := make([]int16, n)
	start := (t.w - n + len(t.ring)) % len(t.ring)
	for i := range out {
		out[i] = t.ring[(start+i)%len(t.ring)]
	}
	return out
}
