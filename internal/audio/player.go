package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

// initOto opens the output device once per process, at the rate and
// channel layout of the first track played.
func initOto(sampleRate, channels int) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// Player plays one local track and exposes its decoded samples via a Tap.
type Player struct {
	file      *os.File
	src       source
	tap       *Tap
	otoPlayer *oto.Player
	meter     Meter
	duration  time.Duration
	done      chan struct{}

	mu     sync.Mutex
	volume float64
	paused bool
	closed bool
}

// New opens path, starts playback and returns the running player.
func New(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := openSource(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	ctx, err := initOto(src.SampleRate(), src.Channels())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	bytesPerSec := int64(src.SampleRate() * src.Channels() * 2)
	var dur time.Duration
	if total := src.Length(); total > 0 {
		dur = time.Duration(float64(total) / float64(bytesPerSec) * float64(time.Second))
	}

	// Keep roughly a quarter second of samples for the meter.
	tap := NewTap(src, src.SampleRate()*src.Channels()/4)

	p := &Player{
		file:     f,
		src:      src,
		tap:      tap,
		duration: dur,
		volume:   0.8,
		done:     make(chan struct{}),
	}
	p.otoPlayer = ctx.NewPlayer(tap)
	p.otoPlayer.SetVolume(p.volume)
	p.otoPlayer.Play()

	go p.monitor()
	return p, nil
}

func (p *Player) monitor() {
	for {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return
		}
		paused := p.paused
		p.mu.Unlock()

		total := p.src.Length()
		if !paused && total > 0 && p.tap.Pos() >= total {
			close(p.done)
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// Done closes when the track runs out.
func (p *Player) Done() <-chan struct{} { return p.done }

// TogglePause flips between playing and paused.
func (p *Player) TogglePause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		p.otoPlayer.Play()
	} else {
		p.otoPlayer.Pause()
	}
	p.paused = !p.paused
}

// Paused reports whether playback is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Position is the playback position derived from decoded bytes.
func (p *Player) Position() time.Duration {
	bytesPerSec := float64(p.src.SampleRate() * p.src.Channels() * 2)
	return time.Duration(float64(p.tap.Pos()) / bytesPerSec * float64(time.Second))
}

// Duration is the track length, or zero when the source cannot tell.
func (p *Player) Duration() time.Duration { return p.duration }

// Level feeds the meter the latest samples and returns loudness in [0,1].
// Call it once per animation tick.
func (p *Player) Level() float64 {
	if p.Paused() {
		return p.meter.Feed(nil)
	}
	return p.meter.Feed(p.tap.Samples(2048))
}

// Volume returns the current volume in [0,1].
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// AdjustVolume shifts volume by delta, clamped to [0,1].
func (p *Player) AdjustVolume(delta float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume += delta
	if p.volume < 0 {
		p.volume = 0
	}
	if p.volume > 1 {
		p.volume = 1
	}
	p.otoPlayer.SetVolume(p.volume)
}

// Close stops playback and releases the file.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.otoPlayer.Pause()
	p.file.Close()
}
