// Package audio plays a local track and exposes a smoothed loudness level
// the trail buffer can react to. Playback is forward-only; there is no
// seeking and no resampling, the output device is opened at the track's
// native rate.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// A source decodes one track to interleaved 16-bit little-endian PCM.
type source interface {
	io.Reader
	SampleRate() int
	Channels() int
	// Length is the total PCM byte count, or 0 when unknown.
	Length() int64
}

// openSource picks a decoder by file extension.
func openSource(f *os.File) (source, error) {
	switch ext := strings.ToLower(filepath.Ext(f.Name())); ext {
	case ".mp3":
		return newMP3Source(f)
	case ".wav":
		return newWAVSource(f)
	case ".flac":
		return newFLACSource(f)
	case ".ogg":
		return newOGGSource(f)
	default:
		return nil, fmt.Errorf("unsupported audio format %q (want .mp3, .wav, .flac or .ogg)", ext)
	}
}

// Extensions lists the playable file extensions, with dots.
func Extensions() []string {
	return []string{".mp3", ".wav", ".flac", ".ogg"}
}

// chunkReader serves Read calls from PCM chunks produced on demand. The
// produce func returns a non-empty chunk or an error, never both empty.
type chunkReader struct {
	pending []byte
	produce func() ([]byte, error)
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.pending) == 0 {
		chunk, err := c.produce()
		if err != nil {
			return 0, err
		}
		c.pending = chunk
	}
	n := copy(p, c.pending)
	c.pending = c.pending[n:]
	return n, nil
}

// --- MP3 ---

// go-mp3 already emits 16-bit stereo PCM, so the source is a thin wrapper.
type mp3Source struct {
	dec *mp3.Decoder
}

func newMP3Source(f *os.File) (*mp3Source, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}
	return &mp3Source{dec: dec}, nil
}

func (s *mp3Source) Read(p []byte) (int, error) { return s.dec.Read(p) }
func (s *mp3Source) SampleRate() int            { return s.dec.SampleRate() }
func (s *mp3Source) Channels() int              { return 2 }
func (s *mp3Source) Length() int64              { return s.dec.Length() }

// --- WAV ---

type wavSource struct {
	chunkReader
	sampleRate int
	channels   int
	length     int64
}

func newWAVSource(f *os.File) (*wavSource, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid wav file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("locating wav pcm data: %w", err)
	}

	channels := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)
	srcFrames := dec.PCMLen() / (int64(channels) * int64(bitDepth) / 8)

	s := &wavSource{
		sampleRate: int(dec.SampleRate),
		channels:   channels,
		length:     srcFrames * int64(channels) * 2,
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: channels, SampleRate: int(dec.SampleRate)},
		Data:   make([]int, 2048*channels),
	}
	s.produce = func() ([]byte, error) {
		n, err := dec.PCMBuffer(buf)
		if n == 0 {
			if err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		chunk := make([]byte, n*2)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(chunk[i*2:], uint16(toInt16(buf.Data[i], bitDepth)))
		}
		return chunk, nil
	}
	return s, nil
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Length() int64   { return s.length }

// toInt16 rescales a sample from the source bit depth. 8-bit wav samples
// are unsigned.
func toInt16(v, bitDepth int) int16 {
	switch {
	case bitDepth == 8:
		v = (v - 128) << 8
	case bitDepth > 16:
		v >>= bitDepth - 16
	case bitDepth < 16:
		v <<= 16 - bitDepth
	}
	if v > 32767 {
		v = 32767
	}
	if v < -32768 {
		v = -32768
	}
	return int16(v)
}

// --- FLAC ---

type flacSource struct {
	chunkReader
	sampleRate int
	channels   int
	length     int64
}

func newFLACSource(f *os.File) (*flacSource, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("decoding flac: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	bps := int(info.BitsPerSample)

	s := &flacSource{
		sampleRate: int(info.SampleRate),
		channels:   channels,
		length:     int64(info.NSamples) * int64(channels) * 2,
	}
	s.produce = func() ([]byte, error) {
		frame, err := stream.ParseNext()
		if err != nil {
			return nil, err
		}
		n := int(frame.Subframes[0].NSamples)
		chunk := make([]byte, n*channels*2)
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				v := toInt16(int(frame.Subframes[ch].Samples[i]), bps)
				binary.LittleEndian.PutUint16(chunk[(i*channels+ch)*2:], uint16(v))
			}
		}
		return chunk, nil
	}
	return s, nil
}

func (s *flacSource) SampleRate() int { return s.sampleRate }
func (s *flacSource) Channels() int   { return s.channels }
func (s *flacSource) Length() int64   { return s.length }

// --- Ogg Vorbis ---

type oggSource struct {
	chunkReader
	sampleRate int
	channels   int
	length     int64
}

func newOGGSource(f *os.File) (*oggSource, error) {
	r, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding ogg: %w", err)
	}

	s := &oggSource{
		sampleRate: r.SampleRate(),
		channels:   r.Channels(),
		length:     r.Length() * int64(r.Channels()) * 2,
	}
	samples := make([]float32, 2048*r.Channels())
	s.produce = func() ([]byte, error) {
		n, err := r.Read(samples)
		if n == 0 {
			if err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		chunk := make([]byte, n*2)
		for i := 0; i < n; i++ {
			v := samples[i]
			if v > 1 {
				v = 1
			}
			if v < -1 {
				v = -1
			}
			binary.LittleEndian.PutUint16(chunk[i*2:], uint16(int16(v*32767)))
		}
		return chunk, nil
	}
	return s, nil
}

func (s *oggSource) SampleRate() int { return s.sampleRate }
func (s *oggSource) Channels() int   { return s.channels }
func (s *oggSource) Length() int64   { return s.length }
