// Package audio plays bricker's sound effects through beep.
package audio

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/vovakirdan/bricker/internal/bricks"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Stand-in tone for assets that fail to load.
	fallbackFreq     = 660
	fallbackDuration = 60 * time.Millisecond
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Bank loads sound effects by path and plays them through one mixer.
// Loaded clips are cached, so each file is decoded once.
type Bank struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	clips       map[string]*beep.Buffer
	log         *log.Logger
	initialized bool
}

// NewBank creates a bank. Sounds play only after Init.
func NewBank(logger *log.Logger) *Bank {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bank{
		mixer: &beep.Mixer{},
		clips: make(map[string]*beep.Buffer),
		log:   logger,
	}
}

// Init opens the speaker and starts the mixer.
func (b *Bank) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Close silences everything queued in the mixer.
func (b *Bank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// Sound implements bricks.Sounds. A file that cannot be decoded is logged
// and replaced by a short synthesized tone.
func (b *Bank) Sound(path string) bricks.Sound {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, ok := b.clips[path]
	if !ok {
		var err error
		buf, err = load(path)
		if err != nil {
			b.log.Warn("sound unavailable, using tone", "path", path, "err", err)
			buf = tone()
		}
		b.clips[path] = buf
	}
	return &clip{bank: b, buf: buf}
}

func (b *Bank) play(buf *beep.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := buf.Streamer(0, buf.Len())
	if !b.initialized {
		b.mixer.Add(s)
		return
	}
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

// Playing returns the number of clips still queued in the mixer.
func (b *Bank) Playing() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mixer.Len()
}

type clip struct {
	bank *Bank
	buf  *beep.Buffer
}

// Play queues the clip from its start.
func (c *clip) Play() {
	c.bank.play(c.buf)
}

// load decodes a WAV file into a buffer at the bank's sample rate.
func load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	var s beep.Streamer = streamer
	if fileFormat.SampleRate != sampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, sampleRate, streamer)
	}
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	return buf, nil
}

func tone() *beep.Buffer {
	buf := beep.NewBuffer(format)
	sine, err := generators.SineTone(sampleRate, fallbackFreq)
	if err != nil {
		return buf
	}
	buf.Append(beep.Take(sampleRate.N(fallbackDuration), sine))
	return buf
}

// Mute is a bricks.Sounds that never plays anything.
type Mute = bricks.Silent
