// Package audio turns sound intents into short synthesized tones.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-grow/internal/config"
	"github.com/vovakirdan/tui-grow/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound intents. Implementations must not block the game loop.
type Player interface {
	Play(kind core.SoundKind)
	Close() error
}

// Nop discards every sound.
type Nop struct{}

func (Nop) Play(core.SoundKind) {}
func (Nop) Close() error        { return nil }

// New returns a speaker-backed player, or Nop when sound is disabled or the
// audio device cannot be opened.
func New(cfg config.SoundConfig, logger *log.Logger) Player {
	if !cfg.Enabled {
		return Nop{}
	}
	p, err := NewBeepPlayer(cfg.Volume)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		return Nop{}
	}
	return p
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// BeepPlayer mixes tones into a single speaker stream.
type BeepPlayer struct {
	mixer  *beep.Mixer
	volume float64
}

// NewBeepPlayer initializes the speaker (once per process) and starts the mixer.
func NewBeepPlayer(volume float64) (*BeepPlayer, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", speakerErr)
	}

	p := &BeepPlayer{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues the tune for kind. Unknown kinds are ignored.
func (p *BeepPlayer) Play(kind core.SoundKind) {
	s, err := build(sampleRate, kind, p.volume)
	if err != nil || s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close drops anything still playing.
func (p *BeepPlayer) Close() error {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	return nil
}

type note struct {
	freq float64
	dur  time.Duration
}

// tuneFor returns the notes played for a sound kind.
func tuneFor(kind core.SoundKind) []note {
	switch kind {
	case core.SoundAbsorb:
		return []note{{523.25, 50 * time.Millisecond}, {783.99, 70 * time.Millisecond}}
	case core.SoundBounce:
		return []note{{196, 25 * time.Millisecond}}
	case core.SoundGameOver:
		return []note{
			{329.63, 150 * time.Millisecond},
			{246.94, 150 * time.Millisecond},
			{164.81, 300 * time.Millisecond},
		}
	default:
		return nil
	}
}

// build renders a tune as a finite streamer at the given volume (0..1).
func build(sr beep.SampleRate, kind core.SoundKind, volume float64) (beep.Streamer, error) {
	notes := tuneFor(kind)
	if len(notes) == 0 {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.2f Hz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.dur), tone))
	}

	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume maps a linear 0..1 level onto beep's log2 volume scale.
// Zero or below is silent since Log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
