// Package sound plays the UI click and the optional looping ambient track.
// Every entry point degrades to a no-op when the speaker could not be
// initialised, so the site keeps running silently.
package sound

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/charro-ambient/internal/config"
)

const (
	SampleRate = beep.SampleRate(44100)

	levelRingSize   = 4096
	levelWindow     = 1024
	clickFrequency  = 660
	clickLength     = 40 * time.Millisecond
	resampleQuality = 4
)

// ErrUnsupported is returned for ambient files with an unknown extension.
var ErrUnsupported = errors.New("unsupported audio file type")

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(path))
}

// openTrack decodes path. The caller owns the returned closer.
func openTrack(path string) (beep.StreamSeekCloser, beep.Format, io.Closer, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, beep.Format{}, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, nil, fmt.Errorf("opening ambient track: %w", err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return streamer, format, f, nil
}

// Player owns the speaker for the lifetime of the application.
type Player struct {
	cfg    config.Sound
	logger *log.Logger

	ready bool
	muted bool

	file     io.Closer
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	tap      *levelTap
}

func NewPlayer(cfg config.Sound, logger *log.Logger) *Player {
	return &Player{cfg: cfg, logger: logger}
}

// Init opens the speaker. Failing here only disables sound.
func (p *Player) Init() error {
	if !p.cfg.Enabled || p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("initialising speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Ready reports whether the speaker is open.
func (p *Player) Ready() bool { return p.ready }

// Click plays the short UI blip.
func (p *Player) Click() {
	if !p.ready || p.muted {
		return
	}
	speaker.Play(newTone(SampleRate, clickFrequency, clickLength, p.cfg.Volume*0.5))
}

// PlayAmbient loops the track at path under everything else, replacing
// any track already playing.
func (p *Player) PlayAmbient(path string) error {
	if !p.ready {
		return nil
	}

	streamer, format, file, err := openTrack(path)
	if err != nil {
		return err
	}
	p.stopAmbient()

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, SampleRate, s)
	}
	tap := newLevelTap(s, levelRingSize)
	ctrl := &beep.Ctrl{Streamer: tap}
	volume := &effects.Volume{
		Streamer: ctrl,
		Base:     2,
		Volume:   gainToVolume(p.cfg.Volume),
		Silent:   p.muted || p.cfg.Volume == 0,
	}

	speaker.Lock()
	p.file = file
	p.streamer = streamer
	p.tap = tap
	p.ctrl = ctrl
	p.volume = volume
	speaker.Unlock()

	speaker.Play(volume)
	p.logger.Printf("ambient track %s playing (%d Hz)", path, format.SampleRate)
	return nil
}

// ToggleMute silences or restores all sound and returns the new state.
func (p *Player) ToggleMute() bool {
	if p.ready {
		speaker.Lock()
	}
	p.muted = !p.muted
	if p.volume != nil {
		p.volume.Silent = p.muted || p.cfg.Volume == 0
	}
	if p.ready {
		speaker.Unlock()
	}
	return p.muted
}

func (p *Player) Muted() bool { return p.muted }

// Level is the recent loudness of the ambient track in [0, 1].
func (p *Player) Level() float64 {
	if p.tap == nil || p.muted {
		return 0
	}
	return p.tap.level(levelWindow)
}

// Close stops playback and releases the ambient file.
func (p *Player) Close() {
	if !p.ready {
		return
	}
	speaker.Clear()
	p.stopAmbient()
}

func (p *Player) stopAmbient() {
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Streamer = nil
	speaker.Unlock()

	_ = p.streamer.Close()
	_ = p.file.Close()
	p.file, p.streamer, p.ctrl, p.volume, p.tap = nil, nil, nil, nil, nil
}

// gainToVolume converts a linear gain to the base-2 exponent effects.Volume uses.
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
