// Package audio plays the background music of the proposal widget through beep.
package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/sirupsen/logrus"
)

const visualRingSize = 8192

// Options configures a Player.
type Options struct {
	Enabled bool
	// Path of a .wav, .mp3 or .flac file. Empty plays the built-in melody.
	Path string
	// Volume in [0,1].
	Volume float64
}

// Player loops one background track. It is safe for concurrent use.
type Player struct {
	opts Options
	log  *logrus.Entry

	mu       sync.Mutex
	initDone bool
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl

	// read by Level without taking mu, Play may hold mu while the device opens
	tap atomic.Pointer[Tap]
}

// NewPlayer creates a player. Nothing is opened until Play.
func NewPlayer(opts Options, log *logrus.Entry) *Player {
	return &Player{opts: opts, log: log}
}

// Play opens the output device and starts looping the track. Calling Play while already
// playing is a no-op.
func (p *Player) Play() error {
	if !p.opts.Enabled {
		return ErrDisabled
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl != nil {
		return nil
	}

	src, rate, err := p.source()
	if err != nil {
		return err
	}

	if !p.initDone {
		if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
			p.closeStreamer()
			return err
		}
		p.initDone = true
	}

	tap := NewTap(withVolume(src, p.opts.Volume), visualRingSize)
	ctrl := &beep.Ctrl{Streamer: tap, Paused: false}

	speaker.Play(ctrl)

	p.tap.Store(tap)
	p.ctrl = ctrl
	p.log.WithFields(logrus.Fields{
		"track":       p.trackName(),
		"sample_rate": int(rate),
	}).Info("background music playing")
	return nil
}

func (p *Player) source() (beep.Streamer, beep.SampleRate, error) {
	if p.opts.Path == "" {
		return NewMelodyGenerator(MelodySampleRate), MelodySampleRate, nil
	}

	streamer, format, err := Open(p.opts.Path)
	if err != nil {
		return nil, 0, err
	}
	p.streamer = streamer
	return beep.Loop(-1, streamer), format.SampleRate, nil
}

func withVolume(s beep.Streamer, v float64) beep.Streamer {
	v = clamp01(v)
	if v >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(v),
		Silent:   v == 0,
	}
}

func (p *Player) trackName() string {
	if p.opts.Path == "" {
		return "built-in waltz"
	}
	return p.opts.Path
}

// Level returns the loudness of what is currently playing in [0,1], or 0 when silent.
func (p *Player) Level() float64 {
	tap := p.tap.Load()
	if tap == nil {
		return 0
	}
	return tap.Level()
}

// Playing reports whether a track has been started.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl != nil
}

// Close stops playback and releases the track.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initDone {
		speaker.Lock()
		if p.ctrl != nil {
			p.ctrl.Paused = true
		}
		speaker.Unlock()
		speaker.Clear()
	}
	p.ctrl = nil
	p.tap.Store(nil)
	p.closeStreamer()
}

func (p *Player) closeStreamer() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
}
