package proposal

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Player starts background music. Play may block while the output device opens.
type Player interface {
	Play() error
}

// AudioLatch starts a Player at most once. The request runs on its own goroutine; a failure
// is only logged.
type AudioLatch struct {
	player Player
	log    *logrus.Entry

	fired bool
	wg    sync.WaitGroup
}

// NewAudioLatch wraps player. A nil player makes Fire only flip the latch.
func NewAudioLatch(player Player, log *logrus.Entry) *AudioLatch {
	return &AudioLatch{player: player, log: log}
}

// Fire requests playback on the first call and reports whether this call did so.
func (l *AudioLatch) Fire() bool {
	if l.fired {
		return false
	}
	l.fired = true

	if l.player == nil {
		return true
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if err := l.player.Play(); err != nil {
			l.log.WithError(err).Warn("background music blocked")
			return
		}
		l.log.Debug("background music started")
	}()
	return true
}

// Fired reports whether playback has been requested.
func (l *AudioLatch) Fired() bool { return l.fired }

// Wait blocks until an in-flight playback request has finished.
func (l *AudioLatch) Wait() { l.wg.Wait() }
