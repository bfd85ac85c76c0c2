package proposal

import (
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/valentine/internal/geom"
)

// Session owns the interaction state of one run. It is driven from a single event loop and
// is not safe for concurrent use.
type Session struct {
	state  InteractionState
	deck   Deck
	placer *geom.Placer
	geo    GeometryProvider
	music  *AudioLatch
	log    *logrus.Entry
}

// NewSession creates a session in the asking state.
func NewSession(deck Deck, placer *geom.Placer, music *AudioLatch, log *logrus.Entry) *Session {
	return &Session{
		deck:   deck,
		placer: placer,
		music:  music,
		log:    log,
	}
}

// SetGeometryProvider installs the source of live button boxes used when dodging.
func (s *Session) SetGeometryProvider(p GeometryProvider) {
	s.geo = p
}

// State returns a copy of the current state.
func (s *Session) State() InteractionState {
	return s.state.clone()
}

// Presentation derives what to draw from the current state.
func (s *Session) Presentation() Presentation {
	return Derive(s.state, s.deck)
}

// Deck returns the phrase deck in use.
func (s *Session) Deck() Deck { return s.deck }

// Accept handles an affirmative activation. It returns true only for the call that moved the
// session into the celebration view.
func (s *Session) Accept() bool {
	s.startMusic()

	if s.state.Accepted {
		return false
	}
	s.state.Accepted = true

	s.log.WithField("rejections", s.state.RejectionCount).Info("proposal accepted")
	return true
}

// Reject handles a negative activation. Activations after acceptance, or while the negative
// button is inert, are ignored and return false.
func (s *Session) Reject() bool {
	if s.state.Accepted || NegativeScale(s.state.RejectionCount) == 0 {
		return false
	}

	s.startMusic()
	s.state.RejectionCount++
	s.dodge()

	s.log.WithFields(logrus.Fields{
		"rejections":        s.state.RejectionCount,
		"affirmative_scale": roundScale(AffirmativeScale(s.state.RejectionCount)),
		"negative_scale":    roundScale(NegativeScale(s.state.RejectionCount)),
	}).Debug("proposal rejected")
	return true
}

func (s *Session) dodge() {
	var g geom.Geometry
	if s.geo != nil {
		g = s.geo.Geometry()
	}

	placement := s.placer.Place(g)
	off := placement.Offset
	s.state.Dodge = &off

	if placement.Fallback {
		s.log.WithField("attempts", placement.Attempts).Debug("no free spot for negative button, using container origin")
	}
}

func (s *Session) startMusic() {
	if s.state.MusicStarted {
		return
	}
	s.state.MusicStarted = true
	if s.music != nil {
		s.music.Fire()
	}
}
