// Package proposal holds the interaction state of the proposal widget, the transitions that
// mutate it and the pure derivation of everything a frontend draws.
package proposal

import "github.com/iburimskiy/valentine/internal/geom"

// InteractionState is everything a session remembers. Counters and flags only move forward.
type InteractionState struct {
	RejectionCount int
	Accepted       bool
	MusicStarted   bool
	// Dodge is nil until the first rejection.
	Dodge *geom.Offset
}

func (s InteractionState) clone() InteractionState {
	if s.Dodge != nil {
		d := *s.Dodge
		s.Dodge = &d
	}
	return s
}
