package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/valentine/internal/proposal"
)

func TestSummaryAccepted(t *testing.T) {
	out := Summary(proposal.InteractionState{RejectionCount: 3, Accepted: true, MusicStarted: true}, proposal.DefaultDeck())

	assert.Contains(t, out, "Accepted!")
	assert.Contains(t, out, "3 rejections.")
	assert.NotContains(t, out, "Last plea")
}

func TestSummaryUnanswered(t *testing.T) {
	deck := proposal.DefaultDeck()
	out := Summary(proposal.InteractionState{RejectionCount: 1, MusicStarted: true}, deck)

	assert.Contains(t, out, "Still waiting")
	assert.Contains(t, out, "1 rejection.")
	assert.Contains(t, out, deck.At(1))
}

func TestSummaryUntouched(t *testing.T) {
	out := Summary(proposal.InteractionState{}, proposal.DefaultDeck())

	assert.Contains(t, out, "No rejections.")
	assert.Contains(t, out, "No button was pressed.")
}
