// Package report prints the outcome of a session to the terminal after the window closes.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/valentine/internal/proposal"
)

var (
	colorRose  = lipgloss.Color("#e11d48")
	colorPink  = lipgloss.Color("#f472b6")
	colorMuted = lipgloss.Color("#9ca3af")

	titleStyle  = lipgloss.NewStyle().Foreground(colorRose).Bold(true)
	detailStyle = lipgloss.NewStyle().Foreground(colorMuted)
	heartStyle  = lipgloss.NewStyle().Foreground(colorPink)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPink).
			Padding(0, 2)
)

// Summary renders the final state of a session.
func Summary(s proposal.InteractionState, deck proposal.Deck) string {
	var title string
	if s.Accepted {
		title = heartStyle.Render("♥ ") + titleStyle.Render("Accepted!") + heartStyle.Render(" ♥")
	} else {
		title = titleStyle.Render("Still waiting for an answer")
	}

	lines := []string{title, detailStyle.Render(rejectionLine(s.RejectionCount))}
	if !s.Accepted && s.RejectionCount > 0 {
		lines = append(lines, detailStyle.Render(fmt.Sprintf("Last plea: %q", deck.At(s.RejectionCount))))
	}
	if !s.MusicStarted {
		lines = append(lines, detailStyle.Render("No button was pressed."))
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

func rejectionLine(n int) string {
	switch n {
	case 0:
		return "No rejections."
	case 1:
		return "1 rejection."
	default:
		return fmt.Sprintf("%d rejections.", n)
	}
}
