package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/iburimskiy/valentine/internal/geom"
	"github.com/iburimskiy/valentine/internal/layout"
	"github.com/iburimskiy/valentine/internal/proposal"
)

const celebrationHeadline = "YAYYYYY!!! See you soon!"

var (
	styleBase     = tcell.StyleDefault.Background(tcell.ColorMistyRose).Foreground(tcell.ColorMaroon)
	styleQuestion = styleBase.Bold(true)
	styleFooter   = styleBase.Foreground(tcell.ColorHotPink)
	styleFace     = styleBase.Foreground(tcell.ColorSaddleBrown).Bold(true)
	styleYes      = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorWhite).Bold(true)
	styleNo       = tcell.StyleDefault.Background(tcell.ColorCrimson).Foreground(tcell.ColorWhite).Bold(true)
	// Dodging buttons are slightly see-through in the window frontend; the terminal dims them
	styleNoDodge = tcell.StyleDefault.Background(tcell.ColorIndianRed).Foreground(tcell.ColorWhite)

	heartGlyphs = [proposal.HeartVariants]rune{'♥', '❤', '❥', '♡'}
	heartColors = [proposal.HeartVariants]tcell.Color{
		tcell.ColorDeepPink, tcell.ColorRed, tcell.ColorHotPink, tcell.ColorPaleVioletRed,
	}
)

var faces = map[proposal.Mood]string{
	proposal.MoodInitial: "ʕ •ᴥ• ʔ",
	proposal.MoodSad:     "ʕ ╥ᴥ╥ ʔ",
	proposal.MoodSuccess: "ʕ ♥ᴥ♥ ʔ",
}

// Draw renders the current presentation and shows it.
func (a *App) Draw() {
	a.screen.SetStyle(styleBase)
	a.screen.Clear()

	p := a.session.Presentation()
	faceRow, questionRow := a.rows()
	footerRow := a.height - 1

	if p.View == proposal.ViewCelebrating {
		// Hearts first, text on top
		a.drawHearts()
		drawCentered(a.screen, a.width, faceRow, faces[p.Mood], styleFace)
		drawCentered(a.screen, a.width, questionRow, celebrationHeadline, styleQuestion)
		drawCentered(a.screen, a.width, footerRow, a.footer, styleFooter)
		a.screen.Show()
		return
	}

	drawCentered(a.screen, a.width, faceRow, faces[p.Mood], styleFace)
	drawCentered(a.screen, a.width, questionRow, a.question, styleQuestion)
	drawCentered(a.screen, a.width, footerRow, a.footer, styleFooter)

	f := a.frame(p)
	drawButton(a.screen, f.Affirmative, layout.AffirmativeLabel, styleYes)
	if p.NegativeScale > 0 {
		st := styleNo
		if p.Dodge != nil {
			st = styleNoDodge
		}
		drawButton(a.screen, f.Negative, p.Phrase, st)
	}

	a.screen.Show()
}

func (a *App) drawHearts() {
	elapsed := frameInterval * time.Duration(a.celebrateTicks)
	for _, h := range a.hearts {
		progress, ok := h.At(elapsed)
		if !ok {
			continue
		}
		x := int(h.Left * float64(a.width))
		y := int(progress * float64(a.height))
		st := styleBase.Foreground(heartColors[h.Variant])
		a.screen.SetContent(x, y, heartGlyphs[h.Variant], nil, st)
	}
}

func drawButton(s tcell.Screen, b geom.Box, label string, st tcell.Style) {
	x0, y0, x1, y1 := cells(b)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, ' ', nil, st)
		}
	}

	label = runewidth.Truncate(label, x1-x0, "")
	lx := x0 + (x1-x0-runewidth.StringWidth(label))/2
	drawText(s, lx, y0+(y1-y0-1)/2, label, st)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}

func drawCentered(s tcell.Screen, width, y int, text string, st tcell.Style) {
	drawText(s, (width-runewidth.StringWidth(text))/2, y, text, st)
}
