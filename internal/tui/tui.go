// Package tui is the terminal frontend of the proposal widget.
package tui

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/valentine/internal/geom"
	"github.com/iburimskiy/valentine/internal/layout"
	"github.com/iburimskiy/valentine/internal/proposal"
)

const frameInterval = 50 * time.Millisecond

var metrics = layout.Metrics{ButtonHeight: 3, Padding: 2, Gap: 4}

// Options wires an App.
type Options struct {
	Session  *proposal.Session
	Rand     interface{ Float64() float64 }
	Question string
	Footer   string
	Log      *logrus.Entry
}

// App draws the session on a tcell screen and turns mouse clicks into activations.
type App struct {
	screen   tcell.Screen
	session  *proposal.Session
	rng      interface{ Float64() float64 }
	question string
	footer   string
	log      *logrus.Entry

	width, height int
	buttonDown    bool
	pressed       layout.Target

	hearts         []proposal.Heart
	celebrateTicks int
}

// New creates the app on an initialised screen and registers it as the session's geometry
// provider.
func New(screen tcell.Screen, opts Options) *App {
	a := &App{
		screen:   screen,
		session:  opts.Session,
		rng:      opts.Rand,
		question: opts.Question,
		footer:   opts.Footer,
		log:      opts.Log,
	}
	a.width, a.height = screen.Size()
	screen.EnableMouse()
	a.session.SetGeometryProvider(proposal.GeometryFunc(a.geometry))
	return a
}

// Run polls events until the user quits. The screen is finalised before returning, also
// when a panic unwinds through Run.
func (a *App) Run() error {
	defer func() {
		if r := recover(); r != nil {
			a.screen.Fini()
			panic(r)
		}
	}()
	defer a.screen.Fini()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := a.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
			a.Draw()
		case <-ticker.C:
			if a.hearts != nil {
				a.celebrateTicks++
				a.Draw()
			}
		}
	}
}

// HandleEvent applies one terminal event and reports whether the app should keep running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.width, a.height = ev.Size()
		a.screen.Sync()
		a.log.WithFields(logrus.Fields{"width": a.width, "height": a.height}).Debug("terminal resized")
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return false
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := a.session.Presentation()
	// Hit test the drawn cells, probing the centre of the clicked cell
	target := snap(a.frame(p)).HitTest(p, float64(x)+0.5, float64(y)+0.5)

	// A click is a press and a release on the same button; drags report Button1 too
	if ev.Buttons()&tcell.Button1 != 0 {
		if !a.buttonDown {
			a.buttonDown = true
			a.pressed = target
		}
		return
	}
	if !a.buttonDown {
		return
	}

	if a.pressed != layout.TargetNone && a.pressed == target {
		a.activate(target)
	}
	a.buttonDown = false
	a.pressed = layout.TargetNone
}

func (a *App) activate(t layout.Target) {
	switch t {
	case layout.TargetAffirmative:
		if a.session.Accept() {
			a.hearts = proposal.NewHearts(a.rng, proposal.HeartCount)
			a.celebrateTicks = 0
		}
	case layout.TargetNegative:
		a.session.Reject()
	}
}

func (a *App) rows() (face, question int) {
	face = a.height / 5
	return face, face + 3
}

func (a *App) container() geom.Box {
	_, q := a.rows()
	top := q + 2
	return geom.Box{
		X: 2,
		Y: float64(top),
		W: float64(max(a.width-4, 1)),
		H: float64(max(a.height-top-1, 1)),
	}
}

func (a *App) frame(p proposal.Presentation) layout.Frame {
	return layout.Compute(p, a.container(), metrics, measure)
}

func (a *App) geometry() geom.Geometry {
	return a.frame(a.session.Presentation()).Geometry()
}

func measure(label string) float64 {
	return float64(runewidth.StringWidth(label))
}

// cells rounds a box to the terminal grid. A box with any area covers at least one cell.
func cells(b geom.Box) (x0, y0, x1, y1 int) {
	x0, y0 = int(math.Round(b.X)), int(math.Round(b.Y))
	x1, y1 = int(math.Round(b.Right())), int(math.Round(b.Bottom()))
	if b.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if b.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// snap replaces the button boxes of f with the cells they are drawn on.
func snap(f layout.Frame) layout.Frame {
	grid := func(b geom.Box) geom.Box {
		x0, y0, x1, y1 := cells(b)
		return geom.Box{X: float64(x0), Y: float64(y0), W: float64(x1 - x0), H: float64(y1 - y0)}
	}
	f.Affirmative = grid(f.Affirmative)
	f.Negative = grid(f.Negative)
	return f
}
