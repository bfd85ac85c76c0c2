// Package game is the ebiten frontend of the proposal widget.
package game

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/geom"
	"github.com/iburimskiy/valentine/internal/layout"
	"github.com/iburimskiy/valentine/internal/proposal"
)

// LevelMeter reports how loud the background music currently is, in [0,1].
type LevelMeter interface {
	Level() float64
}

// Options wires a Game.
type Options struct {
	Session  *proposal.Session
	Meter    LevelMeter
	Rand     interface{ Float64() float64 }
	Question string
	Footer   string
	Log      *logrus.Entry
}

type game struct {
	session  *proposal.Session
	meter    LevelMeter
	rng      interface{ Float64() float64 }
	question string
	footer   string
	log      *logrus.Entry

	face    font.Face
	sprites *spriteCache

	// input edge detection
	hovered layout.Target
	pressed layout.Target

	// celebration
	hearts         []proposal.Heart
	celebrateTicks int

	ticks int
}

var (
	container = geom.Box{
		X: config.ContainerX,
		Y: config.ContainerY,
		W: config.ContainerWidth,
		H: config.ContainerHeight,
	}
	metrics = layout.Metrics{
		ButtonHeight: config.ButtonHeight,
		Padding:      config.ButtonPadding,
		Gap:          config.ButtonGap,
	}
)

// New creates the ebiten game and registers it as the session's geometry provider.
func New(opts Options) ebiten.Game {
	g := &game{
		session:  opts.Session,
		meter:    opts.Meter,
		rng:      opts.Rand,
		question: opts.Question,
		footer:   opts.Footer,
		log:      opts.Log,
		face:     basicfont.Face7x13,
		sprites:  newSpriteCache(),
	}
	g.session.SetGeometryProvider(proposal.GeometryFunc(g.geometry))
	return g
}

// Run opens the window and blocks until it is closed or the user quits.
func Run(title string, opts Options) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(New(opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *game) measure(label string) float64 {
	return float64(font.MeasureString(g.face, label).Ceil())
}

func (g *game) frame(p proposal.Presentation) layout.Frame {
	return layout.Compute(p, container, metrics, g.measure)
}

func (g *game) geometry() geom.Geometry {
	return g.frame(g.session.Presentation()).Geometry()
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.ticks++
	if g.hearts != nil {
		g.celebrateTicks++
	}

	p := g.session.Presentation()
	mouseX, mouseY := ebiten.CursorPosition()
	g.hovered = g.frame(p).HitTest(p, float64(mouseX), float64(mouseY))

	// A click is a press and a release on the same button
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = g.hovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressed != layout.TargetNone && g.pressed == g.hovered {
			g.activate(g.pressed)
		}
		g.pressed = layout.TargetNone
	}

	return nil
}

func (g *game) activate(t layout.Target) {
	switch t {
	case layout.TargetAffirmative:
		if g.session.Accept() {
			g.hearts = proposal.NewHearts(g.rng, proposal.HeartCount)
			g.celebrateTicks = 0
			g.log.WithField("hearts", len(g.hearts)).Debug("celebration started")
		}
	case layout.TargetNegative:
		g.session.Reject()
	}
}

func (g *game) celebrationElapsed() time.Duration {
	return time.Duration(g.celebrateTicks) * time.Second / time.Duration(ebiten.TPS())
}

func (g *game) musicLevel() float64 {
	if g.meter == nil {
		return 0
	}
	return g.meter.Level()
}

func (g *game) Draw(screen *ebiten.Image) {
	p := g.session.Presentation()

	g.drawBackground(screen)
	if g.footer != "" {
		g.drawTextCentered(screen, g.footer, config.FooterY, 1, colorFooter)
	}

	if p.View == proposal.ViewCelebrating {
		g.drawCelebration(screen, p)
		return
	}

	lift := layout.QuestionLift(g.session.State().RejectionCount, config.QuestionLiftStep, config.QuestionLiftMax)
	g.drawFace(screen, p.Mood)
	g.drawTextCentered(screen, g.question, config.QuestionY-int(lift), 2, colorQuestion)
	g.drawButtons(screen, p, g.frame(p))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
