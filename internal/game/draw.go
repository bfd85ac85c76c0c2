package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/geom"
	"github.com/iburimskiy/valentine/internal/layout"
	"github.com/iburimskiy/valentine/internal/proposal"
)

const celebrationHeadline = "YAYYYYY!!! See you soon!"

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func (g *game) drawBackground(screen *ebiten.Image) {
	for y := 0; y < config.WindowHeight; y += 4 {
		ratio := float64(y) / float64(config.WindowHeight)
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, 4, lerpColor(colorBackdropTop, colorBackdropBottom, ratio), false)
	}
	vector.DrawFilledRect(screen, 60, 30, config.WindowWidth-120, config.WindowHeight-60, colorCard, false)
}

func (g *game) drawTextCentered(screen *ebiten.Image, s string, y int, scale float64, clr color.RGBA) {
	img := g.sprites.text(g.face, s, clr)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((config.WindowWidth-float64(w)*scale)/2, float64(y)-float64(h)*scale/2)
	screen.DrawImage(img, op)
}

func (g *game) drawButtons(screen *ebiten.Image, p proposal.Presentation, f layout.Frame) {
	yesFill := colorYesFill
	if g.hovered == layout.TargetAffirmative {
		yesFill = lerpColor(colorYesFill, colorYesEdge, 0.25)
	}
	g.drawButton(screen, layout.AffirmativeLabel, f.AffirmativeSlot, f.Affirmative, 1, yesFill, colorYesEdge)

	// The negative button is drawn last so it sits above the affirmative one
	if p.NegativeScale > 0 {
		noFill := colorNoFill
		if g.hovered == layout.TargetNegative {
			noFill = lerpColor(colorNoFill, colorNoEdge, 0.25)
		}
		g.drawButton(screen, p.Phrase, f.NegativeSlot, f.Negative, p.NegativeOpacity, noFill, colorNoEdge)
	}
}

// drawButton renders the slot-sized sprite stretched over the visible box.
func (g *game) drawButton(screen *ebiten.Image, label string, slot, visible geom.Box, opacity float64, fill, edge color.RGBA) {
	w, h := int(math.Ceil(slot.W)), int(math.Ceil(slot.H))
	if w <= 0 || h <= 0 || visible.W <= 0 || visible.H <= 0 {
		return
	}
	img := g.sprites.button(g.face, label, w, h, fill, edge)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(visible.W/float64(w), visible.H/float64(h))
	op.GeoM.Translate(visible.X, visible.Y)
	op.ColorScale.ScaleAlpha(float32(opacity))
	screen.DrawImage(img, op)
}

func (g *game) drawFace(screen *ebiten.Image, mood proposal.Mood) {
	cx, cy := float32(config.WindowWidth/2), float32(config.FaceCenterY)
	r := float32(config.FaceRadius)

	// Ears, head, muzzle
	vector.DrawFilledCircle(screen, cx-r*0.75, cy-r*0.7, r*0.32, colorFur, true)
	vector.DrawFilledCircle(screen, cx+r*0.75, cy-r*0.7, r*0.32, colorFur, true)
	vector.DrawFilledCircle(screen, cx, cy, r, colorFur, true)
	vector.DrawFilledCircle(screen, cx, cy+r*0.3, r*0.45, colorFurLight, true)
	vector.DrawFilledCircle(screen, cx, cy+r*0.12, r*0.1, colorFeature, true)

	eyeY := cy - r*0.2
	switch mood {
	case proposal.MoodSuccess:
		drawHeart(screen, float64(cx-r*0.35), float64(eyeY), float64(r*0.28), colorNoFill)
		drawHeart(screen, float64(cx+r*0.35), float64(eyeY), float64(r*0.28), colorNoFill)
	default:
		vector.DrawFilledCircle(screen, cx-r*0.35, eyeY, r*0.08, colorFeature, true)
		vector.DrawFilledCircle(screen, cx+r*0.35, eyeY, r*0.08, colorFeature, true)
	}

	mouthY := cy + r*0.45
	var mouth vector.Path
	mouth.MoveTo(cx-r*0.2, mouthY)
	switch mood {
	case proposal.MoodSad:
		mouth.QuadTo(cx, mouthY-r*0.18, cx+r*0.2, mouthY)
		vector.DrawFilledCircle(screen, cx+r*0.38, eyeY+r*0.22, r*0.07, colorTear, true)
	default:
		mouth.QuadTo(cx, mouthY+r*0.2, cx+r*0.2, mouthY)
		vector.DrawFilledCircle(screen, cx-r*0.55, cy+r*0.2, r*0.12, colorBlush, true)
		vector.DrawFilledCircle(screen, cx+r*0.55, cy+r*0.2, r*0.12, colorBlush, true)
	}
	strokePath(screen, &mouth, 3, colorFeature)
}

func (g *game) drawCelebration(screen *ebiten.Image, p proposal.Presentation) {
	g.drawFace(screen, p.Mood)
	g.drawTextCentered(screen, celebrationHeadline, config.QuestionY, 3, colorQuestion)

	elapsed := g.celebrationElapsed()
	pulse := 1 + 0.3*g.musicLevel()
	for i, h := range g.hearts {
		progress, ok := h.At(elapsed)
		if !ok {
			continue
		}
		size := config.HeartSize * pulse
		x := h.Left * config.WindowWidth
		y := -size + progress*(config.WindowHeight+2*size)
		drawHeart(screen, x, y, size, heartColor(h.Variant, float64(g.ticks)/20+float64(i)))
	}
}

// drawHeart draws a heart whose top lobes are centred at (x, y).
func drawHeart(screen *ebiten.Image, x, y, size float64, clr color.RGBA) {
	lobe := size / 4
	vector.DrawFilledCircle(screen, float32(x-lobe), float32(y), float32(lobe), clr, true)
	vector.DrawFilledCircle(screen, float32(x+lobe), float32(y), float32(lobe), clr, true)

	var tip vector.Path
	tip.MoveTo(float32(x-2*lobe), float32(y+lobe*0.25))
	tip.LineTo(float32(x+2*lobe), float32(y+lobe*0.25))
	tip.LineTo(float32(x), float32(y+size*0.75))
	tip.Close()
	fillPath(screen, &tip, clr)
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(screen, vs, is, clr)
}

func strokePath(screen *ebiten.Image, path *vector.Path, width float32, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	drawVertices(screen, vs, is, clr)
}

func drawVertices(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		// Straight (non-premultiplied) colour, the default for DrawTriangles
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}
