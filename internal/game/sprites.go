package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

type spriteKey struct {
	label string
	w, h  int
	fill  color.RGBA
}

// spriteCache keeps pre-rendered button and text images; the label of the negative button
// only changes on a rejection.
type spriteCache struct {
	store map[spriteKey]*ebiten.Image
}

func newSpriteCache() *spriteCache {
	return &spriteCache{store: make(map[spriteKey]*ebiten.Image)}
}

func (c *spriteCache) button(face font.Face, label string, w, h int, fill, edge color.RGBA) *ebiten.Image {
	key := spriteKey{label: label, w: w, h: h, fill: fill}
	if img, ok := c.store[key]; ok {
		return img
	}

	img := ebiten.NewImage(w, h)
	vector.DrawFilledRect(img, 0, 0, float32(w), float32(h), edge, false)
	vector.DrawFilledRect(img, 0, 0, float32(w), float32(h-4), fill, false)
	vector.DrawFilledRect(img, 2, 2, float32(w-4), float32(h-4)/2-2, colorHighlight, false)

	b := text.BoundString(face, label)
	text.Draw(img, label, face, (w-b.Dx())/2, (h-4)/2+b.Dy()/2-1, colorLabel)

	c.store[key] = img
	return img
}

func (c *spriteCache) text(face font.Face, s string, clr color.RGBA) *ebiten.Image {
	key := spriteKey{label: s, fill: clr}
	if img, ok := c.store[key]; ok {
		return img
	}

	b := text.BoundString(face, s)
	img := ebiten.NewImage(b.Dx()+2, b.Dy()+2)
	text.Draw(img, s, face, 1-b.Min.X, 1-b.Min.Y, clr)

	c.store[key] = img
	return img
}
