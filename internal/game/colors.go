package game

import (
	"image/color"
	"math"
)

var (
	colorBackdropTop    = color.RGBA{R: 255, G: 228, B: 236, A: 255}
	colorBackdropBottom = color.RGBA{R: 255, G: 196, B: 214, A: 255}
	colorCard           = color.RGBA{R: 255, G: 241, B: 245, A: 220}

	colorQuestion = color.RGBA{R: 159, G: 18, B: 57, A: 255}
	colorFooter   = color.RGBA{R: 244, G: 63, B: 94, A: 255}

	colorYesFill   = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	colorYesEdge   = color.RGBA{R: 21, G: 128, B: 61, A: 255}
	colorNoFill    = color.RGBA{R: 244, G: 63, B: 94, A: 255}
	colorNoEdge    = color.RGBA{R: 159, G: 18, B: 57, A: 255}
	colorLabel     = color.White
	colorHighlight = color.RGBA{R: 255, G: 255, B: 255, A: 60}

	colorFur      = color.RGBA{R: 181, G: 136, B: 99, A: 255}
	colorFurLight = color.RGBA{R: 222, G: 190, B: 160, A: 255}
	colorFeature  = color.RGBA{R: 60, G: 40, B: 30, A: 255}
	colorBlush    = color.RGBA{R: 244, G: 114, B: 182, A: 160}
	colorTear     = color.RGBA{R: 96, G: 165, B: 250, A: 220}
)

// heartColor returns the colour of a heart variant, nudged around the pink hues so
// neighbouring hearts differ.
func heartColor(variant int, phase float64) color.RGBA {
	hue := 330 + float64(variant)*12 + 10*math.Sin(phase)
	r, g, b := hsvToRgb(hue, 0.75, 0.95)
	return color.RGBA{R: r, G: g, B: b, A: 230}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
