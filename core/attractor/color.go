package attractor

import (
	"image/color"
	"math"
	"time"
)

// Background is the canvas clear colour, also used by the fade wash.
var Background = color.RGBA{5, 5, 5, 255}

// FadeColor is Background at FadeAlpha, non-premultiplied.
func FadeColor() color.NRGBA {
	return color.NRGBA{Background.R, Background.G, Background.B, uint8(math.Round(FadeAlpha * 255))}
}

// Hue returns the trail hue in degrees for the tone at toneIndex.
func Hue(toneIndex int, active bool, now time.Time) float64 {
	h := float64(toneIndex * 60)
	if active {
		h = math.Mod(h+float64(now.UnixMilli())/50, 360)
	}
	return h
}

// StrokeColor is the trail colour: the tone's hue at full saturation and 60%
// lightness, brighter and cycling while active.
func StrokeColor(toneIndex int, active bool, now time.Time) color.NRGBA {
	alpha := 0.1
	if active {
		alpha = 0.3
	}
	return HSLA(Hue(toneIndex, active, now), 1, 0.6, alpha)
}

// HSLA converts hue (degrees) and s, l, a in [0,1] to a non-premultiplied colour.
func HSLA(h, s, l, a float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	to8 := func(v float64) uint8 { return uint8(math.Round(clamp01(v) * 255)) }
	return color.NRGBA{to8(r + m), to8(g + m), to8(b + m), to8(a)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
