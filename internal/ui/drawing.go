package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawRect draws a rectangle. It is defined as a variable so tests can
// override it to capture draw calls.
var drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	} else {
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
	}
}

// drawButton renders a filled rectangle with a border. It can be overridden in tests.
var drawButton = func(dst *ebiten.Image, r image.Rectangle, fill, border color.Color, pressed bool) {
	fc := fill
	if pressed {
		fc = fade(fill, 0.5)
	}
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fc, false)
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, border, false)
}

// drawCircle draws a filled disc or a one-pixel ring.
var drawCircle = func(dst *ebiten.Image, cx, cy, r float64, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), c, true)
	} else {
		vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), 1, c, true)
	}
}

var drawLine = func(dst *ebiten.Image, x1, y1, x2, y2 float64, c color.Color, width float64) {
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

// polar returns the point at distance r from (cx,cy) for a clockwise angle in
// degrees measured from twelve o'clock.
func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

// insetRect returns r shrunk by pad pixels on all sides.
func insetRect(r image.Rectangle, pad int) image.Rectangle {
	return image.Rect(r.Min.X+pad, r.Min.Y+pad, r.Max.X-pad, r.Max.Y-pad)
}

// centeredRect is a w×h rectangle centred on (cx,cy).
func centeredRect(cx, cy, w, h int) image.Rectangle {
	return image.Rect(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h)
}
