package ui

import (
	"image/color"

	"github.com/ingyamilmolinar/apothecary/core/model"
)

var (
	colBG        = color.RGBA{5, 5, 5, 255}
	colGlass     = color.RGBA{255, 255, 255, 10}
	colGlassEdge = color.RGBA{255, 255, 255, 30}
	colText      = color.RGBA{255, 255, 255, 255}
	colTextDim   = color.NRGBA{255, 255, 255, 102}
	colTextFaint = color.NRGBA{255, 255, 255, 51}
	colInactive  = color.NRGBA{0x44, 0x44, 0x44, 102}

	colGold   = color.RGBA{0xea, 0xb3, 0x08, 255}
	colCyan   = color.RGBA{0x22, 0xd3, 0xee, 255}
	colPurple = color.RGBA{0xc0, 0x84, 0xfc, 255}
	colViolet = color.RGBA{0x93, 0x33, 0xea, 255}

	colOverlay = color.NRGBA{0, 0, 0, 230}
)

// ringColors are the highlight colours of the compass rings, outermost first.
var ringColors = []color.Color{
	color.RGBA{0xe0, 0xe0, 0xe0, 255},
	color.RGBA{0xff, 0xd7, 0x00, 255},
	color.RGBA{0xbc, 0x13, 0xfe, 255},
	color.RGBA{0x00, 0xf3, 0xff, 255},
}

// elementColors caches the parsed display colour of every element.
var elementColors = func() []color.RGBA {
	out := make([]color.RGBA, 0, model.ElementCount)
	for _, e := range model.Elements() {
		out = append(out, e.MustColor())
	}
	return out
}()

// fade scales the alpha of c by f in [0,1].
func fade(c color.Color, f float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * clamp01(f))
	return n
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
