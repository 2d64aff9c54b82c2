package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonStyle describes rectangular button visuals.
type ButtonStyle struct {
	Fill   color.Color
	Border color.Color
	Hover  color.Color // border while hovered; nil keeps Border
	Label  color.Color
}

// Draw renders the button rectangle using the global drawButton primitive.
func (s ButtonStyle) Draw(dst *ebiten.Image, r image.Rectangle, pressed, hovered bool) {
	border := s.Border
	if hovered && s.Hover != nil {
		border = s.Hover
	}
	drawButton(dst, r, s.Fill, border, pressed)
}

func (s ButtonStyle) LabelColor() color.Color {
	if s.Label == nil {
		return colText
	}
	return s.Label
}

// RoundStyle draws a circular button inscribed in its rectangle.
type RoundStyle struct {
	Fill   color.Color
	Border color.Color
	Label  color.Color
}

func (s RoundStyle) Draw(dst *ebiten.Image, r image.Rectangle, pressed, hovered bool) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rad := float64(min(r.Dx(), r.Dy())) / 2
	fill := s.Fill
	if pressed {
		fill = fade(fill, 0.5)
	}
	drawCircle(dst, cx, cy, rad, fill, true)
	border := s.Border
	if hovered {
		border = fade(colText, 0.3)
	}
	drawCircle(dst, cx, cy, rad, border, false)
}

func (s RoundStyle) LabelColor() color.Color { return s.Label }

// LinkStyle draws nothing but the label; used for text-only actions.
type LinkStyle struct {
	Label color.Color
}

func (s LinkStyle) Draw(*ebiten.Image, image.Rectangle, bool, bool) {}

func (s LinkStyle) LabelColor() color.Color { return s.Label }

// PanelStyle is the translucent "glass" card behind grouped content.
type PanelStyle struct {
	Fill   color.Color
	Border color.Color
	Accent color.Color // left edge bar; nil for none
}

func (s PanelStyle) Draw(dst *ebiten.Image, r image.Rectangle) {
	drawRect(dst, r, s.Fill, true)
	drawRect(dst, r, s.Border, false)
	if s.Accent != nil {
		drawRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+4, r.Max.Y), s.Accent, true)
	}
}

var (
	GlassPanel = PanelStyle{Fill: colGlass, Border: colGlassEdge}

	GoldButton   = ButtonStyle{Fill: fade(colGold, 0.1), Border: fade(colGold, 0.3), Hover: colGold, Label: colGold}
	SolidGold    = ButtonStyle{Fill: colGold, Border: colGold, Hover: colText, Label: colBG}
	CyanButton   = ButtonStyle{Fill: colGlass, Border: fade(colCyan, 0.5), Hover: colCyan, Label: colCyan}
	PurpleButton = ButtonStyle{Fill: colGlass, Border: fade(colPurple, 0.5), Hover: colPurple, Label: colPurple}
	VioletButton = ButtonStyle{Fill: colViolet, Border: colViolet, Hover: colPurple, Label: colText}
	IdleChoice   = ButtonStyle{Fill: color.NRGBA{255, 255, 255, 13}, Border: color.NRGBA{255, 255, 255, 26}, Hover: colTextDim, Label: colTextDim}
	ActiveChoice = ButtonStyle{Fill: fade(colPurple, 0.2), Border: colPurple, Label: colPurple}

	IdleTone   = RoundStyle{Fill: color.Transparent, Border: color.NRGBA{255, 255, 255, 26}, Label: colTextDim}
	ActiveTone = RoundStyle{Fill: fade(colPurple, 0.2), Border: colPurple, Label: colPurple}

	DimLink = LinkStyle{Label: colTextDim}
)
