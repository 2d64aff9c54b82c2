package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonVisual is implemented by styles capable of drawing a button.
// pressed indicates the mouse button is currently down; hovered indicates the
// cursor is over the control so styles can provide hover feedback.
type ButtonVisual interface {
	Draw(dst *ebiten.Image, r image.Rectangle, pressed, hovered bool)
	LabelColor() color.Color
}

// Button is a basic clickable component with a rectangular bounds and text label.
type Button struct {
	r        image.Rectangle
	Text     string
	TextSize float64
	Style    ButtonVisual
	OnClick  func()
	Hidden   bool
	pressed  bool
	hovered  bool
}

// NewButton constructs a button with the given label, style, and optional click handler.
func NewButton(text string, style ButtonVisual, onClick func()) *Button {
	return &Button{Text: text, TextSize: sizeBody, Style: style, OnClick: onClick}
}

// Rect returns the button's bounds.
func (b *Button) Rect() image.Rectangle { return b.r }

// SetRect sets the button's bounds.
func (b *Button) SetRect(r image.Rectangle) { b.r = r }

// Draw renders the button and its label.
func (b *Button) Draw(dst *ebiten.Image) {
	if b.Hidden {
		return
	}
	col := color.Color(colText)
	if b.Style != nil {
		b.Style.Draw(dst, b.r, b.pressed, b.hovered)
		col = b.Style.LabelColor()
	}
	cx := float64(b.r.Min.X+b.r.Max.X) / 2
	cy := float64(b.r.Min.Y+b.r.Max.Y)/2 - b.TextSize*0.75
	drawText(dst, b.Text, cx, cy, b.TextSize, col, text.AlignCenter)
}

// Handle updates hover state and fires OnClick when clicked is true and the
// cursor is inside. clicked must only be true on the frame the mouse button
// went down, so a press that began elsewhere never triggers a button.
func (b *Button) Handle(mx, my int, pressed, clicked bool) bool {
	if b.Hidden {
		b.pressed, b.hovered = false, false
		return false
	}
	inside := image.Pt(mx, my).In(b.r)
	b.hovered = inside
	b.pressed = pressed && inside
	if !clicked || !inside {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// GridLayout splits a rectangle into rows and columns using fractional weights.
type GridLayout struct {
	bounds     image.Rectangle
	colWeights []float64
	rowWeights []float64
	gap        int
	colPos     []int
	rowPos     []int
}

// NewGridLayout creates a layout for the given bounds. gap pixels separate
// neighbouring cells.
func NewGridLayout(b image.Rectangle, cols, rows []float64, gap int) *GridLayout {
	g := &GridLayout{bounds: b, colWeights: cols, rowWeights: rows, gap: gap}
	g.recalc()
	return g
}

func positions(min, size int, weights []float64) []int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	pos := make([]int, len(weights)+1)
	x := min
	for i, w := range weights {
		pos[i] = x
		x += int(float64(size) * (w / total))
	}
	pos[len(weights)] = min + size
	return pos
}

func (g *GridLayout) recalc() {
	g.colPos = positions(g.bounds.Min.X, g.bounds.Dx(), g.colWeights)
	g.rowPos = positions(g.bounds.Min.Y, g.bounds.Dy(), g.rowWeights)
}

// Cell returns the rectangle for the specified cell, minus half the gap on
// inner edges.
func (g *GridLayout) Cell(col, row int) image.Rectangle {
	r := image.Rect(g.colPos[col], g.rowPos[row], g.colPos[col+1], g.rowPos[row+1])
	h := g.gap / 2
	if col > 0 {
		r.Min.X += h
	}
	if col < len(g.colWeights)-1 {
		r.Max.X -= h
	}
	if row > 0 {
		r.Min.Y += h
	}
	if row < len(g.rowWeights)-1 {
		r.Max.Y -= h
	}
	return r
}

// evenly returns n equal weights.
func evenly(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}
