package ui

import (
	"bytes"
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	sizeSmall = 11
	sizeBody  = 14
	sizeLarge = 20
	sizeTitle = 30
)

var (
	faceOnce   sync.Once
	faceSource *text.GoTextFaceSource
	faceErr    error
)

func loadFaceSource() (*text.GoTextFaceSource, error) {
	faceOnce.Do(func() {
		faceSource, faceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	return faceSource, faceErr
}

func face(size float64) text.Face {
	src, err := loadFaceSource()
	if err != nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// drawText prints s with its anchor at (x,y); align picks which horizontal
// edge x refers to. Falls back to the debug font if the face failed to load.
var drawText = func(dst *ebiten.Image, s string, x, y, size float64, col color.Color, align text.Align) {
	f := face(size)
	if f == nil {
		ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = align
	op.LineSpacing = size * 1.5
	text.Draw(dst, s, f, op)
}

// measureText returns the advance width of s at size.
func measureText(s string, size float64) float64 {
	f := face(size)
	if f == nil {
		return float64(len(s) * 6)
	}
	w, _ := text.Measure(s, f, size*1.5)
	return w
}

// wrapText breaks s into lines no wider than maxW.
func wrapText(s string, size, maxW float64) []string {
	var lines []string
	var cur string
	for _, w := range strings.Fields(s) {
		next := w
		if cur != "" {
			next = cur + " " + w
		}
		if cur != "" && measureText(next, size) > maxW {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
