package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingyamilmolinar/apothecary/core/attractor"
)

// segmentsPerPath bounds the vertices of a single DrawTriangles call; the
// 16-bit index buffer overflows well before an active frame's 4000 segments.
const segmentsPerPath = 1000

// canvas is the alchemy drawing surface: an attractor.Surface backed by an
// off-screen image that Draw composites onto the screen.
type canvas interface {
	attractor.Surface
	Image() *ebiten.Image
	Dispose()
}

// newCanvas allocates the surface; tests replace it to avoid GPU images.
var newCanvas = func(w, h int) canvas { return newImageCanvas(w, h) }

var whitePixel *ebiten.Image

// whiteSource is the 1x1 texture the stroke triangles sample.
func whiteSource() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

type imageCanvas struct {
	img   *ebiten.Image
	w, h  int
	paths []*vector.Path
	segs  int

	vs []ebiten.Vertex
	is []uint16
}

func newImageCanvas(w, h int) *imageCanvas {
	img := ebiten.NewImage(w, h)
	img.Fill(attractor.Background)
	return &imageCanvas{img: img, w: w, h: h}
}

func (c *imageCanvas) Size() (int, int)     { return c.w, c.h }
func (c *imageCanvas) Image() *ebiten.Image { return c.img }

func (c *imageCanvas) Dispose() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}

func (c *imageCanvas) Fade(col color.Color) {
	if c.img == nil {
		return
	}
	vector.DrawFilledRect(c.img, 0, 0, float32(c.w), float32(c.h), col, false)
}

// MoveTo starts a new segment, rolling over to a fresh path when the current
// one is full.
func (c *imageCanvas) MoveTo(x, y float32) {
	if len(c.paths) == 0 || c.segs >= segmentsPerPath {
		c.paths = append(c.paths, &vector.Path{})
		c.segs = 0
	}
	c.segs++
	c.paths[len(c.paths)-1].MoveTo(x, y)
}

func (c *imageCanvas) LineTo(x, y float32) {
	if len(c.paths) == 0 {
		c.MoveTo(x, y)
		return
	}
	c.paths[len(c.paths)-1].LineTo(x, y)
}

// Trace collects the frame's segments and strokes them once.
func (c *imageCanvas) Trace(col color.Color, draw func(attractor.Pen)) {
	c.paths, c.segs = c.paths[:0], 0
	draw(c)
	if c.img == nil {
		return
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	stroke := &vector.StrokeOptions{Width: 1, LineCap: vector.LineCapSquare}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	for _, p := range c.paths {
		c.vs, c.is = p.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], stroke)
		for i := range c.vs {
			c.vs[i].SrcX, c.vs[i].SrcY = 1, 1
			c.vs[i].ColorR = float32(n.R) / 0xff
			c.vs[i].ColorG = float32(n.G) / 0xff
			c.vs[i].ColorB = float32(n.B) / 0xff
			c.vs[i].ColorA = float32(n.A) / 0xff
		}
		c.img.DrawTriangles(c.vs, c.is, whiteSource(), op)
	}
}
