package attractor

import (
	"image/color"
	"time"
)

// Pen receives one frame's path. ebiten's vector.Path satisfies it.
type Pen interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
}

// Surface is the drawing target of the animator.
type Surface interface {
	Size() (w, h int)
	// Fade composites c over the whole surface.
	Fade(c color.Color)
	// Trace builds one path with draw and strokes it once in c.
	Trace(c color.Color, draw func(Pen))
}

// Params is the shared UI state a frame reads.
type Params struct {
	ToneIndex int
	Active    bool
	Now       time.Time
}

// Animator draws attractor frames onto a surface.
type Animator struct {
	att     *Attractor
	surface Surface

	frames     int64
	iterations int64
}

// NewAnimator binds att to surface and rewinds the trail.
func NewAnimator(att *Attractor, surface Surface) *Animator {
	att.Restart()
	return &Animator{att: att, surface: surface}
}

// Frames is the number of frames rendered.
func (an *Animator) Frames() int64 { return an.frames }

// Iterations is the total number of recurrence steps taken.
func (an *Animator) Iterations() int64 { return an.iterations }

// Render draws one frame: fade, trace the next StepsFor points centred on
// the surface, then drift the coefficients when active.
func (an *Animator) Render(p Params) {
	s := an.surface
	w, h := s.Size()
	cx, cy := float64(w)/2, float64(h)/2

	s.Fade(FadeColor())
	s.Trace(StrokeColor(p.ToneIndex, p.Active, p.Now), func(pen Pen) {
		n := an.att.Frame(p.Active, func(pt Point) {
			x := cx + pt.X*Scale
			y := cy + pt.Y*Scale
			pen.MoveTo(float32(x), float32(y))
			pen.LineTo(float32(x+SegmentLength*Scale), float32(y+SegmentLength*Scale))
		})
		an.iterations += int64(n)
	})

	if p.Active {
		an.att.Drift(p.Now)
	}
	an.frames++
}
