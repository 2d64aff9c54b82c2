// Package compass tracks which element the four-ring compass points at.
package compass

import "github.com/ingyamilmolinar/apothecary/core/model"

// SegmentDegrees is the angular width of one element on every ring.
const SegmentDegrees = 360.0 / model.ElementCount

// DefaultIndex starts the compass on Earth.
const DefaultIndex = 2

// Ring is one of the four concentric label rings.
type Ring int

const (
	RingEmotions Ring = iota // outermost
	RingOrgans
	RingTones
	RingElements // innermost
)

// Rings lists the rings from the outside in.
var Rings = []Ring{RingEmotions, RingOrgans, RingTones, RingElements}

// Radius is the label distance from the centre in pixels.
func (r Ring) Radius() float64 {
	switch r {
	case RingEmotions:
		return 220
	case RingOrgans:
		return 170
	case RingTones:
		return 120
	default:
		return 70
	}
}

// Label is the text a ring shows for e.
func (r Ring) Label(e model.ElementProfile) string {
	switch r {
	case RingEmotions:
		return e.Mood
	case RingOrgans:
		return e.OrganName
	case RingTones:
		return e.ToneLatin
	default:
		return e.Element
	}
}

func (r Ring) String() string {
	switch r {
	case RingEmotions:
		return "emotions"
	case RingOrgans:
		return "organs"
	case RingTones:
		return "tones"
	default:
		return "elements"
	}
}

type Compass struct {
	index int
}

func New() *Compass { return &Compass{index: DefaultIndex} }

// Index is the active element, always in [0,5).
func (c *Compass) Index() int { return c.index }

// Rotate moves the active element by dir steps, wrapping around.
func (c *Compass) Rotate(dir int) int {
	c.index = model.Wrap(c.index + dir)
	return c.index
}

// Current returns the active element's profile.
func (c *Compass) Current() model.ElementProfile { return model.ElementAt(c.index) }

// RingAngle is the rotation, in degrees, shared by all rings.
func (c *Compass) RingAngle() float64 {
	return -float64(c.index) * SegmentDegrees
}

// LabelAngle is the absolute angle of a segment's label on any ring.
func (c *Compass) LabelAngle(segment int) float64 {
	return c.RingAngle() + float64(segment)*SegmentDegrees
}
