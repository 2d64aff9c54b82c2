// Package attractor evolves the de Jong style recurrence behind the alchemy
// canvas and turns it into per-frame trails.
//
//	x' = sin(a*y) - cos(b*x)
//	y' = sin(c*x) - cos(d*y)
package attractor

import (
	"math"
	"time"
)

const (
	// Scale maps attractor space (roughly [-2,2]) to pixels.
	Scale = 150
	// SegmentLength is the offset of the tail of every point segment, in
	// attractor space.
	SegmentLength = 0.001
	// FadeAlpha is the opacity of the per-frame wash that leaves trails.
	FadeAlpha = 0.05

	idleSteps   = 1000
	activeSteps = 4000
	driftAmp    = 0.001
)

// Coefficients are the four recurrence parameters.
type Coefficients struct {
	A, B, C, D float64
}

// SeedCoefficients is the starting shape.
var SeedCoefficients = Coefficients{A: 1.4, B: -2.3, C: 2.4, D: -2.1}

type Point struct {
	X, Y float64
}

// SeedPoint is where every trail begins.
var SeedPoint = Point{X: 0.1, Y: 0.1}

// Next applies one step of the recurrence.
func (k Coefficients) Next(p Point) Point {
	return Point{
		X: math.Sin(k.A*p.Y) - math.Cos(k.B*p.X),
		Y: math.Sin(k.C*p.X) - math.Cos(k.D*p.Y),
	}
}

// StepsFor is the number of iterations drawn per frame.
func StepsFor(active bool) int {
	if active {
		return activeSteps
	}
	return idleSteps
}

// Attractor owns the coefficients and the running position. Coefficients
// outlive a single trail; the position is rewound by Restart.
type Attractor struct {
	K   Coefficients
	Pos Point
}

func New() *Attractor {
	return &Attractor{K: SeedCoefficients, Pos: SeedPoint}
}

// Restart rewinds the trail to the seed point, keeping the coefficients.
func (a *Attractor) Restart() { a.Pos = SeedPoint }

// Frame iterates StepsFor(active) times from the current position and calls
// emit with every new point. The coefficients are read once per frame.
func (a *Attractor) Frame(active bool, emit func(Point)) int {
	k := a.K
	p := a.Pos
	n := StepsFor(active)
	for i := 0; i < n; i++ {
		p = k.Next(p)
		if emit != nil {
			emit(p)
		}
	}
	a.Pos = p
	return n
}

// Drift nudges A and B as a function of wall-clock time. C and D never move.
func (a *Attractor) Drift(now time.Time) {
	ms := float64(now.UnixMilli())
	a.K.A += math.Sin(ms/1000) * driftAmp
	a.K.B += math.Cos(ms/1500) * driftAmp
}
