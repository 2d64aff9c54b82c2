package ui

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// breath is a slow, organic pulse in [lo,hi] driven by 1-D simplex noise
// sampled along the frame counter. The diagnosis core and the intro text
// use it instead of a plain sine so neighbouring cycles differ.
type breath struct {
	noise  opensimplex.Noise
	speed  float64
	lo, hi float64
}

func newBreath(seed int64, speed, lo, hi float64) *breath {
	return &breath{noise: opensimplex.NewNormalized(seed), speed: speed, lo: lo, hi: hi}
}

// At returns the pulse value for frame.
func (b *breath) At(frame int64) float64 {
	v := b.noise.Eval2(float64(frame)*b.speed, 0)
	return b.lo + (b.hi-b.lo)*clamp01(v)
}
