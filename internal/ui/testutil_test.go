package ui

import (
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/apothecary/core/attractor"
	"github.com/ingyamilmolinar/apothecary/core/engine"
	game_log "github.com/ingyamilmolinar/apothecary/internal/log"
)

const (
	testWinW = 1280
	testWinH = 800
)

var testLogger = game_log.Discard()

// fakeCanvas stands in for the GPU-backed alchemy surface.
type fakeCanvas struct {
	w, h     int
	fades    int
	traces   int
	segments int
	disposed bool
}

func (c *fakeCanvas) Size() (int, int)     { return c.w, c.h }
func (c *fakeCanvas) Fade(color.Color)     { c.fades++ }
func (c *fakeCanvas) Image() *ebiten.Image { return nil }
func (c *fakeCanvas) Dispose()             { c.disposed = true }
func (c *fakeCanvas) MoveTo(_, _ float32)  { c.segments++ }
func (c *fakeCanvas) LineTo(_, _ float32)  {}
func (c *fakeCanvas) Trace(_ color.Color, draw func(attractor.Pen)) {
	c.traces++
	draw(c)
}

// harness drives a Game through scripted input and a fake clock.
type harness struct {
	g        *Game
	store    *engine.Store
	now      time.Time
	mx, my   int
	left     bool
	keys     map[ebiten.Key]bool
	canvases []*fakeCanvas
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{now: time.Date(2026, 10, 19, 21, 15, 0, 0, time.UTC)}

	origCanvas := newCanvas
	newCanvas = func(w, hh int) canvas {
		c := &fakeCanvas{w: w, h: hh}
		h.canvases = append(h.canvases, c)
		return c
	}
	restore := SetInputForTest(
		func() (int, int) { return h.mx, h.my },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft && h.left },
		func(k ebiten.Key) bool { return h.keys[k] },
	)
	t.Cleanup(func() {
		restore()
		newCanvas = origCanvas
	})

	h.store = engine.New(testLogger, engine.Options{Seed: 7})
	h.store.Scheduler().SetNowFunc(func() time.Time { return h.now })
	h.g = New(h.store, testLogger, Options{Seed: 1})
	h.g.Layout(testWinW, testWinH)
	return h
}

func (h *harness) update(t *testing.T) {
	t.Helper()
	if err := h.g.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
}

// press taps a key for exactly one frame.
func (h *harness) press(t *testing.T, k ebiten.Key) {
	t.Helper()
	h.keys = map[ebiten.Key]bool{k: true}
	h.update(t)
	h.keys = nil
}

// click presses the left button at the centre of b and releases it on the
// next frame.
func (h *harness) click(t *testing.T, b *Button) {
	t.Helper()
	r := b.Rect()
	h.mx, h.my = (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2
	h.left = true
	h.update(t)
	h.left = false
	h.update(t)
}

// wait moves the clock forward and runs one frame.
func (h *harness) wait(t *testing.T, d time.Duration) {
	t.Helper()
	h.now = h.now.Add(d)
	h.update(t)
}

// skipIntro leaves the onboarding carousel with the right arrow.
func (h *harness) skipIntro(t *testing.T) {
	t.Helper()
	for i := 0; h.store.Phase.IntroMode(); i++ {
		if i > 10 {
			t.Fatalf("intro mode never exited")
		}
		h.press(t, ebiten.KeyArrowRight)
	}
}
