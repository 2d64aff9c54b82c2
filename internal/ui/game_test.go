package ui

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/apothecary/core/model"
	"github.com/ingyamilmolinar/apothecary/core/phase"
)

func (h *harness) toPharmacology(t *testing.T) {
	t.Helper()
	h.skipIntro(t)
	h.press(t, ebiten.KeyArrowRight)
	require.Equal(t, phase.Pharmacology, h.store.Phase.Phase())
}

func (h *harness) toAlchemy(t *testing.T) {
	t.Helper()
	h.toPharmacology(t)
	h.click(t, h.g.confirm)
	require.Equal(t, phase.Alchemy, h.store.Phase.Phase())
}

func TestArrowKeysLeaveIntro(t *testing.T) {
	h := newHarness(t)
	ctrl := h.store.Phase
	require.True(t, ctrl.IntroMode())

	h.press(t, ebiten.KeyArrowLeft)
	assert.Equal(t, 0, ctrl.IntroSlide())

	for i := 0; i < 3; i++ {
		h.press(t, ebiten.KeyArrowRight)
	}
	assert.False(t, ctrl.IntroMode())
	assert.Equal(t, phase.Diagnosis, ctrl.Phase())

	h.press(t, ebiten.KeyArrowLeft)
	assert.True(t, ctrl.IntroMode(), "retreating from diagnosis re-enters the intro")
}

func TestClicksIgnoredDuringIntro(t *testing.T) {
	h := newHarness(t)
	h.click(t, h.g.target)
	assert.Empty(t, h.store.Phase.Feedback())
	assert.False(t, h.store.Phase.DiagnosisPending())
}

func TestDiagnosisClickAdvancesAfterDelay(t *testing.T) {
	h := newHarness(t)
	h.skipIntro(t)

	h.click(t, h.g.target)
	fb := h.store.Phase.Feedback()
	require.True(t, strings.HasPrefix(fb, model.DiagnosisLeadIn), fb)
	assert.Contains(t, model.DiagnosisEmotions, strings.TrimPrefix(fb, model.DiagnosisLeadIn))
	assert.Equal(t, phase.Diagnosis, h.store.Phase.Phase())

	h.wait(t, phase.DiagnosisDelay-time.Millisecond)
	assert.Equal(t, phase.Diagnosis, h.store.Phase.Phase(), "advanced before the delay")

	h.wait(t, time.Millisecond)
	assert.Equal(t, phase.Pharmacology, h.store.Phase.Phase())
	assert.Zero(t, h.store.Scheduler().Pending())
}

func TestDiagnosisTimerCancelledByArrowKeys(t *testing.T) {
	h := newHarness(t)
	h.skipIntro(t)
	h.click(t, h.g.target)
	require.True(t, h.store.Phase.DiagnosisPending())

	h.press(t, ebiten.KeyArrowRight)
	h.press(t, ebiten.KeyArrowRight)
	require.Equal(t, phase.Alchemy, h.store.Phase.Phase())

	h.wait(t, 5*time.Second)
	assert.Equal(t, phase.Alchemy, h.store.Phase.Phase(), "stale timer moved the wizard")
}

func TestRotateButtons(t *testing.T) {
	h := newHarness(t)
	h.toPharmacology(t)
	c := h.store.Compass
	require.Equal(t, 2, c.Index())

	h.click(t, h.g.rotateCW)
	assert.Equal(t, 3, c.Index())
	assert.Equal(t, -216.0, c.RingAngle())

	h.click(t, h.g.rotateCCW)
	assert.Equal(t, 2, c.Index())
}

func TestHeldMouseFiresOnce(t *testing.T) {
	h := newHarness(t)
	h.toPharmacology(t)

	r := h.g.rotateCW.Rect()
	h.mx, h.my = r.Min.X+2, r.Min.Y+2
	h.left = true
	for i := 0; i < 5; i++ {
		h.update(t)
	}
	h.left = false
	h.update(t)
	assert.Equal(t, 3, h.store.Compass.Index())
}

func TestAlchemyCanvasLifecycle(t *testing.T) {
	h := newHarness(t)
	h.toAlchemy(t)

	require.True(t, h.store.Animating())
	require.Len(t, h.canvases, 1)
	cv := h.canvases[0]
	assert.Equal(t, testWinW, cv.w)
	assert.Equal(t, testWinH, cv.h)
	assert.NotZero(t, cv.traces)
	assert.Equal(t, cv.traces, cv.fades)

	// the canvas keeps its mount-time size
	h.g.Layout(640, 480)
	h.update(t)
	assert.Equal(t, testWinW, cv.w)
	h.g.Layout(testWinW, testWinH)

	// completion is offered only while resonating
	h.click(t, h.g.complete)
	assert.Equal(t, phase.Alchemy, h.store.Phase.Phase())

	h.click(t, h.g.resonate)
	require.True(t, h.store.Selection().Active)
	assert.False(t, h.g.complete.Hidden)
	assert.Equal(t, "Resonating...", h.g.resonate.Text)

	h.click(t, h.g.complete)
	assert.Equal(t, phase.Prescription, h.store.Phase.Phase())
	assert.False(t, h.store.Animating())
	assert.True(t, cv.disposed)
	assert.Nil(t, h.g.canvas)
	assert.Zero(t, h.store.Scheduler().Pending())

	traces := cv.traces
	h.wait(t, time.Second)
	assert.Equal(t, traces, cv.traces, "frames rendered after unmount")
}

func TestEnteringAlchemyDrawsOneFramePerUpdate(t *testing.T) {
	h := newHarness(t)
	h.toPharmacology(t)

	h.press(t, ebiten.KeyArrowRight)
	require.Equal(t, phase.Alchemy, h.store.Phase.Phase())
	require.Len(t, h.canvases, 1)
	cv := h.canvases[0]
	assert.Equal(t, 1, cv.traces)
	assert.Equal(t, 1, cv.fades)
	assert.Equal(t, 1000, cv.segments)

	h.update(t)
	assert.Equal(t, 2, cv.traces)
	assert.Equal(t, 2000, cv.segments)
}

func TestAlchemyReentryAllocatesFreshCanvas(t *testing.T) {
	h := newHarness(t)
	h.toAlchemy(t)
	h.press(t, ebiten.KeyArrowLeft)
	require.Equal(t, phase.Pharmacology, h.store.Phase.Phase())
	h.press(t, ebiten.KeyArrowRight)

	require.Len(t, h.canvases, 2)
	assert.True(t, h.canvases[0].disposed)
	assert.False(t, h.canvases[1].disposed)
	assert.Equal(t, 1, h.store.Scheduler().Pending())
}

func TestNoWindowDisablesAnimation(t *testing.T) {
	h := newHarness(t)
	h.g.winW, h.g.winH = 0, 0
	h.toAlchemy(t)

	assert.False(t, h.store.Animating())
	assert.Empty(t, h.canvases)
	assert.Zero(t, h.store.Scheduler().Pending())
}

func TestSidebarSelections(t *testing.T) {
	h := newHarness(t)
	h.toAlchemy(t)

	h.click(t, h.g.instruments[2])
	h.click(t, h.g.tones[4])
	sel := h.store.Selection()
	assert.Equal(t, model.Instruments[2].Name, sel.Instrument)
	assert.Equal(t, model.Tones()[4], sel.Tone)
	assert.Equal(t, ActiveChoice, h.g.instruments[2].Style)
	assert.Equal(t, IdleChoice, h.g.instruments[0].Style)
	assert.Equal(t, ActiveTone, h.g.tones[4].Style)
}

func TestFullConsultation(t *testing.T) {
	h := newHarness(t)
	h.toAlchemy(t)
	h.click(t, h.g.instruments[1])
	h.click(t, h.g.resonate)
	h.click(t, h.g.complete)
	require.Equal(t, phase.Prescription, h.store.Phase.Phase())

	h.press(t, ebiten.KeyArrowRight)
	assert.Equal(t, phase.Prescription, h.store.Phase.Phase(), "arrow keys never reach the result")

	h.click(t, h.g.issue)
	require.Equal(t, phase.Result, h.store.Phase.Phase())
	p := h.store.Prescription()
	require.NotNil(t, p)
	assert.Equal(t, model.Instruments[1], p.Instrument)
	assert.Equal(t, model.DefaultTone, p.Tone.Tone)
	assert.Equal(t, "Hai", p.Hour)

	h.click(t, h.g.finish)
	ctrl := h.store.Phase
	assert.Equal(t, phase.Diagnosis, ctrl.Phase())
	assert.True(t, ctrl.IntroMode())
	assert.Equal(t, 0, ctrl.IntroSlide())
	assert.Equal(t, model.Instruments[1].Name, h.store.Selection().Instrument)
	assert.Nil(t, h.store.Prescription())
}

// stubDrawing replaces the drawing primitives and records every string drawn.
func stubDrawing(t *testing.T) *[]string {
	t.Helper()
	var texts []string
	oRect, oButton, oCircle, oLine, oText := drawRect, drawButton, drawCircle, drawLine, drawText
	drawRect = func(*ebiten.Image, image.Rectangle, color.Color, bool) {}
	drawButton = func(*ebiten.Image, image.Rectangle, color.Color, color.Color, bool) {}
	drawCircle = func(*ebiten.Image, float64, float64, float64, color.Color, bool) {}
	drawLine = func(*ebiten.Image, float64, float64, float64, float64, color.Color, float64) {}
	drawText = func(_ *ebiten.Image, s string, _, _, _ float64, _ color.Color, _ text.Align) {
		texts = append(texts, s)
	}
	t.Cleanup(func() {
		drawRect, drawButton, drawCircle, drawLine, drawText = oRect, oButton, oCircle, oLine, oText
	})
	return &texts
}

func TestDrawFollowsPhase(t *testing.T) {
	texts := stubDrawing(t)
	h := newHarness(t)
	screen := ebiten.NewImage(testWinW, testWinH)

	h.g.Draw(screen)
	assert.Contains(t, *texts, model.IntroSlides[0])
	assert.Contains(t, *texts, "Sonic Apothecary")

	h.toPharmacology(t)
	*texts = nil
	h.g.Draw(screen)
	cur := h.store.Compass.Current()
	assert.Contains(t, *texts, cur.OrganName+" ("+cur.Element+")")
	assert.Contains(t, *texts, cur.Mood)
	assert.NotContains(t, *texts, model.IntroSlides[0])
}

func TestDrawResultSlip(t *testing.T) {
	texts := stubDrawing(t)
	h := newHarness(t)
	h.toAlchemy(t)
	h.click(t, h.g.resonate)
	h.click(t, h.g.complete)
	h.click(t, h.g.issue)
	require.Equal(t, phase.Result, h.store.Phase.Phase())

	h.g.Draw(ebiten.NewImage(testWinW, testWinH))
	p := h.store.Prescription()
	assert.Contains(t, *texts, "ID: "+p.ID)
	assert.Contains(t, *texts, "TIME: "+p.Hour)
	assert.Contains(t, *texts, "Finish consultation")
}

func TestDebugLine(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.g.debugLine(60, 59), "steps 0")

	h.toAlchemy(t)
	line := h.g.debugLine(60, 59)
	an := h.store.Animator()
	require.NotNil(t, an)
	assert.Contains(t, line, "alchemy")
	assert.Contains(t, line, "steps "+humanize.Comma(an.Iterations()))
	assert.True(t, strings.HasPrefix(line, "TPS 60  FPS 59"), line)
}
