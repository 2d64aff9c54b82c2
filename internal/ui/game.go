package ui

import (
	"fmt"
	"image"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ingyamilmolinar/apothecary/core/attractor"
	"github.com/ingyamilmolinar/apothecary/core/engine"
	"github.com/ingyamilmolinar/apothecary/core/model"
	"github.com/ingyamilmolinar/apothecary/core/phase"
	game_log "github.com/ingyamilmolinar/apothecary/internal/log"
)

// Options tune the front end.
type Options struct {
	Debug bool  // draw the TPS/FPS overlay
	Seed  int64 // noise seed of the breathing effects
}

type Game struct {
	/* subsystems */
	store  *engine.Store
	logger *game_log.Logger
	canvas canvas

	/* visuals */
	frame int64
	core  *breath // diagnosis core and compass ping
	glow  *breath // intro text
	debug bool

	/* input */
	leftPrev bool

	/* controls, grouped by the phase that owns them */
	target      *Button
	rotateCCW   *Button
	rotateCW    *Button
	confirm     *Button
	instruments []*Button
	tones       []*Button
	resonate    *Button
	complete    *Button
	issue       *Button
	finish      *Button

	/* layout */
	winW, winH int
	compassC   image.Point
	panelR     image.Rectangle
	bodyR      image.Rectangle
	cardR      image.Rectangle
	sidebarR   image.Rectangle
	zones      [3]image.Rectangle
	slipR      image.Rectangle
}

/* ───────────────────── constructor & layout ─────────────────── */

func New(store *engine.Store, logger *game_log.Logger, opts Options) *Game {
	g := &Game{
		store:  store,
		logger: logger.Tag("game"),
		core:   newBreath(opts.Seed, 0.03, 0.3, 1),
		glow:   newBreath(opts.Seed+1, 0.01, 0.55, 1),
		debug:  opts.Debug,
	}
	g.buildButtons()
	store.SetSurfaceFunc(g.surface)
	store.Phase.OnChange(g.onPhaseChange)
	g.syncButtons()
	g.initJS()
	return g
}

func (g *Game) Layout(w, h int) (int, int) {
	if w != g.winW || h != g.winH {
		g.winW, g.winH = w, h
		g.layout()
		g.logger.Infof("layout: winW=%d winH=%d", w, h)
	}
	return w, h
}

// Close releases the canvas and every scheduled continuation.
func (g *Game) Close() {
	g.store.Close()
	g.dropCanvas()
}

func (g *Game) buildButtons() {
	s := g.store
	g.target = NewButton("", LinkStyle{}, func() {
		if fb, ok := s.Diagnose(); ok {
			g.logger.Infof("diagnosis feedback %q", fb)
		}
	})
	g.rotateCCW = NewButton("< Counter-clockwise", CyanButton, func() { s.Compass.Rotate(-1) })
	g.rotateCW = NewButton("Clockwise >", PurpleButton, func() { s.Compass.Rotate(1) })
	g.confirm = NewButton("Confirm as primary treatment >", GoldButton, func() { s.Phase.ConfirmElement() })
	g.confirm.TextSize = sizeSmall

	g.instruments = g.instruments[:0]
	for _, in := range model.Instruments {
		name := in.Name
		g.instruments = append(g.instruments, NewButton(in.Latin, IdleChoice, func() { s.SelectInstrument(name) }))
	}
	g.tones = g.tones[:0]
	for _, e := range model.Elements() {
		tone := e.Tone
		b := NewButton(e.ToneLatin, IdleTone, func() { s.SelectTone(tone) })
		b.TextSize = sizeSmall
		g.tones = append(g.tones, b)
	}
	g.resonate = NewButton("", VioletButton, func() { s.ToggleResonance() })
	g.complete = NewButton("Complete alchemy >", DimLink, func() { s.CompleteAlchemy() })
	g.complete.TextSize = sizeSmall

	g.issue = NewButton("Issue prescription", SolidGold, func() { s.Phase.IssuePrescription() })
	g.issue.TextSize = sizeLarge
	g.finish = NewButton("Finish consultation", GoldButton, func() { s.Phase.FinishConsultation() })
	g.finish.TextSize = sizeSmall
}

// layout positions every control for the current window size.
func (g *Game) layout() {
	w, h := g.winW, g.winH
	cx, cy := w/2, h/2

	g.target.SetRect(centeredRect(cx, cy+20, 320, 320))

	/* pharmacology: compass on the left half, body map + card on the right */
	g.compassC = image.Pt(max(w/4, 260), cy-10)
	g.rotateCCW.SetRect(centeredRect(g.compassC.X-95, g.compassC.Y+290, 170, 36))
	g.rotateCW.SetRect(centeredRect(g.compassC.X+95, g.compassC.Y+290, 170, 36))
	g.panelR = image.Rect(max(w/2+20, g.compassC.X+280), cy-210, w-48, cy+210)
	g.bodyR = image.Rect(g.panelR.Min.X+24, g.panelR.Min.Y+35, g.panelR.Min.X+24+175, g.panelR.Min.Y+35+350)
	g.cardR = image.Rect(g.bodyR.Max.X+24, g.panelR.Min.Y+30, g.panelR.Max.X-24, g.panelR.Max.Y-30)
	g.confirm.SetRect(image.Rect(g.cardR.Min.X+16, g.cardR.Max.Y-60, g.cardR.Max.X-16, g.cardR.Max.Y-16))

	/* alchemy sidebar */
	g.sidebarR = image.Rect(48, cy-250, 48+320, cy+250)
	inner := insetRect(g.sidebarR, 28)
	grid := NewGridLayout(image.Rect(inner.Min.X, inner.Min.Y+110, inner.Max.X, inner.Min.Y+190), evenly(2), evenly(2), 8)
	for i, b := range g.instruments {
		b.SetRect(grid.Cell(i%2, i/2))
	}
	for i, b := range g.tones {
		x := inner.Min.X + i*(40+8)
		b.SetRect(image.Rect(x, inner.Min.Y+240, x+40, inner.Min.Y+280))
	}
	g.resonate.SetRect(image.Rect(inner.Min.X, inner.Min.Y+320, inner.Max.X, inner.Min.Y+372))
	g.complete.SetRect(image.Rect(inner.Min.X, inner.Min.Y+390, inner.Max.X, inner.Min.Y+420))

	/* prescription zones */
	zw := min(w-120, 1000)
	zones := NewGridLayout(image.Rect(cx-zw/2, cy-110, cx+zw/2, cy+90), evenly(3), evenly(1), 32)
	for i := range g.zones {
		g.zones[i] = zones.Cell(i, 0)
	}
	g.issue.SetRect(centeredRect(cx, cy+190, 340, 64))

	/* result slip */
	g.slipR = centeredRect(cx, cy, 440, 580)
	g.finish.SetRect(image.Rect(g.slipR.Max.X-210, g.slipR.Max.Y-76, g.slipR.Max.X-36, g.slipR.Max.Y-36))
}

/* ───────────────────────── lifecycle ───────────────────────── */

// surface allocates the alchemy canvas at the window size known right now;
// later resizes do not touch it.
func (g *Game) surface() attractor.Surface {
	if g.winW <= 0 || g.winH <= 0 {
		return nil
	}
	g.dropCanvas()
	g.canvas = newCanvas(g.winW, g.winH)
	if g.canvas == nil {
		return nil
	}
	return g.canvas
}

func (g *Game) dropCanvas() {
	if g.canvas != nil {
		g.canvas.Dispose()
		g.canvas = nil
	}
}

func (g *Game) onPhaseChange(from, to phase.Phase) {
	if from == phase.Alchemy {
		g.dropCanvas()
	}
	g.syncButtons()
}

// syncButtons mirrors the store's selection into button styles and labels.
func (g *Game) syncButtons() {
	sel := g.store.Selection()
	for i, in := range model.Instruments {
		if in.Name == sel.Instrument {
			g.instruments[i].Style = ActiveChoice
		} else {
			g.instruments[i].Style = IdleChoice
		}
	}
	for i, tone := range model.Tones() {
		if tone == sel.Tone {
			g.tones[i].Style = ActiveTone
		} else {
			g.tones[i].Style = IdleTone
		}
	}
	if sel.Active {
		g.resonate.Text = "Resonating..."
	} else {
		g.resonate.Text = "Begin resonance"
	}
	g.complete.Hidden = !sel.Active
}

// buttonsFor lists the controls reachable in p.
func (g *Game) buttonsFor(p phase.Phase) []*Button {
	switch p {
	case phase.Diagnosis:
		return []*Button{g.target}
	case phase.Pharmacology:
		return []*Button{g.rotateCCW, g.rotateCW, g.confirm}
	case phase.Alchemy:
		bs := make([]*Button, 0, len(g.instruments)+len(g.tones)+2)
		bs = append(bs, g.instruments...)
		bs = append(bs, g.tones...)
		return append(bs, g.resonate, g.complete)
	case phase.Prescription:
		return []*Button{g.issue}
	case phase.Result:
		return []*Button{g.finish}
	}
	return nil
}

/* ───────────────────────── update ───────────────────────── */

func (g *Game) Update() error {
	g.frame++
	ctrl := g.store.Phase

	switch navigation() {
	case 1:
		ctrl.Advance()
	case -1:
		ctrl.Retreat()
	}

	mx, my := cursorPosition()
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := left && !g.leftPrev
	g.leftPrev = left

	g.syncButtons()
	if !ctrl.IntroMode() {
		for _, b := range g.buttonsFor(ctrl.Phase()) {
			if b.Handle(mx, my, left, clicked) {
				g.logger.Debugf("clicked %q at (%d,%d) in %s", b.Text, mx, my, ctrl.Phase())
				clicked = false
			}
		}
	}
	g.syncButtons()

	g.store.Tick()
	g.reportStateJS()
	return nil
}

/* ───────────────────────── draw ───────────────────────── */

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBG)
	ctrl := g.store.Phase

	switch ctrl.Phase() {
	case phase.Diagnosis:
		g.drawDiagnosis(screen)
	case phase.Pharmacology:
		g.drawPharmacology(screen)
	case phase.Alchemy:
		g.drawAlchemy(screen)
	case phase.Prescription:
		g.drawPrescription(screen)
	}
	if ctrl.IntroMode() {
		g.drawIntro(screen)
	}
	g.drawHeader(screen)
	if ctrl.Phase() == phase.Result {
		g.drawResult(screen)
	}
	if g.debug {
		ebitenutil.DebugPrintAt(screen, g.debugLine(ebiten.ActualTPS(), ebiten.ActualFPS()), 8, g.winH-20)
	}
}

func (g *Game) debugLine(tps, fps float64) string {
	var iters int64
	if an := g.store.Animator(); an != nil {
		iters = an.Iterations()
	}
	return fmt.Sprintf("TPS %.0f  FPS %.0f  %s  tasks %d  steps %s",
		tps, fps, g.store.Phase.Phase(), g.store.Scheduler().Pending(), humanize.Comma(iters))
}
