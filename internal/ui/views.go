package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/ingyamilmolinar/apothecary/core/compass"
	"github.com/ingyamilmolinar/apothecary/core/engine"
	"github.com/ingyamilmolinar/apothecary/core/model"
)

func (g *Game) centerText(dst *ebiten.Image, s string, y, size float64, col color.Color) {
	drawText(dst, s, float64(g.winW)/2, y, size, col, text.AlignCenter)
}

/* ───────────────────────── header & intro ───────────────────────── */

func (g *Game) drawHeader(dst *ebiten.Image) {
	drawText(dst, "Sonic Apothecary", 32, 28, sizeTitle, colText, text.AlignStart)
	drawText(dst, "TUNING THE HEART WITH SOUND / "+model.Version, 34, 72, sizeSmall, colTextDim, text.AlignStart)
}

func (g *Game) drawIntro(dst *ebiten.Image) {
	drawRect(dst, image.Rect(0, 0, g.winW, g.winH), color.Black, true)
	ctrl := g.store.Phase
	cy := float64(g.winH) / 2

	g.centerText(dst, ctrl.IntroText(), cy-60, sizeLarge+4, fade(colText, g.glow.At(g.frame)))

	n := ctrl.IntroSlides()
	x0 := float64(g.winW)/2 - float64(n-1)*8
	for i := 0; i < n; i++ {
		if i == ctrl.IntroSlide() {
			drawCircle(dst, x0+float64(i)*16, cy, 5, colGold, true)
		} else {
			drawCircle(dst, x0+float64(i)*16, cy, 4, fade(colText, 0.1), true)
		}
	}
	g.centerText(dst, "USE THE LEFT AND RIGHT ARROW KEYS TO SWITCH PHASES", cy+70, sizeSmall, colTextFaint)
}

/* ───────────────────────── diagnosis ───────────────────────── */

func (g *Game) drawDiagnosis(dst *ebiten.Image) {
	r := g.target.Rect()
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rad := float64(r.Dx()) / 2

	g.centerText(dst, "Auscultation · Emotional Pulse", float64(r.Min.Y)-130, sizeTitle, colGold)
	g.centerText(dst, "LOCK ONTO YOUR INNER WAVEFORM", float64(r.Min.Y)-84, sizeBody, colTextDim)

	drawCircle(dst, cx, cy, rad, colGlass, true)
	edge := fade(colText, 0.1)
	if g.target.hovered {
		edge = fade(colGold, 0.3)
	}
	drawCircle(dst, cx, cy, rad, edge, false)

	drawText(dst, "AROUSAL (+) EXCITED", cx, cy-rad-24, sizeSmall, colTextFaint, text.AlignCenter)
	drawText(dst, "AROUSAL (-) CALM", cx, cy+rad+10, sizeSmall, colTextFaint, text.AlignCenter)
	drawText(dst, "VALENCE (-)", cx-rad-16, cy-16, sizeSmall, colTextFaint, text.AlignEnd)
	drawText(dst, "MELANCHOLY", cx-rad-16, cy, sizeSmall, colTextFaint, text.AlignEnd)
	drawText(dst, "VALENCE (+)", cx+rad+16, cy-16, sizeSmall, colTextFaint, text.AlignStart)
	drawText(dst, "JOYFUL", cx+rad+16, cy, sizeSmall, colTextFaint, text.AlignStart)

	b := g.core.At(g.frame)
	drawCircle(dst, cx, cy, 4+8*b, fade(colGold, 0.25*b), true)
	drawCircle(dst, cx, cy, 2, colText, true)

	if fb := g.store.Phase.Feedback(); fb != "" {
		g.centerText(dst, fb, float64(r.Max.Y)+48, sizeLarge, fade(colGold, 0.5+0.5*b))
	}
}

/* ───────────────────────── pharmacology ───────────────────────── */

func (g *Game) drawPharmacology(dst *ebiten.Image) {
	cx, cy := float64(g.compassC.X), float64(g.compassC.Y)
	drawText(dst, "Four-Ring Holographic Compass", cx, cy-320, sizeLarge+4, colCyan, text.AlignCenter)
	drawText(dst, "ALL THINGS RESONATE, MOVE WITH THE SEASON", cx, cy-282, sizeSmall, colTextFaint, text.AlignCenter)

	g.drawCompass(dst, cx, cy)
	g.rotateCCW.Draw(dst)
	g.rotateCW.Draw(dst)

	cur := g.store.Compass.Current()
	PanelStyle{Fill: colGlass, Border: colGlassEdge, Accent: fade(colCyan, 0.2)}.Draw(dst, g.panelR)
	g.drawBodyMap(dst, g.bodyR)
	g.drawKnowledgeCard(dst, g.cardR, cur)
}

func (g *Game) drawCompass(dst *ebiten.Image, cx, cy float64) {
	c := g.store.Compass
	active := c.Index()

	// alignment indicator at twelve o'clock
	drawLine(dst, cx, cy-250, cx, cy-40, fade(colGold, 0.25), 1)

	for ri, ring := range compass.Rings {
		rc := ringColors[ri]
		drawCircle(dst, cx, cy, ring.Radius()+20, fade(rc, 0.15), false)
		for i, e := range model.Elements() {
			x, y := polar(cx, cy, ring.Radius(), c.LabelAngle(i))
			var col color.Color = colInactive
			if i == active {
				col = rc
			}
			drawText(dst, ring.Label(e), x, y-sizeSmall*0.75, sizeSmall, col, text.AlignCenter)
		}
	}

	drawCircle(dst, cx, cy, 32, colGlass, true)
	drawCircle(dst, cx, cy, 32, fade(colText, 0.1), false)
	ping := g.core.At(g.frame)
	drawCircle(dst, cx, cy, 8+8*ping, fade(colText, 0.05*(2-ping)), true)
}

// drawBodyMap renders the 200x400 silhouette scaled into r.
func (g *Game) drawBodyMap(dst *ebiten.Image, r image.Rectangle) {
	s := float64(r.Dy()) / 400
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	pt := func(x, y float64) (float64, float64) { return ox + x*s, oy + y*s }

	hx, hy := pt(100, 55)
	drawCircle(dst, hx, hy, 35*s, fade(colText, 0.1), false)
	torso := [][2]float64{{70, 100}, {130, 100}, {145, 250}, {125, 400}, {75, 400}, {55, 250}, {70, 100}}
	for i := 1; i < len(torso); i++ {
		x1, y1 := pt(torso[i-1][0], torso[i-1][1])
		x2, y2 := pt(torso[i][0], torso[i][1])
		drawLine(dst, x1, y1, x2, y2, fade(colText, 0.08), 1)
	}

	active := g.store.Compass.Index()
	gx, gy := pt(100, 180)
	drawCircle(dst, gx, gy, 100*s, fade(elementColors[active], 0.05), true)
	for i, e := range model.Elements() {
		x, y := pt(e.OrganPos[0], e.OrganPos[1])
		if i == active {
			drawCircle(dst, x, y, (14+3*g.core.At(g.frame))*s, elementColors[i], true)
			continue
		}
		drawCircle(dst, x, y, 6*s, fade(colText, 0.1), true)
	}
}

func (g *Game) drawKnowledgeCard(dst *ebiten.Image, r image.Rectangle, e model.ElementProfile) {
	x, y := float64(r.Min.X)+16, float64(r.Min.Y)+16
	drawText(dst, fmt.Sprintf("%s (%s)", e.OrganName, e.Element), x, y, sizeLarge+4, colText, text.AlignStart)
	y += 48

	chips := []struct {
		label string
		col   color.Color
	}{
		{"Element: " + e.Element, colCyan},
		{"Tone: " + e.ToneLatin, colPurple},
		{"Emotion: " + e.Mood, colTextDim},
	}
	cx := x
	for _, c := range chips {
		w := measureText(c.label, sizeSmall) + 12
		chip := image.Rect(int(cx), int(y), int(cx+w), int(y)+20)
		drawButton(dst, chip, fade(c.col, 0.1), fade(c.col, 0.2), false)
		drawText(dst, c.label, cx+6, y+3, sizeSmall, c.col, text.AlignStart)
		cx += w + 8
	}
	y += 40

	for _, line := range wrapText(e.Effect, sizeBody, float64(r.Dx())-32) {
		drawText(dst, line, x, y, sizeBody, fade(colText, 0.7), text.AlignStart)
		y += sizeBody * 1.6
	}
	g.confirm.Draw(dst)
}

/* ───────────────────────── alchemy ───────────────────────── */

func (g *Game) drawAlchemy(dst *ebiten.Image) {
	if g.canvas != nil {
		if img := g.canvas.Image(); img != nil {
			dst.DrawImage(img, nil)
		}
	}

	r := g.sidebarR
	PanelStyle{Fill: colGlass, Border: fade(colPurple, 0.3)}.Draw(dst, r)
	inner := insetRect(r, 28)
	x, y := float64(inner.Min.X), float64(inner.Min.Y)
	drawText(dst, "Alchemy · Sound Imprint", x, y, sizeLarge+2, colPurple, text.AlignStart)
	drawText(dst, "DIGITAL STRANGE ATTRACTOR GENERATOR", x, y+36, 9, colTextFaint, text.AlignStart)

	drawText(dst, "CHOOSE THE CARRIER INSTRUMENT", x, y+88, sizeSmall-1, fade(colText, 0.5), text.AlignStart)
	for _, b := range g.instruments {
		b.Draw(dst)
	}
	drawText(dst, "DOMINANT TONE", x, y+218, sizeSmall-1, fade(colText, 0.5), text.AlignStart)
	for _, b := range g.tones {
		b.Draw(dst)
	}
	g.resonate.Draw(dst)
	g.complete.Draw(dst)
}

/* ───────────────────────── prescription ───────────────────────── */

func (g *Game) drawPrescription(dst *ebiten.Image) {
	top := float64(g.zones[0].Min.Y)
	g.centerText(dst, "Prescription · Emotion Doctor", top-140, sizeTitle+6, colGold)
	g.centerText(dst, "SYNTHETIC TCM FORMULATION INTERFACE", top-88, sizeBody, colTextFaint)

	d := g.store.Draft()
	titles := []string{"ZONE A: DIAGNOSTIC TAGS", "ZONE B: SOUND BLEND", "ZONE C: ENERGY CARRIER"}
	for i, z := range g.zones {
		PanelStyle{Fill: colGlass, Border: fade(colGold, 0.2)}.Draw(dst, z)
		drawText(dst, titles[i], float64(z.Min.X)+20, float64(z.Min.Y)+20, sizeSmall, fade(colGold, 0.5), text.AlignStart)
	}

	// zone A: symptom chips, wrapped to the zone width
	za := insetRect(g.zones[0], 20)
	x, y := float64(za.Min.X), float64(za.Min.Y)+32
	for _, s := range model.Symptoms {
		w := measureText(s, sizeBody) + 20
		if x+w > float64(za.Max.X) {
			x, y = float64(za.Min.X), y+34
		}
		drawButton(dst, image.Rect(int(x), int(y), int(x+w), int(y)+26), fade(colText, 0.05), fade(colText, 0.1), false)
		drawText(dst, s, x+10, y+4, sizeBody, colText, text.AlignStart)
		x += w + 8
	}

	// zone B: primary and secondary remedies
	zb := insetRect(g.zones[1], 20)
	row := image.Rect(zb.Min.X, zb.Min.Y+32, zb.Max.X, zb.Min.Y+68)
	drawButton(dst, row, fade(colGold, 0.05), fade(colGold, 0.5), false)
	drawText(dst, fmt.Sprintf("Primary: %s (%s)", d.Tone.ToneLatin, d.Tone.OrganName), float64(row.Min.X)+14, float64(row.Min.Y)+9, sizeBody, colText, text.AlignStart)
	row = row.Add(image.Pt(0, 46))
	drawButton(dst, row, color.Transparent, fade(colText, 0.1), false)
	drawText(dst, fmt.Sprintf("Adjuvant: %s (%s/%s)", d.Secondary.ToneLatin, d.Secondary.OrganName, d.Secondary.Element), float64(row.Min.X)+14, float64(row.Min.Y)+9, sizeBody, colTextDim, text.AlignStart)

	// zone C: carrier
	zc := insetRect(g.zones[2], 20)
	box := image.Rect(zc.Min.X, zc.Min.Y+32, zc.Max.X, zc.Min.Y+128)
	drawRect(dst, box, fade(colText, 0.1), false)
	drawText(dst, d.Instrument.Latin+" · 432Hz", float64(box.Min.X+box.Max.X)/2, float64(box.Min.Y+box.Max.Y)/2-8, sizeSmall, fade(colGold, 0.8), text.AlignCenter)

	g.issue.Draw(dst)
}

/* ───────────────────────── result ───────────────────────── */

func (g *Game) drawResult(dst *ebiten.Image) {
	drawRect(dst, image.Rect(0, 0, g.winW, g.winH), colOverlay, true)
	r := g.slipR
	PanelStyle{Fill: color.NRGBA{12, 12, 12, 255}, Border: fade(colGold, 0.4)}.Draw(dst, r)

	p := g.store.Prescription()
	if p == nil {
		g.finish.Draw(dst)
		return
	}
	x, y := float64(r.Min.X)+36, float64(r.Min.Y)+36
	right := float64(r.Max.X) - 36
	drawText(dst, "Prescription Slip", x, y, sizeTitle-4, colGold, text.AlignStart)
	drawText(dst, "SONIC PRESCRIPTION", x, y+38, sizeSmall-1, colTextDim, text.AlignStart)
	drawText(dst, "ID: "+p.ID, right, y, sizeSmall-1, colTextFaint, text.AlignEnd)
	drawText(dst, "TIME: "+p.Hour, right, y+16, sizeSmall-1, colTextFaint, text.AlignEnd)
	drawText(dst, humanize.RelTime(p.IssuedAt, g.store.Scheduler().Now(), "ago", "from now"), right, y+32, sizeSmall-1, colTextFaint, text.AlignEnd)

	y += 90
	section := func(label string, body func(y float64) float64) {
		drawText(dst, label, x, y, sizeSmall-1, colTextDim, text.AlignStart)
		end := body(y + 20)
		drawLine(dst, x, end+14, right, end+14, fade(colText, 0.1), 1)
		y = end + 30
	}
	section("PRIMARY SOUND", func(y float64) float64 {
		drawText(dst, fmt.Sprintf("%s tone - enters the %s meridian", p.Tone.ToneLatin, p.Tone.OrganName), x, y, sizeLarge, colText, text.AlignStart)
		return y + sizeLarge*1.5
	})
	section("CARRIER INSTRUMENT", func(y float64) float64 {
		drawText(dst, p.Instrument.Latin, x, y, sizeLarge, colText, text.AlignStart)
		return y + sizeLarge*1.5
	})
	section("DIRECTION", func(y float64) float64 {
		for _, line := range wrapText(p.Direction, sizeBody, right-x) {
			drawText(dst, line, x, y, sizeBody, fade(colGold, 0.8), text.AlignStart)
			y += sizeBody * 1.6
		}
		return y
	})

	g.drawSeal(dst, image.Rect(r.Min.X+36, r.Max.Y-100, r.Min.X+100, r.Max.Y-36), p)
	g.finish.Draw(dst)
}

// drawSeal renders the slip's 4x4 on/off stamp.
func (g *Game) drawSeal(dst *ebiten.Image, r image.Rectangle, p *engine.Prescription) {
	drawRect(dst, r, fade(colText, 0.1), true)
	cells := insetRect(r, 12)
	step := cells.Dx() / engine.SealCells
	for i, on := range p.Seal {
		cx := cells.Min.X + (i%engine.SealCells)*step
		cy := cells.Min.Y + (i/engine.SealCells)*step
		a := 0.2
		if on {
			a = 1
		}
		drawRect(dst, image.Rect(cx, cy, cx+step-2, cy+step-2), fade(colText, 0.5*a), true)
	}
}
