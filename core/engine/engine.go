// Package engine is the state store behind the wizard. The top-level view
// owns one Store and every handler mutates state through it; the store is
// ticked once per display refresh and everything runs on that one loop.
package engine

import (
	"math/rand"
	"time"

	"github.com/ingyamilmolinar/apothecary/core/attractor"
	"github.com/ingyamilmolinar/apothecary/core/compass"
	"github.com/ingyamilmolinar/apothecary/core/model"
	"github.com/ingyamilmolinar/apothecary/core/phase"
	"github.com/ingyamilmolinar/apothecary/core/sched"
	game_log "github.com/ingyamilmolinar/apothecary/internal/log"
	"github.com/ingyamilmolinar/apothecary/internal/oracle"
)

// Selection is the alchemy sidebar state.
type Selection struct {
	Instrument string
	Tone       string
	Active     bool
}

// SurfaceFunc provides the drawing surface when the animator mounts. A nil
// return means no surface is available yet.
type SurfaceFunc func() attractor.Surface

type Options struct {
	Seed   int64 // 0 seeds from the clock
	Oracle *oracle.Client
}

type Store struct {
	Phase   *phase.Controller
	Compass *compass.Compass

	sched  *sched.Scheduler
	rng    *rand.Rand
	oracle *oracle.Client
	logger *game_log.Logger

	sel Selection

	att       *attractor.Attractor
	animator  *attractor.Animator
	animTask  *sched.Task
	surfaceFn SurfaceFunc

	slip *Prescription
}

func New(logger *game_log.Logger, opts Options) *Store {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Store{
		Compass: compass.New(),
		sched:   sched.NewScheduler(),
		rng:     rand.New(rand.NewSource(seed)),
		oracle:  opts.Oracle,
		logger:  logger.Tag("store"),
		sel: Selection{
			Instrument: model.Instruments[0].Name,
			Tone:       model.DefaultTone,
		},
		att: attractor.New(),
	}
	s.Phase = phase.NewController(s.sched, logger.Tag("phase"))
	s.Phase.OnChange(s.onPhaseChange)
	s.logger.Infof("store ready, %s", s.oracle)
	return s
}

// Scheduler exposes the frame scheduler, mainly so tests can drive its clock.
func (s *Store) Scheduler() *sched.Scheduler { return s.sched }

// Rand is the store's random source.
func (s *Store) Rand() *rand.Rand { return s.rng }

// Oracle is the generative-AI client, nil when disabled.
func (s *Store) Oracle() *oracle.Client { return s.oracle }

// Tick runs one display refresh worth of scheduled work.
func (s *Store) Tick() { s.sched.Tick() }

// Close cancels every outstanding continuation.
func (s *Store) Close() {
	s.unmountAnimator()
	s.sched.CancelAll()
}

func (s *Store) onPhaseChange(from, to phase.Phase) {
	if from == phase.Alchemy {
		s.unmountAnimator()
	}
	switch to {
	case phase.Alchemy:
		s.mountAnimator()
	case phase.Result:
		s.slip = s.issuePrescription()
		s.logger.Infof("prescription %s issued: %s via %s", s.slip.ID, s.slip.Tone.ToneLatin, s.slip.Instrument.Latin)
	case phase.Diagnosis:
		if from == phase.Result {
			s.slip = nil
		}
	}
}

/* ───────────────────────── alchemy ───────────────────────── */

// Selection returns the current alchemy selection.
func (s *Store) Selection() Selection { return s.sel }

// SelectInstrument picks a carrier instrument by name.
func (s *Store) SelectInstrument(name string) bool {
	if _, ok := model.InstrumentByName(name); !ok {
		s.logger.Warnf("unknown instrument %q", name)
		return false
	}
	s.sel.Instrument = name
	return true
}

// SelectTone picks the dominant tone; the next frame picks up the new hue.
func (s *Store) SelectTone(tone string) bool {
	if model.ToneIndex(tone) < 0 {
		s.logger.Warnf("unknown tone %q", tone)
		return false
	}
	s.sel.Tone = tone
	return true
}

// ToggleResonance flips the alchemy active flag.
func (s *Store) ToggleResonance() bool {
	s.sel.Active = !s.sel.Active
	s.logger.Infof("resonance active=%t", s.sel.Active)
	return s.sel.Active
}

// CompleteAlchemy moves on to the prescription; only offered while resonating.
func (s *Store) CompleteAlchemy() bool {
	if !s.sel.Active {
		return false
	}
	return s.Phase.CompleteAlchemy()
}

// Diagnose runs the diagnosis click with the store's random source.
func (s *Store) Diagnose() (string, bool) { return s.Phase.Diagnose(s.rng) }

// SetSurfaceFunc installs the provider consulted each time alchemy is entered.
func (s *Store) SetSurfaceFunc(fn SurfaceFunc) { s.surfaceFn = fn }

// Animating reports whether the animation loop is mounted.
func (s *Store) Animating() bool { return s.animTask.Active() }

// Animator is the mounted animator, or nil.
func (s *Store) Animator() *attractor.Animator {
	if !s.Animating() {
		return nil
	}
	return s.animator
}

// Coefficients exposes the current attractor parameters.
func (s *Store) Coefficients() attractor.Coefficients { return s.att.K }

func (s *Store) mountAnimator() {
	if s.animTask.Active() {
		return
	}
	var surf attractor.Surface
	if s.surfaceFn != nil {
		surf = s.surfaceFn()
	}
	if surf == nil {
		s.logger.Warnf("no drawing surface, animation disabled")
		return
	}
	s.animator = attractor.NewAnimator(s.att, surf)
	render := func() {
		s.animator.Render(attractor.Params{
			ToneIndex: model.ToneIndex(s.sel.Tone),
			Active:    s.sel.Active,
			Now:       s.sched.Now(),
		})
	}
	s.animTask = s.sched.Every("alchemy-frame", render)
	w, h := surf.Size()
	s.logger.Debugf("animator mounted on %dx%d surface", w, h)
}

func (s *Store) unmountAnimator() {
	if s.animTask.Active() {
		s.logger.Debugf("animator unmounted after %d frames", s.animator.Frames())
	}
	s.animTask.Cancel()
	s.animTask = nil
	s.animator = nil
}
