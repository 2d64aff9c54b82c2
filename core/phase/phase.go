// Package phase is the wizard's navigation state machine: the onboarding
// carousel followed by diagnosis → pharmacology → alchemy → prescription →
// result.
package phase

import (
	"time"

	"github.com/ingyamilmolinar/apothecary/core/model"
	"github.com/ingyamilmolinar/apothecary/core/sched"
	game_log "github.com/ingyamilmolinar/apothecary/internal/log"
)

type Phase int

const (
	Diagnosis Phase = iota
	Pharmacology
	Alchemy
	Prescription
	Result
)

func (p Phase) String() string {
	switch p {
	case Diagnosis:
		return "diagnosis"
	case Pharmacology:
		return "pharmacology"
	case Alchemy:
		return "alchemy"
	case Prescription:
		return "prescription"
	case Result:
		return "result"
	default:
		return "unknown"
	}
}

// arrowChain is the part of the wizard reachable with the arrow keys.
var arrowChain = []Phase{Diagnosis, Pharmacology, Alchemy, Prescription}

// DiagnosisDelay is how long the diagnosis reading stays up before the
// wizard moves on to pharmacology.
const DiagnosisDelay = 2 * time.Second

// Rand is the randomness the diagnosis draw needs. *math/rand.Rand fits.
type Rand interface {
	Intn(n int) int
}

// Controller owns the current phase and the intro carousel.
type Controller struct {
	phase      Phase
	introMode  bool
	introSlide int

	feedback  string
	diagnosis *sched.Task

	sched     *sched.Scheduler
	logger    *game_log.Logger
	observers []func(from, to Phase)
}

func NewController(s *sched.Scheduler, logger *game_log.Logger) *Controller {
	return &Controller{
		phase:     Diagnosis,
		introMode: true,
		sched:     s,
		logger:    logger,
	}
}

func (c *Controller) Phase() Phase      { return c.phase }
func (c *Controller) IntroMode() bool   { return c.introMode }
func (c *Controller) IntroSlide() int   { return c.introSlide }
func (c *Controller) Feedback() string  { return c.feedback }
func (c *Controller) IntroSlides() int  { return len(model.IntroSlides) }
func (c *Controller) IntroText() string { return model.IntroSlides[c.introSlide] }

// DiagnosisPending reports whether the delayed move to pharmacology is armed.
func (c *Controller) DiagnosisPending() bool { return c.diagnosis.Active() }

// OnChange registers fn to run after every phase change.
func (c *Controller) OnChange(fn func(from, to Phase)) {
	c.observers = append(c.observers, fn)
}

func (c *Controller) setPhase(to Phase) {
	from := c.phase
	if from == to {
		return
	}
	if from == Diagnosis {
		c.cancelDiagnosis("phase change")
	}
	c.phase = to
	c.logger.Infof("%s -> %s", from, to)
	for _, fn := range c.observers {
		fn(from, to)
	}
}

func (c *Controller) cancelDiagnosis(reason string) {
	if c.diagnosis.Active() {
		c.logger.Debugf("diagnosis auto-advance cancelled: %s", reason)
	}
	c.diagnosis.Cancel()
	c.diagnosis = nil
}

// Advance handles the right arrow.
func (c *Controller) Advance() {
	if c.introMode {
		if c.introSlide < len(model.IntroSlides)-1 {
			c.introSlide++
			c.logger.Debugf("intro slide %d", c.introSlide)
			return
		}
		c.introMode = false
		c.logger.Infof("intro finished")
		return
	}
	if i := chainIndex(c.phase); i >= 0 && i < len(arrowChain)-1 {
		c.setPhase(arrowChain[i+1])
	}
}

// Retreat handles the left arrow.
func (c *Controller) Retreat() {
	if c.introMode {
		if c.introSlide > 0 {
			c.introSlide--
			c.logger.Debugf("intro slide %d", c.introSlide)
		}
		return
	}
	i := chainIndex(c.phase)
	switch {
	case i > 0:
		c.setPhase(arrowChain[i-1])
	case i == 0:
		c.cancelDiagnosis("intro re-entered")
		c.introMode = true
		c.logger.Infof("intro re-entered at slide %d", c.introSlide)
	}
}

func chainIndex(p Phase) int {
	for i, q := range arrowChain {
		if q == p {
			return i
		}
	}
	return -1
}

// Diagnose performs the diagnosis "sense" click: it shows a random reading
// and arms the delayed move to pharmacology. A second click while armed
// re-rolls the reading without arming another timer.
func (c *Controller) Diagnose(rng Rand) (string, bool) {
	if c.phase != Diagnosis || c.introMode {
		return "", false
	}
	word := model.DiagnosisEmotions[rng.Intn(len(model.DiagnosisEmotions))]
	c.feedback = model.DiagnosisLeadIn + word
	c.logger.Infof("diagnosis reading %q", word)
	if !c.diagnosis.Active() {
		c.diagnosis = c.sched.After("diagnosis-advance", DiagnosisDelay, func() {
			c.diagnosis = nil
			c.setPhase(Pharmacology)
		})
	}
	return c.feedback, true
}

func (c *Controller) explicit(from, to Phase) bool {
	if c.phase != from || c.introMode {
		return false
	}
	c.setPhase(to)
	return true
}

// ConfirmElement accepts the compass choice (pharmacology → alchemy).
func (c *Controller) ConfirmElement() bool { return c.explicit(Pharmacology, Alchemy) }

// CompleteAlchemy finishes the alchemy phase (alchemy → prescription).
func (c *Controller) CompleteAlchemy() bool { return c.explicit(Alchemy, Prescription) }

// IssuePrescription is the only way into the result phase.
func (c *Controller) IssuePrescription() bool { return c.explicit(Prescription, Result) }

// FinishConsultation resets the session from the result phase. Selections
// held outside the controller are left alone.
func (c *Controller) FinishConsultation() bool {
	if c.phase != Result {
		return false
	}
	c.setPhase(Diagnosis)
	c.introMode = true
	c.introSlide = 0
	c.feedback = ""
	c.logger.Infof("consultation finished, session reset")
	return true
}
