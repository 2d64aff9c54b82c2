package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ingyamilmolinar/apothecary/core/model"
)

// SealCells is the side length of the decorative seal grid.
const SealCells = 4

// Prescription is the slip shown in the result phase.
type Prescription struct {
	ID         string
	Tone       model.ElementProfile
	Secondary  model.ElementProfile
	Instrument model.Instrument
	Direction  string
	Seal       [SealCells * SealCells]bool
	IssuedAt   time.Time
	Hour       string // traditional double-hour of IssuedAt
}

// Prescription returns the slip issued on entering the result phase, or nil.
func (s *Store) Prescription() *Prescription { return s.slip }

// Draft builds the slip for the current selection without issuing it; the
// prescription phase previews it.
func (s *Store) Draft() Prescription {
	tone, _ := model.ElementForTone(s.sel.Tone)
	sec, _ := model.ElementForTone(model.SecondaryTone)
	inst, _ := model.InstrumentByName(s.sel.Instrument)
	return Prescription{
		Tone:       tone,
		Secondary:  sec,
		Instrument: inst,
		Direction:  model.Direction,
	}
}

func (s *Store) issuePrescription() *Prescription {
	p := s.Draft()
	p.ID = slipID()
	for i := range p.Seal {
		p.Seal[i] = s.rng.Float64() > 0.5
	}
	p.IssuedAt = s.sched.Now()
	p.Hour = model.DoubleHour(p.IssuedAt)
	return &p
}

// slipID is six upper-case characters of a fresh random UUID.
func slipID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:6])
}
