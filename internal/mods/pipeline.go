package mods

import (
	"fmt"
	"log"

	"git.lost.host/meutraa/eotw-mods/internal/game"
	"github.com/google/uuid"
)

// Session is a single play of a chart. The hit data and shared data belong to
// the session and are handed to one mod at a time.
type Session struct {
	ID      uuid.UUID
	Chart   *ChartWithModifiers
	HitData []game.HitData
	Data    *DataGroup
}

// NewSession allocates the judgement buffer for the chart. A nil data group
// starts the session with an empty one.
func NewSession(chart *ChartWithModifiers, data *DataGroup) *Session {
	if nil == data {
		data = NewDataGroup()
	}
	return &Session{
		ID:      uuid.New(),
		Chart:   chart,
		HitData: game.NewHitData(chart.Chart()),
		Data:    data,
	}
}

func (s *Session) Close() {
	if nil == s.Data {
		return
	}
	s.Data.Clear()
}

type Runner interface {
	// Run applies the active mods of the session and returns the combined
	// status of the play. A failed run is always disqualified
	Run(session *Session) (Status, error)
}

type DefaultRunner struct {
	Logger *log.Logger // Optional, traces each applied mod
}

func (r *DefaultRunner) validate(s *Session) error {
	if nil == s || nil == s.Chart || nil == s.Chart.Chart() {
		return ErrNilSession
	}
	notes := s.Chart.Chart().Notes
	if len(notes) != len(s.HitData) {
		return fmt.Errorf("%w: %v notes, %v hit data", ErrHitDataMismatch, len(notes), len(s.HitData))
	}
	for i, n := range notes {
		d := s.HitData[i]
		if len(d.Hit) != n.Slots() || len(d.Delta) != len(d.Hit) {
			return fmt.Errorf("%w: note %v has %v slots and %v deltas, expected %v",
				ErrHitDataMismatch, i, len(d.Hit), len(d.Delta), n.Slots())
		}
	}
	return nil
}

func (r *DefaultRunner) Run(s *Session) (Status, error) {
	if err := r.validate(s); nil != err {
		return StatusDisqualified, err
	}
	if nil == s.Data {
		s.Data = NewDataGroup()
	}

	refs := game.SlotRefs(s.HitData)
	active := s.Chart.Mods()
	for _, m := range active {
		m.ApplyToHitData(s.Chart, s.HitData, s.Data)

		for i, ref := range game.SlotRefs(s.HitData) {
			if ref != refs[i] {
				return StatusDisqualified, fmt.Errorf("%w: %s changed note %v", ErrSlotsReallocated, m.Name(), i)
			}
		}

		if nil != r.Logger {
			r.Logger.Printf("%v applied %s (%s)", s.ID, m.Name(), m.Status())
		}
	}
	return Aggregate(active...), nil
}
