package mods

import (
	"time"

	"git.lost.host/meutraa/eotw-mods/internal/game"
)

// fakeMod records its calls and optionally runs a transform.
type fakeMod struct {
	name    string
	status  Status
	hidden  bool
	apply   func(hitData []game.HitData, data *DataGroup)
	applied int
}

func (m *fakeMod) Name() string        { return m.name }
func (m *fakeMod) Description() string { return "fake " + m.name }
func (m *fakeMod) Status() Status      { return m.status }
func (m *fakeMod) Visible() bool       { return !m.hidden }

func (m *fakeMod) ApplyToHitData(chart *ChartWithModifiers, hitData []game.HitData, data *DataGroup) {
	m.applied++
	if nil != m.apply {
		m.apply(hitData, data)
	}
}

func hits(slots ...[]game.HitState) []game.HitData {
	data := make([]game.HitData, len(slots))
	for i, s := range slots {
		data[i].Hit = s
		data[i].Delta = make([]time.Duration, len(s))
	}
	return data
}

func states(values ...uint8) []game.HitState {
	s := make([]game.HitState, len(values))
	for i, v := range values {
		s[i] = game.HitState(v)
	}
	return s
}

func testChart() *game.Chart {
	return &game.Chart{
		Notes: []*game.Note{
			{Index: 0, Time: time.Second},
			{Index: 1, Time: 2 * time.Second, TimeEnd: 3 * time.Second},
			{Index: 3, Time: 4 * time.Second, IsMine: true},
		},
		NoteCount: 2,
		HoldCount: 1,
		MineCount: 1,
	}
}
