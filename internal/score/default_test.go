package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/eotw-mods/internal/game"
	"git.lost.host/meutraa/eotw-mods/internal/mods"
	"git.lost.host/meutraa/eotw-mods/internal/testdata"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScorer(t *testing.T) *DefaultScorer {
	t.Helper()
	s := &DefaultScorer{}
	require.NoError(t, s.Init(":memory:"))
	t.Cleanup(s.Deinit)
	return s
}

func playChart(t *testing.T, active ...mods.Mod) (*game.Chart, *Result) {
	t.Helper()
	chart, err := testdata.GetChart()
	require.NoError(t, err)

	session := mods.NewSession(mods.NewChartWithModifiers(chart, active), nil)
	defer session.Close()
	status, err := (&mods.DefaultRunner{}).Run(session)
	require.NoError(t, err)

	return chart, &Result{
		SessionID: session.ID,
		Mods:      session.Chart.ModNames(),
		Status:    status,
		HitData:   session.HitData,
	}
}

func TestScore(t *testing.T) {
	chart, err := testdata.GetChart()
	require.NoError(t, err)
	s := DefaultScorer{}

	hitData := game.NewHitData(chart)
	score := s.Score(chart, hitData)
	assert.Equal(t, uint64(0), score.Hits)
	assert.Equal(t, uint64(chart.SlotCount()-int(chart.MineCount)), score.Misses)

	hitData[0].Hit[0] = game.HitDone
	hitData[0].Delta[0] = -20 * time.Millisecond
	hitData[1].Hit[0] = game.HitDone
	hitData[1].Delta[0] = 10 * time.Millisecond
	score = s.Score(chart, hitData)
	assert.Equal(t, uint64(2), score.Hits)
	assert.Equal(t, 30*time.Millisecond, score.TotalError)
	assert.Equal(t, 15*time.Millisecond, score.MeanError())
}

func TestScoreAuto(t *testing.T) {
	chart, result := playChart(t, mods.Auto{})
	score := (&DefaultScorer{}).Score(chart, result.HitData)

	assert.Equal(t, uint64(0), score.Misses)
	assert.Equal(t, uint64(chart.SlotCount()-int(chart.MineCount)), score.Hits)
	assert.Equal(t, time.Duration(0), score.MeanError())
}

func TestSaveRefusesDisqualified(t *testing.T) {
	s := newScorer(t)
	chart, result := playChart(t, mods.Auto{})
	require.Equal(t, mods.StatusDisqualified, result.Status)

	err := s.Save(chart, result)
	assert.ErrorIs(t, err, ErrNotSaveable)

	histories, err := s.Load(chart)
	require.NoError(t, err)
	assert.Empty(t, histories)
}

func TestSaveAndLoad(t *testing.T) {
	s := newScorer(t)
	chart, result := playChart(t)
	result.HitData[0].Hit[0] = game.HitDone
	result.HitData[0].Delta[0] = 5 * time.Millisecond

	require.NoError(t, s.Save(chart, result))

	reserved := &Result{SessionID: uuid.New(), Mods: []string{"Hidden"}, Status: mods.StatusReserved, HitData: result.HitData}
	require.NoError(t, s.Save(chart, reserved))

	histories, err := s.Load(chart)
	require.NoError(t, err)
	require.Len(t, histories, 2)

	assert.Equal(t, result.SessionID.String(), histories[0].SessionID)
	assert.Empty(t, histories[0].Mods)
	assert.Equal(t, mods.StatusNeutral, histories[0].Status)
	assert.Equal(t, result.HitData, histories[0].HitData)
	assert.Equal(t, s.hashChart(chart), histories[0].Sum)

	assert.Equal(t, []string{"Hidden"}, histories[1].Mods)
	assert.Equal(t, mods.StatusReserved, histories[1].Status)

	other := &game.Chart{Difficulty: game.Difficulty{Section: "0000\n"}}
	histories, err = s.Load(other)
	require.NoError(t, err)
	assert.Empty(t, histories)
}

func TestSaveAndLoadUnknownStates(t *testing.T) {
	s := newScorer(t)
	chart, result := playChart(t)
	result.HitData[4].Hit[1] = game.HitState(200)

	require.NoError(t, s.Save(chart, result))
	histories, err := s.Load(chart)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, game.SlotRefs(result.HitData)[4].N, len(histories[0].HitData[4].Hit))
	assert.Equal(t, result.HitData, histories[0].HitData)
}

func TestNotInit(t *testing.T) {
	s := &DefaultScorer{}
	chart, result := playChart(t)
	assert.ErrorIs(t, s.Save(chart, result), ErrNotInit)
	_, err := s.Load(chart)
	assert.ErrorIs(t, err, ErrNotInit)
}
