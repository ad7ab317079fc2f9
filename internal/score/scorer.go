package score

import (
	"errors"
	"time"

	"git.lost.host/meutraa/eotw-mods/internal/game"
	"git.lost.host/meutraa/eotw-mods/internal/mods"
	"github.com/google/uuid"
)

var (
	ErrNotSaveable = errors.New("play is not eligible to be saved")
	ErrNotInit     = errors.New("scorer is not initialised")
)

type Scorer interface {
	Init(path string) error
	Deinit()

	// Save the result of this performance, plays a mod disqualified are refused
	Save(chart *game.Chart, result *Result) error

	// Load up previous results for the chart
	Load(chart *game.Chart) ([]History, error)

	Score(chart *game.Chart, hitData []game.HitData) Score
}

// Result is what the mod pipeline hands to the scorer at the end of a session.
type Result struct {
	SessionID uuid.UUID
	Mods      []string
	Status    mods.Status
	HitData   []game.HitData
}

type History struct {
	Sum       string
	SessionID string
	Mods      []string
	Status    mods.Status
	HitData   []game.HitData
}

type Score struct {
	Hits       uint64
	Misses     uint64
	TotalError time.Duration
}

func (s Score) MeanError() time.Duration {
	if s.Hits == 0 {
		return 0
	}
	return s.TotalError / time.Duration(s.Hits)
}
