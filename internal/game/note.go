package game

import (
	"time"
)

type Note struct {
	Index   uint8         // The chart column
	IsMine  bool          // Mines are never hit, they only count against you
	Time    time.Duration // The time the note should be hit
	TimeEnd time.Duration // The time a hold should be released, 0 for taps
}

func (note *Note) IsHold() bool {
	return note.TimeEnd != 0
}

// Slots is the number of judgement slots the note occupies in its HitData.
// A hold is judged twice, once on the head and once on release.
func (note *Note) Slots() int {
	if note.IsHold() && !note.IsMine {
		return 2
	}
	return 1
}
