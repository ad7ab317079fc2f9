package mods

// Status is the effect a mod has on whether a play counts as a score.
// Values are ordered by severity, higher is more severe.
type Status uint8

const (
	StatusNeutral      Status = iota // No effect on the score
	StatusReserved                   // A tier of its own between neutral and disqualified
	StatusDisqualified               // The play must never be saved as a score
)

func (s Status) String() string {
	switch s {
	case StatusNeutral:
		return "neutral"
	case StatusReserved:
		return "reserved"
	case StatusDisqualified:
		return "disqualified"
	}
	return "unknown"
}

// Saveable reports whether a play with this status may be persisted.
func (s Status) Saveable() bool {
	return s < StatusDisqualified
}

func MaxStatus(a, b Status) Status {
	if a > b {
		return a
	}
	return b
}

// Aggregate is the combined status of a play, the most severe status of any
// active mod. A play without mods is neutral.
func Aggregate(mods ...Mod) Status {
	status := StatusNeutral
	for _, m := range mods {
		status = MaxStatus(status, m.Status())
	}
	return status
}
