package game

import "time"

// HitState is the judgement state of a single slot of a note.
type HitState uint8

const (
	HitNone    HitState = iota // Not applicable, or resolved as anything but a hit
	HitPending                 // Still has to be evaluated as a genuine hit
	HitDone                    // Resolved as a hit
)

func (s HitState) String() string {
	switch s {
	case HitNone:
		return "none"
	case HitPending:
		return "pending"
	case HitDone:
		return "hit"
	}
	return "unknown"
}

func (s HitState) Pending() bool {
	return s == HitPending
}

// HitData holds the judgement of one playable note. Hit and Delta are
// parallel, one entry per slot, and their length never changes once the
// judgement engine has allocated them.
type HitData struct {
	Hit   []HitState
	Delta []time.Duration // Signed error of each slot, meaningful once hit
}

// NewHitData allocates the initial judgement buffer for a play of the chart.
// Mines have nothing to hit, every other slot starts out pending.
func NewHitData(chart *Chart) []HitData {
	data := make([]HitData, len(chart.Notes))
	for i, n := range chart.Notes {
		slots := n.Slots()
		data[i].Hit = make([]HitState, slots)
		data[i].Delta = make([]time.Duration, slots)
		if n.IsMine {
			continue
		}
		for k := range data[i].Hit {
			data[i].Hit[k] = HitPending
		}
	}
	return data
}

// CloneHitData deep copies the buffer.
func CloneHitData(data []HitData) []HitData {
	c := make([]HitData, len(data))
	for i, d := range data {
		c[i].Hit = make([]HitState, len(d.Hit))
		c[i].Delta = make([]time.Duration, len(d.Delta))
		copy(c[i].Hit, d.Hit)
		copy(c[i].Delta, d.Delta)
	}
	return c
}

// SlotRef identifies the slots of a note by their count and backing arrays,
// two refs are equal only if nothing resized or reallocated the slots.
type SlotRef struct {
	N     int
	Hit   *HitState
	Delta *time.Duration
}

func SlotRefs(data []HitData) []SlotRef {
	refs := make([]SlotRef, len(data))
	for i, d := range data {
		refs[i].N = len(d.Hit)
		if len(d.Hit) > 0 {
			refs[i].Hit = &d.Hit[0]
		}
		if len(d.Delta) > 0 {
			refs[i].Delta = &d.Delta[0]
		}
	}
	return refs
}
