package game

type Chart struct {
	Notes      []*Note
	NoteCount  int64
	HoldCount  int64
	MineCount  int64
	Difficulty Difficulty
}

// SlotCount is the total number of judgement slots across all notes.
func (c *Chart) SlotCount() int {
	total := 0
	for _, n := range c.Notes {
		total += n.Slots()
	}
	return total
}
