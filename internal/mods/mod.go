package mods

import "git.lost.host/meutraa/eotw-mods/internal/game"

// Mod is a gameplay modifier applied to the judgement of a play after the
// judgement engine is done with it.
//
// ApplyToHitData edits hitData in place. It never adds or removes notes or
// slots, never swaps a slot slice for a new one, and it only touches the
// slots and data keys its policy names. A slot only moves towards a more
// resolved state unless the policy says otherwise.
// Mods can not rely on the order notes are visited in.
//
// Name, Description, Status and Visible are constant for a mod and are safe to
// call at any time.
type Mod interface {
	Name() string
	Description() string
	Status() Status
	Visible() bool // Offered in mod selection

	ApplyToHitData(chart *ChartWithModifiers, hitData []game.HitData, data *DataGroup)
}
