package mods

import "git.lost.host/meutraa/eotw-mods/internal/game"

// Auto marks everything that still needs to be hit as hit, dead on.
// It lets the player watch a chart play through without the health and
// feedback systems getting in the way.
type Auto struct{}

func (Auto) ApplyToHitData(chart *ChartWithModifiers, hitData []game.HitData, data *DataGroup) {
	for i := range hitData {
		for k, state := range hitData[i].Hit {
			if !state.Pending() {
				continue
			}
			hitData[i].Hit[k] = game.HitDone
			if k < len(hitData[i].Delta) {
				hitData[i].Delta[k] = 0
			}
		}
	}
}

// No auto score should be saved
func (Auto) Status() Status { return StatusDisqualified }

func (Auto) Name() string { return "Auto" }

func (Auto) Description() string { return "Automatically plays the chart for you" }

func (Auto) Visible() bool { return true }
