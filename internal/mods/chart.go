package mods

import "git.lost.host/meutraa/eotw-mods/internal/game"

// ChartWithModifiers is a read only view of a chart and the mods active on it,
// in the order they are applied.
type ChartWithModifiers struct {
	chart *game.Chart
	mods  []Mod
}

func NewChartWithModifiers(chart *game.Chart, mods []Mod) *ChartWithModifiers {
	return &ChartWithModifiers{
		chart: chart,
		mods:  append([]Mod(nil), mods...),
	}
}

func (c *ChartWithModifiers) Chart() *game.Chart {
	return c.chart
}

func (c *ChartWithModifiers) Mods() []Mod {
	return append([]Mod(nil), c.mods...)
}

func (c *ChartWithModifiers) Has(name string) bool {
	for _, m := range c.mods {
		if m.Name() == name {
			return true
		}
	}
	return false
}

func (c *ChartWithModifiers) Status() Status {
	return Aggregate(c.mods...)
}

func (c *ChartWithModifiers) ModNames() []string {
	names := make([]string, len(c.mods))
	for i, m := range c.mods {
		names[i] = m.Name()
	}
	return names
}
