package theme

import (
	"fmt"
	"image/color"
	"os"

	"git.lost.host/meutraa/eotw-mods/internal/mods"
	"golang.org/x/term"
)

type DefaultTheme struct {
	Color bool
}

// NewDefaultTheme only colours output written to a terminal.
func NewDefaultTheme(out *os.File) *DefaultTheme {
	return &DefaultTheme{Color: term.IsTerminal(int(out.Fd()))}
}

func (t *DefaultTheme) paint(c color.RGBA, s string) string {
	if !t.Color {
		return s
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderStatus(status mods.Status) string {
	return t.paint(getStatusColor(status), fmt.Sprintf("%-12v", status))
}

func (t *DefaultTheme) RenderMod(m mods.Mod) string {
	return fmt.Sprintf("%-10v %v  %v", m.Name(), t.RenderStatus(m.Status()), m.Description())
}

var (
	statusColors = map[mods.Status]color.RGBA{
		mods.StatusNeutral:      {0, 236, 128, 255}, // green
		mods.StatusReserved:     {236, 195, 0, 255}, // yellow
		mods.StatusDisqualified: {236, 30, 0, 255},  // red
	}
	otherColor = color.RGBA{255, 255, 255, 255}
)

func getStatusColor(s mods.Status) color.RGBA {
	col, ok := statusColors[s]
	if !ok {
		return otherColor
	}
	return col
}
