package theme

import "git.lost.host/meutraa/eotw-mods/internal/mods"

type Theme interface {
	RenderMod(m mods.Mod) string
	RenderStatus(status mods.Status) string
}
