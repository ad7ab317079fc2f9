package parser

import (
	"errors"

	"git.lost.host/meutraa/eotw-mods/internal/game"
)

var (
	ErrNoBPM = errors.New("chart has no bpms")
)

type Parser interface {
	Parse(file string) ([]*game.Chart, error)
}
