package parser

import "git.lost.host/meutraa/ritmo/internal/game"

type Parser interface {
	Parse(file string) (*game.Track, error)
}
