package theme

import "git.lost.host/meutraa/ritmo/internal/game"

type Theme interface {
	RenderNote(d game.Direction) string
	RenderTarget() string
}
