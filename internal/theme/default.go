package theme

import (
	"fmt"

	"git.lost.host/meutraa/ritmo/internal/game"
	"git.lost.host/meutraa/ritmo/internal/graphics"
)

type DefaultTheme struct{}

const targetSym = "◎"

var (
	noteSyms = [game.NDirections]string{"↑", "↓", "←", "→"}

	noteColor   = graphics.Color{236, 30, 0}
	targetColor = graphics.Color{236, 195, 0}
)

func (t *DefaultTheme) RenderNote(d game.Direction) string {
	sym := "?"
	if int(d) < len(noteSyms) {
		sym = noteSyms[d]
	}
	return colored(noteColor, sym)
}

func (t *DefaultTheme) RenderTarget() string {
	return colored(targetColor, targetSym)
}

func colored(c graphics.Color, sym string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}
