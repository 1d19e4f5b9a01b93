package render

import (
	"time"

	"git.lost.host/meutraa/ritmo/internal/graphics"
)

type Renderer interface {
	Init() error
	Deinit() error
	AddDecoration(row, col int, content string, frames int)
	RenderLoop(period time.Duration, render func(now time.Time, delta time.Duration) bool)
	Fill(row, column int, message string)
	FillColor(row, column int, c graphics.Color, message string)
}
