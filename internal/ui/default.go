package ui

import (
	"fmt"

	"git.lost.host/meutraa/ritmo/internal/render"
)

// DefaultSink draws score, streak and hit messages onto the terminal. All
// writes are best-effort; the renderer buffers and flushes on its own.
type DefaultSink struct {
	Renderer render.Renderer

	ScoreRow, StreakRow, MessageRow int
	Column                          int

	// Streak tiers for the multiplier hint next to the counter.
	ShortStreak, LongStreak         int
	ShortMultiplier, LongMultiplier float64

	MessageFrames int
}

func (s *DefaultSink) UpdateScore(score float64) {
	if nil == s.Renderer {
		return
	}
	s.Renderer.Fill(s.ScoreRow, s.Column, fmt.Sprintf(" Score: %6.0f", score))
}

func (s *DefaultSink) UpdateStreak(streak int) {
	if nil == s.Renderer {
		return
	}
	hint := ""
	if s.LongStreak > 0 && streak >= s.LongStreak {
		hint = fmt.Sprintf(" (x%.1f)", s.LongMultiplier)
	} else if s.ShortStreak > 0 && streak >= s.ShortStreak {
		hint = fmt.Sprintf(" (x%.1f)", s.ShortMultiplier)
	}
	s.Renderer.Fill(s.StreakRow, s.Column, fmt.Sprintf("Streak: %6v%-8v", streak, hint))
}

func (s *DefaultSink) ShowMessage(text string) {
	if nil == s.Renderer {
		return
	}
	frames := s.MessageFrames
	if frames <= 0 {
		frames = 45
	}
	s.Renderer.AddDecoration(s.MessageRow, s.Column, fmt.Sprintf("%-12v", text), frames)
}
