package ui

// Sink receives score, streak and message updates. Calls are fire-and-forget;
// a sink that fails to display must never affect scoring.
type Sink interface {
	UpdateScore(score float64)
	UpdateStreak(streak int)
	ShowMessage(text string)
}

// Nop discards everything. Used headless and in tests.
type Nop struct{}

func (Nop) UpdateScore(float64) {}
func (Nop) UpdateStreak(int)    {}
func (Nop) ShowMessage(string)  {}
