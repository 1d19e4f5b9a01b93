package game

type JudgementKind uint8

const (
	Perfect JudgementKind = iota
	Partial
	Miss
	EmptyMiss
)

func (k JudgementKind) String() string {
	switch k {
	case Perfect:
		return "perfect"
	case Partial:
		return "partial"
	case Miss:
		return "miss"
	case EmptyMiss:
		return "empty miss"
	}
	return "unknown"
}

// Judgement is the committed outcome for one note, or an empty miss
// (NoteID 0) when a key was pressed with nothing eligible.
type Judgement struct {
	Kind   JudgementKind
	NoteID uint64
	Value  float64 // 1 for perfect, 0.5 for partial, 0 otherwise
}
