package render

// Visual is a single note glyph on the note row. The engine moves it along
// the travel axis and removes it; it never looks inside.
type Visual struct {
	r       *DefaultRenderer
	col     int
	content string
	drawn   bool
}

func (r *DefaultRenderer) NewNoteVisual(content string, x float64) *Visual {
	v := &Visual{r: r, col: r.worldColumn(x), content: content}
	v.draw()
	return v
}

func (v *Visual) Move(x float64) {
	col := v.r.worldColumn(x)
	if col == v.col && v.drawn {
		return
	}
	v.clear()
	v.col = col
	v.draw()
}

func (v *Visual) Remove() {
	v.clear()
	v.drawn = false
}

func (v *Visual) draw() {
	v.r.Fill(v.r.noteRow, v.col, v.content)
	v.drawn = true
}

func (v *Visual) clear() {
	if v.drawn {
		v.r.Fill(v.r.noteRow, v.col, " ")
	}
}
