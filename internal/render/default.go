package render

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/ritmo/internal/graphics"
	"golang.org/x/term"
)

type DefaultRenderer struct {
	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration

	// World mapping for note visuals: worldX maps to a terminal column.
	noteRow     int
	originCol   int
	originX     float64
	colsPerUnit float64
}

type decoration struct {
	Row, Col int
	Content  string
	Frames   int // remaining frames until removed
}

func (r *DefaultRenderer) Init() error {
	state, err := term.MakeRaw(int(os.Stdout.Fd()))
	if nil != err {
		return err
	}
	r.restoreState = state

	fmt.Printf("%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Printf("%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

// MapWorld sets how travel-axis coordinates project onto the note row.
func (r *DefaultRenderer) MapWorld(noteRow, originCol int, originX, colsPerUnit float64) {
	r.noteRow = noteRow
	r.originCol = originCol
	r.originX = originX
	r.colsPerUnit = colsPerUnit
}

func (r *DefaultRenderer) worldColumn(x float64) int {
	return r.originCol + int(math.Round((x-r.originX)*r.colsPerUnit))
}

func (r *DefaultRenderer) AddDecoration(row, col int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		Row:     row,
		Col:     col,
		Content: content,
		Frames:  frames,
	})
	r.Fill(row, col, content)
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			r.Fill(d.Row, d.Col, strings.Repeat(" ", decorationWidth(d.Content)))
			continue
		}
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

func decorationWidth(content string) int {
	// Escape sequences carry no width; count printable runes only.
	width := 0
	inEscape := false
	for _, c := range content {
		switch {
		case c == '\033':
			inEscape = true
		case inEscape:
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				inEscape = false
			}
		default:
			width++
		}
	}
	return width
}

func (r *DefaultRenderer) RenderLoop(
	period time.Duration,
	render func(now time.Time, delta time.Duration) bool,
) {
	cont := true
	last := time.Now()
	for cont {
		now := time.Now()
		delta := now.Sub(last)
		last = now
		deadline := now.Add(period)

		cont = render(now, delta)

		r.tickDecorations()
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c graphics.Color, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H\033[38;2;")
	r.buffer.WriteString(strconv.Itoa(int(c.R)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(c.G)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(c.B)))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) flush() {
	os.Stdout.WriteString(r.buffer.String())
	r.buffer.Reset()
}
