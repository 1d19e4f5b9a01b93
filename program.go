package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/ritmo/internal/clock"
	"git.lost.host/meutraa/ritmo/internal/config"
	"git.lost.host/meutraa/ritmo/internal/engine"
	"git.lost.host/meutraa/ritmo/internal/game"
	"git.lost.host/meutraa/ritmo/internal/input"
	"git.lost.host/meutraa/ritmo/internal/parser"
	"git.lost.host/meutraa/ritmo/internal/render"
	"git.lost.host/meutraa/ritmo/internal/score"
	"git.lost.host/meutraa/ritmo/internal/theme"
	"git.lost.host/meutraa/ritmo/internal/ui"
	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"golang.org/x/term"
)

type Program struct {
	Parser   parser.Parser
	Theme    theme.Theme
	Renderer *render.DefaultRenderer
	History  *score.History

	track      *game.Track
	controller *score.Controller
	playback   *clock.Playback
	engine     *engine.Engine
	keys       *input.Keyboard
	streamer   beep.StreamSeekCloser

	rows, cols int
	sideCol    int
	targetRow  int
	targetCol  int

	started       bool
	startDeadline time.Time
	endAt         time.Duration

	pastRuns []score.Run
}

// noteVisuals hands the engine opaque terminal glyph handles.
type noteVisuals struct {
	r  *render.DefaultRenderer
	th theme.Theme
}

func (h noteVisuals) NoteVisual(d game.Direction, x float64) engine.NoteVisual {
	return h.r.NewNoteVisual(h.th.RenderNote(d), x)
}

func (p *Program) Init() error {
	p.Parser = &parser.DefaultParser{}
	p.Theme = &theme.DefaultTheme{}
	p.Renderer = &render.DefaultRenderer{}
	p.History = &score.History{}

	var audioFile, oggFile, trackFile string
	if err := filepath.Walk(*config.Directory, func(fp string, info os.FileInfo, err error) error {
		switch path.Ext(info.Name()) {
		case ".mp3":
			audioFile = fp
		case ".ogg":
			oggFile = fp
		case ".json":
			trackFile = fp
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}

	if (audioFile == "" && oggFile == "") || trackFile == "" {
		return errors.New("unable to find .json and .mp3/.ogg file in given directory")
	}

	// An invalid track blocks gameplay entirely; skipping bad records would
	// silently desynchronize everything after them.
	track, err := p.Parser.Parse(trackFile)
	if nil != err {
		return err
	}
	p.track = track

	if err := p.History.Init(*config.Database); nil != err {
		return fmt.Errorf("unable to open run history: %w", err)
	}
	p.pastRuns = p.History.Load(track.Sum)

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	p.keys = input.NewKeyboard(keyChannel, *config.HoldWindow)

	if oggFile != "" {
		audioFile = oggFile
	}
	log.Printf("Opening %v (%v)\n", audioFile, trackFile)
	f, err := os.Open(audioFile)
	if nil != err {
		return err
	}
	var format beep.Format
	if oggFile != "" {
		p.streamer, format, err = vorbis.Decode(f)
	} else {
		p.streamer, format, err = mp3.Decode(f)
	}
	if nil != err {
		return err
	}
	speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60))

	p.cols, p.rows, err = term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}

	cfg := config.Engine()
	p.targetRow = p.rows >> 1
	p.targetCol = p.cols >> 1
	p.sideCol = 2

	colsPerUnit := float64(p.targetCol-2) / (cfg.TargetX - cfg.SpawnX)
	p.Renderer.MapWorld(p.targetRow, 2, cfg.SpawnX, colsPerUnit)

	sink := &ui.DefaultSink{
		Renderer:        p.Renderer,
		ScoreRow:        2,
		StreakRow:       3,
		MessageRow:      5,
		Column:          p.sideCol,
		ShortStreak:     cfg.Rules.ShortStreak,
		LongStreak:      cfg.Rules.LongStreak,
		ShortMultiplier: cfg.Rules.ShortMultiplier,
		LongMultiplier:  cfg.Rules.LongMultiplier,
	}
	p.controller = score.NewController(cfg.Rules, sink)

	p.playback = clock.NewPlayback()
	p.engine, err = engine.New(cfg, p.playback, track, p.controller, noteVisuals{p.Renderer, p.Theme})
	if nil != err {
		return err
	}

	p.endAt = 5 * time.Second
	if len(track.Events) > 0 {
		p.endAt += track.Events[len(track.Events)-1].Time
	}

	return p.Renderer.Init()
}

func (p *Program) Deinit() {
	if nil != p.Renderer {
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal:", err)
		}
	}
	if err := keyboard.Close(); nil != err {
		log.Println("unable to close keyboard:", err)
	}
	if nil != p.streamer {
		p.streamer.Close()
	}
	if nil != p.History {
		p.History.Deinit()
	}
}

func (p *Program) Run() error {
	p.Renderer.RenderLoop(*config.FramePeriod, func(now time.Time, delta time.Duration) bool {
		if !p.started {
			if p.startDeadline.IsZero() {
				p.startDeadline = now.Add(*config.Delay)
			} else if now.After(p.startDeadline) {
				speaker.Play(p.streamer)
				p.playback.Start()
				p.started = true
			}
		}

		if quit := p.keys.Poll(); quit {
			return false
		}

		p.engine.Tick(delta, input.TakeSnapshot(p.keys))
		p.renderStatus()

		if p.started && p.engine.Done() && p.engine.Clock().Now() > p.endAt {
			return false
		}
		return true
	})

	p.playback.Stop()
	run := score.Run{
		Sum:       p.track.Sum,
		Score:     p.controller.Score(),
		MaxStreak: p.controller.MaxStreak(),
		Counts:    p.controller.Counts(),
	}
	p.History.Save(run)

	counts := p.controller.Counts()
	fmt.Printf("%v: %.0f points, best streak %v\n",
		p.track.Name, run.Score, run.MaxStreak)
	fmt.Printf("perfect %v  partial %v  miss %v  empty %v\n",
		counts[game.Perfect], counts[game.Partial], counts[game.Miss], counts[game.EmptyMiss])
	return nil
}

func (p *Program) renderStatus() {
	// Notes clear their previous cell as they move, so the target glyph is
	// redrawn every frame.
	p.Renderer.Fill(p.targetRow, p.targetCol, p.Theme.RenderTarget())

	counts := p.controller.Counts()
	p.Renderer.Fill(p.rows-6, p.sideCol, fmt.Sprintf("Perfect: %5v", counts[game.Perfect]))
	p.Renderer.Fill(p.rows-5, p.sideCol, fmt.Sprintf("    Hit: %5v", counts[game.Partial]))
	p.Renderer.Fill(p.rows-4, p.sideCol, fmt.Sprintf("   Miss: %5v", counts[game.Miss]))
	p.Renderer.Fill(p.rows-3, p.sideCol, fmt.Sprintf("  Empty: %5v", counts[game.EmptyMiss]))

	if len(p.pastRuns) > 0 {
		best := p.pastRuns[0]
		for _, r := range p.pastRuns[1:] {
			if r.Score > best.Score {
				best = r
			}
		}
		p.Renderer.Fill(p.rows-2, p.sideCol, fmt.Sprintf("   Best: %5.0f", best.Score))
	}
}
