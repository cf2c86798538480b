package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"skyrings/internal/audio"
	"skyrings/internal/config"
	"skyrings/internal/flight"
	"skyrings/internal/scene"
)

const frameInterval = 16 * time.Millisecond

const helpLine = "drag: steer  p: pause  q: quit"

// Game is the terminal frontend. Only the loop goroutine touches state;
// the tcell event pump just forwards events.
type Game struct {
	screen tcell.Screen
	state  *flight.State
	raster *Raster
	canvas Canvas
	frame  scene.Frame

	mouseDown bool
	sky       tcell.Style
}

func newGame(screen tcell.Screen, cfg config.Config) *Game {
	sr, sg, sb := scene.Palette.Sky.R, scene.Palette.Sky.G, scene.Palette.Sky.B
	return &Game{
		screen: screen,
		state:  flight.NewState(cfg.Tuning, cfg.Seed),
		raster: NewRaster(cfg.Tuning.Rings.Radius),
		sky:    tcell.StyleDefault.Background(tcell.NewRGBColor(int32(sr), int32(sg), int32(sb))),
	}
}

// Run plays in the terminal until the player quits or ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	g := newGame(screen, cfg)
	snd := audio.Start(cfg.Mute, g.state.Events)
	defer snd.Close()

	return g.run(ctx)
}

func (g *Game) run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			g.state.Advance(dt)
			g.draw()
		}
	}
}

// handleInput returns false when the player asked to quit.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			if ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == 'c' {
				return false
			}
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'p', 'P', ' ':
				g.state.TogglePause()
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		g.pointer(x, y, ev.Buttons()&tcell.Button1 != 0)

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// pointer turns button-state samples into drag down/move/up.
func (g *Game) pointer(cx, cy int, pressed bool) {
	px := float64(cx * CellPxW)
	py := float64(cy * CellPxH)
	switch {
	case pressed && !g.mouseDown:
		g.mouseDown = true
		g.state.Input.Down(px, py)
	case pressed:
		g.state.Input.Move(px, py)
	case g.mouseDown:
		g.mouseDown = false
		g.state.Input.Up()
	}
}

func (g *Game) draw() {
	w, h := g.screen.Size()
	g.canvas.Resize(w, h)
	g.canvas.Clear()

	g.frame.Build(g.state, Aspect(w, h))
	g.raster.Draw(&g.frame, &g.canvas)

	status := scene.ScoreText(g.frame.Score)
	col := scene.Palette.Text
	if g.frame.Paused {
		status += "  PAUSED"
		col = scene.Palette.TextPaused
	}
	g.canvas.Text(1, 0, status, col)
	g.canvas.Text(1, h-1, helpLine, scene.Palette.Text)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := g.canvas.At(x, y)
			st := g.sky
			if c.Ch != ' ' {
				st = st.Foreground(tcell.NewRGBColor(int32(c.Color.R), int32(c.Color.G), int32(c.Color.B)))
			}
			g.screen.SetContent(x, y, c.Ch, nil, st)
		}
	}
	g.screen.Show()
}
