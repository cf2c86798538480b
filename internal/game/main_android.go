//go:build android

package game

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"skyrings/internal/audio"
	"skyrings/internal/config"
	"skyrings/internal/flight"
	"skyrings/internal/scene"
)

type mobileGame struct {
	state *flight.State
	rend  *mobileRenderer
	frame scene.Frame
	hud   scene.HUD

	// touch state
	activeTouch touch.Sequence
	touchDown   bool

	fbWidth     int
	fbHeight    int
	pixelsPerPt float32
}

func newMobileGame(cfg config.Config) *mobileGame {
	return &mobileGame{
		state:       flight.NewState(cfg.Tuning, cfg.Seed),
		rend:        newMobileRenderer(cfg.Tuning.Rings),
		pixelsPerPt: 1,
	}
}

// handleTouch follows one finger at a time. Touch positions arrive in pixels
// and are fed to the drag mapper in points so drag sensitivity matches the
// desktop.
func (g *mobileGame) handleTouch(e touch.Event) {
	x := float64(e.X / g.pixelsPerPt)
	y := float64(e.Y / g.pixelsPerPt)
	switch e.Type {
	case touch.TypeBegin:
		if g.touchDown {
			return
		}
		g.activeTouch = e.Sequence
		g.touchDown = true
		g.state.Input.Down(x, y)
	case touch.TypeMove:
		if g.touchDown && e.Sequence == g.activeTouch {
			g.state.Input.Move(x, y)
		}
	case touch.TypeEnd:
		if g.touchDown && e.Sequence == g.activeTouch {
			g.touchDown = false
			g.state.Input.Up()
		}
	}
}

func (g *mobileGame) step(dt float64) {
	if dt > 0.1 {
		dt = 0.1
	}
	g.state.Advance(dt)
	g.frame.Build(g.state, float32(g.fbWidth)/float32(g.fbHeight))
	g.hud.Build(&g.frame, g.fbWidth, g.fbHeight, g.pixelsPerPt)
}

// RunAndroid hands control to the mobile app loop.
func RunAndroid(cfg config.Config) {
	game := newMobileGame(cfg)
	snd := audio.Start(cfg.Mute, game.state.Events)

	app.Main(func(a app.App) {
		var glctx gl.Context
		var last time.Time

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					if err := game.rend.initGL(glctx); err != nil {
						fmt.Fprintf(os.Stderr, "gl init: %v\n", err)
						return
					}
					last = time.Now()
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if glctx != nil {
						game.rend.destroyGL(glctx)
						glctx = nil
					}
					// Losing the surface pauses; the player resumes by hand.
					if !game.state.Paused {
						game.state.TogglePause()
					}
				}
				if e.To == lifecycle.StageDead {
					snd.Close()
					return
				}

			case size.Event:
				game.fbWidth = e.WidthPx
				game.fbHeight = e.HeightPx
				if e.PixelsPerPt > 0 {
					game.pixelsPerPt = e.PixelsPerPt
				}

			case touch.Event:
				if e.Type == touch.TypeBegin && game.state.Paused {
					game.state.TogglePause()
				}
				game.handleTouch(e)

			case paint.Event:
				if glctx == nil || game.fbWidth <= 0 || game.fbHeight <= 0 {
					continue
				}
				now := time.Now()
				dt := now.Sub(last).Seconds()
				last = now
				game.step(dt)
				game.rend.draw(glctx, &game.frame, &game.hud, game.fbWidth, game.fbHeight, game.pixelsPerPt)
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
