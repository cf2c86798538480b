// Package headless runs the simulation without any window or terminal, at a
// fixed tick rate. It is used for soak runs and scripted checks.
package headless

import (
	"context"
	"fmt"
	"math"
	"time"

	"skyrings/internal/config"
	"skyrings/internal/flight"
)

// Config controls the no-window runner.
type Config struct {
	Hz        int
	Ticks     uint64 // stop after this many ticks; 0 runs until ctx ends
	Autopilot bool   // steer toward the next ring with synthetic drags
}

// Result summarises a run.
type Result struct {
	Ticks    uint64
	Score    int
	Missed   int
	Recycled int
	Best     int // longest streak
}

func (r Result) String() string {
	return fmt.Sprintf("ticks=%d score=%d missed=%d recycled=%d best_streak=%d",
		r.Ticks, r.Score, r.Missed, r.Recycled, r.Best)
}

// Run ticks a fresh session until cfg.Ticks is reached or ctx is cancelled.
// Cancellation returns the partial result together with ctx.Err().
func Run(ctx context.Context, game config.Config, cfg Config) (Result, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = flight.TickRate
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return Result{}, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	s := flight.NewState(game.Tuning, game.Seed)
	var res Result
	s.Events.Subscribe(flight.EventRingPassed, func(e flight.Event) {
		if e.Streak > res.Best {
			res.Best = e.Streak
		}
	})
	s.Events.Subscribe(flight.EventRingRecycled, func(e flight.Event) {
		res.Recycled++
		if e.Missed {
			res.Missed++
		}
	})

	var pilot *Autopilot
	if cfg.Autopilot {
		pilot = NewAutopilot(s)
	}

	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			res.Ticks, res.Score = s.Tick, s.Score
			return res, ctx.Err()
		case <-t.C:
			if pilot != nil {
				pilot.Steer()
			}
			s.Step()
			if cfg.Ticks > 0 && s.Tick >= cfg.Ticks {
				res.Ticks, res.Score = s.Tick, s.Score
				return res, nil
			}
		}
	}
}

// Autopilot flies by dragging, the same way a player does: it holds the
// pointer down and moves it by the amount that puts the target on the
// nearest ring still ahead.
type Autopilot struct {
	s      *flight.State
	cx, cy float64 // synthetic pointer
}

func NewAutopilot(s *flight.State) *Autopilot {
	return &Autopilot{s: s}
}

// Steer issues at most one drag move for the coming tick.
func (a *Autopilot) Steer() {
	in := a.s.Input
	if !in.Dragging {
		in.Down(a.cx, a.cy)
	}
	i := a.nextRing()
	if i < 0 {
		return
	}
	v := a.s.Field.ViewPos(i, a.s.Offset)
	tu := a.s.Tuning().Input
	dx := (v.X - in.TargetX) / tu.SensitivityX
	dy := -(v.Y - in.TargetY) / tu.SensitivityY
	if math.Abs(dx) < 1e-9 && math.Abs(dy) < 1e-9 {
		return
	}
	a.cx += dx
	a.cy += dy
	in.Move(a.cx, a.cy)
}

// nextRing returns the unpassed ring closest ahead of the airplane, or -1.
func (a *Autopilot) nextRing() int {
	best, bestZ := -1, math.Inf(-1)
	for i := range a.s.Field.Rings {
		if a.s.Field.Rings[i].Passed {
			continue
		}
		z := a.s.Field.ViewPos(i, a.s.Offset).Z
		if z < 0 && z > bestZ {
			best, bestZ = i, z
		}
	}
	return best
}
