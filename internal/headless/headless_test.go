package headless

import (
	"context"
	"errors"
	"testing"

	"skyrings/internal/config"
	"skyrings/internal/flight"
)

func gameConfig(seed uint64) config.Config {
	return config.Config{Tuning: flight.DefaultTuning(), Seed: seed}
}

func TestRunStopsAfterTicks(t *testing.T) {
	res, err := Run(context.Background(), gameConfig(1), Config{Hz: 5000, Ticks: 50})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Ticks != 50 {
		t.Fatalf("ticks: got=%d want=50", res.Ticks)
	}
}

func TestRunAutopilotScores(t *testing.T) {
	res, err := Run(context.Background(), gameConfig(7), Config{Hz: 5000, Ticks: 900, Autopilot: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Score == 0 {
		t.Fatalf("autopilot scored nothing: %v", res)
	}
	if res.Best == 0 || res.Best > res.Score {
		t.Fatalf("best streak %d inconsistent with score %d", res.Best, res.Score)
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := Config{Hz: 5000, Ticks: 400, Autopilot: true}
	a, err := Run(context.Background(), gameConfig(99), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(context.Background(), gameConfig(99), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a != b {
		t.Fatalf("same seed, different runs: %v vs %v", a, b)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, gameConfig(1), Config{Hz: 60})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err: got=%v want=%v", err, context.Canceled)
	}
}

func TestRunRejectsHz(t *testing.T) {
	if _, err := Run(context.Background(), gameConfig(1), Config{Hz: 2_000_000_000}); err == nil {
		t.Fatalf("expected an error for a sub-nanosecond tick")
	}
}

func TestAutopilotDragsTowardRing(t *testing.T) {
	s := flight.NewState(flight.DefaultTuning(), 4)
	p := NewAutopilot(s)
	p.Steer()

	if !s.Input.Dragging {
		t.Fatalf("autopilot did not press the pointer")
	}
	i := p.nextRing()
	if i < 0 {
		t.Fatalf("no ring ahead at start")
	}
	v := s.Field.ViewPos(i, s.Offset)
	if d := v.X - s.Input.TargetX; d > 1e-6 || d < -1e-6 {
		t.Fatalf("TargetX: got=%v want=%v", s.Input.TargetX, v.X)
	}
	if d := v.Y - s.Input.TargetY; d > 1e-6 || d < -1e-6 {
		t.Fatalf("TargetY: got=%v want=%v", s.Input.TargetY, v.Y)
	}
}
