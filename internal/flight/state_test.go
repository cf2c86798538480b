package flight

import (
	"math"
	"testing"
)

func TestStepConvergesWithoutOvershoot(t *testing.T) {
	s := NewState(DefaultTuning(), 1)
	s.Input.TargetX = 12
	s.Input.TargetY = -4

	for i := 0; i < 500; i++ {
		prev := s.Airplane.Pos
		s.Step()
		cur := s.Airplane.Pos
		if !(cur.X > prev.X && cur.X < 12) {
			t.Fatalf("tick %d: x=%f not strictly between %f and 12", i, cur.X, prev.X)
		}
		if !(cur.Y < prev.Y && cur.Y > -4) {
			t.Fatalf("tick %d: y=%f not strictly between %f and -4", i, cur.Y, prev.Y)
		}
	}
}

func TestStepFirstTickValues(t *testing.T) {
	s := NewState(DefaultTuning(), 1)
	s.Input.TargetX = 10
	s.Input.TargetY = 5
	s.Step()

	p := s.Airplane
	if !near(p.Pos.X, 0.5) || !near(p.Pos.Y, 0.25) {
		t.Fatalf("eased position: got=(%f, %f) want=(0.5, 0.25)", p.Pos.X, p.Pos.Y)
	}
	if !near(p.Bank, (10-0.5)*BankFactor) {
		t.Fatalf("bank: got=%f want=%f", p.Bank, (10-0.5)*BankFactor)
	}
	if !near(p.Pitch, (5-0.25)*PitchFactor) {
		t.Fatalf("pitch: got=%f want=%f", p.Pitch, (5-0.25)*PitchFactor)
	}
	if p.Pos.Z != 0 {
		t.Fatalf("airplane left its plane: z=%f", p.Pos.Z)
	}
	if s.Offset != ForwardSpeed {
		t.Fatalf("offset after 1 tick: got=%f want=%f", s.Offset, ForwardSpeed)
	}
	if s.Tick != 1 {
		t.Fatalf("tick: got=%d want=1", s.Tick)
	}
}

func TestStepAtRestHasNoAttitude(t *testing.T) {
	s := NewState(DefaultTuning(), 1)
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if s.Airplane.Bank != 0 || s.Airplane.Pitch != 0 || s.Airplane.Pos.X != 0 || s.Airplane.Pos.Y != 0 {
		t.Fatalf("idle airplane moved: %+v", s.Airplane)
	}
	if !near(s.Offset, 10*ForwardSpeed) {
		t.Fatalf("offset: got=%f want=%f", s.Offset, 10*ForwardSpeed)
	}
}

func TestRingAtOriginScoresOnce(t *testing.T) {
	s := NewState(DefaultTuning(), 7)
	r := &s.Field.Rings[0]
	r.Pos = Vec3{}

	var passes, scoreEvents int
	s.Events.Subscribe(EventRingPassed, func(e Event) {
		passes++
		if e.Ring != 0 {
			t.Fatalf("pass event for ring %d, want 0", e.Ring)
		}
	})
	s.Events.Subscribe(EventScoreChanged, func(e Event) { scoreEvents++ })

	s.Step()
	if s.Score != 1 {
		t.Fatalf("score after pass: got=%d want=1", s.Score)
	}
	if !r.Passed {
		t.Fatalf("ring not marked passed")
	}

	// Still inside the near plane for a few more ticks: no double scoring.
	for i := 0; i < 6; i++ {
		s.Step()
	}
	if s.Score != 1 || passes != 1 || scoreEvents != 1 {
		t.Fatalf("double scoring: score=%d passes=%d scoreEvents=%d", s.Score, passes, scoreEvents)
	}
}

func TestRingOutsideRadiusDoesNotScore(t *testing.T) {
	s := NewState(DefaultTuning(), 7)
	s.Field.Rings[0].Pos = Vec3{X: 4.5}
	s.Step()
	if s.Score != 0 || s.Field.Rings[0].Passed {
		t.Fatalf("ring 4.5 units away scored: score=%d passed=%v", s.Score, s.Field.Rings[0].Passed)
	}
}

func TestRingBehindCameraRecycled(t *testing.T) {
	s := NewState(DefaultTuning(), 3)
	r := &s.Field.Rings[0]
	r.Pos.Z = s.Camera.Pos.Z + 11
	r.Passed = true

	othersMin := math.Inf(1)
	for i := 1; i < len(s.Field.Rings); i++ {
		othersMin = math.Min(othersMin, s.Field.Rings[i].Pos.Z)
	}

	var recycled []int
	s.Events.Subscribe(EventRingRecycled, func(e Event) { recycled = append(recycled, e.Ring) })
	s.Step()

	if len(recycled) != 1 || recycled[0] != 0 {
		t.Fatalf("recycled rings: got=%v want=[0]", recycled)
	}
	if r.Passed {
		t.Fatalf("recycled ring still passed")
	}
	view := s.Field.ViewPos(0, s.Offset)
	if view.Z >= othersMin+s.Offset {
		t.Fatalf("recycled z=%f not ahead of field min=%f", view.Z, othersMin+s.Offset)
	}
	if view.X < RingMinX || view.X > RingMaxX || view.Y < RingMinY || view.Y > RingMaxY {
		t.Fatalf("recycled position out of spawn window: %+v", view)
	}
}

func TestFieldInvariantsOverLongFlight(t *testing.T) {
	tun := DefaultTuning()
	tun.Rings.RebaseDistance = 2000
	s := NewState(tun, 42)
	rng := NewRand(99)

	lastScore := 0
	rebased := false
	for i := 0; i < 20000; i++ {
		if i < 10000 {
			if i%30 == 0 {
				s.Input.Down(0, 0)
				s.Input.Move(rng.RangeF(-400, 400), rng.RangeF(-400, 400))
				s.Input.Up()
			}
		} else {
			steerToNextRing(s)
		}
		prevOffset := s.Offset
		s.Step()
		if s.Offset < prevOffset {
			rebased = true
		}

		if len(s.Field.Rings) != RingCount {
			t.Fatalf("tick %d: pool size changed to %d", i, len(s.Field.Rings))
		}
		if s.Score < lastScore {
			t.Fatalf("tick %d: score decreased %d -> %d", i, lastScore, s.Score)
		}
		lastScore = s.Score
		if s.Input.TargetX < TargetMinX || s.Input.TargetX > TargetMaxX ||
			s.Input.TargetY < TargetMinY || s.Input.TargetY > TargetMaxY {
			t.Fatalf("tick %d: target out of bounds (%f, %f)", i, s.Input.TargetX, s.Input.TargetY)
		}
		line := s.Camera.RecycleLine(RecycleMargin)
		for j := range s.Field.Rings {
			if z := s.Field.ViewPos(j, s.Offset).Z; z > line {
				t.Fatalf("tick %d: ring %d left behind at z=%f", i, j, z)
			}
		}
	}
	if !rebased {
		t.Fatalf("offset never rebased")
	}
	if s.Score == 0 {
		t.Fatalf("no rings scored in %d ticks", s.Tick)
	}
}

func TestRebaseKeepsViewPositions(t *testing.T) {
	tun := DefaultTuning()
	tun.Rings.RebaseDistance = 1
	s := NewState(tun, 5)
	s.Step()
	before := s.Field.ViewPos(3, s.Offset)
	s.Step() // offset reaches 1 and is folded in
	if s.Offset != 0 {
		t.Fatalf("offset not rebased: %f", s.Offset)
	}
	after := s.Field.ViewPos(3, s.Offset)
	if !near(after.Z, before.Z+ForwardSpeed) || after.X != before.X {
		t.Fatalf("view moved across rebase: before=%+v after=%+v", before, after)
	}
}

func TestAdvanceRunsWholeTicks(t *testing.T) {
	s := NewState(DefaultTuning(), 1)
	if n := s.Advance(2.5 / TickRate); n != 2 {
		t.Fatalf("ticks for 2.5 steps of time: got=%d want=2", n)
	}
	if n := s.Advance(10); n != MaxStepsPerAdvance {
		t.Fatalf("stall not capped: got=%d want=%d", n, MaxStepsPerAdvance)
	}
	if s.Tick != uint64(2+MaxStepsPerAdvance) {
		t.Fatalf("tick counter: got=%d", s.Tick)
	}
}

func TestPausedStateDoesNotAdvance(t *testing.T) {
	s := NewState(DefaultTuning(), 1)
	var paused, resumed int
	s.Events.Subscribe(EventPaused, func(Event) { paused++ })
	s.Events.Subscribe(EventResumed, func(Event) { resumed++ })

	s.TogglePause()
	if n := s.Advance(1); n != 0 || s.Tick != 0 {
		t.Fatalf("paused state advanced %d ticks", n)
	}
	s.TogglePause()
	if n := s.Advance(1.0 / TickRate); n != 1 {
		t.Fatalf("resumed state ran %d ticks, want 1", n)
	}
	if paused != 1 || resumed != 1 {
		t.Fatalf("pause events: paused=%d resumed=%d", paused, resumed)
	}
}

func TestSameSeedSameField(t *testing.T) {
	a := NewState(DefaultTuning(), 1234)
	b := NewState(DefaultTuning(), 1234)
	for i := range a.Field.Rings {
		if a.Field.Rings[i] != b.Field.Rings[i] {
			t.Fatalf("ring %d differs for same seed: %+v vs %+v", i, a.Field.Rings[i], b.Field.Rings[i])
		}
	}
}

// steerToNextRing points the target at the nearest ring still ahead.
func steerToNextRing(s *State) {
	best := -1
	bestZ := math.Inf(-1)
	for j := range s.Field.Rings {
		z := s.Field.ViewPos(j, s.Offset).Z
		if z < 0 && z > bestZ {
			best, bestZ = j, z
		}
	}
	if best < 0 {
		return
	}
	v := s.Field.ViewPos(best, s.Offset)
	s.Input.TargetX, s.Input.TargetY = v.X, v.Y
}

func TestStreakResetsOnMissedRing(t *testing.T) {
	s := NewState(DefaultTuning(), 21)
	s.Field.Rings[0].Pos = Vec3{}
	s.Step()
	if s.Streak != 1 {
		t.Fatalf("streak after pass: got=%d want=1", s.Streak)
	}

	var missed []bool
	s.Events.Subscribe(EventRingRecycled, func(e Event) { missed = append(missed, e.Missed) })

	// The passed ring falls behind first, then an unpassed one.
	s.Field.Rings[0].Pos.Z = 30
	s.Step()
	if s.Streak != 1 {
		t.Fatalf("recycling a passed ring broke the streak: %d", s.Streak)
	}
	s.Field.Rings[1].Pos.Z = 30
	s.Step()
	if s.Streak != 0 {
		t.Fatalf("missed ring did not reset streak: %d", s.Streak)
	}
	if len(missed) != 2 || missed[0] || !missed[1] {
		t.Fatalf("missed flags: %v", missed)
	}
}
