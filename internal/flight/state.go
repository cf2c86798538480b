package flight

// Airplane stays on the Z=0 plane; only X/Y follow the drag target.
type Airplane struct {
	Pos   Vec3
	Bank  float64 // rotation about the forward (Z) axis
	Pitch float64 // rotation about the lateral (X) axis
}

// State is the whole game session. One goroutine owns it: input handlers
// write through Input and the loop calls Step or Advance.
type State struct {
	Tick     uint64
	Score    int
	Streak   int     // rings passed since the last miss
	Offset   float64 // cumulative forward travel applied to the ring field
	Paused   bool
	Airplane Airplane
	Camera   Camera
	Input    *DragInput
	Field    *RingField
	Events   *EventBus

	tuning Tuning
	acc    float64 // unspent wall-clock time for Advance
}

func NewState(t Tuning, seed uint64) *State {
	return &State{
		Camera: DefaultCamera(),
		Input:  NewDragInput(t.Input),
		Field:  NewRingField(t.Rings, NewRand(seed)),
		Events: NewEventBus(),
		tuning: t,
	}
}

func (s *State) Tuning() Tuning { return s.tuning }

// Step advances the game by exactly one tick. Smoothing and speeds are per
// tick, so responsiveness is tied to the tick rate.
func (s *State) Step() {
	s.Tick++
	m := s.tuning.Motion
	p := &s.Airplane

	p.Pos.X += (s.Input.TargetX - p.Pos.X) * m.Smoothing
	p.Pos.Y += (s.Input.TargetY - p.Pos.Y) * m.Smoothing

	p.Bank = (s.Input.TargetX - p.Pos.X) * m.BankFactor
	p.Pitch = (s.Input.TargetY - p.Pos.Y) * m.PitchFactor

	s.Offset += m.ForwardSpeed

	passed, recycled := s.Field.Step(p.Pos, s.Offset, s.Camera.RecycleLine(s.tuning.Rings.RecycleMargin))
	for _, i := range passed {
		s.Score++
		s.Streak++
		s.Events.Emit(Event{Type: EventRingPassed, Ring: i, Pos: s.Field.ViewPos(i, s.Offset), Score: s.Score, Streak: s.Streak})
		s.Events.Emit(Event{Type: EventScoreChanged, Ring: i, Score: s.Score, Streak: s.Streak})
	}
	for _, rc := range recycled {
		if rc.Missed {
			s.Streak = 0
		}
		s.Events.Emit(Event{
			Type:   EventRingRecycled,
			Ring:   rc.Ring,
			Pos:    s.Field.ViewPos(rc.Ring, s.Offset),
			Score:  s.Score,
			Streak: s.Streak,
			Missed: rc.Missed,
		})
	}

	if s.Offset >= s.tuning.Rings.RebaseDistance {
		s.Field.Rebase(s.Offset)
		s.Offset = 0
	}
}

// Advance runs as many whole ticks as dt seconds of wall-clock time cover,
// carrying the remainder. Long stalls are capped at MaxStepsPerAdvance
// ticks so a hitch does not fast-forward the game. Returns ticks run.
func (s *State) Advance(dt float64) int {
	if s.Paused || dt <= 0 {
		return 0
	}
	const step = 1.0 / TickRate
	s.acc += dt
	n := 0
	for s.acc >= step && n < MaxStepsPerAdvance {
		s.Step()
		s.acc -= step
		n++
	}
	if n == MaxStepsPerAdvance {
		s.acc = 0
	}
	return n
}

// TogglePause flips the paused flag and drops any banked time.
func (s *State) TogglePause() {
	s.Paused = !s.Paused
	s.acc = 0
	if s.Paused {
		s.Events.Emit(Event{Type: EventPaused, Ring: -1, Score: s.Score})
	} else {
		s.Events.Emit(Event{Type: EventResumed, Ring: -1, Score: s.Score})
	}
}
