package flight

type EventType int

const (
	EventRingPassed EventType = iota
	EventRingRecycled
	EventScoreChanged
	EventPaused
	EventResumed
)

type Event struct {
	Type   EventType
	Ring   int  // pool index, -1 when not ring related
	Pos    Vec3 // ring view position at the time of the event
	Score  int
	Streak int
	Missed bool // EventRingRecycled: the ring was never flown through
}

type EventHandler func(Event)

// EventBus fans events out to subscribers synchronously on the emitting
// goroutine. Handlers must not block.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
