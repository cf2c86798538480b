package audio

import (
	"fmt"
	"os"

	"skyrings/internal/flight"
)

// Attach wires game events to sound effects.
func (a *System) Attach(bus *flight.EventBus) {
	if a == nil {
		return
	}
	bus.Subscribe(flight.EventRingPassed, func(e flight.Event) {
		a.Play(SoundChime, e.Streak-1)
	})
	bus.Subscribe(flight.EventRingRecycled, func(e flight.Event) {
		a.Play(SoundWhoosh, e.Ring)
	})
	bus.Subscribe(flight.EventPaused, func(flight.Event) {
		a.Play(SoundPause, 0)
		a.SetHumPaused(true)
	})
	bus.Subscribe(flight.EventResumed, func(flight.Event) {
		a.Play(SoundResume, 0)
		a.SetHumPaused(false)
	})
}

// Start opens the sound device and hooks it to bus. Audio is optional: on
// failure the error goes to stderr and the returned nil System stays silent.
func Start(mute bool, bus *flight.EventBus) *System {
	if mute {
		return nil
	}
	snd, err := New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		return nil
	}
	snd.Attach(bus)
	snd.StartHum()
	return snd
}
