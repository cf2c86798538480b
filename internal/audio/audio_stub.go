//go:build audio_stub

package audio

import "errors"

// System is silent in audio_stub builds, for targets without a sound
// backend.
type System struct{}

func New() (*System, error) {
	return nil, errors.New("built without audio (audio_stub)")
}

func (a *System) Play(kind SoundKind, step int) {}
func (a *System) StartHum() {}
func (a *System) SetHumPaused(paused bool) {}
func (a *System) Close() {}
