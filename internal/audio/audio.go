//go:build !audio_stub

package audio

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const BitDepth = oto.FormatFloat32LE

// Limit on overlapping effects; more only muddies the mix.
const maxVoices = 4

// System plays procedurally generated effects and the engine hum.
// A nil *System is valid and silent.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	voices int32

	humMu sync.Mutex
	hum   oto.Player

	sfxVolume float64
	humVolume float64
}

// New opens the audio device.
func New() (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &System{ctx: ctx, ready: ready, sfxVolume: 0.6, humVolume: 0.18}, nil
}

func (a *System) isReady() bool {
	if a == nil {
		return false
	}
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// Play fires a one-shot effect. step varies the pitch of chimes so a streak
// of rings climbs a scale.
func (a *System) Play(kind SoundKind, step int) {
	if !a.isReady() {
		return
	}
	if atomic.LoadInt32(&a.voices) >= maxVoices {
		return
	}
	samples := generateSound(kind, step)
	if len(samples) == 0 {
		return
	}
	atomic.AddInt32(&a.voices, 1)
	go func() {
		defer atomic.AddInt32(&a.voices, -1)
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(a.sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// StartHum begins the looping engine drone once the device is ready.
func (a *System) StartHum() {
	if a == nil {
		return
	}
	go func() {
		<-a.ready
		p := a.ctx.NewPlayer(&humReader{})
		p.SetVolume(a.humVolume)
		p.Play()
		a.humMu.Lock()
		a.hum = p
		a.humMu.Unlock()
	}()
}

// SetHumPaused mutes the drone while the game is paused.
func (a *System) SetHumPaused(paused bool) {
	if a == nil {
		return
	}
	a.humMu.Lock()
	defer a.humMu.Unlock()
	if a.hum == nil {
		return
	}
	if paused {
		a.hum.Pause()
	} else {
		a.hum.Play()
	}
}

func (a *System) Close() {
	if a == nil {
		return
	}
	a.humMu.Lock()
	defer a.humMu.Unlock()
	if a.hum != nil {
		a.hum.Close()
		a.hum = nil
	}
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
