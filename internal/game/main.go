//go:build !android

package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"skyrings/internal/audio"
	"skyrings/internal/config"
	"skyrings/internal/flight"
	"skyrings/internal/scene"
)

// RunDesktop opens a window and plays until it is closed.
func RunDesktop(cfg config.Config) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	state := flight.NewState(cfg.Tuning, cfg.Seed)

	snd := audio.Start(cfg.Mute, state.Events)
	defer snd.Close()

	rings := cfg.Tuning.Rings
	rend, err := NewRenderer(scene.BuildMeshes(float32(rings.Radius), float32(rings.Tube)))
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput(state.Input)
	input.Attach(window)

	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)

	// Reusable per-frame buffers.
	var frame scene.Frame
	var hud scene.HUD

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		pauseP := input.JustPressed(window, glfw.KeyP)
		pauseSpace := input.JustPressed(window, glfw.KeySpace)
		if pauseP || pauseSpace {
			state.TogglePause()
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		state.Advance(dt)

		scale := framebufferScale(window, fbW)
		frame.Build(state, float32(fbW)/float32(fbH))
		hud.Build(&frame, fbW, fbH, scale)
		rend.Draw(&frame, &hud, fbW, fbH, scale)
		window.SwapBuffers()
	}
	return nil
}
