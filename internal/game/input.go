//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"skyrings/internal/flight"
)

// Input routes glfw pointer callbacks into the drag mapper and tracks key
// edges for the loop. Callbacks fire inside PollEvents on the main thread,
// so they share the loop goroutine with Step.
type Input struct {
	drag     *flight.DragInput
	prevKeys map[glfw.Key]bool
}

func NewInput(drag *flight.DragInput) *Input {
	return &Input{
		drag:     drag,
		prevKeys: make(map[glfw.Key]bool),
	}
}

// Attach installs the mouse callbacks on window.
func (in *Input) Attach(window *glfw.Window) {
	window.SetMouseButtonCallback(func(w *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if btn != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			in.drag.Down(w.GetCursorPos())
		case glfw.Release:
			in.drag.Up()
		}
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		in.drag.Move(x, y)
	})
	window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if !entered {
			in.drag.Up()
		}
	})
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// framebufferScale is the ratio of framebuffer pixels to window coordinates.
// Pointer positions arrive in window coordinates; the HUD draws in pixels.
func framebufferScale(window *glfw.Window, fbW int) float32 {
	winW, _ := window.GetSize()
	if winW <= 0 {
		return 1
	}
	return float32(fbW) / float32(winW)
}
