package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/colors"
)

// GLFWWindow adapts a GLFW window and its input to colors.Window.
type GLFWWindow struct {
	window *glfw.Window
	input  *colors.InputState
}

var _ colors.Window = (*GLFWWindow)(nil)

// NewGLFWWindow wraps window and installs its key callback.
func NewGLFWWindow(window *glfw.Window) *GLFWWindow {
	w := &GLFWWindow{
		window: window,
		input:  colors.NewInputState(),
	}
	window.SetKeyCallback(w.keyCallback)
	return w
}

// PollEvents clears last frame's transitions and processes pending events.
func (w *GLFWWindow) PollEvents() {
	w.input.Reset()
	glfw.PollEvents()
}

// Input returns the key state collected by the last PollEvents.
func (w *GLFWWindow) Input() *colors.InputState {
	return w.input
}

func (w *GLFWWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *GLFWWindow) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *GLFWWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

// Time returns the GLFW timer in seconds.
func (w *GLFWWindow) Time() float64 {
	return glfw.GetTime()
}

func (w *GLFWWindow) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == colors.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		w.input.SetKey(k, true)
	case glfw.Release:
		w.input.SetKey(k, false)
	}
}

// glfwKeyToKey maps GLFW keys to colors keys.
func glfwKeyToKey(key glfw.Key) colors.Key {
	switch key {
	case glfw.KeyEscape:
		return colors.KeyEscape
	case glfw.KeyEnter:
		return colors.KeyEnter
	case glfw.KeySpace:
		return colors.KeySpace
	default:
		return colors.KeyNone
	}
}
