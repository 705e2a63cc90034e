package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/colors"
)

// Context owns the GLFW library, one window and its current GL context.
// It must be created and used on the main OS thread.
type Context struct {
	window *GLFWWindow
	device Device
	closed bool
}

// NewContext initializes GLFW, opens a window described by cfg, makes its
// context current and loads the GL entry points.
func NewContext(cfg colors.Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	colors.Logger().Info("opengl context created",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"width", cfg.Width, "height", cfg.Height)

	return &Context{window: NewGLFWWindow(window)}, nil
}

// Window returns the context's window.
func (c *Context) Window() *GLFWWindow { return c.window }

// Device returns the context's GL command surface.
func (c *Context) Device() Device { return c.device }

// Err reports the first pending GL error, if any.
func (c *Context) Err() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%04x", code)
	}
	return nil
}

// Close destroys the window and shuts GLFW down. Only the first call has
// any effect.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.window.window.Destroy()
	glfw.Terminate()
	colors.Logger().Info("opengl context closed")
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
