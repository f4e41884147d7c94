//go:build gpu

package gldriver

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Open creates a hidden window with its own GL context and makes it current
// on the calling thread. The caller must have locked the OS thread.
func Open(cfg WindowConfig) (*Driver, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrNoContext, err)
	}
	window.MakeContextCurrent()

	d, err := newDriver(func(name string) unsafe.Pointer {
		return glfw.GetProcAddress(name)
	})
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}
	d.window = window
	return d, nil
}
