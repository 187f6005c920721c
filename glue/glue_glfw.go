// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package glue

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"quadgl.org/internal/gl"
)

// ErrInvalidWindow reports that the platform returned no usable window.
var ErrInvalidWindow = errors.New("glue: invalid window")

// Window is a native window with a current GL context. It must only be
// used from the main thread; call runtime.LockOSThread before Create.
type Window struct {
	win *glfw.Window
	f   gl.Functions
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Create initializes GLFW, opens a window with the hints from cfg and
// makes its GL context current on the calling thread.
func Create(cfg Config, title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glue: initializing glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Version[0])
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Version[1])
	if cfg.Profile == CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}
	glfw.WindowHint(glfw.RedBits, cfg.RedBits)
	glfw.WindowHint(glfw.GreenBits, cfg.GreenBits)
	glfw.WindowHint(glfw.BlueBits, cfg.BlueBits)
	glfw.WindowHint(glfw.AlphaBits, cfg.AlphaBits)
	glfw.WindowHint(glfw.DepthBits, cfg.DepthBits)
	glfw.WindowHint(glfw.StencilBits, cfg.StencilBits)
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.SRGBCapable, boolHint(cfg.SRGB))
	glfw.WindowHint(glfw.DoubleBuffer, boolHint(cfg.DoubleBuffer))

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glue: creating window: %w", err)
	}
	if win == nil {
		return nil, ErrInvalidWindow
	}
	win.MakeCurrent()

	f, err := gl.NewFunctions()
	if err != nil {
		win.Destroy()
		return nil, err
	}
	return &Window{win: win, f: f}, nil
}

// Functions returns the GL call surface of the window's context.
func (w *Window) Functions() gl.Functions {
	return w.f
}

// MakeCurrent binds the window's GL context to the calling thread.
func (w *Window) MakeCurrent() {
	w.win.MakeCurrent()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// SetSwapInterval enables or disables vsync for the current context.
func (w *Window) SetSwapInterval(on bool) {
	if on {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

// GetProcAddress resolves a GL symbol in the current context.
func (w *Window) GetProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// FramebufferSize returns the drawable size in pixels, which can differ
// from the window size on high-DPI displays.
func (w *Window) FramebufferSize() (width, height int) {
	return w.win.GetFramebufferSize()
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// PollEvents processes pending window events.
func PollEvents() {
	glfw.PollEvents()
}

// Destroy closes the window and releases its context.
func (w *Window) Destroy() {
	w.win.Destroy()
}
