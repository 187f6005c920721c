// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package glue

import (
	"errors"
	"fmt"
	"syscall/js"

	"quadgl.org/internal/gl"
)

// ErrInvalidWindow reports that the canvas element was not found.
var ErrInvalidWindow = errors.New("glue: invalid canvas")

// Window is a canvas element with a WebGL2 context.
type Window struct {
	canvas js.Value
	f      gl.Functions
}

// Create obtains a WebGL2 context from the canvas element with the given
// id. The color, depth, stencil and sample hints of cfg translate to
// context attributes; version and profile are fixed by the browser.
func Create(cfg Config, canvasID string) (*Window, error) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", canvasID)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, ErrInvalidWindow
	}
	attrs := map[string]any{
		"alpha":     cfg.AlphaBits > 0,
		"depth":     cfg.DepthBits > 0,
		"stencil":   cfg.StencilBits > 0,
		"antialias": cfg.Samples > 1,
	}
	ctx := canvas.Call("getContext", "webgl2", attrs)
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, fmt.Errorf("glue: webgl2 is not supported")
	}
	f, err := gl.NewFunctions(ctx)
	if err != nil {
		return nil, err
	}
	return &Window{canvas: canvas, f: f}, nil
}

// Functions returns the GL call surface of the context.
func (w *Window) Functions() gl.Functions {
	return w.f
}

// MakeCurrent is a no-op; a WebGL context is always current.
func (w *Window) MakeCurrent() {}

// SwapBuffers is a no-op; the browser presents the canvas after each
// animation frame callback.
func (w *Window) SwapBuffers() {}

// SetSwapInterval is a no-op; presentation is tied to the browser's
// animation frame rate.
func (w *Window) SetSwapInterval(on bool) {}

// FramebufferSize returns the canvas drawing buffer size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.canvas.Get("width").Int(), w.canvas.Get("height").Int()
}
