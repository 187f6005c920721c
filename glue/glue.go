// SPDX-License-Identifier: Unlicense OR MIT

// Package glue creates native GL contexts for quadgl.org/gfx. The desktop
// implementation drives GLFW; on js a WebGL2 context is obtained from a
// canvas element.
package glue

// Profile selects the OpenGL profile requested from the platform.
type Profile uint8

const (
	CoreProfile Profile = iota
	CompatibilityProfile
)

// Config is the set of hints passed to the platform when creating a
// context. All of it is advisory; platforms match it best-effort.
type Config struct {
	Version      [2]int
	Profile      Profile
	RedBits      int
	GreenBits    int
	BlueBits     int
	AlphaBits    int
	DepthBits    int
	StencilBits  int
	Samples      int
	SRGB         bool
	DoubleBuffer bool
}

// DefaultConfig requests an OpenGL 3.3 core context with an 8-bit RGBA,
// 24-bit depth, 8-bit stencil double-buffered framebuffer.
func DefaultConfig() Config {
	return Config{
		Version:      [2]int{3, 3},
		RedBits:      8,
		GreenBits:    8,
		BlueBits:     8,
		AlphaBits:    8,
		DepthBits:    24,
		StencilBits:  8,
		Samples:      1,
		DoubleBuffer: true,
	}
}
