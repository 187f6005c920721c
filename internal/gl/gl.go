// SPDX-License-Identifier: Unlicense OR MIT

// Package gl exposes the bounded set of OpenGL calls the renderer issues,
// behind the Functions interface. The desktop implementation is backed by
// the go-gl bindings, the browser implementation by a WebGL2 context.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ALPHA                        = 0x1906
	ALWAYS                       = 0x207
	ARRAY_BUFFER                 = 0x8892
	BACK                         = 0x0405
	BLEND                        = 0xbe2
	CCW                          = 0x901
	CLAMP_TO_EDGE                = 0x812f
	COLOR_ATTACHMENT0            = 0x8ce0
	COLOR_BUFFER_BIT             = 0x4000
	COMPILE_STATUS               = 0x8b81
	CULL_FACE                    = 0xb44
	CW                           = 0x900
	DECR                         = 0x1e03
	DECR_WRAP                    = 0x8508
	DEPTH_ATTACHMENT             = 0x8d00
	DEPTH_BUFFER_BIT             = 0x100
	DEPTH_COMPONENT              = 0x1902
	DEPTH_TEST                   = 0xb71
	DYNAMIC_DRAW                 = 0x88e8
	ELEMENT_ARRAY_BUFFER         = 0x8893
	EQUAL                        = 0x202
	FALSE                        = 0
	FLOAT                        = 0x1406
	FRAGMENT_SHADER              = 0x8b30
	FRAMEBUFFER                  = 0x8d40
	FRAMEBUFFER_BINDING          = 0x8ca6
	FRAMEBUFFER_COMPLETE         = 0x8cd5
	FRONT                        = 0x0404
	FUNC_ADD                     = 0x8006
	FUNC_REVERSE_SUBTRACT        = 0x800b
	FUNC_SUBTRACT                = 0x800a
	GEQUAL                       = 0x206
	GREATER                      = 0x204
	INCR                         = 0x1e02
	INCR_WRAP                    = 0x8507
	INFO_LOG_LENGTH              = 0x8b84
	INVERT                       = 0x150a
	KEEP                         = 0x1e00
	LEQUAL                       = 0x203
	LESS                         = 0x201
	LINEAR                       = 0x2601
	LINES                        = 0x1
	LINK_STATUS                  = 0x8b82
	MIRRORED_REPEAT              = 0x8370
	NEAREST                      = 0x2600
	NEVER                        = 0x200
	NOTEQUAL                     = 0x205
	ONE                          = 0x1
	ONE_MINUS_DST_ALPHA          = 0x305
	ONE_MINUS_DST_COLOR          = 0x307
	ONE_MINUS_SRC_ALPHA          = 0x303
	ONE_MINUS_SRC_COLOR          = 0x301
	R8                           = 0x8229
	RED                          = 0x1903
	REPEAT                       = 0x2901
	REPLACE                      = 0x1e01
	RGB                          = 0x1907
	RGBA                         = 0x1908
	SCISSOR_TEST                 = 0xc11
	SRC_ALPHA                    = 0x302
	SRC_ALPHA_SATURATE           = 0x308
	SRC_COLOR                    = 0x300
	STATIC_DRAW                  = 0x88e4
	STENCIL_BUFFER_BIT           = 0x400
	STENCIL_TEST                 = 0xb90
	STREAM_DRAW                  = 0x88e0
	TEXTURE0                     = 0x84c0
	TEXTURE_2D                   = 0xde1
	TEXTURE_MAG_FILTER           = 0x2800
	TEXTURE_MIN_FILTER           = 0x2801
	TEXTURE_SWIZZLE_A            = 0x8e45
	TEXTURE_WRAP_S               = 0x2802
	TEXTURE_WRAP_T               = 0x2803
	TRIANGLES                    = 0x4
	TRUE                         = 1
	UNPACK_ALIGNMENT             = 0xcf5
	UNSIGNED_BYTE                = 0x1401
	UNSIGNED_INT                 = 0x1405
	UNSIGNED_SHORT               = 0x1403
	DST_ALPHA                    = 0x304
	DST_COLOR                    = 0x306
	VERSION                      = 0x1f02
	VERTEX_SHADER                = 0x8b31
	ZERO                         = 0x0
)

// Functions is the native graphics call surface. Exactly one implementation
// is active per platform; the renderer never issues a GL call outside this
// interface.
type Functions interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindBuffer(target Enum, b Buffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	BindTexture(target Enum, t Texture)
	BindVertexArray(a VertexArray)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendFunc(sfactor, dfactor Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BufferData(target Enum, size int, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	ClearDepthf(d float32)
	ClearStencil(s int)
	ColorMask(r, g, b, a bool)
	CompileShader(s Shader)
	CreateBuffer() Buffer
	CreateFramebuffer() Framebuffer
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	CreateVertexArray() VertexArray
	CullFace(mode Enum)
	DeleteBuffer(b Buffer)
	DeleteFramebuffer(fb Framebuffer)
	DeleteProgram(p Program)
	DeleteShader(s Shader)
	DeleteTexture(t Texture)
	DepthFunc(fn Enum)
	Disable(cap Enum)
	DisableVertexAttribArray(a Attrib)
	DrawArrays(mode Enum, first, count int)
	DrawArraysInstanced(mode Enum, first, count, instances int)
	DrawElements(mode Enum, count int, ty Enum, offset int)
	DrawElementsInstanced(mode Enum, count int, ty Enum, offset, instances int)
	Enable(cap Enum)
	EnableVertexAttribArray(a Attrib)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	FrontFace(dir Enum)
	GetAttribLocation(p Program, name string) int
	GetFramebufferBinding() Framebuffer
	GetInteger(pname Enum) int
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetString(pname Enum) string
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	PixelStorei(pname Enum, param int)
	ReadPixels(x, y, width, height int, format, ty Enum, data []byte)
	Scissor(x, y, width, height int)
	ShaderSource(s Shader, src string)
	StencilFuncSeparate(face, fn Enum, ref int, mask uint32)
	StencilMaskSeparate(face Enum, mask uint32)
	StencilOpSeparate(face, sfail, dpfail, dppass Enum)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	TexSubImage2D(target Enum, level, x, y, width, height int, format, ty Enum, data []byte)
	Uniform1fv(dst Uniform, v []float32)
	Uniform1i(dst Uniform, v int)
	Uniform1iv(dst Uniform, v []int32)
	Uniform2fv(dst Uniform, v []float32)
	Uniform2iv(dst Uniform, v []int32)
	Uniform3fv(dst Uniform, v []float32)
	Uniform3iv(dst Uniform, v []int32)
	Uniform4fv(dst Uniform, v []float32)
	Uniform4iv(dst Uniform, v []int32)
	UniformMatrix4fv(dst Uniform, v []float32)
	UseProgram(p Program)
	VertexAttribDivisor(a Attrib, divisor int)
	VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}
