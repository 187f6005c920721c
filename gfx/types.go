// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import "quadgl.org/internal/gl"

// BufferKind selects the binding point a buffer is created for. It never
// changes after creation.
type BufferKind uint8

const (
	BufferVertex BufferKind = iota
	BufferIndex
)

func (k BufferKind) glTarget() gl.Enum {
	if k == BufferIndex {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// BufferUsage is an update-frequency hint passed to the driver.
type BufferUsage uint8

const (
	UsageImmutable BufferUsage = iota
	UsageDynamic
	UsageStream
)

func (u BufferUsage) glUsage() gl.Enum {
	switch u {
	case UsageDynamic:
		return gl.DYNAMIC_DRAW
	case UsageStream:
		return gl.STREAM_DRAW
	default:
		return gl.STATIC_DRAW
	}
}

// Data is the payload for buffer creation and updates: either a byte slice
// with a declared element width, or an allocation-only size for buffers
// filled later.
type Data struct {
	bytes    []byte
	size     int
	elemSize int
}

// Bytes describes a data payload. elemSize is the width of one element in
// bytes; for index buffers it must be 1, 2 or 4.
func Bytes(data []byte, elemSize int) Data {
	return Data{bytes: data, size: len(data), elemSize: elemSize}
}

// Uninitialized describes an allocation of size bytes with no initial
// contents.
func Uninitialized(size, elemSize int) Data {
	return Data{size: size, elemSize: elemSize}
}

// VertexFormat describes the type of a single vertex attribute.
type VertexFormat uint8

const (
	Float1 VertexFormat = iota
	Float2
	Float3
	Float4
	Byte1
	Byte2
	Byte3
	Byte4
	Short1
	Short2
	Short3
	Short4
	Int1
	Int2
	Int3
	Int4
	// Mat4 takes four consecutive attribute locations, one per column.
	Mat4
)

// components is the N of FloatN/ByteN/ShortN/IntN. Not a byte size.
func (f VertexFormat) components() int {
	switch f {
	case Mat4:
		return 16
	default:
		return int(f)%4 + 1
	}
}

func (f VertexFormat) sizeBytes() int {
	switch {
	case f <= Float4:
		return 4 * f.components()
	case f <= Byte4:
		return f.components()
	case f <= Short4:
		return 2 * f.components()
	case f <= Int4:
		return 4 * f.components()
	default:
		return 64
	}
}

func (f VertexFormat) glType() gl.Enum {
	switch {
	case f <= Float4:
		return gl.FLOAT
	case f <= Byte4:
		return gl.UNSIGNED_BYTE
	case f <= Short4:
		return gl.UNSIGNED_SHORT
	case f <= Int4:
		return gl.UNSIGNED_INT
	default:
		return gl.FLOAT
	}
}

// VertexStep controls whether an attribute advances per vertex or per
// instance.
type VertexStep uint8

const (
	PerVertex VertexStep = iota
	PerInstance
)

// BufferLayout describes one vertex buffer slot of a pipeline. A zero
// Stride means "compute from the packed attribute formats". StepRate is
// only meaningful for PerInstance layouts; zero means 1.
type BufferLayout struct {
	Stride   int
	Step     VertexStep
	StepRate int
}

// VertexAttribute maps a named shader input onto a vertex buffer.
type VertexAttribute struct {
	Name        string
	Format      VertexFormat
	BufferIndex int
}

// UniformType describes the type of a shader uniform.
type UniformType uint8

const (
	UniformFloat1 UniformType = iota
	UniformFloat2
	UniformFloat3
	UniformFloat4
	UniformInt1
	UniformInt2
	UniformInt3
	UniformInt4
	UniformMat4
)

func (t UniformType) sizeBytes() int {
	switch {
	case t <= UniformFloat4:
		return 4 * (int(t) + 1)
	case t <= UniformInt4:
		return 4 * (int(t-UniformInt1) + 1)
	default:
		return 64
	}
}

// UniformDesc declares one uniform of a shader. ArrayCount zero means 1.
type UniformDesc struct {
	Name       string
	Type       UniformType
	ArrayCount int
}

// ShaderMeta declares the image samplers and uniforms of a shader. The
// declared order is a contract: ApplyBindings and ApplyUniforms consume
// images and uniform data in exactly this order.
type ShaderMeta struct {
	Images   []string
	Uniforms []UniformDesc
}

// TextureFormat is the pixel layout of texture data. The set is the
// intersection of what a 3.3 core profile and WebGL support.
type TextureFormat uint8

const (
	FormatRGBA8 TextureFormat = iota
	FormatRGB8
	FormatDepth
	FormatAlpha
)

// SizeBytes returns the byte size of a width x height texture in this
// format.
func (f TextureFormat) SizeBytes(width, height int) int {
	px := width * height
	switch f {
	case FormatRGB8:
		return 3 * px
	case FormatDepth:
		return 2 * px
	case FormatAlpha:
		return px
	default:
		return 4 * px
	}
}

// glFormat returns the (internal format, format, pixel type) triple for a
// texture format. Alpha has no desktop equivalent; it is emulated with a
// single-channel texture and a red-to-alpha swizzle.
func (f TextureFormat) glFormat() (internal, format, pixelType gl.Enum) {
	switch f {
	case FormatRGB8:
		return gl.RGB, gl.RGB, gl.UNSIGNED_BYTE
	case FormatDepth:
		return gl.DEPTH_COMPONENT, gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT
	case FormatAlpha:
		if gl.WebGL {
			return gl.ALPHA, gl.ALPHA, gl.UNSIGNED_BYTE
		}
		return gl.R8, gl.RED, gl.UNSIGNED_BYTE
	default:
		return gl.RGBA, gl.RGBA, gl.UNSIGNED_BYTE
	}
}

// TextureWrap sets the sampling behavior outside the [0, 1] coordinate
// range.
type TextureWrap uint8

const (
	WrapClamp TextureWrap = iota
	WrapRepeat
	WrapMirror
)

func (w TextureWrap) glWrap() gl.Enum {
	switch w {
	case WrapRepeat:
		return gl.REPEAT
	case WrapMirror:
		return gl.MIRRORED_REPEAT
	default:
		return gl.CLAMP_TO_EDGE
	}
}

// FilterMode selects the magnification and minification filter.
type FilterMode uint8

const (
	FilterLinear FilterMode = iota
	FilterNearest
)

func (m FilterMode) glFilter() gl.Enum {
	if m == FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

// TextureAccess tells whether a texture is sampled only or also rendered
// to.
type TextureAccess uint8

const (
	AccessStatic TextureAccess = iota
	AccessRenderTarget
)

// TextureParams describes a texture at creation time. Width and height are
// in pixels.
type TextureParams struct {
	Format TextureFormat
	Wrap   TextureWrap
	Filter FilterMode
	Width  int
	Height int
}

// CullFace selects which polygon faces are discarded.
type CullFace uint8

const (
	CullNothing CullFace = iota
	CullFront
	CullBack
)

// FrontFaceOrder defines the winding of front-facing polygons.
type FrontFaceOrder uint8

const (
	CounterClockwise FrontFaceOrder = iota
	Clockwise
)

// Comparison is a pixel-wise compare function for depth and stencil tests.
type Comparison uint8

const (
	CompareAlways Comparison = iota
	CompareNever
	CompareLess
	CompareEqual
	CompareLessOrEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterOrEqual
)

func (c Comparison) glFunc() gl.Enum {
	switch c {
	case CompareNever:
		return gl.NEVER
	case CompareLess:
		return gl.LESS
	case CompareEqual:
		return gl.EQUAL
	case CompareLessOrEqual:
		return gl.LEQUAL
	case CompareGreater:
		return gl.GREATER
	case CompareNotEqual:
		return gl.NOTEQUAL
	case CompareGreaterOrEqual:
		return gl.GEQUAL
	default:
		return gl.ALWAYS
	}
}

// Equation combines the scaled source and destination colors when
// blending.
type Equation uint8

const (
	EquationAdd Equation = iota
	EquationSubtract
	EquationReverseSubtract
)

func (e Equation) glEquation() gl.Enum {
	switch e {
	case EquationSubtract:
		return gl.FUNC_SUBTRACT
	case EquationReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	default:
		return gl.FUNC_ADD
	}
}

// BlendFactor scales the source or destination color before the blend
// equation is applied.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSourceColor
	BlendOneMinusSourceColor
	BlendSourceAlpha
	BlendOneMinusSourceAlpha
	BlendDestColor
	BlendOneMinusDestColor
	BlendDestAlpha
	BlendOneMinusDestAlpha
	BlendSourceAlphaSaturate
)

func (f BlendFactor) glFactor() gl.Enum {
	switch f {
	case BlendOne:
		return gl.ONE
	case BlendSourceColor:
		return gl.SRC_COLOR
	case BlendOneMinusSourceColor:
		return gl.ONE_MINUS_SRC_COLOR
	case BlendSourceAlpha:
		return gl.SRC_ALPHA
	case BlendOneMinusSourceAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case BlendDestColor:
		return gl.DST_COLOR
	case BlendOneMinusDestColor:
		return gl.ONE_MINUS_DST_COLOR
	case BlendDestAlpha:
		return gl.DST_ALPHA
	case BlendOneMinusDestAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case BlendSourceAlphaSaturate:
		return gl.SRC_ALPHA_SATURATE
	default:
		return gl.ZERO
	}
}

// BlendDesc describes a blend function. The zero value disables blending.
//
// The usual alpha blending setup is
//
//	BlendDesc{
//		Enable:    true,
//		SrcFactor: BlendSourceAlpha,
//		DstFactor: BlendOneMinusSourceAlpha,
//	}
type BlendDesc struct {
	Enable    bool
	Equation  Equation
	SrcFactor BlendFactor
	DstFactor BlendFactor
}

// StencilOp is the operation applied to the stencil value when a test
// passes or fails.
type StencilOp uint8

const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
	StencilIncrementClamp
	StencilDecrementClamp
	StencilInvert
	StencilIncrementWrap
	StencilDecrementWrap
)

func (op StencilOp) glOp() gl.Enum {
	switch op {
	case StencilZero:
		return gl.ZERO
	case StencilReplace:
		return gl.REPLACE
	case StencilIncrementClamp:
		return gl.INCR
	case StencilDecrementClamp:
		return gl.DECR
	case StencilInvert:
		return gl.INVERT
	case StencilIncrementWrap:
		return gl.INCR_WRAP
	case StencilDecrementWrap:
		return gl.DECR_WRAP
	default:
		return gl.KEEP
	}
}

// StencilFaceState is the stencil configuration of one polygon face.
type StencilFaceState struct {
	FailOp      StencilOp
	DepthFailOp StencilOp
	PassOp      StencilOp
	TestFunc    Comparison
	TestRef     int
	TestMask    uint32
	WriteMask   uint32
}

// StencilDesc describes the stencil test. The zero value disables it.
type StencilDesc struct {
	Enable bool
	Front  StencilFaceState
	Back   StencilFaceState
}

// ColorMask enables or disables writes to the individual color channels.
type ColorMask struct {
	R, G, B, A bool
}

// PrimitiveType is the topology draw calls assemble vertices into.
type PrimitiveType uint8

const (
	Triangles PrimitiveType = iota
	Lines
)

func (p PrimitiveType) glMode() gl.Enum {
	if p == Lines {
		return gl.LINES
	}
	return gl.TRIANGLES
}

// PipelineParams is the fixed-function render state of a pipeline.
type PipelineParams struct {
	CullFace       CullFace
	FrontFaceOrder FrontFaceOrder
	DepthTest      Comparison
	DepthWrite     bool
	// ColorBlend is the RGB blend function. AlphaBlend optionally blends
	// the alpha channel with a separate function; enabling it without
	// ColorBlend is a programmer error.
	ColorBlend BlendDesc
	AlphaBlend BlendDesc
	Stencil    StencilDesc
	ColorMask  ColorMask
	Primitive  PrimitiveType
}

// DefaultPipelineParams returns the params NewPipeline uses when none are
// given: no culling, counter-clockwise front faces, no depth test or
// write, no blending, no stencil, all color channels written, triangles.
func DefaultPipelineParams() PipelineParams {
	return PipelineParams{
		DepthTest: CompareAlways,
		ColorMask: ColorMask{true, true, true, true},
	}
}

// Bindings is the per-draw set of resources: the vertex buffers referenced
// by the pipeline layout, an optional index buffer (the zero BufferID means
// none) and the textures for the shader's image slots, in declared order.
type Bindings struct {
	VertexBuffers []BufferID
	IndexBuffer   BufferID
	Images        []TextureID
}

// Color is a normalized RGBA color.
type Color struct {
	R, G, B, A float32
}

// PassAction tells a beginning pass which buffers to clear. The zero value
// clears nothing.
type PassAction struct {
	Color        bool
	ClearColor   Color
	Depth        bool
	ClearDepth   float32
	Stencil      bool
	ClearStencil int
}

// ClearTo returns a PassAction clearing color to c and depth to 1.
func ClearTo(c Color) PassAction {
	return PassAction{
		Color:      true,
		ClearColor: c,
		Depth:      true,
		ClearDepth: 1,
	}
}
