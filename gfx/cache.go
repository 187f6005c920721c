// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import "quadgl.org/internal/gl"

const (
	// MaxVertexAttributes is the number of vertex attribute slots a
	// pipeline can address.
	MaxVertexAttributes = 16
	// MaxShaderImages is the number of texture units available to a
	// shader.
	MaxShaderImages = 12
)

// compiledAttr is one precomputed entry of a pipeline's attribute plan.
type compiledAttr struct {
	size        int
	vtype       gl.Enum
	offset      int
	stride      int
	bufferIndex int
	divisor     int
}

type cachedAttr struct {
	valid bool
	attr  compiledAttr
	buf   gl.Buffer
}

// glCache mirrors the GPU's bound state so that redundant state changes
// can be skipped. It is correct only as long as every state change goes
// through it; a single native call issued around it desynchronizes the
// mirror.
type glCache struct {
	vertexBuffer gl.Buffer
	indexBuffer  gl.Buffer
	// indexType is the element type of the bound index buffer, zero when
	// none is bound. It is refreshed on every index-target bind, including
	// binds skipped as redundant.
	indexType gl.Enum

	storedVertexBuffer gl.Buffer
	storedIndexBuffer  gl.Buffer
	storedIndexType    gl.Enum
	storedTexture      gl.Texture

	textures [MaxShaderImages]gl.Texture
	attrs    [MaxVertexAttributes]cachedAttr

	pipeline     PipelineID
	havePipeline bool

	colorBlend BlendDesc
	alphaBlend BlendDesc
	stencil    StencilDesc
	colorMask  ColorMask
	cullFace   CullFace

	depthValid bool
	depthTest  Comparison
	depthWrite bool

	frontFaceValid bool
	frontFace      FrontFaceOrder
}

func newCache() glCache {
	return glCache{
		// GL starts with all color channels enabled.
		colorMask: ColorMask{true, true, true, true},
	}
}

func (c *glCache) bindBuffer(f gl.Functions, target gl.Enum, buf gl.Buffer, indexType gl.Enum) {
	if target == gl.ARRAY_BUFFER {
		if !c.vertexBuffer.Equal(buf) {
			c.vertexBuffer = buf
			f.BindBuffer(target, buf)
		}
		return
	}
	if !c.indexBuffer.Equal(buf) {
		c.indexBuffer = buf
		f.BindBuffer(target, buf)
	}
	c.indexType = indexType
}

func (c *glCache) storeBufferBinding(target gl.Enum) {
	if target == gl.ARRAY_BUFFER {
		c.storedVertexBuffer = c.vertexBuffer
	} else {
		c.storedIndexBuffer = c.indexBuffer
		c.storedIndexType = c.indexType
	}
}

func (c *glCache) restoreBufferBinding(f gl.Functions, target gl.Enum) {
	if target == gl.ARRAY_BUFFER {
		if c.storedVertexBuffer.Valid() {
			c.bindBuffer(f, target, c.storedVertexBuffer, 0)
			c.storedVertexBuffer = gl.Buffer{}
		}
	} else if c.storedIndexBuffer.Valid() {
		c.bindBuffer(f, target, c.storedIndexBuffer, c.storedIndexType)
		c.storedIndexBuffer = gl.Buffer{}
	}
}

// bindTexture selects the texture unit unconditionally but skips the bind
// itself when the unit already holds tex.
func (c *glCache) bindTexture(f gl.Functions, unit int, tex gl.Texture) {
	f.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	if !c.textures[unit].Equal(tex) {
		f.BindTexture(gl.TEXTURE_2D, tex)
		c.textures[unit] = tex
	}
}

func (c *glCache) storeTextureBinding(unit int) {
	c.storedTexture = c.textures[unit]
}

func (c *glCache) restoreTextureBinding(f gl.Functions, unit int) {
	c.bindTexture(f, unit, c.storedTexture)
}

func (c *glCache) clearBufferBindings(f gl.Functions) {
	c.bindBuffer(f, gl.ARRAY_BUFFER, gl.Buffer{}, 0)
	c.bindBuffer(f, gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{}, 0)
}

func (c *glCache) clearTextureBindings(f gl.Functions) {
	for unit := range c.textures {
		if c.textures[unit].Valid() {
			c.bindTexture(f, unit, gl.Texture{})
		}
	}
}

func (c *glCache) clearVertexAttributes() {
	for i := range c.attrs {
		c.attrs[i] = cachedAttr{}
	}
}

func (c *glCache) setBlend(f gl.Functions, color, alpha BlendDesc) {
	if alpha.Enable && !color.Enable {
		panic("gfx: alpha blend enabled without color blend")
	}
	if c.colorBlend == color && c.alphaBlend == alpha {
		return
	}
	if color.Enable {
		if !c.colorBlend.Enable {
			f.Enable(gl.BLEND)
		}
		if alpha.Enable {
			f.BlendFuncSeparate(color.SrcFactor.glFactor(), color.DstFactor.glFactor(), alpha.SrcFactor.glFactor(), alpha.DstFactor.glFactor())
			f.BlendEquationSeparate(color.Equation.glEquation(), alpha.Equation.glEquation())
		} else {
			f.BlendFunc(color.SrcFactor.glFactor(), color.DstFactor.glFactor())
			f.BlendEquationSeparate(color.Equation.glEquation(), color.Equation.glEquation())
		}
	} else if c.colorBlend.Enable {
		f.Disable(gl.BLEND)
	}
	c.colorBlend = color
	c.alphaBlend = alpha
}

func (c *glCache) setStencil(f gl.Functions, s StencilDesc) {
	if c.stencil == s {
		return
	}
	if s.Enable {
		if !c.stencil.Enable {
			f.Enable(gl.STENCIL_TEST)
		}
		setStencilFace(f, gl.FRONT, s.Front)
		setStencilFace(f, gl.BACK, s.Back)
	} else if c.stencil.Enable {
		f.Disable(gl.STENCIL_TEST)
	}
	c.stencil = s
}

func setStencilFace(f gl.Functions, face gl.Enum, s StencilFaceState) {
	f.StencilOpSeparate(face, s.FailOp.glOp(), s.DepthFailOp.glOp(), s.PassOp.glOp())
	f.StencilFuncSeparate(face, s.TestFunc.glFunc(), s.TestRef, s.TestMask)
	f.StencilMaskSeparate(face, s.WriteMask)
}

func (c *glCache) setCullFace(f gl.Functions, cull CullFace) {
	if c.cullFace == cull {
		return
	}
	switch cull {
	case CullNothing:
		f.Disable(gl.CULL_FACE)
	case CullFront:
		f.Enable(gl.CULL_FACE)
		f.CullFace(gl.FRONT)
	case CullBack:
		f.Enable(gl.CULL_FACE)
		f.CullFace(gl.BACK)
	}
	c.cullFace = cull
}

func (c *glCache) setColorMask(f gl.Functions, m ColorMask) {
	if c.colorMask == m {
		return
	}
	f.ColorMask(m.R, m.G, m.B, m.A)
	c.colorMask = m
}

// setDepth enables the depth test only for writing pipelines, following
// the convention that DepthWrite gates the whole test.
func (c *glCache) setDepth(f gl.Functions, test Comparison, write bool) {
	if c.depthValid && c.depthTest == test && c.depthWrite == write {
		return
	}
	if write {
		f.Enable(gl.DEPTH_TEST)
		f.DepthFunc(test.glFunc())
	} else {
		f.Disable(gl.DEPTH_TEST)
	}
	c.depthValid = true
	c.depthTest = test
	c.depthWrite = write
}

func (c *glCache) setFrontFace(f gl.Functions, order FrontFaceOrder) {
	if c.frontFaceValid && c.frontFace == order {
		return
	}
	if order == Clockwise {
		f.FrontFace(gl.CW)
	} else {
		f.FrontFace(gl.CCW)
	}
	c.frontFaceValid = true
	c.frontFace = order
}
