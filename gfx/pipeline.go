// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import (
	"fmt"

	"quadgl.org/internal/gl"
)

type attrSlot struct {
	set  bool
	attr compiledAttr
}

type pipeline struct {
	// layout is indexed by shader attribute location. It is computed once
	// here and replayed by ApplyBindings without further name lookups or
	// offset math.
	layout []attrSlot
	shader ShaderID
	params PipelineParams
}

// NewPipeline creates a pipeline with DefaultPipelineParams.
func (c *Context) NewPipeline(layouts []BufferLayout, attrs []VertexAttribute, shader ShaderID) PipelineID {
	return c.NewPipelineWithParams(layouts, attrs, shader, DefaultPipelineParams())
}

// NewPipelineWithParams compiles a vertex layout against a shader.
//
// Attribute byte offsets accumulate per source buffer in declaration
// order. A buffer layout with zero stride gets the packed stride of its
// attributes; an explicit stride is taken as is. A Mat4 attribute expands
// into four consecutive Float4 locations. Attribute names the shader does
// not declare are skipped, but still advance the offset, so unused
// attributes can be removed from a shader without re-declaring the layout.
func (c *Context) NewPipelineWithParams(layouts []BufferLayout, attrs []VertexAttribute, shader ShaderID, params PipelineParams) PipelineID {
	program := c.shaders.get(shader.h).program

	type bufferData struct {
		stride int
		offset int
	}
	bufs := make([]bufferData, len(layouts))

	attrsLen := 0
	for _, a := range attrs {
		layout := layouts[a.BufferIndex]
		buf := &bufs[a.BufferIndex]
		if layout.Stride == 0 {
			buf.stride += a.Format.sizeBytes()
		} else {
			buf.stride = layout.Stride
		}
		// WebGL 1 limitation.
		if buf.stride > 255 {
			panic(fmt.Sprintf("gfx: vertex buffer %d stride %d exceeds 255", a.BufferIndex, buf.stride))
		}
		if a.Format == Mat4 {
			attrsLen += 4
		} else {
			attrsLen++
		}
	}
	if attrsLen > MaxVertexAttributes {
		panic(fmt.Sprintf("gfx: %d vertex attributes exceed the maximum of %d", attrsLen, MaxVertexAttributes))
	}

	layoutTable := make([]attrSlot, attrsLen)
	for _, a := range attrs {
		layout := layouts[a.BufferIndex]
		buf := &bufs[a.BufferIndex]

		loc := c.f.GetAttribLocation(program, a.Name)
		divisor := 0
		if layout.Step == PerInstance {
			divisor = layout.StepRate
			if divisor == 0 {
				divisor = 1
			}
		}

		format, count := a.Format, 1
		if format == Mat4 {
			format, count = Float4, 4
		}
		for i := 0; i < count; i++ {
			if loc >= 0 {
				slot := loc + i
				if slot >= len(layoutTable) {
					panic(fmt.Sprintf("gfx: attribute %q at location %d outside the %d allocated slots", a.Name, slot, len(layoutTable)))
				}
				layoutTable[slot] = attrSlot{
					set: true,
					attr: compiledAttr{
						size:        format.components(),
						vtype:       format.glType(),
						offset:      buf.offset,
						stride:      buf.stride,
						bufferIndex: a.BufferIndex,
						divisor:     divisor,
					},
				}
			}
			buf.offset += format.sizeBytes()
		}
	}

	return PipelineID{c.pipelines.add(pipeline{
		layout: layoutTable,
		shader: shader,
		params: params,
	})}
}

// DeletePipeline invalidates the handle. Pipelines hold no native objects
// of their own; the shader stays alive.
func (c *Context) DeletePipeline(id PipelineID) {
	c.pipelines.free(id.h)
}

// ApplyPipeline makes the pipeline current for subsequent bindings and
// draws. The fixed-function state it carries is applied through the state
// cache, so re-applying a pipeline with unchanged state issues only the
// program switch.
func (c *Context) ApplyPipeline(id PipelineID) error {
	if !c.inPass {
		return ErrNoActivePass
	}
	pip := c.pipelines.get(id.h)
	sh := c.shaders.get(pip.shader.h)
	c.cache.pipeline = id
	c.cache.havePipeline = true

	c.f.UseProgram(sh.program)
	c.f.Enable(gl.SCISSOR_TEST)
	c.cache.setDepth(c.f, pip.params.DepthTest, pip.params.DepthWrite)
	c.cache.setFrontFace(c.f, pip.params.FrontFaceOrder)
	c.cache.setCullFace(c.f, pip.params.CullFace)
	c.cache.setBlend(c.f, pip.params.ColorBlend, pip.params.AlphaBlend)
	c.cache.setStencil(c.f, pip.params.Stencil)
	c.cache.setColorMask(c.f, pip.params.ColorMask)
	return nil
}
