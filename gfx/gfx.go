// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gfx is a minimal rendering context on top of OpenGL and WebGL2.

Resources (buffers, textures, shaders, pipelines, render passes) are
created through a Context and referred to by opaque handles. The context
mirrors the GPU's bound state and skips redundant state changes, so
binding the same resources every frame costs nothing beyond the
comparisons.

A frame looks like

	ctx.BeginDefaultPass(gfx.ClearTo(gfx.Color{A: 1}))
	ctx.ApplyPipeline(pip)
	ctx.ApplyBindings(&bindings)
	ctx.ApplyUniforms(uniforms)
	ctx.Draw(0, 6, 1)
	ctx.EndRenderPass()
	ctx.CommitFrame()

A Context is single threaded: it must only be used from the thread its
native GL context is current on.
*/
package gfx

import (
	"fmt"

	"quadgl.org/internal/gl"
)

// Features describes what the runtime GPU supports.
type Features struct {
	// Instancing is false on contexts predating instanced rendering
	// (OpenGL before 3.0, WebGL 1). Instanced draws are dropped on such
	// contexts.
	Instancing bool
}

// Context is a rendering context bound to one native GL context. It owns
// every resource created through it.
type Context struct {
	f  gl.Functions
	id uint32

	buffers   table[buffer]
	textures  table[texture]
	shaders   table[shader]
	pipelines table[pipeline]
	passes    table[renderPass]

	defaultFramebuffer gl.Framebuffer
	cache              glCache
	feat               Features

	width  int
	height int
	inPass bool
}

// NewContext wraps the native GL context current on the calling thread.
// The context's framebuffer binding at this point is taken as the default
// render target.
func NewContext(f gl.Functions) (*Context, error) {
	ver, _, err := gl.ParseVersion(f.GetString(gl.VERSION))
	if err != nil {
		return nil, err
	}
	c := &Context{
		f:                  f,
		id:                 contextIDs.Add(1),
		defaultFramebuffer: f.GetFramebufferBinding(),
		cache:              newCache(),
		feat:               Features{Instancing: ver[0] >= 3},
	}
	c.buffers.ctx, c.buffers.kind = c.id, "buffer"
	c.textures.ctx, c.textures.kind = c.id, "texture"
	c.shaders.ctx, c.shaders.kind = c.id, "shader"
	c.pipelines.ctx, c.pipelines.kind = c.id, "pipeline"
	c.passes.ctx, c.passes.kind = c.id, "render pass"

	// Core profiles refuse to draw without a bound vertex array object.
	vao := f.CreateVertexArray()
	if !vao.Valid() {
		return nil, fmt.Errorf("gfx: creating a vertex array object failed")
	}
	f.BindVertexArray(vao)
	return c, nil
}

// Features reports the GPU capabilities detected at context creation.
func (c *Context) Features() Features {
	return c.feat
}

// Resize records the size of the default render target. BeginDefaultPass
// uses it for the initial viewport and scissor rectangle.
func (c *Context) Resize(width, height int) {
	c.width = width
	c.height = height
}

// ScreenSize returns the recorded size of the default render target.
func (c *Context) ScreenSize() (width, height int) {
	return c.width, c.height
}

// CommitFrame marks the end of a frame. It unbinds buffers and textures
// so that no binding survives into the next frame pointing at a resource
// deleted in between.
func (c *Context) CommitFrame() {
	c.cache.clearBufferBindings(c.f)
	c.cache.clearTextureBindings(c.f)
}
