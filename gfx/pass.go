// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import (
	"fmt"

	"quadgl.org/internal/gl"
)

type renderPass struct {
	fb     gl.Framebuffer
	color  TextureID
	depth  TextureID
	width  int
	height int
}

// PassParams describes an offscreen render pass target.
type PassParams struct {
	Width       int
	Height      int
	ColorFormat TextureFormat
	Filter      FilterMode
	// Depth adds a depth attachment.
	Depth bool
}

// NewRenderPass creates an offscreen framebuffer. The pass allocates and
// owns its color texture and, if requested, its depth texture; deleting
// the pass deletes both. The framebuffer bound before the call stays
// bound after it.
func (c *Context) NewRenderPass(params PassParams) (PassID, error) {
	color := c.NewTexture(AccessRenderTarget, nil, TextureParams{
		Format: params.ColorFormat,
		Filter: params.Filter,
		Width:  params.Width,
		Height: params.Height,
	})
	var depth TextureID
	if params.Depth {
		depth = c.NewTexture(AccessRenderTarget, nil, TextureParams{
			Format: FormatDepth,
			Filter: params.Filter,
			Width:  params.Width,
			Height: params.Height,
		})
	}

	prev := c.f.GetFramebufferBinding()
	fb := c.f.CreateFramebuffer()
	c.f.BindFramebuffer(gl.FRAMEBUFFER, fb)
	c.f.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, c.textures.get(color.h).raw, 0)
	if params.Depth {
		c.f.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, c.textures.get(depth.h).raw, 0)
	}
	status := c.f.CheckFramebufferStatus(gl.FRAMEBUFFER)
	c.f.BindFramebuffer(gl.FRAMEBUFFER, prev)
	if status != gl.FRAMEBUFFER_COMPLETE {
		c.f.DeleteFramebuffer(fb)
		c.DeleteTexture(color)
		if params.Depth {
			c.DeleteTexture(depth)
		}
		return PassID{}, fmt.Errorf("gfx: framebuffer incomplete, status 0x%x", int(status))
	}

	return PassID{c.passes.add(renderPass{
		fb:     fb,
		color:  color,
		depth:  depth,
		width:  params.Width,
		height: params.Height,
	})}, nil
}

// RenderPassColorTexture returns the pass's color attachment for
// sampling. The texture is owned by the pass and dies with it.
func (c *Context) RenderPassColorTexture(id PassID) TextureID {
	return c.passes.get(id.h).color
}

// DeleteRenderPass releases the framebuffer and the attachment textures
// the pass owns, and invalidates the handle.
func (c *Context) DeleteRenderPass(id PassID) {
	pass := c.passes.get(id.h)
	c.f.DeleteFramebuffer(pass.fb)
	c.DeleteTexture(pass.color)
	if pass.depth.h.valid() {
		c.DeleteTexture(pass.depth)
	}
	c.passes.free(id.h)
}

// BeginDefaultPass starts rendering to the default framebuffer, with the
// viewport and scissor rectangle covering the screen size recorded by
// Resize.
func (c *Context) BeginDefaultPass(action PassAction) {
	c.f.BindFramebuffer(gl.FRAMEBUFFER, c.defaultFramebuffer)
	c.f.Viewport(0, 0, c.width, c.height)
	c.f.Scissor(0, 0, c.width, c.height)
	c.inPass = true
	c.Clear(action)
}

// BeginPass starts rendering to an offscreen pass, with the viewport and
// scissor rectangle covering its attachments.
func (c *Context) BeginPass(id PassID, action PassAction) {
	pass := c.passes.get(id.h)
	c.f.BindFramebuffer(gl.FRAMEBUFFER, pass.fb)
	c.f.Viewport(0, 0, pass.width, pass.height)
	c.f.Scissor(0, 0, pass.width, pass.height)
	c.inPass = true
	c.Clear(action)
}

// EndRenderPass stops rendering to the current pass target and rebinds
// the default framebuffer. Buffer bindings are dropped from the cache.
func (c *Context) EndRenderPass() {
	c.f.BindFramebuffer(gl.FRAMEBUFFER, c.defaultFramebuffer)
	c.cache.bindBuffer(c.f, gl.ARRAY_BUFFER, gl.Buffer{}, 0)
	c.cache.bindBuffer(c.f, gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{}, 0)
	c.inPass = false
}

// Clear clears the buffers the action selects on the current render
// target.
func (c *Context) Clear(action PassAction) {
	var bits gl.Enum
	if action.Color {
		bits |= gl.COLOR_BUFFER_BIT
		col := action.ClearColor
		c.f.ClearColor(col.R, col.G, col.B, col.A)
	}
	if action.Depth {
		bits |= gl.DEPTH_BUFFER_BIT
		c.f.ClearDepthf(action.ClearDepth)
	}
	if action.Stencil {
		bits |= gl.STENCIL_BUFFER_BIT
		c.f.ClearStencil(action.ClearStencil)
	}
	if bits != 0 {
		c.f.Clear(bits)
	}
}

// ApplyViewport sets the viewport rectangle of the current pass.
func (c *Context) ApplyViewport(x, y, width, height int) error {
	if !c.inPass {
		return ErrNoActivePass
	}
	c.f.Viewport(x, y, width, height)
	return nil
}

// ApplyScissorRect sets the scissor rectangle of the current pass.
func (c *Context) ApplyScissorRect(x, y, width, height int) error {
	if !c.inPass {
		return ErrNoActivePass
	}
	c.f.Scissor(x, y, width, height)
	return nil
}
