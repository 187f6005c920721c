// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadgl.org/internal/gl"
)

func TestOperationsOutsidePass(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["pos"] = 0
	sh := newTestShader(t, c, ShaderMeta{})
	pip := c.NewPipeline(nil, nil, sh)

	assert.ErrorIs(t, c.ApplyPipeline(pip), ErrNoActivePass)
	assert.ErrorIs(t, c.ApplyBindings(&Bindings{}), ErrNoActivePass)
	assert.ErrorIs(t, c.ApplyUniforms(nil), ErrNoActivePass)
	assert.ErrorIs(t, c.ApplyViewport(0, 0, 1, 1), ErrNoActivePass)
	assert.ErrorIs(t, c.ApplyScissorRect(0, 0, 1, 1), ErrNoActivePass)
	assert.ErrorIs(t, c.Draw(0, 3, 1), ErrNoActivePass)

	c.BeginDefaultPass(PassAction{})
	assert.NoError(t, c.ApplyPipeline(pip))
	assert.NoError(t, c.ApplyViewport(0, 0, 1, 1))
	c.EndRenderPass()

	assert.ErrorIs(t, c.Draw(0, 3, 1), ErrNoActivePass)
}

func TestBeginDefaultPassSetsViewportAndClears(t *testing.T) {
	c, g := newTestContext(t)

	c.BeginDefaultPass(ClearTo(Color{R: 1, A: 1}))
	assert.Equal(t, 1, g.count("Viewport"))
	assert.Equal(t, 1, g.count("Scissor"))
	assert.Equal(t, 1, g.count("ClearColor"))
	assert.Equal(t, 1, g.count("ClearDepthf"))
	assert.Equal(t, 0, g.count("ClearStencil"))
	assert.Equal(t, 1, g.count("Clear"))

	g.reset()
	c.BeginDefaultPass(PassAction{})
	assert.Equal(t, 0, g.count("Clear"))
}

func TestRenderPassOwnsAttachments(t *testing.T) {
	c, g := newTestContext(t)

	pass, err := c.NewRenderPass(PassParams{Width: 64, Height: 64, Depth: true})
	require.NoError(t, err)
	assert.Equal(t, 2, g.count("CreateTexture"))
	assert.Equal(t, 2, g.count("FramebufferTexture2D"))

	color := c.RenderPassColorTexture(pass)
	w, h := c.TextureSize(color)
	assert.Equal(t, 64, w)
	assert.Equal(t, 64, h)

	g.reset()
	c.DeleteRenderPass(pass)
	assert.Equal(t, 1, g.count("DeleteFramebuffer"))
	assert.Equal(t, 2, g.count("DeleteTexture"))

	// The attachments died with the pass.
	assert.Panics(t, func() {
		c.TextureSize(color)
	})
}

func TestRenderPassWithoutDepth(t *testing.T) {
	c, g := newTestContext(t)

	pass, err := c.NewRenderPass(PassParams{Width: 32, Height: 32})
	require.NoError(t, err)
	assert.Equal(t, 1, g.count("CreateTexture"))

	g.reset()
	c.DeleteRenderPass(pass)
	assert.Equal(t, 1, g.count("DeleteTexture"))
}

func TestRenderPassIncomplete(t *testing.T) {
	c, g := newTestContext(t)
	g.fbStatus = 0

	_, err := c.NewRenderPass(PassParams{Width: 16, Height: 16, Depth: true})
	require.Error(t, err)
	// Nothing leaks on failure.
	assert.Equal(t, 1, g.count("DeleteFramebuffer"))
	assert.Equal(t, 2, g.count("DeleteTexture"))
}

func TestBeginPassUsesAttachmentSize(t *testing.T) {
	c, g := newTestContext(t)

	pass, err := c.NewRenderPass(PassParams{Width: 128, Height: 32})
	require.NoError(t, err)

	g.reset()
	c.BeginPass(pass, PassAction{})
	assert.Equal(t, 1, g.count("BindFramebuffer"))
	assert.Equal(t, 1, g.count("Viewport"))

	c.EndRenderPass()
	// Returning to the default target drops the buffer bindings.
	assert.False(t, c.cache.vertexBuffer.Valid())
	assert.False(t, c.cache.indexBuffer.Valid())
}

func TestCommitFrameClearsBindingCaches(t *testing.T) {
	c, g := newTestContext(t)

	buf := c.NewBuffer(BufferVertex, UsageImmutable, Uninitialized(16, 4))
	c.cache.bindBuffer(g, gl.ARRAY_BUFFER, c.buffers.get(buf.h).raw, 0)
	tex := c.NewTextureFromRGBA8(1, 1, make([]byte, 4))
	c.cache.bindTexture(g, 0, c.textures.get(tex.h).raw)

	c.CommitFrame()
	assert.False(t, c.cache.vertexBuffer.Valid())
	for _, cached := range c.cache.textures {
		assert.False(t, cached.Valid())
	}
}
