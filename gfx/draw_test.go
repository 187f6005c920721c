// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadgl.org/internal/gl"
)

// Two triangles worth of 2D positions through a vec2 attribute, drawn with
// default params: exactly one native draw, and a repeated ApplyBindings
// with identical bindings re-binds nothing.
func TestDrawTriangles(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["pos"] = 0
	sh := newTestShader(t, c, ShaderMeta{})

	verts := make([]byte, 12*4)
	buf := c.NewBuffer(BufferVertex, UsageImmutable, Bytes(verts, 4))
	pip := c.NewPipeline(
		[]BufferLayout{{}},
		[]VertexAttribute{{Name: "pos", Format: Float2}},
		sh,
	)
	bindings := Bindings{VertexBuffers: []BufferID{buf}}

	c.BeginDefaultPass(ClearTo(Color{}))
	require.NoError(t, c.ApplyPipeline(pip))
	require.NoError(t, c.ApplyBindings(&bindings))

	g.reset()
	require.NoError(t, c.Draw(0, 6, 1))
	assert.Equal(t, 1, g.count("DrawArraysInstanced"))
	assert.Equal(t, 0, g.count("DrawArrays", "DrawElements", "DrawElementsInstanced"))

	// Identical bindings are fully cached.
	g.reset()
	require.NoError(t, c.ApplyBindings(&bindings))
	assert.Equal(t, 0, g.count("BindBuffer/array"))
	assert.Equal(t, 0, g.count("VertexAttribPointer"))
	assert.Equal(t, 0, g.count("EnableVertexAttribArray"))
}

func TestDrawWithoutPipelinePanics(t *testing.T) {
	c, _ := newTestContext(t)
	c.BeginDefaultPass(PassAction{})
	assert.Panics(t, func() {
		c.Draw(0, 3, 1)
	})
}

func TestInstancedDrawDroppedWithoutSupport(t *testing.T) {
	g := newRecordGL()
	g.version = "2.1 test"
	c, err := NewContext(g)
	require.NoError(t, err)
	assert.False(t, c.Features().Instancing)

	g.attribs["pos"] = 0
	sh := newTestShader(t, c, ShaderMeta{})
	pip := c.NewPipeline(nil, nil, sh)

	c.BeginDefaultPass(PassAction{})
	require.NoError(t, c.ApplyPipeline(pip))

	// Unsupported instancing drops the call without failing.
	g.reset()
	require.NoError(t, c.Draw(0, 6, 2))
	assert.Equal(t, 0, g.count("DrawArrays", "DrawArraysInstanced"))

	// A single instance falls back to the plain call.
	require.NoError(t, c.Draw(0, 6, 1))
	assert.Equal(t, 1, g.count("DrawArrays"))
	assert.Equal(t, 0, g.count("DrawArraysInstanced"))
}

func TestIndexedDrawUsesElementType(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["pos"] = 0
	sh := newTestShader(t, c, ShaderMeta{})

	vbuf := c.NewBuffer(BufferVertex, UsageImmutable, Bytes(make([]byte, 32), 4))
	ibuf := c.NewBuffer(BufferIndex, UsageImmutable, Bytes(make([]byte, 12), 2))
	pip := c.NewPipeline(
		[]BufferLayout{{}},
		[]VertexAttribute{{Name: "pos", Format: Float2}},
		sh,
	)

	c.BeginDefaultPass(PassAction{})
	require.NoError(t, c.ApplyPipeline(pip))
	require.NoError(t, c.ApplyBindings(&Bindings{
		VertexBuffers: []BufferID{vbuf},
		IndexBuffer:   ibuf,
	}))

	g.reset()
	require.NoError(t, c.Draw(0, 6, 1))
	assert.Equal(t, 1, g.count("DrawElementsInstanced"))
	assert.Equal(t, gl.Enum(gl.UNSIGNED_SHORT), g.lastElementsType)
	assert.Equal(t, 0, g.count("DrawArraysInstanced"))
}

func TestApplyBindingsDisablesStaleSlots(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["pos"] = 0
	g.attribs["uv"] = 1
	sh := newTestShader(t, c, ShaderMeta{})

	buf := c.NewBuffer(BufferVertex, UsageImmutable, Bytes(make([]byte, 64), 4))
	two := c.NewPipeline(
		[]BufferLayout{{}},
		[]VertexAttribute{
			{Name: "pos", Format: Float2},
			{Name: "uv", Format: Float2},
		},
		sh,
	)
	one := c.NewPipeline(
		[]BufferLayout{{}},
		[]VertexAttribute{{Name: "pos", Format: Float2}},
		sh,
	)
	bindings := Bindings{VertexBuffers: []BufferID{buf}}

	c.BeginDefaultPass(PassAction{})
	require.NoError(t, c.ApplyPipeline(two))
	require.NoError(t, c.ApplyBindings(&bindings))
	assert.Equal(t, 2, g.count("EnableVertexAttribArray"))

	g.reset()
	require.NoError(t, c.ApplyPipeline(one))
	require.NoError(t, c.ApplyBindings(&bindings))
	assert.Equal(t, 1, g.count("DisableVertexAttribArray"))
}

func TestApplyBindingsImageCount(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["pos"] = 0
	g.uniforms["tex0"] = 1
	g.uniforms["tex1"] = 2
	sh := newTestShader(t, c, ShaderMeta{Images: []string{"tex0", "tex1"}})
	pip := c.NewPipeline(nil, nil, sh)

	tex := c.NewTextureFromRGBA8(1, 1, make([]byte, 4))

	c.BeginDefaultPass(PassAction{})
	require.NoError(t, c.ApplyPipeline(pip))

	assert.Panics(t, func() {
		c.ApplyBindings(&Bindings{Images: []TextureID{tex}})
	})

	g.reset()
	require.NoError(t, c.ApplyBindings(&Bindings{Images: []TextureID{tex, tex}}))
	assert.Equal(t, 2, g.count("Uniform1i"))
}
