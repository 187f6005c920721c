// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadgl.org/internal/gl"
)

func newTestContext(t *testing.T) (*Context, *recordGL) {
	t.Helper()
	g := newRecordGL()
	c, err := NewContext(g)
	require.NoError(t, err)
	c.Resize(640, 480)
	return c, g
}

func newTestShader(t *testing.T, c *Context, meta ShaderMeta) ShaderID {
	t.Helper()
	sh, err := c.NewShader("void main() {}", "void main() {}", meta)
	require.NoError(t, err)
	return sh
}

func TestPipelineAutoStride(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["pos"] = 0
	g.attribs["uv"] = 1
	sh := newTestShader(t, c, ShaderMeta{})

	pip := c.NewPipeline(
		[]BufferLayout{{}},
		[]VertexAttribute{
			{Name: "pos", Format: Float2},
			{Name: "uv", Format: Float2},
		},
		sh,
	)

	layout := c.pipelines.get(pip.h).layout
	require.Len(t, layout, 2)
	assert.Equal(t, compiledAttr{size: 2, vtype: gl.FLOAT, offset: 0, stride: 16}, layout[0].attr)
	assert.Equal(t, compiledAttr{size: 2, vtype: gl.FLOAT, offset: 8, stride: 16}, layout[1].attr)
}

func TestPipelineExplicitStrideWins(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["pos"] = 0
	sh := newTestShader(t, c, ShaderMeta{})

	pip := c.NewPipeline(
		[]BufferLayout{{Stride: 32}},
		[]VertexAttribute{{Name: "pos", Format: Float2}},
		sh,
	)

	assert.Equal(t, 32, c.pipelines.get(pip.h).layout[0].attr.stride)
}

func TestPipelineMat4Expansion(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["model"] = 0
	sh := newTestShader(t, c, ShaderMeta{})

	pip := c.NewPipeline(
		[]BufferLayout{{Step: PerInstance, StepRate: 2}},
		[]VertexAttribute{{Name: "model", Format: Mat4}},
		sh,
	)

	layout := c.pipelines.get(pip.h).layout
	require.Len(t, layout, 4)
	for i, slot := range layout {
		require.True(t, slot.set)
		assert.Equal(t, 4, slot.attr.size)
		assert.Equal(t, gl.Enum(gl.FLOAT), slot.attr.vtype)
		assert.Equal(t, 16*i, slot.attr.offset)
		assert.Equal(t, 64, slot.attr.stride)
		assert.Equal(t, 2, slot.attr.divisor)
	}
}

func TestPipelineMat4PerVertexDivisorZero(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["model"] = 0
	sh := newTestShader(t, c, ShaderMeta{})

	pip := c.NewPipeline(
		[]BufferLayout{{Step: PerVertex, StepRate: 3}},
		[]VertexAttribute{{Name: "model", Format: Mat4}},
		sh,
	)

	for _, slot := range c.pipelines.get(pip.h).layout {
		assert.Equal(t, 0, slot.attr.divisor)
	}
}

func TestPipelineDeterministic(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["pos"] = 0
	g.attribs["color"] = 1
	sh := newTestShader(t, c, ShaderMeta{})

	layouts := []BufferLayout{{}, {Step: PerInstance}}
	attrs := []VertexAttribute{
		{Name: "pos", Format: Float3},
		{Name: "color", Format: Byte4, BufferIndex: 1},
	}
	a := c.NewPipeline(layouts, attrs, sh)
	b := c.NewPipeline(layouts, attrs, sh)

	assert.Equal(t, c.pipelines.get(a.h).layout, c.pipelines.get(b.h).layout)
}

func TestPipelineAbsentAttributeAdvancesOffset(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["pos"] = 0
	sh := newTestShader(t, c, ShaderMeta{})

	// "unused" is not declared by the shader; it is skipped but its bytes
	// still shift the following attribute.
	pip := c.NewPipeline(
		[]BufferLayout{{}},
		[]VertexAttribute{
			{Name: "unused", Format: Float4},
			{Name: "pos", Format: Float2},
		},
		sh,
	)

	layout := c.pipelines.get(pip.h).layout
	require.True(t, layout[0].set)
	assert.Equal(t, 16, layout[0].attr.offset)
	assert.Equal(t, 24, layout[0].attr.stride)
	assert.False(t, layout[1].set)
}

func TestPipelineStrideLimitPanics(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["a0"] = 0
	sh := newTestShader(t, c, ShaderMeta{})

	attrs := make([]VertexAttribute, 16)
	for i := range attrs {
		attrs[i] = VertexAttribute{Name: "a0", Format: Float4}
	}
	assert.Panics(t, func() {
		c.NewPipeline([]BufferLayout{{}}, attrs, sh)
	})
}

func TestPipelineAttributeOverflowPanics(t *testing.T) {
	c, g := newTestContext(t)
	g.attribs["far"] = 5
	sh := newTestShader(t, c, ShaderMeta{})

	assert.Panics(t, func() {
		c.NewPipeline(
			[]BufferLayout{{}},
			[]VertexAttribute{{Name: "far", Format: Float1}},
			sh,
		)
	})
}
