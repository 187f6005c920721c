// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import (
	"fmt"
	"log/slog"

	"quadgl.org/internal/byteslice"
	"quadgl.org/internal/gl"
)

// ApplyBindings binds the buffers and textures of the next draw call.
// Images must cover every image slot the active shader declares, in
// declared order. Attribute slots whose compiled entry and source buffer
// match the cached state are not re-bound; a repeated call with identical
// bindings issues no native calls beyond the texture unit selection.
func (c *Context) ApplyBindings(b *Bindings) error {
	if !c.inPass {
		return ErrNoActivePass
	}
	if !c.cache.havePipeline {
		panic("gfx: ApplyBindings without an applied pipeline")
	}
	pip := c.pipelines.get(c.cache.pipeline.h)
	sh := c.shaders.get(pip.shader.h)

	for n, loc := range sh.images {
		if n >= len(b.Images) {
			panic(fmt.Sprintf("gfx: shader declares %d images, bindings carry %d", len(sh.images), len(b.Images)))
		}
		if loc.Valid() {
			c.cache.bindTexture(c.f, n, c.textures.get(b.Images[n].h).raw)
			c.f.Uniform1i(loc, n)
		}
	}

	if b.IndexBuffer.h.valid() {
		ibuf := c.buffers.get(b.IndexBuffer.h)
		c.cache.bindBuffer(c.f, gl.ELEMENT_ARRAY_BUFFER, ibuf.raw, ibuf.glIndexType())
	} else {
		c.cache.bindBuffer(c.f, gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{}, 0)
	}

	for slot := 0; slot < MaxVertexAttributes; slot++ {
		cached := &c.cache.attrs[slot]
		if slot >= len(pip.layout) || !pip.layout[slot].set {
			if cached.valid {
				c.f.DisableVertexAttribArray(gl.Attrib(slot))
				*cached = cachedAttr{}
			}
			continue
		}
		attr := pip.layout[slot].attr
		vbuf := c.buffers.get(b.VertexBuffers[attr.bufferIndex].h)
		if cached.valid && cached.attr == attr && cached.buf.Equal(vbuf.raw) {
			continue
		}
		c.cache.bindBuffer(c.f, gl.ARRAY_BUFFER, vbuf.raw, vbuf.glIndexType())
		c.f.VertexAttribPointer(gl.Attrib(slot), attr.size, attr.vtype, false, attr.stride, attr.offset)
		if c.feat.Instancing {
			c.f.VertexAttribDivisor(gl.Attrib(slot), attr.divisor)
		}
		c.f.EnableVertexAttribArray(gl.Attrib(slot))
		*cached = cachedAttr{valid: true, attr: attr, buf: vbuf.raw}
	}
	return nil
}

// ApplyUniforms uploads uniform data for the active shader. The data is a
// flat byte buffer laid out in the shader's declared uniform order, 4
// bytes per scalar component and 64 per 4x4 matrix, with no padding.
func (c *Context) ApplyUniforms(data []byte) error {
	return c.ApplyUniformsBytes(data, len(data))
}

// ApplyUniformsBytes is ApplyUniforms with an explicit byte size, for
// callers holding data in a larger backing buffer.
//
// Uniforms the driver optimized out are skipped but still consume their
// byte width, so the layout stays independent of driver optimization.
func (c *Context) ApplyUniformsBytes(data []byte, size int) error {
	if !c.inPass {
		return ErrNoActivePass
	}
	if !c.cache.havePipeline {
		panic("gfx: ApplyUniforms without an applied pipeline")
	}
	if size > len(data) {
		panic(fmt.Sprintf("gfx: uniform size %d exceeds the %d bytes supplied", size, len(data)))
	}
	pip := c.pipelines.get(c.cache.pipeline.h)
	sh := c.shaders.get(pip.shader.h)

	offset := 0
	for _, u := range sh.uniforms {
		width := u.utype.sizeBytes() * u.arrayCount
		if offset+width > size {
			panic("gfx: uniform data does not match the shader's uniform layout")
		}
		if u.loc.Valid() {
			n := u.arrayCount
			switch u.utype {
			case UniformFloat1:
				c.f.Uniform1fv(u.loc, byteslice.Float32s(data[offset:])[:n])
			case UniformFloat2:
				c.f.Uniform2fv(u.loc, byteslice.Float32s(data[offset:])[:2*n])
			case UniformFloat3:
				c.f.Uniform3fv(u.loc, byteslice.Float32s(data[offset:])[:3*n])
			case UniformFloat4:
				c.f.Uniform4fv(u.loc, byteslice.Float32s(data[offset:])[:4*n])
			case UniformInt1:
				c.f.Uniform1iv(u.loc, byteslice.Int32s(data[offset:])[:n])
			case UniformInt2:
				c.f.Uniform2iv(u.loc, byteslice.Int32s(data[offset:])[:2*n])
			case UniformInt3:
				c.f.Uniform3iv(u.loc, byteslice.Int32s(data[offset:])[:3*n])
			case UniformInt4:
				c.f.Uniform4iv(u.loc, byteslice.Int32s(data[offset:])[:4*n])
			case UniformMat4:
				c.f.UniformMatrix4fv(u.loc, byteslice.Float32s(data[offset:])[:16*n])
			}
		}
		offset += width
	}
	return nil
}

// Draw issues a draw call with the active pipeline's topology. An indexed
// draw is issued when the bindings carry an index buffer, counting
// elements from the first-th index; otherwise count vertices are drawn
// starting at first.
//
// Requesting more than one instance on a context without instancing
// support drops the call with a diagnostic instead of issuing an invalid
// native call.
func (c *Context) Draw(first, count, instances int) error {
	if !c.inPass {
		return ErrNoActivePass
	}
	if !c.cache.havePipeline {
		panic("gfx: drawing without an applied pipeline")
	}
	if !c.feat.Instancing && instances != 1 {
		slog.Error("gfx: instanced rendering is not supported by the GPU, draw call ignored",
			"instances", instances)
		return nil
	}
	mode := c.pipelines.get(c.cache.pipeline.h).params.Primitive.glMode()
	if c.cache.indexBuffer.Valid() && c.cache.indexType != 0 {
		offset := first * indexElemWidth(c.cache.indexType)
		if c.feat.Instancing {
			c.f.DrawElementsInstanced(mode, count, c.cache.indexType, offset, instances)
		} else {
			c.f.DrawElements(mode, count, c.cache.indexType, offset)
		}
		return nil
	}
	if c.feat.Instancing {
		c.f.DrawArraysInstanced(mode, first, count, instances)
	} else {
		c.f.DrawArrays(mode, first, count)
	}
	return nil
}

func indexElemWidth(ty gl.Enum) int {
	switch ty {
	case gl.UNSIGNED_BYTE:
		return 1
	case gl.UNSIGNED_SHORT:
		return 2
	default:
		return 4
	}
}
