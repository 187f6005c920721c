// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import (
	"fmt"

	"quadgl.org/internal/gl"
)

type buffer struct {
	raw  gl.Buffer
	kind BufferKind
	size int
	// elemSize is the index element width for index buffers, 1, 2 or 4.
	// Zero for vertex buffers.
	elemSize int
}

// glIndexType maps an index element width to the corresponding GL element
// type, or zero for vertex buffers.
func (b *buffer) glIndexType() gl.Enum {
	switch b.elemSize {
	case 1:
		return gl.UNSIGNED_BYTE
	case 2:
		return gl.UNSIGNED_SHORT
	case 4:
		return gl.UNSIGNED_INT
	default:
		return 0
	}
}

// NewBuffer creates a GPU buffer and uploads data's contents, if any. For
// index buffers the data's element width must be 1, 2 or 4 and is locked
// for the buffer's lifetime.
func (c *Context) NewBuffer(kind BufferKind, usage BufferUsage, data Data) BufferID {
	elemSize := 0
	if kind == BufferIndex {
		switch data.elemSize {
		case 1, 2, 4:
			elemSize = data.elemSize
		default:
			panic(fmt.Sprintf("gfx: unsupported index element size %d", data.elemSize))
		}
	}
	buf := buffer{
		raw:      c.f.CreateBuffer(),
		kind:     kind,
		size:     data.size,
		elemSize: elemSize,
	}
	target := kind.glTarget()
	c.cache.storeBufferBinding(target)
	c.cache.bindBuffer(c.f, target, buf.raw, buf.glIndexType())
	c.f.BufferData(target, data.size, usage.glUsage())
	if data.bytes != nil {
		c.f.BufferSubData(target, 0, data.bytes)
	}
	c.cache.restoreBufferBinding(c.f, target)
	return BufferID{c.buffers.add(buf)}
}

// BufferUpdate overwrites the start of a buffer with data. The payload
// must fit the buffer's allocated size, and for index buffers carry the
// element width the buffer was created with. The recorded size is never
// changed.
func (c *Context) BufferUpdate(id BufferID, data Data) {
	if data.bytes == nil {
		panic("gfx: BufferUpdate needs a byte payload")
	}
	buf := c.buffers.get(id.h)
	if buf.kind == BufferIndex && data.elemSize != buf.elemSize {
		panic(fmt.Sprintf("gfx: index element size %d does not match buffer's %d", data.elemSize, buf.elemSize))
	}
	if data.size > buf.size {
		panic(fmt.Sprintf("gfx: update of %d bytes exceeds buffer size %d", data.size, buf.size))
	}
	target := buf.kind.glTarget()
	c.cache.storeBufferBinding(target)
	c.cache.bindBuffer(c.f, target, buf.raw, buf.glIndexType())
	c.f.BufferSubData(target, 0, data.bytes)
	c.cache.restoreBufferBinding(c.f, target)
}

// BufferSize returns the buffer's allocated size in bytes.
func (c *Context) BufferSize(id BufferID) int {
	return c.buffers.get(id.h).size
}

// DeleteBuffer releases the GPU buffer and invalidates the handle. All
// buffer bindings and cached vertex attributes are dropped so the cache
// cannot alias a new buffer that happens to reuse the native name.
func (c *Context) DeleteBuffer(id BufferID) {
	buf := c.buffers.get(id.h)
	c.f.DeleteBuffer(buf.raw)
	c.buffers.free(id.h)
	c.cache.clearBufferBindings(c.f)
	c.cache.clearVertexAttributes()
}
