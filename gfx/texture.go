// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import (
	"fmt"

	"quadgl.org/internal/gl"
)

type texture struct {
	raw    gl.Texture
	params TextureParams
}

// NewTexture creates a texture. data must be nil or exactly the byte size
// of the format at the given dimensions; render target textures are
// created without contents.
func (c *Context) NewTexture(access TextureAccess, data []byte, params TextureParams) TextureID {
	if data != nil {
		if want := params.Format.SizeBytes(params.Width, params.Height); len(data) != want {
			panic(fmt.Sprintf("gfx: texture data is %d bytes, format wants %d", len(data), want))
		}
	}
	if access == AccessRenderTarget && data != nil {
		panic("gfx: render target textures take no initial data")
	}
	internal, format, pixelType := params.Format.glFormat()

	c.cache.storeTextureBinding(0)
	tex := texture{raw: c.f.CreateTexture(), params: params}
	c.cache.bindTexture(c.f, 0, tex.raw)
	c.f.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	setSwizzle(c.f, params.Format)
	c.f.TexImage2D(gl.TEXTURE_2D, 0, internal, params.Width, params.Height, format, pixelType, data)

	wrap := params.Wrap.glWrap()
	filter := params.Filter.glFilter()
	c.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int(wrap))
	c.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int(wrap))
	c.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int(filter))
	c.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int(filter))
	c.cache.restoreTextureBinding(c.f, 0)

	return TextureID{c.textures.add(tex)}
}

// NewTextureFromRGBA8 creates a static RGBA8 texture from pixels in
// row-major order.
func (c *Context) NewTextureFromRGBA8(width, height int, pixels []byte) TextureID {
	if len(pixels) != width*height*4 {
		panic(fmt.Sprintf("gfx: %dx%d RGBA8 texture wants %d bytes, got %d", width, height, width*height*4, len(pixels)))
	}
	return c.NewTexture(AccessStatic, pixels, TextureParams{
		Format: FormatRGBA8,
		Filter: FilterNearest,
		Width:  width,
		Height: height,
	})
}

// setSwizzle routes the red channel to alpha for the desktop emulation of
// the Alpha format. WebGL has a native alpha-only format and no swizzle.
func setSwizzle(f gl.Functions, format TextureFormat) {
	if gl.WebGL {
		return
	}
	if format == FormatAlpha {
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_A, gl.RED)
	} else {
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_A, gl.ALPHA)
	}
}

// DeleteTexture releases the GPU texture and invalidates the handle.
func (c *Context) DeleteTexture(id TextureID) {
	tex := c.textures.get(id.h)
	c.f.DeleteTexture(tex.raw)
	c.textures.free(id.h)
}

// TextureSize returns a texture's dimensions in pixels.
func (c *Context) TextureSize(id TextureID) (width, height int) {
	params := c.textures.get(id.h).params
	return params.Width, params.Height
}

// TextureParams returns the texture's current parameters.
func (c *Context) TextureParams(id TextureID) TextureParams {
	return c.textures.get(id.h).params
}

// TextureSetFilter changes the magnification and minification filter.
func (c *Context) TextureSetFilter(id TextureID, filter FilterMode) {
	tex := c.textures.get(id.h)
	tex.params.Filter = filter
	c.cache.storeTextureBinding(0)
	c.cache.bindTexture(c.f, 0, tex.raw)
	glf := filter.glFilter()
	c.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int(glf))
	c.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int(glf))
	c.cache.restoreTextureBinding(c.f, 0)
}

// TextureSetWrap changes the wrap mode of both texture axes.
func (c *Context) TextureSetWrap(id TextureID, wrap TextureWrap) {
	tex := c.textures.get(id.h)
	tex.params.Wrap = wrap
	c.cache.storeTextureBinding(0)
	c.cache.bindTexture(c.f, 0, tex.raw)
	glw := wrap.glWrap()
	c.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int(glw))
	c.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int(glw))
	c.cache.restoreTextureBinding(c.f, 0)
}

// TextureResize reallocates the texture storage at a new size, discarding
// the previous contents. data may carry new contents or be nil. The handle
// stays valid.
func (c *Context) TextureResize(id TextureID, width, height int, data []byte) {
	tex := c.textures.get(id.h)
	tex.params.Width = width
	tex.params.Height = height
	internal, format, pixelType := tex.params.Format.glFormat()
	c.cache.storeTextureBinding(0)
	c.cache.bindTexture(c.f, 0, tex.raw)
	c.f.TexImage2D(gl.TEXTURE_2D, 0, internal, width, height, format, pixelType, data)
	c.cache.restoreTextureBinding(c.f, 0)
}

// TextureUpdate replaces the whole texture contents.
func (c *Context) TextureUpdate(id TextureID, data []byte) {
	width, height := c.TextureSize(id)
	c.TextureUpdatePart(id, 0, 0, width, height, data)
}

// TextureUpdatePart replaces a rectangular region of the texture.
func (c *Context) TextureUpdatePart(id TextureID, x, y, width, height int, data []byte) {
	tex := c.textures.get(id.h)
	if want := tex.params.Format.SizeBytes(width, height); len(data) != want {
		panic(fmt.Sprintf("gfx: texture region is %d bytes, format wants %d", len(data), want))
	}
	if x+width > tex.params.Width || y+height > tex.params.Height {
		panic("gfx: texture update region out of bounds")
	}
	_, format, pixelType := tex.params.Format.glFormat()
	c.cache.storeTextureBinding(0)
	c.cache.bindTexture(c.f, 0, tex.raw)
	c.f.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	setSwizzle(c.f, tex.params.Format)
	c.f.TexSubImage2D(gl.TEXTURE_2D, 0, x, y, width, height, format, pixelType, data)
	c.cache.restoreTextureBinding(c.f, 0)
}

// TextureReadPixels reads the texture contents back into dst through a
// temporary framebuffer. dst must hold the texture's full byte size. The
// previously bound framebuffer is restored.
func (c *Context) TextureReadPixels(id TextureID, dst []byte) {
	tex := c.textures.get(id.h)
	if want := tex.params.Format.SizeBytes(tex.params.Width, tex.params.Height); len(dst) != want {
		panic(fmt.Sprintf("gfx: destination is %d bytes, texture wants %d", len(dst), want))
	}
	_, format, pixelType := tex.params.Format.glFormat()

	prev := c.f.GetFramebufferBinding()
	fbo := c.f.CreateFramebuffer()
	c.f.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	c.f.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex.raw, 0)
	c.f.ReadPixels(0, 0, tex.params.Width, tex.params.Height, format, pixelType, dst)
	c.f.BindFramebuffer(gl.FRAMEBUFFER, prev)
	c.f.DeleteFramebuffer(fbo)
}
