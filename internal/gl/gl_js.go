// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package gl

import (
	"errors"
	"syscall/js"
	"unsafe"
)

// WebGL reports whether the active call surface targets WebGL. Some texture
// formats differ between desktop GL and WebGL.
const WebGL = true

type funcs struct {
	ctx js.Value

	uint8Array   js.Value
	float32Array js.Value
	int32Array   js.Value
}

// NewFunctions wraps a WebGL2RenderingContext value.
func NewFunctions(ctx js.Value) (Functions, error) {
	webgl2 := js.Global().Get("WebGL2RenderingContext")
	if webgl2.IsUndefined() || !ctx.InstanceOf(webgl2) {
		return nil, errors.New("gl: context is not a WebGL2RenderingContext")
	}
	return &funcs{
		ctx:          ctx,
		uint8Array:   js.Global().Get("Uint8Array"),
		float32Array: js.Global().Get("Float32Array"),
		int32Array:   js.Global().Get("Int32Array"),
	}, nil
}

func (f *funcs) byteArray(data []byte) js.Value {
	a := f.uint8Array.New(len(data))
	js.CopyBytesToJS(a, data)
	return a
}

func (f *funcs) floatArray(v []float32) js.Value {
	data := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v))), len(v)*4)
	a := f.byteArray(data)
	return f.float32Array.New(a.Get("buffer"), 0, len(v))
}

func (f *funcs) intArray(v []int32) js.Value {
	data := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v))), len(v)*4)
	a := f.byteArray(data)
	return f.int32Array.New(a.Get("buffer"), 0, len(v))
}

func (f *funcs) ActiveTexture(texture Enum) {
	f.ctx.Call("activeTexture", int(texture))
}

func (f *funcs) AttachShader(p Program, s Shader) {
	f.ctx.Call("attachShader", p.V, s.V)
}

func (f *funcs) BindBuffer(target Enum, b Buffer) {
	f.ctx.Call("bindBuffer", int(target), jsHandle(b.V))
}

func (f *funcs) BindFramebuffer(target Enum, fb Framebuffer) {
	f.ctx.Call("bindFramebuffer", int(target), jsHandle(fb.V))
}

func (f *funcs) BindTexture(target Enum, t Texture) {
	f.ctx.Call("bindTexture", int(target), jsHandle(t.V))
}

func (f *funcs) BindVertexArray(a VertexArray) {
	f.ctx.Call("bindVertexArray", jsHandle(a.V))
}

func (f *funcs) BlendEquationSeparate(modeRGB, modeAlpha Enum) {
	f.ctx.Call("blendEquationSeparate", int(modeRGB), int(modeAlpha))
}

func (f *funcs) BlendFunc(sfactor, dfactor Enum) {
	f.ctx.Call("blendFunc", int(sfactor), int(dfactor))
}

func (f *funcs) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	f.ctx.Call("blendFuncSeparate", int(srcRGB), int(dstRGB), int(srcAlpha), int(dstAlpha))
}

func (f *funcs) BufferData(target Enum, size int, usage Enum) {
	f.ctx.Call("bufferData", int(target), size, int(usage))
}

func (f *funcs) BufferSubData(target Enum, offset int, data []byte) {
	f.ctx.Call("bufferSubData", int(target), offset, f.byteArray(data))
}

func (f *funcs) CheckFramebufferStatus(target Enum) Enum {
	return Enum(f.ctx.Call("checkFramebufferStatus", int(target)).Int())
}

func (f *funcs) Clear(mask Enum) {
	f.ctx.Call("clear", int(mask))
}

func (f *funcs) ClearColor(red, green, blue, alpha float32) {
	f.ctx.Call("clearColor", red, green, blue, alpha)
}

func (f *funcs) ClearDepthf(d float32) {
	f.ctx.Call("clearDepth", d)
}

func (f *funcs) ClearStencil(s int) {
	f.ctx.Call("clearStencil", s)
}

func (f *funcs) ColorMask(r, g, b, a bool) {
	f.ctx.Call("colorMask", r, g, b, a)
}

func (f *funcs) CompileShader(s Shader) {
	f.ctx.Call("compileShader", s.V)
}

func (f *funcs) CreateBuffer() Buffer {
	return Buffer{V: f.ctx.Call("createBuffer")}
}

func (f *funcs) CreateFramebuffer() Framebuffer {
	return Framebuffer{V: f.ctx.Call("createFramebuffer")}
}

func (f *funcs) CreateProgram() Program {
	return Program{V: f.ctx.Call("createProgram")}
}

func (f *funcs) CreateShader(ty Enum) Shader {
	return Shader{V: f.ctx.Call("createShader", int(ty))}
}

func (f *funcs) CreateTexture() Texture {
	return Texture{V: f.ctx.Call("createTexture")}
}

func (f *funcs) CreateVertexArray() VertexArray {
	return VertexArray{V: f.ctx.Call("createVertexArray")}
}

func (f *funcs) CullFace(mode Enum) {
	f.ctx.Call("cullFace", int(mode))
}

func (f *funcs) DeleteBuffer(b Buffer) {
	f.ctx.Call("deleteBuffer", b.V)
}

func (f *funcs) DeleteFramebuffer(fb Framebuffer) {
	f.ctx.Call("deleteFramebuffer", fb.V)
}

func (f *funcs) DeleteProgram(p Program) {
	f.ctx.Call("deleteProgram", p.V)
}

func (f *funcs) DeleteShader(s Shader) {
	f.ctx.Call("deleteShader", s.V)
}

func (f *funcs) DeleteTexture(t Texture) {
	f.ctx.Call("deleteTexture", t.V)
}

func (f *funcs) DepthFunc(fn Enum) {
	f.ctx.Call("depthFunc", int(fn))
}

func (f *funcs) Disable(cap Enum) {
	f.ctx.Call("disable", int(cap))
}

func (f *funcs) DisableVertexAttribArray(a Attrib) {
	f.ctx.Call("disableVertexAttribArray", int(a))
}

func (f *funcs) DrawArrays(mode Enum, first, count int) {
	f.ctx.Call("drawArrays", int(mode), first, count)
}

func (f *funcs) DrawArraysInstanced(mode Enum, first, count, instances int) {
	f.ctx.Call("drawArraysInstanced", int(mode), first, count, instances)
}

func (f *funcs) DrawElements(mode Enum, count int, ty Enum, offset int) {
	f.ctx.Call("drawElements", int(mode), count, int(ty), offset)
}

func (f *funcs) DrawElementsInstanced(mode Enum, count int, ty Enum, offset, instances int) {
	f.ctx.Call("drawElementsInstanced", int(mode), count, int(ty), offset, instances)
}

func (f *funcs) Enable(cap Enum) {
	f.ctx.Call("enable", int(cap))
}

func (f *funcs) EnableVertexAttribArray(a Attrib) {
	f.ctx.Call("enableVertexAttribArray", int(a))
}

func (f *funcs) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	f.ctx.Call("framebufferTexture2D", int(target), int(attachment), int(texTarget), t.V, level)
}

func (f *funcs) FrontFace(dir Enum) {
	f.ctx.Call("frontFace", int(dir))
}

func (f *funcs) GetAttribLocation(p Program, name string) int {
	return f.ctx.Call("getAttribLocation", p.V, name).Int()
}

func (f *funcs) GetFramebufferBinding() Framebuffer {
	return Framebuffer{V: f.ctx.Call("getParameter", FRAMEBUFFER_BINDING)}
}

func (f *funcs) GetInteger(pname Enum) int {
	return paramVal(f.ctx.Call("getParameter", int(pname)))
}

func (f *funcs) GetProgrami(p Program, pname Enum) int {
	return paramVal(f.ctx.Call("getProgramParameter", p.V, int(pname)))
}

func (f *funcs) GetProgramInfoLog(p Program) string {
	return f.ctx.Call("getProgramInfoLog", p.V).String()
}

func (f *funcs) GetShaderi(s Shader, pname Enum) int {
	return paramVal(f.ctx.Call("getShaderParameter", s.V, int(pname)))
}

func (f *funcs) GetShaderInfoLog(s Shader) string {
	return f.ctx.Call("getShaderInfoLog", s.V).String()
}

func (f *funcs) GetString(pname Enum) string {
	return f.ctx.Call("getParameter", int(pname)).String()
}

func (f *funcs) GetUniformLocation(p Program, name string) Uniform {
	return Uniform{V: f.ctx.Call("getUniformLocation", p.V, name)}
}

func (f *funcs) LinkProgram(p Program) {
	f.ctx.Call("linkProgram", p.V)
}

func (f *funcs) PixelStorei(pname Enum, param int) {
	f.ctx.Call("pixelStorei", int(pname), param)
}

func (f *funcs) ReadPixels(x, y, width, height int, format, ty Enum, data []byte) {
	a := f.uint8Array.New(len(data))
	f.ctx.Call("readPixels", x, y, width, height, int(format), int(ty), a)
	js.CopyBytesToGo(data, a)
}

func (f *funcs) Scissor(x, y, width, height int) {
	f.ctx.Call("scissor", x, y, width, height)
}

func (f *funcs) ShaderSource(s Shader, src string) {
	f.ctx.Call("shaderSource", s.V, src)
}

func (f *funcs) StencilFuncSeparate(face, fn Enum, ref int, mask uint32) {
	f.ctx.Call("stencilFuncSeparate", int(face), int(fn), ref, int(mask))
}

func (f *funcs) StencilMaskSeparate(face Enum, mask uint32) {
	f.ctx.Call("stencilMaskSeparate", int(face), int(mask))
}

func (f *funcs) StencilOpSeparate(face, sfail, dpfail, dppass Enum) {
	f.ctx.Call("stencilOpSeparate", int(face), int(sfail), int(dpfail), int(dppass))
}

func (f *funcs) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte) {
	if data == nil {
		f.ctx.Call("texImage2D", int(target), level, int(internalFormat), width, height, 0, int(format), int(ty), nil)
		return
	}
	f.ctx.Call("texImage2D", int(target), level, int(internalFormat), width, height, 0, int(format), int(ty), f.byteArray(data))
}

func (f *funcs) TexParameteri(target, pname Enum, param int) {
	f.ctx.Call("texParameteri", int(target), int(pname), param)
}

func (f *funcs) TexSubImage2D(target Enum, level, x, y, width, height int, format, ty Enum, data []byte) {
	f.ctx.Call("texSubImage2D", int(target), level, x, y, width, height, int(format), int(ty), f.byteArray(data))
}

func (f *funcs) Uniform1fv(dst Uniform, v []float32) {
	f.ctx.Call("uniform1fv", dst.V, f.floatArray(v))
}

func (f *funcs) Uniform1i(dst Uniform, v int) {
	f.ctx.Call("uniform1i", dst.V, v)
}

func (f *funcs) Uniform1iv(dst Uniform, v []int32) {
	f.ctx.Call("uniform1iv", dst.V, f.intArray(v))
}

func (f *funcs) Uniform2fv(dst Uniform, v []float32) {
	f.ctx.Call("uniform2fv", dst.V, f.floatArray(v))
}

func (f *funcs) Uniform2iv(dst Uniform, v []int32) {
	f.ctx.Call("uniform2iv", dst.V, f.intArray(v))
}

func (f *funcs) Uniform3fv(dst Uniform, v []float32) {
	f.ctx.Call("uniform3fv", dst.V, f.floatArray(v))
}

func (f *funcs) Uniform3iv(dst Uniform, v []int32) {
	f.ctx.Call("uniform3iv", dst.V, f.intArray(v))
}

func (f *funcs) Uniform4fv(dst Uniform, v []float32) {
	f.ctx.Call("uniform4fv", dst.V, f.floatArray(v))
}

func (f *funcs) Uniform4iv(dst Uniform, v []int32) {
	f.ctx.Call("uniform4iv", dst.V, f.intArray(v))
}

func (f *funcs) UniformMatrix4fv(dst Uniform, v []float32) {
	f.ctx.Call("uniformMatrix4fv", dst.V, false, f.floatArray(v))
}

func (f *funcs) UseProgram(p Program) {
	f.ctx.Call("useProgram", jsHandle(p.V))
}

func (f *funcs) VertexAttribDivisor(a Attrib, divisor int) {
	f.ctx.Call("vertexAttribDivisor", int(a), divisor)
}

func (f *funcs) VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	f.ctx.Call("vertexAttribPointer", int(a), size, int(ty), normalized, stride, offset)
}

func (f *funcs) Viewport(x, y, width, height int) {
	f.ctx.Call("viewport", x, y, width, height)
}

// jsHandle maps the zero handle to an explicit null for calls that unbind.
func jsHandle(v js.Value) any {
	if v.IsUndefined() {
		return nil
	}
	return v
}

func paramVal(v js.Value) int {
	switch v.Type() {
	case js.TypeBoolean:
		if v.Bool() {
			return 1
		}
		return 0
	case js.TypeNumber:
		return v.Int()
	default:
		panic("gl: unexpected parameter type")
	}
}
