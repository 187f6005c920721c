// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package gl

import (
	"fmt"
	"strings"
	"unsafe"

	ogl "github.com/go-gl/gl/v3.3-core/gl"
)

// WebGL reports whether the active call surface targets WebGL. Some texture
// formats differ between desktop GL and WebGL.
const WebGL = false

type funcs struct{}

// NewFunctions loads the OpenGL function pointers for the context current on
// the calling thread.
func NewFunctions() (Functions, error) {
	if err := ogl.Init(); err != nil {
		return nil, fmt.Errorf("gl: loading OpenGL functions failed: %w", err)
	}
	return funcs{}, nil
}

func (funcs) ActiveTexture(texture Enum) {
	ogl.ActiveTexture(uint32(texture))
}

func (funcs) AttachShader(p Program, s Shader) {
	ogl.AttachShader(p.V, s.V)
}

func (funcs) BindBuffer(target Enum, b Buffer) {
	ogl.BindBuffer(uint32(target), b.V)
}

func (funcs) BindFramebuffer(target Enum, fb Framebuffer) {
	ogl.BindFramebuffer(uint32(target), fb.V)
}

func (funcs) BindTexture(target Enum, t Texture) {
	ogl.BindTexture(uint32(target), t.V)
}

func (funcs) BindVertexArray(a VertexArray) {
	ogl.BindVertexArray(a.V)
}

func (funcs) BlendEquationSeparate(modeRGB, modeAlpha Enum) {
	ogl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (funcs) BlendFunc(sfactor, dfactor Enum) {
	ogl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (funcs) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	ogl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (funcs) BufferData(target Enum, size int, usage Enum) {
	ogl.BufferData(uint32(target), size, nil, uint32(usage))
}

func (funcs) BufferSubData(target Enum, offset int, data []byte) {
	ogl.BufferSubData(uint32(target), offset, len(data), ogl.Ptr(data))
}

func (funcs) CheckFramebufferStatus(target Enum) Enum {
	return Enum(ogl.CheckFramebufferStatus(uint32(target)))
}

func (funcs) Clear(mask Enum) {
	ogl.Clear(uint32(mask))
}

func (funcs) ClearColor(red, green, blue, alpha float32) {
	ogl.ClearColor(red, green, blue, alpha)
}

func (funcs) ClearDepthf(d float32) {
	ogl.ClearDepth(float64(d))
}

func (funcs) ClearStencil(s int) {
	ogl.ClearStencil(int32(s))
}

func (funcs) ColorMask(r, g, b, a bool) {
	ogl.ColorMask(r, g, b, a)
}

func (funcs) CompileShader(s Shader) {
	ogl.CompileShader(s.V)
}

func (funcs) CreateBuffer() Buffer {
	var b Buffer
	ogl.GenBuffers(1, &b.V)
	return b
}

func (funcs) CreateFramebuffer() Framebuffer {
	var fb Framebuffer
	ogl.GenFramebuffers(1, &fb.V)
	return fb
}

func (funcs) CreateProgram() Program {
	return Program{V: ogl.CreateProgram()}
}

func (funcs) CreateShader(ty Enum) Shader {
	return Shader{V: ogl.CreateShader(uint32(ty))}
}

func (funcs) CreateTexture() Texture {
	var t Texture
	ogl.GenTextures(1, &t.V)
	return t
}

func (funcs) CreateVertexArray() VertexArray {
	var a VertexArray
	ogl.GenVertexArrays(1, &a.V)
	return a
}

func (funcs) CullFace(mode Enum) {
	ogl.CullFace(uint32(mode))
}

func (funcs) DeleteBuffer(b Buffer) {
	ogl.DeleteBuffers(1, &b.V)
}

func (funcs) DeleteFramebuffer(fb Framebuffer) {
	ogl.DeleteFramebuffers(1, &fb.V)
}

func (funcs) DeleteProgram(p Program) {
	ogl.DeleteProgram(p.V)
}

func (funcs) DeleteShader(s Shader) {
	ogl.DeleteShader(s.V)
}

func (funcs) DeleteTexture(t Texture) {
	ogl.DeleteTextures(1, &t.V)
}

func (funcs) DepthFunc(fn Enum) {
	ogl.DepthFunc(uint32(fn))
}

func (funcs) Disable(cap Enum) {
	ogl.Disable(uint32(cap))
}

func (funcs) DisableVertexAttribArray(a Attrib) {
	ogl.DisableVertexAttribArray(uint32(a))
}

func (funcs) DrawArrays(mode Enum, first, count int) {
	ogl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (funcs) DrawArraysInstanced(mode Enum, first, count, instances int) {
	ogl.DrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instances))
}

func (funcs) DrawElements(mode Enum, count int, ty Enum, offset int) {
	ogl.DrawElements(uint32(mode), int32(count), uint32(ty), ogl.PtrOffset(offset))
}

func (funcs) DrawElementsInstanced(mode Enum, count int, ty Enum, offset, instances int) {
	ogl.DrawElementsInstanced(uint32(mode), int32(count), uint32(ty), ogl.PtrOffset(offset), int32(instances))
}

func (funcs) Enable(cap Enum) {
	ogl.Enable(uint32(cap))
}

func (funcs) EnableVertexAttribArray(a Attrib) {
	ogl.EnableVertexAttribArray(uint32(a))
}

func (funcs) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	ogl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), t.V, int32(level))
}

func (funcs) FrontFace(dir Enum) {
	ogl.FrontFace(uint32(dir))
}

func (funcs) GetAttribLocation(p Program, name string) int {
	cname, free := cString(name)
	defer free()
	return int(ogl.GetAttribLocation(p.V, cname))
}

func (funcs) GetFramebufferBinding() Framebuffer {
	var v int32
	ogl.GetIntegerv(FRAMEBUFFER_BINDING, &v)
	return Framebuffer{V: uint32(v)}
}

func (funcs) GetInteger(pname Enum) int {
	var v int32
	ogl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (funcs) GetProgrami(p Program, pname Enum) int {
	var v int32
	ogl.GetProgramiv(p.V, uint32(pname), &v)
	return int(v)
}

func (funcs) GetProgramInfoLog(p Program) string {
	var length int32
	ogl.GetProgramiv(p.V, INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(length+1))
	ogl.GetProgramInfoLog(p.V, length, nil, ogl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (funcs) GetShaderi(s Shader, pname Enum) int {
	var v int32
	ogl.GetShaderiv(s.V, uint32(pname), &v)
	return int(v)
}

func (funcs) GetShaderInfoLog(s Shader) string {
	var length int32
	ogl.GetShaderiv(s.V, INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(length+1))
	ogl.GetShaderInfoLog(s.V, length, nil, ogl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (funcs) GetString(pname Enum) string {
	return ogl.GoStr(ogl.GetString(uint32(pname)))
}

func (funcs) GetUniformLocation(p Program, name string) Uniform {
	cname, free := cString(name)
	defer free()
	return Uniform{V: ogl.GetUniformLocation(p.V, cname)}
}

func (funcs) LinkProgram(p Program) {
	ogl.LinkProgram(p.V)
}

func (funcs) PixelStorei(pname Enum, param int) {
	ogl.PixelStorei(uint32(pname), int32(param))
}

func (funcs) ReadPixels(x, y, width, height int, format, ty Enum, data []byte) {
	ogl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), ogl.Ptr(data))
}

func (funcs) Scissor(x, y, width, height int) {
	ogl.Scissor(int32(x), int32(y), int32(width), int32(height))
}

func (funcs) ShaderSource(s Shader, src string) {
	csrc, free := ogl.Strs(src + "\x00")
	defer free()
	ogl.ShaderSource(s.V, 1, csrc, nil)
}

func (funcs) StencilFuncSeparate(face, fn Enum, ref int, mask uint32) {
	ogl.StencilFuncSeparate(uint32(face), uint32(fn), int32(ref), mask)
}

func (funcs) StencilMaskSeparate(face Enum, mask uint32) {
	ogl.StencilMaskSeparate(uint32(face), mask)
}

func (funcs) StencilOpSeparate(face, sfail, dpfail, dppass Enum) {
	ogl.StencilOpSeparate(uint32(face), uint32(sfail), uint32(dpfail), uint32(dppass))
}

func (funcs) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = ogl.Ptr(data)
	}
	ogl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), p)
}

func (funcs) TexParameteri(target, pname Enum, param int) {
	ogl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (funcs) TexSubImage2D(target Enum, level, x, y, width, height int, format, ty Enum, data []byte) {
	ogl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), ogl.Ptr(data))
}

func (funcs) Uniform1fv(dst Uniform, v []float32) {
	ogl.Uniform1fv(dst.V, int32(len(v)), &v[0])
}

func (funcs) Uniform1i(dst Uniform, v int) {
	ogl.Uniform1i(dst.V, int32(v))
}

func (funcs) Uniform1iv(dst Uniform, v []int32) {
	ogl.Uniform1iv(dst.V, int32(len(v)), &v[0])
}

func (funcs) Uniform2fv(dst Uniform, v []float32) {
	ogl.Uniform2fv(dst.V, int32(len(v)/2), &v[0])
}

func (funcs) Uniform2iv(dst Uniform, v []int32) {
	ogl.Uniform2iv(dst.V, int32(len(v)/2), &v[0])
}

func (funcs) Uniform3fv(dst Uniform, v []float32) {
	ogl.Uniform3fv(dst.V, int32(len(v)/3), &v[0])
}

func (funcs) Uniform3iv(dst Uniform, v []int32) {
	ogl.Uniform3iv(dst.V, int32(len(v)/3), &v[0])
}

func (funcs) Uniform4fv(dst Uniform, v []float32) {
	ogl.Uniform4fv(dst.V, int32(len(v)/4), &v[0])
}

func (funcs) Uniform4iv(dst Uniform, v []int32) {
	ogl.Uniform4iv(dst.V, int32(len(v)/4), &v[0])
}

func (funcs) UniformMatrix4fv(dst Uniform, v []float32) {
	ogl.UniformMatrix4fv(dst.V, int32(len(v)/16), false, &v[0])
}

func (funcs) UseProgram(p Program) {
	ogl.UseProgram(p.V)
}

func (funcs) VertexAttribDivisor(a Attrib, divisor int) {
	ogl.VertexAttribDivisor(uint32(a), uint32(divisor))
}

func (funcs) VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	ogl.VertexAttribPointerWithOffset(uint32(a), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (funcs) Viewport(x, y, width, height int) {
	ogl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func cString(s string) (*uint8, func()) {
	csrc, free := ogl.Strs(s + "\x00")
	return *csrc, free
}
