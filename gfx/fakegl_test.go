// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package gfx

import "quadgl.org/internal/gl"

// recordGL implements gl.Functions against no GPU at all, counting every
// call by name and reporting scripted attribute and uniform locations.
// Tests use it to assert exactly which native calls an operation issues.
type recordGL struct {
	calls    map[string]int
	attribs  map[string]int
	uniforms map[string]int

	version      string
	failVertex   bool
	failFragment bool
	failLink     bool
	shaderLog    string
	fbStatus     gl.Enum

	nextHandle  uint32
	shaderTypes map[uint32]gl.Enum
	boundFB     uint32

	lastElementsType gl.Enum
	lastUniform1fv   []float32
	uniform1fvLocs   []int32
}

func newRecordGL() *recordGL {
	return &recordGL{
		calls:       make(map[string]int),
		attribs:     make(map[string]int),
		uniforms:    make(map[string]int),
		version:     "3.3.0 test",
		shaderLog:   "0:1: error",
		fbStatus:    gl.FRAMEBUFFER_COMPLETE,
		shaderTypes: make(map[uint32]gl.Enum),
	}
}

func (g *recordGL) record(name string) {
	g.calls[name]++
}

func (g *recordGL) count(names ...string) int {
	n := 0
	for _, name := range names {
		n += g.calls[name]
	}
	return n
}

func (g *recordGL) reset() {
	g.calls = make(map[string]int)
}

func (g *recordGL) handle() uint32 {
	g.nextHandle++
	return g.nextHandle
}

func (g *recordGL) ActiveTexture(texture gl.Enum) { g.record("ActiveTexture") }

func (g *recordGL) AttachShader(p gl.Program, s gl.Shader) { g.record("AttachShader") }

func (g *recordGL) BindBuffer(target gl.Enum, b gl.Buffer) {
	if target == gl.ARRAY_BUFFER {
		g.record("BindBuffer/array")
	} else {
		g.record("BindBuffer/element")
	}
}

func (g *recordGL) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	g.record("BindFramebuffer")
	g.boundFB = fb.V
}

func (g *recordGL) BindTexture(target gl.Enum, t gl.Texture) { g.record("BindTexture") }

func (g *recordGL) BindVertexArray(a gl.VertexArray) { g.record("BindVertexArray") }

func (g *recordGL) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	g.record("BlendEquationSeparate")
}

func (g *recordGL) BlendFunc(sfactor, dfactor gl.Enum) { g.record("BlendFunc") }

func (g *recordGL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	g.record("BlendFuncSeparate")
}

func (g *recordGL) BufferData(target gl.Enum, size int, usage gl.Enum) { g.record("BufferData") }

func (g *recordGL) BufferSubData(target gl.Enum, offset int, data []byte) {
	g.record("BufferSubData")
}

func (g *recordGL) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	g.record("CheckFramebufferStatus")
	return g.fbStatus
}

func (g *recordGL) Clear(mask gl.Enum) { g.record("Clear") }

func (g *recordGL) ClearColor(red, green, blue, alpha float32) { g.record("ClearColor") }

func (g *recordGL) ClearDepthf(d float32) { g.record("ClearDepthf") }

func (g *recordGL) ClearStencil(s int) { g.record("ClearStencil") }

func (g *recordGL) ColorMask(r, gr, b, a bool) { g.record("ColorMask") }

func (g *recordGL) CompileShader(s gl.Shader) { g.record("CompileShader") }

func (g *recordGL) CreateBuffer() gl.Buffer {
	g.record("CreateBuffer")
	return gl.Buffer{V: g.handle()}
}

func (g *recordGL) CreateFramebuffer() gl.Framebuffer {
	g.record("CreateFramebuffer")
	return gl.Framebuffer{V: g.handle()}
}

func (g *recordGL) CreateProgram() gl.Program {
	g.record("CreateProgram")
	return gl.Program{V: g.handle()}
}

func (g *recordGL) CreateShader(ty gl.Enum) gl.Shader {
	g.record("CreateShader")
	h := g.handle()
	g.shaderTypes[h] = ty
	return gl.Shader{V: h}
}

func (g *recordGL) CreateTexture() gl.Texture {
	g.record("CreateTexture")
	return gl.Texture{V: g.handle()}
}

func (g *recordGL) CreateVertexArray() gl.VertexArray {
	g.record("CreateVertexArray")
	return gl.VertexArray{V: g.handle()}
}

func (g *recordGL) CullFace(mode gl.Enum) { g.record("CullFace") }

func (g *recordGL) DeleteBuffer(b gl.Buffer) { g.record("DeleteBuffer") }

func (g *recordGL) DeleteFramebuffer(fb gl.Framebuffer) { g.record("DeleteFramebuffer") }

func (g *recordGL) DeleteProgram(p gl.Program) { g.record("DeleteProgram") }

func (g *recordGL) DeleteShader(s gl.Shader) { g.record("DeleteShader") }

func (g *recordGL) DeleteTexture(t gl.Texture) { g.record("DeleteTexture") }

func (g *recordGL) DepthFunc(fn gl.Enum) { g.record("DepthFunc") }

func (g *recordGL) Disable(cap gl.Enum) { g.record("Disable") }

func (g *recordGL) DisableVertexAttribArray(a gl.Attrib) { g.record("DisableVertexAttribArray") }

func (g *recordGL) DrawArrays(mode gl.Enum, first, count int) { g.record("DrawArrays") }

func (g *recordGL) DrawArraysInstanced(mode gl.Enum, first, count, instances int) {
	g.record("DrawArraysInstanced")
}

func (g *recordGL) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	g.record("DrawElements")
	g.lastElementsType = ty
}

func (g *recordGL) DrawElementsInstanced(mode gl.Enum, count int, ty gl.Enum, offset, instances int) {
	g.record("DrawElementsInstanced")
	g.lastElementsType = ty
}

func (g *recordGL) Enable(cap gl.Enum) { g.record("Enable") }

func (g *recordGL) EnableVertexAttribArray(a gl.Attrib) { g.record("EnableVertexAttribArray") }

func (g *recordGL) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	g.record("FramebufferTexture2D")
}

func (g *recordGL) FrontFace(dir gl.Enum) { g.record("FrontFace") }

func (g *recordGL) GetAttribLocation(p gl.Program, name string) int {
	if loc, ok := g.attribs[name]; ok {
		return loc
	}
	return -1
}

func (g *recordGL) GetFramebufferBinding() gl.Framebuffer {
	return gl.Framebuffer{V: g.boundFB}
}

func (g *recordGL) GetInteger(pname gl.Enum) int { return 0 }

func (g *recordGL) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS && g.failLink {
		return gl.FALSE
	}
	return gl.TRUE
}

func (g *recordGL) GetProgramInfoLog(p gl.Program) string { return g.shaderLog }

func (g *recordGL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS {
		ty := g.shaderTypes[s.V]
		if ty == gl.VERTEX_SHADER && g.failVertex {
			return gl.FALSE
		}
		if ty == gl.FRAGMENT_SHADER && g.failFragment {
			return gl.FALSE
		}
	}
	return gl.TRUE
}

func (g *recordGL) GetShaderInfoLog(s gl.Shader) string { return g.shaderLog }

func (g *recordGL) GetString(pname gl.Enum) string { return g.version }

func (g *recordGL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	if loc, ok := g.uniforms[name]; ok {
		return gl.Uniform{V: int32(loc)}
	}
	return gl.Uniform{V: -1}
}

func (g *recordGL) LinkProgram(p gl.Program) { g.record("LinkProgram") }

func (g *recordGL) PixelStorei(pname gl.Enum, param int) { g.record("PixelStorei") }

func (g *recordGL) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	g.record("ReadPixels")
}

func (g *recordGL) Scissor(x, y, width, height int) { g.record("Scissor") }

func (g *recordGL) ShaderSource(s gl.Shader, src string) { g.record("ShaderSource") }

func (g *recordGL) StencilFuncSeparate(face, fn gl.Enum, ref int, mask uint32) {
	g.record("StencilFuncSeparate")
}

func (g *recordGL) StencilMaskSeparate(face gl.Enum, mask uint32) {
	g.record("StencilMaskSeparate")
}

func (g *recordGL) StencilOpSeparate(face, sfail, dpfail, dppass gl.Enum) {
	g.record("StencilOpSeparate")
}

func (g *recordGL) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) {
	g.record("TexImage2D")
}

func (g *recordGL) TexParameteri(target, pname gl.Enum, param int) { g.record("TexParameteri") }

func (g *recordGL) TexSubImage2D(target gl.Enum, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	g.record("TexSubImage2D")
}

func (g *recordGL) Uniform1fv(dst gl.Uniform, v []float32) {
	g.record("Uniform1fv")
	g.lastUniform1fv = append([]float32(nil), v...)
	g.uniform1fvLocs = append(g.uniform1fvLocs, dst.V)
}

func (g *recordGL) Uniform1i(dst gl.Uniform, v int) { g.record("Uniform1i") }

func (g *recordGL) Uniform1iv(dst gl.Uniform, v []int32) { g.record("Uniform1iv") }

func (g *recordGL) Uniform2fv(dst gl.Uniform, v []float32) { g.record("Uniform2fv") }

func (g *recordGL) Uniform2iv(dst gl.Uniform, v []int32) { g.record("Uniform2iv") }

func (g *recordGL) Uniform3fv(dst gl.Uniform, v []float32) { g.record("Uniform3fv") }

func (g *recordGL) Uniform3iv(dst gl.Uniform, v []int32) { g.record("Uniform3iv") }

func (g *recordGL) Uniform4fv(dst gl.Uniform, v []float32) { g.record("Uniform4fv") }

func (g *recordGL) Uniform4iv(dst gl.Uniform, v []int32) { g.record("Uniform4iv") }

func (g *recordGL) UniformMatrix4fv(dst gl.Uniform, v []float32) { g.record("UniformMatrix4fv") }

func (g *recordGL) UseProgram(p gl.Program) { g.record("UseProgram") }

func (g *recordGL) VertexAttribDivisor(a gl.Attrib, divisor int) { g.record("VertexAttribDivisor") }

func (g *recordGL) VertexAttribPointer(a gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	g.record("VertexAttribPointer")
}

func (g *recordGL) Viewport(x, y, width, height int) { g.record("Viewport") }
