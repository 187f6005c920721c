// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import "quadgl.org/internal/gl"

type shaderUniform struct {
	loc        gl.Uniform
	utype      UniformType
	arrayCount int
}

type shader struct {
	program gl.Program
	// images and uniforms keep the declared order from ShaderMeta.
	// Locations that the driver optimized out stay in place as invalid
	// entries so the order contract holds.
	images   []gl.Uniform
	uniforms []shaderUniform
}

// NewShader compiles and links a shader program. meta declares the image
// samplers and uniforms; their order is the contract ApplyBindings and
// ApplyUniforms follow. Compilation failures return a *CompileError, link
// failures a *LinkError.
func (c *Context) NewShader(vertexSrc, fragmentSrc string, meta ShaderMeta) (ShaderID, error) {
	vs, err := compileShader(c.f, gl.VERTEX_SHADER, StageVertex, vertexSrc)
	if err != nil {
		return ShaderID{}, err
	}
	defer c.f.DeleteShader(vs)
	fs, err := compileShader(c.f, gl.FRAGMENT_SHADER, StageFragment, fragmentSrc)
	if err != nil {
		return ShaderID{}, err
	}
	defer c.f.DeleteShader(fs)

	prog := c.f.CreateProgram()
	c.f.AttachShader(prog, vs)
	c.f.AttachShader(prog, fs)
	c.f.LinkProgram(prog)
	if c.f.GetProgrami(prog, gl.LINK_STATUS) == gl.FALSE {
		log := c.f.GetProgramInfoLog(prog)
		c.f.DeleteProgram(prog)
		return ShaderID{}, &LinkError{Log: log}
	}
	c.f.UseProgram(prog)

	sh := shader{
		program: prog,
		images:  make([]gl.Uniform, 0, len(meta.Images)),
	}
	for _, name := range meta.Images {
		sh.images = append(sh.images, c.f.GetUniformLocation(prog, name))
	}
	for _, u := range meta.Uniforms {
		count := u.ArrayCount
		if count < 1 {
			count = 1
		}
		sh.uniforms = append(sh.uniforms, shaderUniform{
			loc:        c.f.GetUniformLocation(prog, u.Name),
			utype:      u.Type,
			arrayCount: count,
		})
	}
	return ShaderID{c.shaders.add(sh)}, nil
}

func compileShader(f gl.Functions, glType gl.Enum, stage ShaderStage, src string) (gl.Shader, error) {
	sh := f.CreateShader(glType)
	f.ShaderSource(sh, src)
	f.CompileShader(sh)
	if f.GetShaderi(sh, gl.COMPILE_STATUS) == gl.FALSE {
		log := f.GetShaderInfoLog(sh)
		f.DeleteShader(sh)
		return gl.Shader{}, &CompileError{Stage: stage, Log: log}
	}
	return sh, nil
}

// DeleteShader releases the GPU program and invalidates the handle.
// Pipelines created from the shader keep their own reference to the
// handle and must not be applied afterwards.
func (c *Context) DeleteShader(id ShaderID) {
	sh := c.shaders.get(id.h)
	c.f.DeleteProgram(sh.program)
	c.shaders.free(id.h)
}
