// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package gl

type (
	Buffer      struct{ V uint32 }
	Framebuffer struct{ V uint32 }
	Program     struct{ V uint32 }
	Shader      struct{ V uint32 }
	Texture     struct{ V uint32 }
	Uniform     struct{ V int32 }
	VertexArray struct{ V uint32 }
)

func (b Buffer) Valid() bool {
	return b.V != 0
}

func (b Buffer) Equal(o Buffer) bool {
	return b == o
}

func (f Framebuffer) Valid() bool {
	return f.V != 0
}

func (f Framebuffer) Equal(o Framebuffer) bool {
	return f == o
}

func (p Program) Valid() bool {
	return p.V != 0
}

func (s Shader) Valid() bool {
	return s.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}

func (t Texture) Equal(o Texture) bool {
	return t == o
}

func (u Uniform) Valid() bool {
	return u.V != -1
}

func (a VertexArray) Valid() bool {
	return a.V != 0
}
