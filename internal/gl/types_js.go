// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package gl

import "syscall/js"

type (
	Buffer      struct{ V js.Value }
	Framebuffer struct{ V js.Value }
	Program     struct{ V js.Value }
	Shader      struct{ V js.Value }
	Texture     struct{ V js.Value }
	Uniform     struct{ V js.Value }
	VertexArray struct{ V js.Value }
)

func (b Buffer) Valid() bool {
	return valid(b.V)
}

func (b Buffer) Equal(o Buffer) bool {
	return b.V.Equal(o.V) || (!valid(b.V) && !valid(o.V))
}

func (f Framebuffer) Valid() bool {
	return valid(f.V)
}

func (f Framebuffer) Equal(o Framebuffer) bool {
	return f.V.Equal(o.V) || (!valid(f.V) && !valid(o.V))
}

func (p Program) Valid() bool {
	return valid(p.V)
}

func (s Shader) Valid() bool {
	return valid(s.V)
}

func (t Texture) Valid() bool {
	return valid(t.V)
}

func (t Texture) Equal(o Texture) bool {
	return t.V.Equal(o.V) || (!valid(t.V) && !valid(o.V))
}

func (u Uniform) Valid() bool {
	return valid(u.V)
}

func (a VertexArray) Valid() bool {
	return valid(a.V)
}

func valid(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}
