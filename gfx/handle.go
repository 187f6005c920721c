// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import "sync/atomic"

// contextIDs hands out a distinct non-zero id per context so that handles
// can be checked against the context that issued them.
var contextIDs atomic.Uint32

// handle refers to a slot in a resource table. The zero handle refers to
// nothing. The generation is bumped on deletion, turning use-after-delete
// into a deterministic panic instead of silently touching a reused slot.
type handle struct {
	ctx   uint32
	index uint32
	gen   uint32
}

func (h handle) valid() bool {
	return h.ctx != 0
}

// Typed handles. Each is an opaque reference into one resource table of
// one context; the zero value refers to nothing.
type (
	BufferID   struct{ h handle }
	TextureID  struct{ h handle }
	ShaderID   struct{ h handle }
	PipelineID struct{ h handle }
	PassID     struct{ h handle }
)

type slot[T any] struct {
	gen  uint32
	live bool
	res  T
}

// table is a flat append-only resource table. Slots are tombstoned on
// deletion, never compacted or reused.
type table[T any] struct {
	ctx   uint32
	kind  string
	slots []slot[T]
}

func (t *table[T]) add(res T) handle {
	t.slots = append(t.slots, slot[T]{live: true, res: res})
	return handle{ctx: t.ctx, index: uint32(len(t.slots) - 1)}
}

// get resolves a handle, panicking on cross-context use and on stale
// handles. Both are programmer errors, not recoverable conditions.
func (t *table[T]) get(h handle) *T {
	if h.ctx != t.ctx {
		panic(&ContextMismatchError{Kind: t.kind})
	}
	if int(h.index) >= len(t.slots) {
		panic(&StaleHandleError{Kind: t.kind, Index: int(h.index)})
	}
	s := &t.slots[h.index]
	if s.gen != h.gen || !s.live {
		panic(&StaleHandleError{Kind: t.kind, Index: int(h.index)})
	}
	return &s.res
}

// free tombstones the slot. The resource's native objects must already be
// released by the caller.
func (t *table[T]) free(h handle) {
	t.get(h)
	s := &t.slots[h.index]
	s.live = false
	s.gen++
	var zero T
	s.res = zero
}
