// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import (
	"errors"
	"fmt"
)

// ErrNoActivePass is returned by state and draw operations issued outside
// a BeginDefaultPass/BeginPass ... EndRenderPass scope.
var ErrNoActivePass = errors.New("gfx: no active render pass")

// ShaderStage identifies which stage of a shader failed to compile.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	if s == StageFragment {
		return "fragment"
	}
	return "vertex"
}

// CompileError reports a shader compilation failure together with the
// driver's diagnostic log.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gfx: %s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a program link failure together with the driver's
// diagnostic log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gfx: program link failed: %s", e.Log)
}

// StaleHandleError is the panic value for a handle used after its resource
// was deleted.
type StaleHandleError struct {
	Kind  string
	Index int
}

func (e *StaleHandleError) Error() string {
	return fmt.Sprintf("gfx: use of deleted %s handle (slot %d)", e.Kind, e.Index)
}

// ContextMismatchError is the panic value for a handle dereferenced on a
// context other than the one that created it.
type ContextMismatchError struct {
	Kind string
}

func (e *ContextMismatchError) Error() string {
	return fmt.Sprintf("gfx: %s handle belongs to a different context", e.Kind)
}
