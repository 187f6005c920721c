// SPDX-License-Identifier: Unlicense OR MIT

// Package byteslice provides byte slice views of typed slices and the
// reverse, for handing flat uniform and vertex data to the GL bindings
// without copying.
package byteslice

import "unsafe"

// Float32s returns a float32 view of a byte slice. The slice length is
// truncated to whole elements.
func Float32s(s []byte) []float32 {
	if len(s) < 4 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(s))), len(s)/4)
}

// Int32s returns an int32 view of a byte slice. The slice length is
// truncated to whole elements.
func Int32s(s []byte) []int32 {
	if len(s) < 4 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(s))), len(s)/4)
}

// Bytes returns a byte view of a float32 slice.
func Bytes(s []float32) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*4)
}
