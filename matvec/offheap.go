//go:build cgo

package matvec

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// OffheapSupported reports whether C.malloc backed buffers are available
// in this build.
const OffheapSupported = true

// OffheapBuffer is a float64 buffer allocated with C.malloc, outside the Go
// heap. Useful for large matrices so the benchmark loop is not perturbed by
// GC scanning the backing storage.
type OffheapBuffer struct {
	ptr unsafe.Pointer
	len int
}

// NewOffheapBuffer allocates an off-heap buffer of n float64 values.
// Returns nil if the allocation fails.
func NewOffheapBuffer(n int) *OffheapBuffer {
	if n <= 0 {
		return nil
	}
	ptr := C.malloc(C.size_t(n * 8))
	if ptr == nil {
		return nil
	}
	return &OffheapBuffer{ptr: unsafe.Pointer(ptr), len: n}
}

// Data returns a slice view of the off-heap memory. The slice is valid
// until Close.
func (b *OffheapBuffer) Data() []float64 {
	if b == nil || b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*float64)(b.ptr), b.len)
}

// Close frees the C.malloc-allocated memory. Safe to call twice.
func (b *OffheapBuffer) Close() {
	if b != nil && b.ptr != nil {
		C.free(b.ptr)
		b.ptr = nil
	}
}
