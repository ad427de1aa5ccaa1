//go:build !cgo

package matvec

// OffheapSupported reports whether C.malloc backed buffers are available
// in this build.
const OffheapSupported = false

// OffheapBuffer is unavailable without CGO; callers fall back to heap slices.
type OffheapBuffer struct{}

// NewOffheapBuffer returns nil when CGO is disabled.
func NewOffheapBuffer(n int) *OffheapBuffer { return nil }

// Data returns nil when CGO is disabled.
func (b *OffheapBuffer) Data() []float64 { return nil }

// Close is a no-op when CGO is disabled.
func (b *OffheapBuffer) Close() {}
