// Package matvec provides four interchangeable dense matrix-vector multiply
// kernels over row-major float64 matrices: a scalar baseline, a
// loop-interchanged variant, an 8-way unrolled variant, and an AVX-512, AVX2,
// or NEON accelerated variant. Automatically selects the best vectorized
// implementation based on GOARCH and CGO availability.
//
// All kernels compute c[i] = sum over k of A[i*n+k]*b[k]. They are
// mathematically identical but sum in different orders, so results agree only
// up to floating-point rounding, not bit-for-bit.
package matvec

import (
	"fmt"
	"sort"
)

// Kernel computes c = A*b for an n x n row-major matrix A and length-n
// vectors b and c. c must be a distinct buffer from A and b and is fully
// overwritten. Kernels panic on dimension mismatch; n = 0 is a valid no-op.
type Kernel func(n int, a, b, c []float64)

var (
	vectorizedImpl     func(n int, a, b, c []float64)
	vectorizedImplDesc string
)

func init() {
	// Default; dispatch files override in init() based on GOARCH and CGO.
	if vectorizedImpl == nil {
		vectorizedImpl = matVecVecGo
		vectorizedImplDesc = "Go"
	}
}

// kernels maps variant names to implementations. "vectorized" is an alias
// for "avx2", the historical name of the SIMD build.
var kernels = map[string]Kernel{
	"baseline":    Baseline,
	"interchange": Interchange,
	"unroll":      Unrolled,
	"avx2":        Vectorized,
	"vectorized":  Vectorized,
}

// ForName returns the kernel registered under name.
func ForName(name string) (Kernel, error) {
	k, ok := kernels[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q (want one of %v)", name, Names())
	}
	return k, nil
}

// Names returns the canonical variant names in report order.
func Names() []string {
	return []string{"baseline", "avx2", "unroll", "interchange"}
}

// AllNames returns every accepted variant name, aliases included, sorted.
func AllNames() []string {
	out := make([]string, 0, len(kernels))
	for name := range kernels {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func checkDims(n int, a, b, c []float64) {
	if n < 0 {
		panic(fmt.Sprintf("matvec: negative dimension %d", n))
	}
	if len(a) != n*n {
		panic(fmt.Sprintf("matvec: matrix has %d elements, want %d", len(a), n*n))
	}
	if len(b) != n {
		panic(fmt.Sprintf("matvec: input vector has %d elements, want %d", len(b), n))
	}
	if len(c) != n {
		panic(fmt.Sprintf("matvec: output vector has %d elements, want %d", len(c), n))
	}
}

// Baseline is the unoptimized reference kernel: one scalar accumulator per
// row, summing over k in ascending order.
func Baseline(n int, a, b, c []float64) {
	checkDims(n, a, b, c)
	for i := 0; i < n; i++ {
		row := a[i*n : i*n+n]
		sum := 0.0
		for k := 0; k < n; k++ {
			sum += row[k] * b[k]
		}
		c[i] = sum
	}
}

// Interchange swaps the loop order (k outer, i inner), accumulating into c
// incrementally. The column-wise walk over A has poor spatial locality, so
// this variant is expected to run slower than Baseline on any non-trivial n.
// It exists to demonstrate that cache effect, not as an optimization.
func Interchange(n int, a, b, c []float64) {
	checkDims(n, a, b, c)
	for i := 0; i < n; i++ {
		c[i] = 0
	}
	for k := 0; k < n; k++ {
		bk := b[k]
		for i := 0; i < n; i++ {
			c[i] += a[i*n+k] * bk
		}
	}
}

// unrollFactor is the batch size of the Unrolled k loop.
const unrollFactor = 8

// Unrolled processes the k loop in batches of 8 with a scalar remainder loop,
// exposing more instruction-level parallelism than Baseline.
func Unrolled(n int, a, b, c []float64) {
	checkDims(n, a, b, c)
	for i := 0; i < n; i++ {
		row := a[i*n : i*n+n]
		sum := 0.0
		k := 0
		for ; k+unrollFactor <= n; k += unrollFactor {
			sum += row[k]*b[k] +
				row[k+1]*b[k+1] +
				row[k+2]*b[k+2] +
				row[k+3]*b[k+3] +
				row[k+4]*b[k+4] +
				row[k+5]*b[k+5] +
				row[k+6]*b[k+6] +
				row[k+7]*b[k+7]
		}
		for ; k < n; k++ {
			sum += row[k] * b[k]
		}
		c[i] = sum
	}
}

// Vectorized runs the best available SIMD implementation
// (AVX-512 > AVX2 on amd64; NEON on arm64; pure Go otherwise).
// Every path handles n that is not a multiple of the lane width, including
// n smaller than one vector register.
func Vectorized(n int, a, b, c []float64) {
	checkDims(n, a, b, c)
	if vectorizedImpl != nil {
		vectorizedImpl(n, a, b, c)
		return
	}
	matVecVecGo(n, a, b, c)
}

// VectorizedDesc returns a description of the active Vectorized
// implementation (for logging).
func VectorizedDesc() string {
	if vectorizedImplDesc != "" {
		return vectorizedImplDesc
	}
	return "Go"
}
