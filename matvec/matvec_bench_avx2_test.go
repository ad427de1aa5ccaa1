//go:build amd64 && cgo

package matvec

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"
)

// The cgo kernels must be both buildable and selected on amd64: dispatch
// falls back to pure Go only when the CPU lacks the feature.
func TestDispatchMatchesCPUFeatures(t *testing.T) {
	switch {
	case cpu.X86.HasAVX512F:
		require.Equal(t, "AVX-512", VectorizedDesc())
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		require.Equal(t, "AVX2", VectorizedDesc())
	default:
		require.Equal(t, "Go", VectorizedDesc())
	}
}

func BenchmarkMatVec_AVX2(b *testing.B) {
	if runtime.GOARCH != "amd64" || !cpu.X86.HasAVX2 || !cpu.X86.HasFMA {
		b.Skip("AVX2+FMA not available")
	}
	a, vb, c := initBenchData()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matVecAVX2(benchN, a, vb, c)
	}
}

func BenchmarkMatVec_AVX512(b *testing.B) {
	if runtime.GOARCH != "amd64" || !cpu.X86.HasAVX512F {
		b.Skip("AVX-512 not available")
	}
	a, vb, c := initBenchData()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matVecAVX512(benchN, a, vb, c)
	}
}

func TestAVX2MatchesBaseline(t *testing.T) {
	if !cpu.X86.HasAVX2 || !cpu.X86.HasFMA {
		t.Skip("AVX2+FMA not available")
	}
	for _, n := range []int{1, 3, 4, 5, 7, 8, 9, 31, 256} {
		a := NewMatrix(n)
		vb := NewVector(n)
		ref := make([]float64, n)
		got := make([]float64, n)
		Baseline(n, a, vb, ref)
		matVecAVX2(n, a, vb, got)
		for i := 0; i < n; i++ {
			inTolerance(t, ref[i], got[i], "avx2 n=", n, " row ", i)
		}
	}
}
