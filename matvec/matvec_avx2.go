//go:build amd64 && cgo

package matvec

/*
#cgo CFLAGS: -mavx2 -O3
#include <immintrin.h>
#include <stddef.h>

static double horizontal_sum_m256d(__m256d v) {
	__m128d hi = _mm256_extractf128_pd(v, 1);
	__m128d lo = _mm256_castpd256_pd128(v);
	__m128d sum2 = _mm_add_pd(hi, lo);
	__m128d swapped = _mm_unpackhi_pd(sum2, sum2);
	return _mm_cvtsd_f64(_mm_add_sd(sum2, swapped));
}

// -mfma is not accepted in #cgo CFLAGS, so FMA is enabled per-function.
__attribute__((target("avx2,fma")))
static void MatVecAVX2(const double* a, const double* b, double* c, size_t n) {
	for (size_t i = 0; i < n; i++) {
		const double* row = a + i * n;
		__m256d acc = _mm256_setzero_pd();
		size_t k = 0;
		for (; k + 4 <= n; k += 4) {
			__m256d va = _mm256_loadu_pd(row + k);
			__m256d vb = _mm256_loadu_pd(b + k);
			acc = _mm256_fmadd_pd(va, vb, acc);
		}
		double s = horizontal_sum_m256d(acc);
		for (; k < n; k++) s += row[k] * b[k];
		c[i] = s;
	}
}
*/
import "C"

import "unsafe"

func matVecAVX2(n int, a, b, c []float64) {
	if n == 0 {
		return
	}
	C.MatVecAVX2(
		(*C.double)(unsafe.Pointer(&a[0])),
		(*C.double)(unsafe.Pointer(&b[0])),
		(*C.double)(unsafe.Pointer(&c[0])),
		C.size_t(n),
	)
}
