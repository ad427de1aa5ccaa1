//go:build amd64 && cgo

package matvec

/*
#cgo CFLAGS: -mavx512f -O3
#include <immintrin.h>
#include <stddef.h>

static void MatVecAVX512(const double* a, const double* b, double* c, size_t n) {
	for (size_t i = 0; i < n; i++) {
		const double* row = a + i * n;
		__m512d acc = _mm512_setzero_pd();
		size_t k = 0;
		for (; k + 8 <= n; k += 8) {
			__m512d va = _mm512_loadu_pd(row + k);
			__m512d vb = _mm512_loadu_pd(b + k);
			acc = _mm512_fmadd_pd(va, vb, acc);
		}
		double s = _mm512_reduce_add_pd(acc);
		for (; k < n; k++) s += row[k] * b[k];
		c[i] = s;
	}
}
*/
import "C"

import "unsafe"

func matVecAVX512(n int, a, b, c []float64) {
	if n == 0 {
		return
	}
	C.MatVecAVX512(
		(*C.double)(unsafe.Pointer(&a[0])),
		(*C.double)(unsafe.Pointer(&b[0])),
		(*C.double)(unsafe.Pointer(&c[0])),
		C.size_t(n),
	)
}
