//go:build arm64 && cgo

package matvec

/*
#cgo CFLAGS: -O3
#include <arm_neon.h>
#include <stddef.h>

static void MatVecNEON(const double* a, const double* b, double* c, size_t n) {
	for (size_t i = 0; i < n; i++) {
		const double* row = a + i * n;
		float64x2_t acc = vdupq_n_f64(0.0);
		size_t k = 0;
		for (; k + 2 <= n; k += 2) {
			float64x2_t va = vld1q_f64(row + k);
			float64x2_t vb = vld1q_f64(b + k);
			acc = vfmaq_f64(acc, va, vb);
		}
		double s = vaddvq_f64(acc);
		for (; k < n; k++) s += row[k] * b[k];
		c[i] = s;
	}
}
*/
import "C"

import "unsafe"

func matVecNEON(n int, a, b, c []float64) {
	if n == 0 {
		return
	}
	C.MatVecNEON(
		(*C.double)(unsafe.Pointer(&a[0])),
		(*C.double)(unsafe.Pointer(&b[0])),
		(*C.double)(unsafe.Pointer(&c[0])),
		C.size_t(n),
	)
}
