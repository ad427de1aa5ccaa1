package matvec

// matVecVecGo is the pure Go vectorized fallback: four independent partial
// sums per row emulate a 4-lane accumulator, with a scalar tail for the
// remaining k values.
func matVecVecGo(n int, a, b, c []float64) {
	for i := 0; i < n; i++ {
		row := a[i*n : i*n+n]
		var s0, s1, s2, s3 float64
		k := 0
		for ; k+4 <= n; k += 4 {
			s0 += row[k] * b[k]
			s1 += row[k+1] * b[k+1]
			s2 += row[k+2] * b[k+2]
			s3 += row[k+3] * b[k+3]
		}
		sum := (s0 + s1) + (s2 + s3)
		for ; k < n; k++ {
			sum += row[k] * b[k]
		}
		c[i] = sum
	}
}
