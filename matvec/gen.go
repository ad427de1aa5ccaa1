package matvec

// NewMatrix returns the n x n benchmark matrix in row-major order,
// A[i,j] = 1/(i+j+2). Deterministic: the same n always yields the same data.
func NewMatrix(n int) []float64 {
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i*n+j] = 1.0 / float64(i+j+2)
		}
	}
	return a
}

// NewVector returns the length-n benchmark vector, b[i] = 1/(i+1).
func NewVector(n int) []float64 {
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		b[i] = 1.0 / float64(i+1)
	}
	return b
}

// Checksum returns the sum of all elements, used to sanity-check results
// between runs and variants.
func Checksum(c []float64) float64 {
	sum := 0.0
	for _, v := range c {
		sum += v
	}
	return sum
}
