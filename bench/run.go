package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tjk12/mvbench/matvec"
)

// parseSize validates the dimension argument at the harness boundary;
// the kernels themselves accept n = 0 but the CLI does not.
func parseSize(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("matrix size must be a positive integer, got %q", arg)
	}
	return n, nil
}

func newRunCmd() *cobra.Command {
	var offheap bool
	cmd := &cobra.Command{
		Use:   "run <variant> <n>",
		Short: "Time a single matrix-vector multiply",
		Long: "Times one c = A*b invocation of the named variant " +
			"(baseline, avx2/vectorized, unroll, interchange) for an n x n matrix.\n" +
			"Allocation and initialization are excluded from the measured interval.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kern, err := matvec.ForName(args[0])
			if err != nil {
				return err
			}
			n, err := parseSize(args[1])
			if err != nil {
				return err
			}

			a := matvec.NewMatrix(n)
			b := matvec.NewVector(n)
			c := make([]float64, n)

			var bufs []*matvec.OffheapBuffer
			if offheap {
				if !matvec.OffheapSupported {
					return fmt.Errorf("--offheap requires a CGO build")
				}
				a, b, c, bufs, err = toOffheap(n, a, b)
				if err != nil {
					return err
				}
				defer func() {
					for _, buf := range bufs {
						buf.Close()
					}
				}()
			}

			t0 := time.Now()
			kern(n, a, b, c)
			elapsed := time.Since(t0)

			printResult(args[0], n, elapsed, c)
			return nil
		},
	}
	cmd.Flags().BoolVar(&offheap, "offheap", false, "run on C.malloc buffers outside the Go heap (CGO builds only)")
	return cmd
}

// toOffheap copies the initialized inputs into off-heap buffers and returns
// the buffer-backed slices plus the buffers to close.
func toOffheap(n int, a, b []float64) (oa, ob, oc []float64, bufs []*matvec.OffheapBuffer, err error) {
	bufA := matvec.NewOffheapBuffer(n * n)
	bufB := matvec.NewOffheapBuffer(n)
	bufC := matvec.NewOffheapBuffer(n)
	if bufA == nil || bufB == nil || bufC == nil {
		bufA.Close()
		bufB.Close()
		bufC.Close()
		return nil, nil, nil, nil, fmt.Errorf("off-heap allocation failed for n=%d", n)
	}
	copy(bufA.Data(), a)
	copy(bufB.Data(), b)
	return bufA.Data(), bufB.Data(), bufC.Data(), []*matvec.OffheapBuffer{bufA, bufB, bufC}, nil
}

func printResult(variant string, n int, elapsed time.Duration, c []float64) {
	fmt.Printf("n = %d\n", n)
	if variant == "avx2" || variant == "vectorized" {
		fmt.Printf("implementation = %s\n", matvec.VectorizedDesc())
	}
	secs := elapsed.Seconds()
	fmt.Printf("Execution time: %.6f seconds\n", secs)
	if secs > 0 {
		gflops := 2 * float64(n) * float64(n) / secs / 1e9
		fmt.Printf("Throughput: %.3f GFLOP/s\n", gflops)
	}
	fmt.Printf("Checksum (sum of c elements): %g\n", matvec.Checksum(c))
}
