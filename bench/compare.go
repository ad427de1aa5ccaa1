package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tjk12/mvbench/bench/metrics"
	"github.com/tjk12/mvbench/matvec"
	"github.com/tjk12/mvbench/matvec/store"
)

func newCompareCmd() *cobra.Command {
	var (
		n    int
		runs int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare heap, off-heap, and mmap matrix backing",
		Long: "Runs the vectorized kernel repeatedly with the matrix held on the Go heap,\n" +
			"in C.malloc memory, and in an mmap'd file, and reports timing stats per mode.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("matrix size must be a positive integer, got %d", n)
			}
			if runs < 1 {
				return fmt.Errorf("runs must be at least 1, got %d", runs)
			}
			rows, err := runCompare(n, runs)
			if err != nil {
				return err
			}
			path := metrics.ReportPath("bench_compare_", ".json")
			if err := metrics.WriteJSON(rows, path); err != nil {
				return err
			}
			fmt.Printf("report written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 2048, "matrix size")
	cmd.Flags().IntVar(&runs, "runs", 20, "timed runs per mode")
	return cmd
}

func timeRuns(n, runs int, a, b, c []float64) []time.Duration {
	durations := make([]time.Duration, runs)
	for i := 0; i < runs; i++ {
		t0 := time.Now()
		matvec.Vectorized(n, a, b, c)
		durations[i] = time.Since(t0)
	}
	return durations
}

func compareRow(mode string, n int, durations []time.Duration) metrics.CompareRow {
	stats := metrics.TrialStatsFromDurations(durations)
	fmt.Printf("  %-8s min=%.6fs p50=%.6fs p99=%.6fs\n", mode, stats.MinS, stats.P50S, stats.P99S)
	return metrics.CompareRow{
		Mode: mode,
		N:    n,
		MinS: stats.MinS,
		P50S: stats.P50S,
		P99S: stats.P99S,
	}
}

func runCompare(n, runs int) ([]metrics.CompareRow, error) {
	fmt.Printf("compare: n=%d runs=%d vectorized=%s\n", n, runs, matvec.VectorizedDesc())
	a := matvec.NewMatrix(n)
	b := matvec.NewVector(n)
	c := make([]float64, n)

	var rows []metrics.CompareRow

	// 1. Go heap.
	metrics.GC()
	rows = append(rows, compareRow("heap", n, timeRuns(n, runs, a, b, c)))

	// 2. Off-heap (CGO builds only).
	if matvec.OffheapSupported {
		buf := matvec.NewOffheapBuffer(n * n)
		if buf == nil {
			return nil, fmt.Errorf("off-heap allocation failed for n=%d", n)
		}
		copy(buf.Data(), a)
		metrics.GC()
		rows = append(rows, compareRow("offheap", n, timeRuns(n, runs, buf.Data(), b, c)))
		buf.Close()
	} else {
		fmt.Println("  offheap  skipped (CGO disabled)")
	}

	// 3. mmap'd matrix file.
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("mvbench-compare-%d.mvf", n))
	if err := store.Write(tmpPath, n, a); err != nil {
		return nil, err
	}
	defer os.Remove(tmpPath)
	mf, err := store.Open(tmpPath)
	if err != nil {
		return nil, err
	}
	defer mf.Close()
	metrics.GC()
	rows = append(rows, compareRow("mmap", n, timeRuns(n, runs, mf.Data, b, c)))

	return rows, nil
}
