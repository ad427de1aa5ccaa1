package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tjk12/mvbench/bench/metrics"
	"github.com/tjk12/mvbench/matvec"
)

func newSweepCmd() *cobra.Command {
	var (
		sizesArg string
		trials   int
		out      string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run every variant over a range of sizes and tabulate best times",
		Long: "For each size and variant, runs the kernel --trials times and keeps the\n" +
			"minimum elapsed time. Emits one JSON record per size keyed by variant name,\n" +
			"plus a dated CSV report under report/.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := parseSizes(sizesArg)
			if err != nil {
				return err
			}
			if trials < 1 {
				return fmt.Errorf("trials must be at least 1, got %d", trials)
			}
			rows, err := runSweep(sizes, trials)
			if err != nil {
				return err
			}
			if err := metrics.WriteJSON(rows, out); err != nil {
				return err
			}
			fmt.Printf("results written to %s\n", out)
			csvPath := metrics.ReportPath("bench_sweep_", ".csv")
			if err := metrics.WriteSweepCSV(rows, csvPath); err != nil {
				return err
			}
			fmt.Printf("report written to %s\n", csvPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&sizesArg, "sizes", "256,512,1024,2048", "comma-separated matrix sizes")
	cmd.Flags().IntVar(&trials, "trials", 5, "trials per (size, variant); the minimum time is kept")
	cmd.Flags().StringVar(&out, "out", "results.json", "output path for the JSON results")
	return cmd
}

func parseSizes(arg string) ([]int, error) {
	parts := strings.Split(arg, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("matrix size must be a positive integer, got %q", p)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}

// bestOf runs kern trials times on the same buffers and returns the minimum
// elapsed time. Only the kernel call is inside the timed interval.
func bestOf(kern matvec.Kernel, n, trials int, a, b, c []float64) time.Duration {
	var best time.Duration
	for t := 0; t < trials; t++ {
		t0 := time.Now()
		kern(n, a, b, c)
		d := time.Since(t0)
		if t == 0 || d < best {
			best = d
		}
	}
	return best
}

func runSweep(sizes []int, trials int) ([]metrics.SweepRow, error) {
	fmt.Printf("sweep: sizes=%v trials=%d vectorized=%s\n", sizes, trials, matvec.VectorizedDesc())
	rows := make([]metrics.SweepRow, 0, len(sizes))
	for _, n := range sizes {
		metrics.GC()
		before := metrics.Take()

		a := matvec.NewMatrix(n)
		b := matvec.NewVector(n)
		c := make([]float64, n)

		row := metrics.SweepRow{N: n}
		for _, name := range matvec.Names() {
			kern, err := matvec.ForName(name)
			if err != nil {
				return nil, err
			}
			best := bestOf(kern, n, trials, a, b, c)
			row.SetTime(name, best.Seconds())
			fmt.Printf("  n=%-5d %-12s best=%.6fs checksum=%g\n",
				n, name, best.Seconds(), matvec.Checksum(c))
		}
		after := metrics.Take()
		allocRate, gcDelta := metrics.Diff(before, after)
		row.HeapAllocMB = float64(after.HeapAlloc) / 1024 / 1024
		fmt.Printf("  n=%-5d heap=%.1fMB sys=%.1fMB released=%.1fMB alloc=%.1fMB/s gc=+%d goroutines=%d\n",
			n, row.HeapAllocMB,
			float64(after.HeapSys)/1024/1024,
			float64(after.HeapReleased)/1024/1024,
			allocRate/1024/1024, gcDelta, after.NumGoroutine)
		rows = append(rows, row)
	}
	return rows, nil
}
