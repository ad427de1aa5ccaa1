package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// TrialStats summarizes repeated timings of one configuration.
type TrialStats struct {
	MinS float64
	AvgS float64
	P50S float64
	P99S float64
	N    int
}

// Percentile returns the p-th percentile (0-100) of a sorted slice.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	idx := int(float64(len(sorted)-1) * p / 100)
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// TrialStatsFromDurations computes min/avg/p50/p99 (in seconds) from a list
// of trial durations.
func TrialStatsFromDurations(durations []time.Duration) TrialStats {
	if len(durations) == 0 {
		return TrialStats{}
	}
	secs := make([]float64, len(durations))
	var sum float64
	for i, d := range durations {
		secs[i] = d.Seconds()
		sum += secs[i]
	}
	sort.Float64s(secs)
	return TrialStats{
		MinS: secs[0],
		AvgS: sum / float64(len(secs)),
		P50S: Percentile(secs, 50),
		P99S: Percentile(secs, 99),
		N:    len(secs),
	}
}

// SweepRow is one record of the sweep report: the best (minimum) elapsed
// time in seconds for each variant at one matrix size. The JSON keys are the
// contract consumed by downstream report tooling.
type SweepRow struct {
	N               int     `json:"n"`
	BaselineTime    float64 `json:"baseline_time"`
	Avx2Time        float64 `json:"avx2_time"`
	UnrollTime      float64 `json:"unroll_time"`
	InterchangeTime float64 `json:"interchange_time"`
	HeapAllocMB     float64 `json:"-"`
}

// Time returns the recorded best time for a canonical variant name.
func (r *SweepRow) Time(variant string) float64 {
	switch variant {
	case "baseline":
		return r.BaselineTime
	case "avx2", "vectorized":
		return r.Avx2Time
	case "unroll":
		return r.UnrollTime
	case "interchange":
		return r.InterchangeTime
	}
	return 0
}

// SetTime records the best time for a canonical variant name.
func (r *SweepRow) SetTime(variant string, seconds float64) {
	switch variant {
	case "baseline":
		r.BaselineTime = seconds
	case "avx2", "vectorized":
		r.Avx2Time = seconds
	case "unroll":
		r.UnrollTime = seconds
	case "interchange":
		r.InterchangeTime = seconds
	}
}

// WriteSweepCSV writes the sweep report as CSV.
func WriteSweepCSV(rows []SweepRow, path string) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"N", "BaselineTime", "Avx2Time", "UnrollTime", "InterchangeTime", "HeapAllocMB"})
	for _, r := range rows {
		w.Write([]string{
			fmt.Sprintf("%d", r.N),
			fmt.Sprintf("%.6f", r.BaselineTime),
			fmt.Sprintf("%.6f", r.Avx2Time),
			fmt.Sprintf("%.6f", r.UnrollTime),
			fmt.Sprintf("%.6f", r.InterchangeTime),
			fmt.Sprintf("%.2f", r.HeapAllocMB),
		})
	}
	w.Flush()
	return w.Error()
}

// CompareRow is one record of the memory-mode comparison report.
type CompareRow struct {
	Mode string  `json:"mode"`
	N    int     `json:"n"`
	MinS float64 `json:"min_time"`
	P50S float64 `json:"p50_time"`
	P99S float64 `json:"p99_time"`
}

// ReportDir is the report output directory.
const ReportDir = "report"

// ReportPath returns a dated report path under ReportDir.
func ReportPath(prefix, ext string) string {
	return filepath.Join(ReportDir, prefix+time.Now().Format("20060102")+ext)
}

// WriteJSON writes v to path as indented JSON.
func WriteJSON(v interface{}, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
