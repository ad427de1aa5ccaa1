package metrics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	assert.Equal(t, 1.0, Percentile(sorted, 0))
	assert.Equal(t, 10.0, Percentile(sorted, 100))
	assert.Equal(t, 5.0, Percentile(sorted, 50))
	assert.Equal(t, 0.0, Percentile(nil, 50))
}

func TestTrialStatsFromDurations(t *testing.T) {
	durations := []time.Duration{
		30 * time.Millisecond,
		10 * time.Millisecond,
		20 * time.Millisecond,
	}
	stats := TrialStatsFromDurations(durations)
	assert.InDelta(t, 0.010, stats.MinS, 1e-12)
	assert.InDelta(t, 0.020, stats.AvgS, 1e-12)
	assert.InDelta(t, 0.020, stats.P50S, 1e-12)
	assert.Equal(t, 3, stats.N)

	assert.Equal(t, TrialStats{}, TrialStatsFromDurations(nil))
}

// The JSON keys of SweepRow are consumed by external report tooling and must
// not drift.
func TestSweepRowJSONContract(t *testing.T) {
	row := SweepRow{N: 1024, HeapAllocMB: 12.5}
	row.SetTime("baseline", 0.0123)
	row.SetTime("vectorized", 0.0031)
	row.SetTime("unroll", 0.0065)
	row.SetTime("interchange", 0.0410)

	raw, err := json.Marshal(row)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]interface{}{
		"n":                float64(1024),
		"baseline_time":    0.0123,
		"avx2_time":        0.0031,
		"unroll_time":      0.0065,
		"interchange_time": 0.0410,
	}, decoded)

	assert.Equal(t, 0.0031, row.Time("avx2"))
	assert.Equal(t, 0.0031, row.Time("vectorized"))
	assert.Equal(t, 0.0, row.Time("simd"))
}

func TestWriteSweepCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.csv")
	rows := []SweepRow{{N: 256, BaselineTime: 0.001}}
	require.NoError(t, WriteSweepCSV(rows, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "N,BaselineTime")
	assert.Contains(t, string(raw), "256,0.001000")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.json")
	require.NoError(t, WriteJSON([]SweepRow{{N: 8}}, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var rows []SweepRow
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 8, rows[0].N)
}

func TestSnapshotAndDiff(t *testing.T) {
	before := Take()
	require.False(t, before.TS.IsZero())
	require.NotZero(t, before.HeapSys)

	after := before
	after.TS = before.TS.Add(time.Second)
	after.HeapAlloc = before.HeapAlloc + 1024
	after.NumGC = before.NumGC + 2

	rate, gcDelta := Diff(before, after)
	assert.InDelta(t, 1024, rate, 1e-9)
	assert.Equal(t, uint32(2), gcDelta)

	rate, gcDelta = Diff(after, before)
	assert.Equal(t, 0.0, rate)
	assert.Equal(t, uint32(0), gcDelta)
}
