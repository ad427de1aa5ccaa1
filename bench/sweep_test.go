package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes("256, 512,1024")
	require.NoError(t, err)
	assert.Equal(t, []int{256, 512, 1024}, sizes)

	for _, bad := range []string{"", "abc", "0", "-4", "256,,512"} {
		_, err := parseSizes(bad)
		require.Error(t, err, "sizes %q must be rejected", bad)
	}
}

func TestRunSweepCollectsAllVariants(t *testing.T) {
	rows, err := runSweep([]int{64, 100}, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		for _, variant := range []string{"baseline", "avx2", "unroll", "interchange"} {
			best := row.Time(variant)
			assert.Greater(t, best, 0.0, "n=%d %s best time", row.N, variant)
		}
	}
	assert.Equal(t, 64, rows[0].N)
	assert.Equal(t, 100, rows[1].N)
}
