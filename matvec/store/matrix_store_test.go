package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjk12/mvbench/matvec"
)

func TestWriteOpenRoundTrip(t *testing.T) {
	const n = 17
	a := matvec.NewMatrix(n)
	path := filepath.Join(t.TempDir(), "matrix.mvf")

	require.NoError(t, Write(path, n, a))

	mf, err := Open(path)
	require.NoError(t, err)
	defer mf.Close()

	require.Equal(t, n, mf.N)
	require.Len(t, mf.Data, n*n)
	assert.Equal(t, a, append([]float64(nil), mf.Data...))

	// The mapped view is directly usable as kernel input.
	b := matvec.NewVector(n)
	got := make([]float64, n)
	want := make([]float64, n)
	matvec.Vectorized(n, mf.Data, b, got)
	matvec.Vectorized(n, a, b, want)
	assert.Equal(t, want, got)
}

func TestWriteReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.mvf")
	require.NoError(t, Write(path, 2, matvec.NewMatrix(2)))
	require.NoError(t, Write(path, 3, matvec.NewMatrix(3)))

	mf, err := Open(path)
	require.NoError(t, err)
	defer mf.Close()
	assert.Equal(t, 3, mf.N)
}

func TestWriteDimensionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.mvf")
	err := Write(path, 4, make([]float64, 15))
	require.Error(t, err)
	err = Write(path, -1, nil)
	require.Error(t, err)
}

func TestOpenRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.mvf")
	require.NoError(t, os.WriteFile(path, make([]byte, HeaderSize), 0644))
	_, err := Open(path)
	require.ErrorContains(t, err, "invalid magic")
}

func TestOpenRejectsTruncated(t *testing.T) {
	const n = 8
	path := filepath.Join(t.TempDir(), "matrix.mvf")
	require.NoError(t, Write(path, n, matvec.NewMatrix(n)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw[:len(raw)/2], 0644))

	_, err = Open(path)
	require.Error(t, err)
}

func TestHeaderRoundTrip(t *testing.T) {
	enc, err := EncodeHeader(&Header{N: 1024})
	require.NoError(t, err)
	require.Len(t, enc, HeaderSize)

	h, err := DecodeHeader(enc)
	require.NoError(t, err)
	assert.Equal(t, uint32(1024), h.N)
	assert.Equal(t, FormatVersion, h.Version)

	_, err = DecodeHeader(enc[:HeaderSize-1])
	require.Error(t, err)

	enc[5] = 0xFF // corrupt version
	_, err = DecodeHeader(enc)
	require.Error(t, err)
}
