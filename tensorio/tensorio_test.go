package tensorio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/fatigueset/eegprep/standardize"
	"github.com/fatigueset/eegprep/trial"
)

func testTensor() *standardize.Tensor {
	data := make([]float64, 2*5*4)
	for i := range data {
		data[i] = float64(i) / 7
	}

	return &standardize.Tensor{Trials: 2, Timesteps: 5, Channels: 4, Data: data}
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteTensor(dir, "array_3D_alpha_high", testTensor())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "array_3D_alpha_high.npy"), path)

	got, err := ReadTensor(path)
	require.NoError(t, err)
	require.Equal(t, testTensor(), got)
}

func TestWriteTensorIdempotent(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteTensor(dir, "array_3D_raw_low", testTensor())
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	// A rerun overwrites rather than accumulating, byte-identically.
	_, err = WriteTensor(dir, "array_3D_raw_low", testTensor())
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files may remain after a successful write")
}

func TestWriteTensorMissingDir(t *testing.T) {
	_, err := WriteTensor(filepath.Join(t.TempDir(), "absent"), "array_3D_beta_low", testTensor())
	require.Error(t, err)

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
}

func TestWriteReadLengths(t *testing.T) {
	dir := t.TempDir()

	trials := []*trial.RawTrial{
		{Subject: "s01", TrialID: "t01", Data: mat.NewDense(12, 4, make([]float64, 48))},
		{Subject: "s01", TrialID: "t02", Data: mat.NewDense(7, 4, make([]float64, 28))},
		{Subject: "s02", TrialID: "t01", Data: mat.NewDense(31, 4, make([]float64, 124))},
	}

	path, err := WriteLengths(dir, "array_3D_alpha_high", trials)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "array_3D_alpha_high_lengths.csv"), path)

	records, err := ReadLengths(path)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, &LengthRecord{Subject: "s01", TrialID: "t02", Length: 7}, records[1])
	require.Equal(t, &LengthRecord{Subject: "s02", TrialID: "t01", Length: 31}, records[2])
}
