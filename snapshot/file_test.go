package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazed7/math-vector"
)

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.snap")
	v := vector.Of(1.5, 2.5, 3.5)

	require.NoError(t, WriteFile(path, v, CompressionZstd))

	got, err := ReadFile[float64](path)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.snap")

	require.NoError(t, WriteFile(path, vector.Of(1, 2), CompressionNone))
	require.NoError(t, WriteFile(path, vector.Of(3, 4, 5), CompressionNone))

	got, err := ReadFile[int](path)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, got.Elems())
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "v.snap")

	require.NoError(t, WriteFile(path, vector.Of(1, 2, 3), CompressionLZ4))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "v.snap", entries[0].Name())
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile[int](filepath.Join(t.TempDir(), "absent.snap"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestReadFile_WrongType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.snap")
	require.NoError(t, WriteFile(path, vector.Of[int64](1, 2), CompressionNone))

	_, err := ReadFile[float64](path)
	assert.ErrorIs(t, err, ErrKindMismatch)
}
