package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, "input.txt")
		require.NoError(t, os.WriteFile(path, []byte("1 2\n"), 0644))
		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "1 2\n", got)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "", "c"}, Lines("a\r\nb\n\nc\n"))
	assert.Nil(t, Lines("\n"))
}

func TestBlocks(t *testing.T) {
	assert.Equal(t, []string{"a\nb", "c"}, Blocks("\na\nb\n\nc\n"))
	assert.Nil(t, Blocks(""))
}

func TestInts(t *testing.T) {
	got, err := Fields(" 3  -4 5 ")
	require.NoError(t, err)
	assert.Equal(t, []int{3, -4, 5}, got)

	got, err = Split("75,47, 61", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{75, 47, 61}, got)

	_, err = Fields("1 x")
	assert.Error(t, err)
}
