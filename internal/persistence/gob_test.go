package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Names []string
	Count int
}

func TestSaveAndLoadGob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshot.gob")
	want := snapshot{Names: []string{"中国社会科学院", "CMA"}, Count: 2}

	require.NoError(t, SaveGob(path, want))

	var got snapshot
	require.NoError(t, LoadGob(path, &got))
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestLoadGob_MissingFile(t *testing.T) {
	var got snapshot
	err := LoadGob(filepath.Join(t.TempDir(), "absent.gob"), &got)

	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadGob_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.gob")
	require.NoError(t, os.WriteFile(path, []byte("not a gob stream"), 0600))

	var got snapshot
	err := LoadGob(path, &got)

	require.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}
