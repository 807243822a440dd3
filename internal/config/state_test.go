package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFileMissingIsEmpty(t *testing.T) {
	sf, err := NewStateFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	assert.Equal(t, Settings{}, sf.Settings())
	assert.Zero(t, sf.MoveCap())
}

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.json")

	sf, err := NewStateFile(path)
	require.NoError(t, err)
	require.NoError(t, sf.SetDBPath("/tmp/runs.db"))
	require.NoError(t, sf.SetMoveCap(5000))
	require.NoError(t, sf.SetLastRun("abc"))

	reloaded, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/runs.db", reloaded.DBPath())
	assert.Equal(t, 5000, reloaded.MoveCap())
	assert.Equal(t, "abc", reloaded.LastRunID())
	assert.Equal(t, path, reloaded.Path())
}

func TestStateFileRejectsNegativeCap(t *testing.T) {
	sf, err := NewStateFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	assert.Error(t, sf.SetMoveCap(-1))
	assert.Zero(t, sf.MoveCap())
}

func TestStateFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewStateFile(path)
	assert.Error(t, err)
}
