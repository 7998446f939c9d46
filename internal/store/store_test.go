package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEnsureCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := New(dir)

	require.NoError(t, s.Ensure())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// Idempotent on an existing directory
	require.NoError(t, s.Ensure())
}

func TestStatsRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	require.False(t, s.HasStats())
	require.NoError(t, s.WriteStats("100.0 0.5\n300.0 0.5\n"))
	require.True(t, s.HasStats())

	f, err := s.OpenStats()
	require.NoError(t, err)
	defer f.Close()

	data, err := os.ReadFile(s.StatsPath())
	require.NoError(t, err)
	require.Equal(t, "100.0 0.5\n300.0 0.5\n", string(data))
}

func TestArchiveInput(t *testing.T) {
	s := New(t.TempDir())
	content := []byte("fake wav payload")
	require.NoError(t, os.WriteFile(s.InputPath(), content, 0o644))

	now := time.Unix(1700000000, 0)
	archived, err := s.ArchiveInput(now)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(filepath.Dir(s.InputPath()), "input_1700000000.wav"), archived)

	data, err := os.ReadFile(archived)
	require.NoError(t, err)
	require.Equal(t, content, data)
}

func TestArchiveInputMissingSample(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.ArchiveInput(time.Now())
	require.Error(t, err)
}
