package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/larynjahor/fstack/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("FSTACK_DEBUG", "")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("debug: true\ncapacity: 16\nlog_file: /tmp/fstack.log\n"), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.True(t, cfg.Debug)
		require.Equal(t, 16, cfg.Capacity)
		require.Equal(t, "/tmp/fstack.log", cfg.LogFile)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, config.Default().Capacity, cfg.Capacity)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("debug env", func(t *testing.T) {
		t.Setenv("FSTACK_DEBUG", "1")

		cfg, err := config.Load("")
		require.NoError(t, err)
		require.True(t, cfg.Debug)
	})
}
