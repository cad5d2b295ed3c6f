package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/larynjahor/fstack/logging"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   slog.Level
		wantDbg bool
	}{
		{
			name:    "debug",
			level:   slog.LevelDebug,
			wantDbg: true,
		},
		{
			name:    "info",
			level:   slog.LevelInfo,
			wantDbg: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := logging.New(&buf, tt.level, false)
			logger.Debug("push rejected", slog.Int("capacity", 3))
			logger.Info("replaying script")

			require.Contains(t, buf.String(), "replaying script")
			require.Equal(t, tt.wantDbg, bytes.Contains(buf.Bytes(), []byte("push rejected")))
		})
	}
}

func TestAuto_LogFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		slog.SetLogLoggerLevel(slog.LevelInfo)
	})

	path := filepath.Join(t.TempDir(), "fstack.log")

	c := logging.Auto(false, path)
	slog.Info("started fstack")
	require.NoError(t, c.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "started fstack")
	require.NotContains(t, string(content), "\x1b[")
}
