package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Auto installs the default logger. Records go to logFile when it is set,
// to stderr otherwise.
func Auto(debug bool, logFile string) io.Closer {
	w, err := getWriter(logFile)
	if err != nil {
		log.Fatalln(err)
	}

	logLevel := slog.LevelDebug
	if !debug {
		logLevel = slog.LevelInfo
	}

	slog.SetDefault(New(w, logLevel, debug && logFile == ""))
	slog.SetLogLoggerLevel(logLevel)

	return w
}

func New(w io.Writer, level slog.Level, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:  true,
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	}))
}

func getWriter(logFile string) (io.WriteCloser, error) {
	if logFile == "" {
		return struct {
			io.Writer
			io.Closer
		}{
			os.Stderr,
			io.NopCloser(nil),
		}, nil
	}

	return os.OpenFile(os.ExpandEnv(logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
