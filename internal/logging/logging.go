package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once sync.Once
	base *slog.Logger
)

// Init configures the global logger exactly once: JSON lines to stdout
// and to a size-rotated file. Call it from main.
func Init(component, filePath string) *slog.Logger {
	once.Do(func() {
		_ = os.MkdirAll(filepath.Dir(filePath), 0755)

		rot := &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		mw := io.MultiWriter(os.Stdout, rot)

		h := slog.NewJSONHandler(mw, &slog.HandlerOptions{Level: slog.LevelInfo})
		base = slog.New(h).With("component", component)
	})
	return base
}

// Base returns the global logger, initializing a safe default if main
// never called Init (tests, mostly).
func Base() *slog.Logger {
	if base == nil {
		return Init("ordering-helper", "./logs/app.log")
	}
	return base
}

// New returns a child logger tagged with a component name. It reuses
// the global handler and writer.
func New(component string) *slog.Logger {
	return Base().With("component", component)
}
