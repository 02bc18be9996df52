package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/riipai/internal/storage"
)

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "riipai",
	})
	// cfg.Validate has already rejected unknown levels; empty means info.
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// fileLogger logs to the configured file so output stays off the alternate
// screen. It falls back to discarding logs when the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	if cfg.Log.File == "" {
		return newLogger(io.Discard), func() {}
	}
	path, err := storage.ExpandHome(cfg.Log.File)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}
