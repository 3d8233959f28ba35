// Package logging redirects the standard logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Writer tees log output to a console writer and an append-only log file.
type Writer struct {
	console io.Writer
	file    *os.File
}

// NewWriter opens path for appending. An empty path logs to console only.
func NewWriter(console io.Writer, path string) (*Writer, error) {
	w := &Writer{console: console}
	if path == "" {
		return w, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	w.file = f
	return w, nil
}

// Write never fails because of the console; file errors are returned.
func (w *Writer) Write(p []byte) (int, error) {
	if w.console != nil {
		w.console.Write(p)
	}
	if w.file != nil {
		return w.file.Write(p)
	}
	return len(p), nil
}

func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	return w.file.Close()
}

// Setup points the standard logger at stdout and path.
func Setup(path string) (*Writer, error) {
	w, err := NewWriter(os.Stdout, path)
	if err != nil {
		return nil, err
	}
	log.SetOutput(w)
	return w, nil
}
