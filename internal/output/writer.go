// Package output names and writes generated files and prints console
// summaries.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultExtension is the extension of generated files.
const DefaultExtension = "yml"

// WriterConfig contains configuration for Writer.
type WriterConfig struct {
	// Dir is the output directory. Empty means the working directory.
	Dir string

	// Instance is the run identifier used as the file name prefix.
	Instance string

	// Extension without the leading dot (default: yml).
	Extension string

	// DryRun computes paths and sizes without touching the disk.
	DryRun bool
}

// Writer persists one file per generated step.
type Writer struct {
	dir      string
	instance string
	ext      string
	dryRun   bool
}

// NewWriter creates a writer. It does not touch the file system; call
// Prepare before the first Write.
func NewWriter(config WriterConfig) *Writer {
	ext := strings.TrimPrefix(config.Extension, ".")
	if ext == "" {
		ext = DefaultExtension
	}
	return &Writer{
		dir:      config.Dir,
		instance: config.Instance,
		ext:      ext,
		dryRun:   config.DryRun,
	}
}

// FileName returns the file name for step index: <instance>-<index>.<ext>.
func (w *Writer) FileName(index int) string {
	return w.instance + "-" + strconv.Itoa(index) + "." + w.ext
}

// Path returns the full path for step index.
func (w *Writer) Path(index int) string {
	if w.dir == "" {
		return w.FileName(index)
	}
	return filepath.Join(w.dir, w.FileName(index))
}

// Prepare creates the output directory if it does not exist yet.
func (w *Writer) Prepare() error {
	if w.dir == "" || w.dryRun {
		return nil
	}

	info, err := os.Stat(w.dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("output path %s exists and is not a directory", w.dir)
	case !os.IsNotExist(err):
		return fmt.Errorf("error accessing output directory: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Write stores content for step index and returns the path written and the
// number of bytes. Existing files are truncated.
func (w *Writer) Write(index int, content string) (string, int, error) {
	path := w.Path(index)
	if w.dryRun {
		return path, len(content), nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return path, 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, len(content), nil
}
