// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteOutput writes data followed by a newline to path, or to stdout when
// path is empty. Symlinked targets are refused.
func WriteOutput(path string, data []byte) error {
	if path == "" {
		if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cliutil: writing stdout: %w", err)
		}
		return nil
	}

	cleaned := filepath.Clean(path)
	if info, err := os.Lstat(cleaned); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("cliutil: refusing to write to symlink: %s", cleaned)
	}
	if err := os.WriteFile(cleaned, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("cliutil: writing %s: %w", cleaned, err)
	}
	return nil
}
