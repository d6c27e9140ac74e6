// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TempContext holds the state of an atomic file write: output goes to a
// temp file in the destination directory and is renamed into place only
// when the operation succeeds.
type TempContext struct {
	SrcInfo os.FileInfo
	TmpFile *os.File
	TmpName string
}

// NewTempContext stats the source file and creates a temp file next to the
// intended output. Callers must defer CleanupOnError.
func NewTempContext(filename, outPath string) (*TempContext, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", filename, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".pv-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempContext{
		SrcInfo: info,
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
	}, nil
}

// CleanupOnError closes the temp file and, if the operation failed,
// removes it so no partial output survives.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close()

	if *errp != nil {
		os.Remove(tc.TmpName)
	}
}

// Commit renames the temp file over the final output path.
func (tc *TempContext) Commit(outPath string) error {
	if err := tc.TmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tc.TmpName, outPath); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	return nil
}

// FinalizeOutput optionally restores the source timestamps on the output
// and returns its size.
func FinalizeOutput(outPath string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return info.Size(), nil
}
