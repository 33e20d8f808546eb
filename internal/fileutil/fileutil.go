// Package fileutil provides atomic output-file helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// PendingFile is an output file being written under a temporary name in
// the destination directory. Commit renames it into place; Abort removes
// it, so a failed operation never leaves a partial output.
type PendingFile struct {
	srcInfo os.FileInfo
	file    *os.File
	tmpName string
	outPath string
}

// Begin stats the source file and creates the temporary output file.
// Callers must defer Abort with the address of their error result.
func Begin(filename, outPath string) (*PendingFile, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", filename, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &PendingFile{
		srcInfo: info,
		file:    tmpFile,
		tmpName: tmpFile.Name(),
		outPath: outPath,
	}, nil
}

// Write writes to the temporary file.
func (p *PendingFile) Write(data []byte) (int, error) {
	return p.file.Write(data)
}

// Abort closes and removes the temporary file when the operation failed.
// After a successful Commit it does nothing.
func (p *PendingFile) Abort(errp *error) {
	if *errp == nil {
		return
	}

	p.file.Close()
	os.Remove(p.tmpName)
}

// Commit closes the temporary file and renames it to the output path,
// optionally carrying over the source modification time. Returns the
// output file size.
func (p *PendingFile) Commit(preserveTimestamps bool) (int64, error) {
	if err := p.file.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(p.tmpName, p.outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	if preserveTimestamps {
		modTime := p.srcInfo.ModTime()
		if err := os.Chtimes(p.outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	info, err := os.Stat(p.outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", p.outPath, err)
	}

	return info.Size(), nil
}
