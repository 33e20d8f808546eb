package fileutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCommitRenamesIntoPlace(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "src.bin")
	if err := os.WriteFile(src, []byte("source"), 0o600); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	out := filepath.Join(dir, "out.bin")

	pending, err := Begin(src, out)
	if err != nil {
		t.Fatalf("beginning atomic write: %v", err)
	}

	var opErr error
	defer pending.Abort(&opErr)

	content := []byte("output data")
	if _, opErr = pending.Write(content); opErr != nil {
		t.Fatalf("writing: %v", opErr)
	}

	size, err := pending.Commit(false)
	if err != nil {
		t.Fatalf("committing: %v", err)
	}

	if size != int64(len(content)) {
		t.Errorf("size = %d, want %d", size, len(content))
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if !bytes.Equal(got, content) {
		t.Error("output content mismatch")
	}
}

func TestAbortRemovesTemporaryFile(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "src.bin")
	if err := os.WriteFile(src, []byte("source"), 0o600); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	out := filepath.Join(dir, "out.bin")

	pending, err := Begin(src, out)
	if err != nil {
		t.Fatalf("beginning atomic write: %v", err)
	}

	if _, err := pending.Write([]byte("partial")); err != nil {
		t.Fatalf("writing: %v", err)
	}

	opErr := errors.New("operation failed")
	pending.Abort(&opErr)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("listing directory: %v", err)
	}

	for _, entry := range entries {
		if entry.Name() != "src.bin" {
			t.Errorf("leftover file %q after abort", entry.Name())
		}
	}
}

func TestBeginRequiresSource(t *testing.T) {
	dir := t.TempDir()

	if _, err := Begin(filepath.Join(dir, "missing"), filepath.Join(dir, "out")); err == nil {
		t.Error("beginning with a missing source succeeded")
	}
}

func TestCommitPreservesTimestamps(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "src.bin")
	if err := os.WriteFile(src, []byte("source"), 0o600); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	past := time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	if err := os.Chtimes(src, past, past); err != nil {
		t.Fatalf("backdating source: %v", err)
	}

	out := filepath.Join(dir, "out.bin")

	pending, err := Begin(src, out)
	if err != nil {
		t.Fatalf("beginning atomic write: %v", err)
	}

	var opErr error
	defer pending.Abort(&opErr)

	if _, opErr = pending.Write([]byte("data")); opErr != nil {
		t.Fatalf("writing: %v", opErr)
	}

	if _, err := pending.Commit(true); err != nil {
		t.Fatalf("committing: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}

	if !info.ModTime().Equal(past) {
		t.Errorf("mod time = %v, want %v", info.ModTime(), past)
	}
}
