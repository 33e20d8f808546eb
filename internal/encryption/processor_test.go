package encryption

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VishnuVardhan0007/image-encryption/internal/config"
)

func writeTestFile(t *testing.T, dir, name string, size int) (string, []byte) {
	t.Helper()

	data := make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		t.Fatalf("generating file content: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing %q: %v", path, err)
	}

	return path, data
}

func writeTestKey(t *testing.T, dir string) string {
	t.Helper()

	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}

	path := filepath.Join(dir, "test.key")
	if err := SaveKey(key, path); err != nil {
		t.Fatalf("saving key: %v", err)
	}

	return path
}

func TestProcessorFileRoundTrip(t *testing.T) {
	for _, mode := range []string{"CBC", "CFB", "OFB", "CTR"} {
		t.Run(mode, func(t *testing.T) {
			dir := t.TempDir()
			keyPath := writeTestKey(t, dir)

			input, original := writeTestFile(t, dir, "photo.png", 10_000)

			encCfg := &config.Config{
				Mode:     mode,
				KeyFile:  keyPath,
				Parallel: 2,
				Quiet:    true,
				Suffixes: config.Suffixes{Encrypt: ".enc"},
				Files:    []string{input},
			}

			proc, err := NewProcessor(encCfg)
			if err != nil {
				t.Fatalf("creating processor: %v", err)
			}

			processed, errored, _, err := proc.ProcessFiles()
			if err != nil {
				t.Fatalf("encrypting: %v", err)
			}

			if processed != 1 || errored != 0 {
				t.Fatalf("processed %d, errored %d", processed, errored)
			}

			encrypted, err := os.ReadFile(input + ".enc")
			if err != nil {
				t.Fatalf("reading encrypted output: %v", err)
			}

			if bytes.Contains(encrypted, original) {
				t.Fatal("encrypted file contains the plaintext")
			}

			outPath := filepath.Join(dir, "restored.png")
			decCfg := &config.Config{
				Mode:     mode,
				KeyFile:  keyPath,
				Parallel: 1,
				Quiet:    true,
				Decrypt:  true,
				Output:   outPath,
				Suffixes: config.Suffixes{Encrypt: ".enc"},
				Files:    []string{input + ".enc"},
			}

			proc, err = NewProcessor(decCfg)
			if err != nil {
				t.Fatalf("creating decrypt processor: %v", err)
			}

			if _, _, _, err := proc.ProcessFiles(); err != nil {
				t.Fatalf("decrypting: %v", err)
			}

			restored, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatalf("reading restored file: %v", err)
			}

			if !bytes.Equal(restored, original) {
				t.Error("restored file differs from the original")
			}
		})
	}
}

func TestProcessorHexKey(t *testing.T) {
	dir := t.TempDir()

	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}

	input, original := writeTestFile(t, dir, "pic.jpg", 500)

	cfg := &config.Config{
		Mode:     "CTR",
		Key:      hex.EncodeToString(key),
		Parallel: 1,
		Quiet:    true,
		Suffixes: config.Suffixes{Encrypt: ".enc"},
		Files:    []string{input},
	}

	proc, err := NewProcessor(cfg)
	if err != nil {
		t.Fatalf("creating processor: %v", err)
	}

	if _, _, _, err := proc.ProcessFiles(); err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	// Decrypt directly with an engine built from the same key bytes.
	engine, err := NewEngine(key, ModeCTR)
	if err != nil {
		t.Fatalf("creating engine: %v", err)
	}

	container, err := os.ReadFile(input + ".enc")
	if err != nil {
		t.Fatalf("reading encrypted output: %v", err)
	}

	plaintext, err := engine.Decrypt(container)
	if err != nil {
		t.Fatalf("decrypting: %v", err)
	}

	if !bytes.Equal(plaintext, original) {
		t.Error("hex key and key bytes disagree")
	}
}

func TestProcessorRequiresKeyForDecrypt(t *testing.T) {
	cfg := &config.Config{
		Mode:     "CBC",
		Parallel: 1,
		Decrypt:  true,
		Files:    []string{"whatever.enc"},
	}

	if _, err := NewProcessor(cfg); err == nil {
		t.Error("decrypting without a key succeeded")
	}
}

func TestProcessorGeneratesKeyForEncrypt(t *testing.T) {
	dir := t.TempDir()
	input, _ := writeTestFile(t, dir, "img.png", 64)
	savePath := filepath.Join(dir, "generated.key")

	cfg := &config.Config{
		Mode:     "CBC",
		Parallel: 1,
		Quiet:    true,
		SaveKey:  savePath,
		Suffixes: config.Suffixes{Encrypt: ".enc"},
		Files:    []string{input},
	}

	proc, err := NewProcessor(cfg)
	if err != nil {
		t.Fatalf("creating processor: %v", err)
	}

	if _, _, _, err := proc.ProcessFiles(); err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	if err := proc.AnnounceKey(); err != nil {
		t.Fatalf("announcing key: %v", err)
	}

	if _, err := LoadKey(savePath); err != nil {
		t.Errorf("generated key was not persisted: %v", err)
	}
}

func TestProcessorFailedDecryptLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	keyPath := writeTestKey(t, dir)

	// Too short to even hold an IV.
	input := filepath.Join(dir, "broken.enc")
	if err := os.WriteFile(input, make([]byte, 8), 0o600); err != nil {
		t.Fatalf("writing broken container: %v", err)
	}

	cfg := &config.Config{
		Mode:     "CTR",
		KeyFile:  keyPath,
		Parallel: 1,
		Quiet:    true,
		Decrypt:  true,
		Suffixes: config.Suffixes{Encrypt: ".enc"},
		Files:    []string{input},
	}

	proc, err := NewProcessor(cfg)
	if err != nil {
		t.Fatalf("creating processor: %v", err)
	}

	processed, errored, _, err := proc.ProcessFiles()
	if err == nil {
		t.Fatal("decrypting a broken container succeeded")
	}

	if processed != 0 || errored != 1 {
		t.Fatalf("processed %d, errored %d", processed, errored)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("listing directory: %v", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if name != "broken.enc" && name != "test.key" {
			t.Errorf("unexpected leftover file %q", name)
		}
	}
}

func TestProcessorOutputPathSuffixes(t *testing.T) {
	cfg := &config.Config{
		Suffixes: config.Suffixes{Encrypt: ".enc", Decrypt: ".out"},
	}

	p := &Processor{cfg: cfg}

	if got := p.outputPath(filepath.Join("a", "b.png")); got != filepath.Join("a", "b.png.enc") {
		t.Errorf("encrypt path = %q", got)
	}

	cfg.Decrypt = true

	if got := p.outputPath(filepath.Join("a", "b.png.enc")); got != filepath.Join("a", "b.png.out") {
		t.Errorf("decrypt path = %q", got)
	}

	// A name without the encrypted suffix passes through unchanged.
	if got := p.outputPath("plain.bin"); !strings.HasSuffix(got, "plain.bin.out") {
		t.Errorf("suffix-less decrypt path = %q", got)
	}
}
