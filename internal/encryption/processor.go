package encryption

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/VishnuVardhan0007/image-encryption/internal/config"
	"github.com/VishnuVardhan0007/image-encryption/internal/fileutil"
)

// Processor runs the encryption pipeline over the configured files.
// Payloads are processed whole in memory; each file gets its own fresh IV
// and the files are independent, so they are handled in parallel.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// engine applies the mode transform
	engine *Engine

	// key stores the raw key bytes
	key []byte

	// generated is set when no key was supplied and a fresh one was created
	generated bool

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor resolves the key material and mode from the configuration
// and builds the cipher engine. Encrypting without a key generates a
// fresh one; decrypting requires a key.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	encryptionKey, generated, err := resolveKey(cfg)
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine(encryptionKey, mode)
	if err != nil {
		return nil, err
	}

	return &Processor{
		cfg:       cfg,
		engine:    engine,
		key:       encryptionKey,
		generated: generated,
		results:   make(chan Result, len(cfg.Files)),
	}, nil
}

// resolveKey picks the key source: hex string flag, raw key file, or a
// freshly generated key when encrypting without either.
func resolveKey(cfg *config.Config) (encryptionKey []byte, generated bool, err error) {
	switch {
	case cfg.Key != "":
		encryptionKey, err = key.FromHex(cfg.Key)
		if err != nil {
			return nil, false, fmt.Errorf("decoding key: %w", err)
		}

		return encryptionKey, false, nil
	case cfg.KeyFile != "":
		encryptionKey, err = LoadKey(cfg.KeyFile)

		return encryptionKey, false, err
	case cfg.Decrypt:
		return nil, false, errors.New("decrypt: a key is required (--key or --key-file)")
	default:
		encryptionKey, err = GenerateKey()

		return encryptionKey, true, err
	}
}

// AnnounceKey persists or prints a freshly generated key. It is a no-op
// when the key was supplied by the caller.
func (p *Processor) AnnounceKey() error {
	if !p.generated {
		return nil
	}

	if p.cfg.SaveKey != "" {
		if err := SaveKey(p.key, p.cfg.SaveKey); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Key saved to %q\n", p.cfg.SaveKey)

		return nil
	}

	fmt.Fprintf(os.Stderr, "Key (hex): %s\n", hex.EncodeToString(p.key))
	fmt.Fprintln(os.Stderr, "Save this key securely! You'll need it for decryption.")

	return nil
}

// ProcessFiles concurrently processes all configured files, encrypting or
// decrypting each one. Returns the number of successfully processed files,
// the number of errors and the total output size.
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++

			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Printf("Processed %q -> %q\n", result.Input, result.Output)
			}

			if p.cfg.Delete {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.outputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile encrypts or decrypts a single file. Output goes through a
// temp file and an atomic rename, so a failure never leaves a truncated
// output behind.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	pending, err := fileutil.Begin(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer pending.Abort(&err)

	input, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("reading input file: %w", err)
	}

	var output []byte

	if p.cfg.Decrypt {
		output, err = p.engine.Decrypt(input)
		if err != nil {
			return 0, fmt.Errorf("decrypting: %w", err)
		}
	} else {
		output, err = p.engine.Encrypt(input)
		if err != nil {
			return 0, fmt.Errorf("encrypting: %w", err)
		}
	}

	if _, err = pending.Write(output); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	size, err = pending.Commit(p.cfg.PreserveTimestamps)
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}

// outputPath derives the output file path: the explicit --output override
// for a single input, otherwise the suffix convention.
func (p *Processor) outputPath(filename string) string {
	if p.cfg.Output != "" {
		return p.cfg.Output
	}

	ext := p.cfg.Suffixes.Encrypt

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.Suffixes.Encrypt)
		ext = p.cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(filename)+ext)
}
