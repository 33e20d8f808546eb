// Package logic wires configuration, file resolution and the encryption
// pipeline together.
package logic

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/VishnuVardhan0007/image-encryption/internal/config"
	"github.com/VishnuVardhan0007/image-encryption/internal/encryption"
	"github.com/VishnuVardhan0007/image-encryption/internal/filter"
)

// Run is the main logic of the application: resolve the inputs, run the
// processor over them and report the outcome.
func Run(cfg *config.Config) error {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	excluded := scanned - len(cfg.Files)

	if cfg.Dry {
		return dryRun(cfg, scanned, excluded, start)
	}

	proc, err := encryption.NewProcessor(cfg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	// A generated key must reach the user even when some files failed:
	// without it the processed outputs are unrecoverable.
	if processed > 0 {
		if keyErr := proc.AnnounceKey(); keyErr != nil && err == nil {
			err = keyErr
		}
	}

	if cfg.Stats {
		printStats(scanned, excluded, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// resolveFiles expands positional arguments and applies include/exclude
// filtering. Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	includes := append([]string{}, cfg.Include...)
	excludes := append([]string{}, cfg.Exclude...)

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return 0, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	hasIncludes := len(includes) > 0

	// Directory scans during decryption default to the encrypted suffix,
	// so a plain "decrypt ." does not touch unrelated files.
	if cfg.Decrypt && !hasIncludes {
		includes = append(includes, "*"+cfg.Suffixes.Encrypt)
		hasIncludes = true
	}

	files, scanned, err := filter.Resolve(cfg.Files, includes, excludes, hasIncludes)
	if err != nil {
		return scanned, fmt.Errorf("filtering files: %w", err)
	}

	if len(files) == 0 {
		return scanned, errors.New("no files matched")
	}

	cfg.Files = files

	return scanned, nil
}

// dryRun previews what would be processed without touching any file.
func dryRun(cfg *config.Config, scanned, excluded int, start time.Time) error {
	var totalSize int64

	for _, file := range cfg.Files {
		if !cfg.Quiet {
			fmt.Printf("Processed %q -> %q\n", file, outputPath(file, cfg))
		}

		if cfg.Stats {
			if info, err := os.Stat(file); err == nil {
				totalSize += info.Size()
			}
		}
	}

	if cfg.Stats {
		printStats(scanned, excluded, len(cfg.Files), 0, totalSize, time.Since(start))
	}

	return nil
}

func outputPath(filename string, cfg *config.Config) string {
	if cfg.Output != "" {
		return cfg.Output
	}

	ext := cfg.Suffixes.Encrypt

	if cfg.Decrypt {
		filename = strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}

func printStats(scanned, excluded, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(os.Stderr, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
