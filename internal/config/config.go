// Package config defines the runtime configuration shared by all commands.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Suffixes holds the file name suffixes applied when deriving output paths.
type Suffixes struct {
	// Encrypt is appended to encrypted files.
	Encrypt string `mapstructure:"encrypt-ext"`
	// Decrypt is appended to decrypted files, after the encrypted suffix
	// has been stripped.
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Config collects flags and positional arguments for a single invocation.
type Config struct {
	// Mode names the cipher mode of operation (CBC, CFB, OFB or CTR).
	// It is not stored in the encrypted output: decryption must use the
	// same mode as encryption.
	Mode string `validate:"required"`

	// Key is a hex-encoded AES-256 key supplied directly on the command line.
	Key string

	// KeyFile points to a raw 32-byte key file.
	KeyFile string `mapstructure:"key-file"`

	// SaveKey persists a freshly generated key to this path.
	SaveKey string `mapstructure:"save-key"`

	// Output overrides the derived output path; single input only.
	Output string

	// Parallel bounds the number of concurrently processed files.
	Parallel int `validate:"min=1"`

	// Quiet suppresses non-error output.
	Quiet bool

	// Stats prints processing statistics on completion.
	Stats bool

	// Dry previews the files that would be processed.
	Dry bool

	// Delete removes the input file after successful processing.
	Delete bool

	// PreserveTimestamps carries the input modification time to the output.
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Suffixes control output path derivation.
	Suffixes Suffixes `mapstructure:",squash"`

	// Include are patterns a scanned file must match.
	Include []string

	// Exclude are patterns that remove a scanned file. Excludes win.
	Exclude []string

	// ExcludeFrom names a JSONC file with additional exclude patterns.
	ExcludeFrom string `mapstructure:"exclude-from"`

	// Decrypt switches the pipeline from encryption to decryption.
	Decrypt bool

	// Files are the resolved positional arguments.
	Files []string `validate:"min=1"`
}

// Validate checks the configuration against the struct tags plus the
// cross-field rules the tags cannot express. Key material and mode names
// are validated where they are consumed, so their error kinds surface
// from one place.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if c.Key != "" && c.KeyFile != "" {
		return errors.New("--key and --key-file are mutually exclusive")
	}

	if c.Output != "" && len(c.Files) != 1 {
		return errors.New("--output requires exactly one input file")
	}

	return nil
}
