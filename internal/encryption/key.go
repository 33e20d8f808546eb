package encryption

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
)

// GenerateKey returns a fresh random AES-256 key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	return key, nil
}

// SaveKey writes the raw key bytes to path, readable by the owner only.
// The key file format is bare bytes with no header or encoding.
func SaveKey(key []byte, path string) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrKeySize, len(key), KeySize)
	}

	if err := os.WriteFile(path, key, 0o600); err != nil {
		return fmt.Errorf("writing key file: %w", err)
	}

	return nil
}

// LoadKey reads a raw key file and rejects anything that is not exactly
// one AES-256 key long.
func LoadKey(path string) ([]byte, error) {
	key, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key file %q holds %d bytes, want %d", ErrKeySize, path, len(key), KeySize)
	}

	return key, nil
}
