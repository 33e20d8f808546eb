package encryption

import (
	"fmt"
	"strings"
)

// Mode selects the cipher mode of operation. It is fixed at Engine
// construction and determines chaining, keystream generation and whether
// the plaintext is padded.
type Mode byte

const (
	// ModeCBC chains each plaintext block with the previous ciphertext block.
	ModeCBC Mode = iota
	// ModeCFB feeds the previous ciphertext block back through the cipher.
	ModeCFB
	// ModeOFB generates the keystream independently of the data.
	ModeOFB
	// ModeCTR encrypts a per-block counter derived from the nonce.
	ModeCTR
)

// ParseMode maps a mode name (case-insensitive) to its Mode value.
func ParseMode(name string) (Mode, error) {
	switch strings.ToUpper(name) {
	case "CBC":
		return ModeCBC, nil
	case "CFB":
		return ModeCFB, nil
	case "OFB":
		return ModeOFB, nil
	case "CTR":
		return ModeCTR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeCBC:
		return "CBC"
	case ModeCFB:
		return "CFB"
	case ModeOFB:
		return "OFB"
	case ModeCTR:
		return "CTR"
	default:
		return fmt.Sprintf("Mode(%d)", byte(m))
	}
}

// Padded reports whether the mode requires PKCS#7 padding. Only CBC
// operates on whole blocks; the keystream modes preserve the input length.
func (m Mode) Padded() bool {
	return m == ModeCBC
}

func (m Mode) valid() bool {
	return m <= ModeCTR
}
