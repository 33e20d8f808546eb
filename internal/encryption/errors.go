package encryption

import "errors"

var (
	// ErrUnsupportedMode is returned when the mode selector is not one of
	// CBC, CFB, OFB or CTR.
	ErrUnsupportedMode = errors.New("unsupported cipher mode")
	// ErrKeySize is returned when the key is not exactly KeySize bytes.
	ErrKeySize = errors.New("invalid key size")
	// ErrIVSize is returned when the IV is not exactly one block.
	ErrIVSize = errors.New("invalid IV size")
	// ErrInvalidPadding is returned when PKCS#7 padding is malformed.
	// On decryption this usually means a corrupted container, a wrong key
	// or a wrong mode.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrMalformedContainer is returned when a container is shorter than
	// one block and therefore cannot even hold an IV.
	ErrMalformedContainer = errors.New("malformed container")
)
