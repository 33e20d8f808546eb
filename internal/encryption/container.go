package encryption

import "fmt"

// encodeContainer concatenates IV and ciphertext into a fresh buffer.
// The container is the only persisted artifact; decrypting it needs the
// external key and mode.
func encodeContainer(iv, ciphertext []byte) []byte {
	container := make([]byte, 0, len(iv)+len(ciphertext))
	container = append(container, iv...)

	return append(container, ciphertext...)
}

// decodeContainer splits the leading block off as the IV. A container of
// exactly one block holds an empty ciphertext.
func decodeContainer(container []byte) (iv, ciphertext []byte, err error) {
	if len(container) < BlockSize {
		return nil, nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedContainer, len(container), BlockSize)
	}

	return container[:BlockSize], container[BlockSize:], nil
}
