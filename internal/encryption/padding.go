package encryption

import "fmt"

// pkcs7Pad appends between 1 and blockSize bytes, each holding the pad
// count, so the result is a positive multiple of blockSize. Input that is
// already aligned gains a full extra block of padding.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize

	padded := make([]byte, len(data)+padding)
	copy(padded, data)

	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}

	return padded
}

// pkcs7Unpad validates and strips PKCS#7 padding.
// Every violation maps to ErrInvalidPadding: these are deterministic
// function-of-input errors, not recoverable conditions.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	length := len(data)
	if length == 0 || length%blockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple of %d", ErrInvalidPadding, length, blockSize)
	}

	padding := int(data[length-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("%w: pad count %d out of range", ErrInvalidPadding, padding)
	}

	for i := length - padding; i < length; i++ {
		if data[i] != byte(padding) {
			return nil, fmt.Errorf("%w: trailing bytes do not match pad count", ErrInvalidPadding)
		}
	}

	return data[:length-padding], nil
}
