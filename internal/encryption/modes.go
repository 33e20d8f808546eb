package encryption

import "fmt"

// Per-mode block transforms. Chaining state is carried explicitly through
// the loop rather than hidden in object state: CBC and CFB are inherently
// serial within one call, while OFB and CTR keystreams depend only on the
// IV (and, for CTR, the block index).

// encryptCBC chains each padded plaintext block with the previous
// ciphertext block before encryption. prev is seeded with the IV.
func (e *Engine) encryptCBC(iv, padded []byte) []byte {
	ciphertext := make([]byte, len(padded))
	chained := make([]byte, BlockSize)
	prev := iv

	for i := 0; i < len(padded); i += BlockSize {
		xorBytes(chained, padded[i:i+BlockSize], prev)
		e.block.Encrypt(ciphertext[i:i+BlockSize], chained)
		prev = ciphertext[i : i+BlockSize]
	}

	return ciphertext
}

// decryptCBC inverts the chaining. Padding is stripped by the caller;
// a ciphertext that is not a positive multiple of the block size cannot
// carry valid padding.
func (e *Engine) decryptCBC(iv, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d", ErrInvalidPadding, len(ciphertext), BlockSize)
	}

	plaintext := make([]byte, len(ciphertext))
	prev := iv

	for i := 0; i < len(ciphertext); i += BlockSize {
		e.block.Decrypt(plaintext[i:i+BlockSize], ciphertext[i:i+BlockSize])
		xorBytes(plaintext[i:i+BlockSize], plaintext[i:i+BlockSize], prev)
		prev = ciphertext[i : i+BlockSize]
	}

	return plaintext, nil
}

// cfbTransform runs full-block CFB. The feedback register carries the
// previous ciphertext block, so encryption and decryption differ only in
// which of input and output feeds the register. A final partial block
// consumes only the leading keystream bytes; the register is not advanced
// past it.
func (e *Engine) cfbTransform(iv, in []byte, encrypting bool) []byte {
	out := make([]byte, len(in))
	stream := make([]byte, BlockSize)
	feedback := iv

	for i := 0; i < len(in); i += BlockSize {
		e.block.Encrypt(stream, feedback)

		n := min(BlockSize, len(in)-i)
		xorBytes(out[i:i+n], in[i:i+n], stream[:n])

		if encrypting {
			feedback = out[i : i+n]
		} else {
			feedback = in[i : i+n]
		}
	}

	return out
}

// ofbXOR generates the keystream by repeatedly encrypting the previous
// keystream block. The data never enters the feedback path, so the same
// transform serves both directions.
func (e *Engine) ofbXOR(iv, in []byte) []byte {
	out := make([]byte, len(in))
	stream := make([]byte, BlockSize)
	copy(stream, iv)

	for i := 0; i < len(in); i += BlockSize {
		e.block.Encrypt(stream, stream)

		n := min(BlockSize, len(in)-i)
		xorBytes(out[i:i+n], in[i:i+n], stream[:n])
	}

	return out
}

// ctrXOR encrypts a big-endian counter seeded from the nonce, incremented
// once per block and wrapping within the block width. Each keystream block
// depends only on the block index, so the same transform serves both
// directions.
func (e *Engine) ctrXOR(nonce, in []byte) []byte {
	out := make([]byte, len(in))
	counter := make([]byte, BlockSize)
	copy(counter, nonce)
	stream := make([]byte, BlockSize)

	for i := 0; i < len(in); i += BlockSize {
		e.block.Encrypt(stream, counter)

		n := min(BlockSize, len(in)-i)
		xorBytes(out[i:i+n], in[i:i+n], stream[:n])

		incrementCounter(counter)
	}

	return out
}

// incrementCounter adds one to a big-endian counter, wrapping silently at
// the block boundary.
func incrementCounter(counter []byte) {
	for i := len(counter) - 1; i >= 0; i-- {
		counter[i]++
		if counter[i] != 0 {
			break
		}
	}
}

func xorBytes(dst, a, b []byte) {
	for i := range a {
		dst[i] = a[i] ^ b[i]
	}
}
