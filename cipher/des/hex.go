package des

import (
	"encoding/hex"

	"github.com/feistel-lab/des/errors"
)

// DecodeHexBlock decodes a 16-character hex string into an 8-byte DES
// block.
func DecodeHexBlock(s string) ([]byte, error) {
	if len(s) != BlockSize*2 {
		return nil, errors.ErrInvalidBlockSize
	}

	block, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Annotate(err, "decoding hex block: %w")
	}
	return block, nil
}

// DecodeKey decodes a 16-character hex string into an 8-byte DES key.
func DecodeKey(s string) ([]byte, error) {
	if len(s) != KeySize*2 {
		return nil, errors.ErrInvalidKeySize
	}

	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Annotate(errors.ErrInvalidHexDigit, "decoding hex key: %v: %w", err)
	}
	return key, nil
}

// EncodeBlock encodes an 8-byte DES block as a 16-character lowercase hex
// string.
func EncodeBlock(block []byte) string {
	return hex.EncodeToString(block)
}
