// Package des implements single-block DES encryption and decryption: the
// 1977 Feistel cipher with a 64-bit block, a 56-bit effective key (64 bits
// with 8 parity bits discarded by PC-1) and 16 rounds. It builds on the
// generic cipher.FeistelNetwork driver, supplying DES's own key schedule,
// round function, and the initial/final permutations that wrap it.
package des

import (
	"context"

	"github.com/feistel-lab/des/bits"
	"github.com/feistel-lab/des/cipher"
	"github.com/feistel-lab/des/errors"
)

const (
	// BlockSize is the DES block size in bytes (64 bits).
	BlockSize = 8
	// KeySize is the DES key size in bytes (64 bits, including parity).
	KeySize = 8

	halfBlockSize = BlockSize / 2
)

// DES implements cipher.BlockCipher: it wraps a FeistelNetwork configured
// with DES's key schedule and round function, applying the initial
// permutation (IP) before and its inverse (IP⁻¹) after the 16 Feistel
// rounds.
type DES struct {
	*cipher.FeistelNetwork
}

// type check
var _ cipher.BlockCipher = (*DES)(nil)

// NewDES returns a DES cipher with no key set; call SetKey before
// Encrypt or Decrypt.
func NewDES() *DES {
	return &DES{
		FeistelNetwork: cipher.NewFeistelNetwork(KeySchedule{}, RoundFunction{}, BlockSize),
	}
}

// Encrypt enciphers a single 8-byte block: IP, 16 Feistel rounds, IP⁻¹.
func (d *DES) Encrypt(ctx context.Context, block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, errors.ErrInvalidBlockSize
	}

	permuted, err := bits.Permute(block, initialPermutation)
	if err != nil {
		return nil, errors.Annotate(err, "initial permutation: %w")
	}

	preOutput, err := d.FeistelNetwork.Encrypt(ctx, permuted)
	if err != nil {
		return nil, err
	}

	final, err := bits.Permute(preOutput, finalPermutation)
	if err != nil {
		return nil, errors.Annotate(err, "final permutation: %w")
	}
	return final, nil
}

// Decrypt deciphers a single 8-byte block: IP, 16 Feistel rounds with the
// key schedule reversed, IP⁻¹.
func (d *DES) Decrypt(ctx context.Context, block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, errors.ErrInvalidBlockSize
	}

	permuted, err := bits.Permute(block, initialPermutation)
	if err != nil {
		return nil, errors.Annotate(err, "initial permutation: %w")
	}

	preOutput, err := d.FeistelNetwork.Decrypt(ctx, permuted)
	if err != nil {
		return nil, err
	}

	final, err := bits.Permute(preOutput, finalPermutation)
	if err != nil {
		return nil, errors.Annotate(err, "final permutation: %w")
	}
	return final, nil
}
