package cipher

import (
	"context"

	"github.com/feistel-lab/des/errors"
)

// FeistelNetwork drives the round-key iteration common to every Feistel
// cipher: encryption walks the round keys forward, decryption walks the
// same schedule in reverse, and both share the L/R swap-and-XOR at every
// round. The algorithm-specific parts — how round keys are derived and
// what the per-round function computes — are supplied by a KeyScheduler
// and a RoundFunction, so a new Feistel cipher only has to implement those
// two collaborators.
type FeistelNetwork struct {
	scheduler KeyScheduler
	round     RoundFunction
	blockSize int
	roundKeys [][]byte
}

// type check
var _ BlockCipher = (*FeistelNetwork)(nil)

// NewFeistelNetwork returns a FeistelNetwork for the given scheduler, round
// function and block size (in bytes, must be even).
func NewFeistelNetwork(scheduler KeyScheduler, round RoundFunction, blockSize int) *FeistelNetwork {
	return &FeistelNetwork{
		scheduler: scheduler,
		round:     round,
		blockSize: blockSize,
	}
}

// BlockSize returns the cipher's block size in bytes.
func (f *FeistelNetwork) BlockSize() int {
	return f.blockSize
}

// SetKey derives and stores the round-key schedule. The schedule is owned
// by this FeistelNetwork; it is rebuilt (and the previous one discarded)
// on every successful call. A call that fails leaves the previous schedule
// in place.
func (f *FeistelNetwork) SetKey(ctx context.Context, key []byte) error {
	roundKeys, err := f.scheduler.GenerateRoundKeys(ctx, key)
	if err != nil {
		return errors.Annotate(err, "generating round keys: %w")
	}

	f.roundKeys = roundKeys
	return nil
}

// Encrypt runs the network forward: round i consumes roundKeys[i].
func (f *FeistelNetwork) Encrypt(ctx context.Context, block []byte) ([]byte, error) {
	return f.run(ctx, block, false)
}

// Decrypt runs the network with the round-key schedule reversed, which
// recovers the plaintext because the final swap is self-inverse.
func (f *FeistelNetwork) Decrypt(ctx context.Context, block []byte) ([]byte, error) {
	return f.run(ctx, block, true)
}

func (f *FeistelNetwork) run(ctx context.Context, block []byte, reverse bool) ([]byte, error) {
	if len(block)%2 != 0 {
		return nil, errors.ErrInvalidBlockSize
	}

	half := len(block) / 2
	l := append([]byte(nil), block[:half]...)
	r := append([]byte(nil), block[half:]...)

	numRounds := len(f.roundKeys)
	for i := 0; i < numRounds; i++ {
		keyIdx := i
		if reverse {
			keyIdx = numRounds - 1 - i
		}

		fOut, err := f.round.Transform(ctx, r, f.roundKeys[keyIdx])
		if err != nil {
			return nil, errors.Annotate(err, "round function: %w")
		}

		l, r = r, xorBytes(l, fOut)
	}

	// The pre-output block is R‖L, not L‖R: the final swap is intrinsic
	// to a Feistel network, not a separate step.
	out := make([]byte, 0, len(block))
	out = append(out, r...)
	out = append(out, l...)
	return out, nil
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
