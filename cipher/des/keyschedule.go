package des

import (
	"context"
	"encoding/binary"

	"github.com/feistel-lab/des/bits"
	"github.com/feistel-lab/des/errors"
)

// numRounds is the number of Feistel rounds DES runs: fixed by the
// algorithm, not configurable.
const numRounds = 16

// KeySchedule implements cipher.KeyScheduler for DES: PC-1 splits the
// 64-bit key into two 28-bit halves C0/D0, each round rotates both halves
// left per keyShifts, and PC-2 compresses the rotated Ci||Di into the
// round's 48-bit subkey.
type KeySchedule struct{}

func (KeySchedule) GenerateRoundKeys(ctx context.Context, key []byte) ([][]byte, error) {
	if len(key) != KeySize {
		return nil, errors.ErrInvalidKeySize
	}

	cd, err := bits.Permute(key, pc1Table)
	if err != nil {
		return nil, errors.Annotate(err, "PC-1: %w")
	}

	c, d := splitCD(cd)

	roundKeys := make([][]byte, numRounds)
	for round := 0; round < numRounds; round++ {
		c = rotateLeft28(c, keyShifts[round])
		d = rotateLeft28(d, keyShifts[round])

		subkey, err := bits.Permute(packCD(c, d), pc2Table)
		if err != nil {
			return nil, errors.Annotate(err, "PC-2: %w")
		}
		roundKeys[round] = subkey
	}

	return roundKeys, nil
}

// splitCD splits PC-1's 56-bit output (packed MSB-first across 7 bytes)
// into two 28-bit halves, each right-aligned in a 4-byte word with its
// top 4 bits always zero.
func splitCD(cd []byte) (c, d uint32) {
	c = uint32(cd[0])<<20 | uint32(cd[1])<<12 | uint32(cd[2])<<4 | uint32(cd[3])>>4
	d = uint32(cd[3]&0x0F)<<24 | uint32(cd[4])<<16 | uint32(cd[5])<<8 | uint32(cd[6])
	return c & 0x0FFFFFFF, d & 0x0FFFFFFF
}

// packCD reassembles C and D (each a right-aligned 28-bit half) into the
// contiguous 56-bit Ci||Di string PC-2 expects as input, packed MSB-first
// across 7 bytes.
func packCD(c, d uint32) []byte {
	cd := uint64(c&0x0FFFFFFF)<<28 | uint64(d&0x0FFFFFFF)
	cd <<= 8 // left-align the 56 bits within a 64-bit word

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, cd)
	return buf[:7]
}

// rotateLeft28 rotates a 28-bit value (right-aligned in a 32-bit word,
// top 4 bits zero) left by n bits.
func rotateLeft28(v uint32, n int) uint32 {
	v &= 0x0FFFFFFF
	return ((v << n) | (v >> (28 - n))) & 0x0FFFFFFF
}
