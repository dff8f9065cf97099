package des

import (
	"context"
	"testing"

	"github.com/feistel-lab/des/bits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := DecodeHexBlock(s)
	require.NoError(t, err)
	return b
}

// TestEncryptVectors checks the published encryption test vectors: the
// FIPS-46 sample, the 8787878787878787 block that encrypts to all zeros,
// and two ASCII-derived blocks.
func TestEncryptVectors(t *testing.T) {
	cases := []struct {
		name string
		key  string
		in   string
		want string
	}{
		{"fips46_sample", "133457799BBCDFF1", "0123456789ABCDEF", "85E813540F0AB405"},
		{"all_same_plaintext", "0E329232EA6D0D73", "8787878787878787", "0000000000000000"},
		{"ascii_slice_one", "0E329232EA6D0D73", "596F7572206C6970", "C0999FDDE378D7ED"},
		{"ascii_slice_two", "0E329232EA6D0D73", "732061726520736D", "727DA00BCA5A84EE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			d := NewDES()
			require.NoError(t, d.SetKey(ctx, mustDecode(t, tc.key)))

			got, err := d.Encrypt(ctx, mustDecode(t, tc.in))
			require.NoError(t, err)
			assert.Equal(t, mustDecode(t, tc.want), got)
		})
	}
}

// TestDecryptVector checks the published decryption test vector.
func TestDecryptVector(t *testing.T) {
	ctx := context.Background()
	d := NewDES()
	require.NoError(t, d.SetKey(ctx, mustDecode(t, "0E329232EA6D0D73")))

	got, err := d.Decrypt(ctx, mustDecode(t, "0000000000000000"))
	require.NoError(t, err)
	assert.Equal(t, "8787878787878787", EncodeBlock(got))
}

// TestEncryptDecryptRoundTrip exercises subkey reverse equivalence: the
// decryption subkey sequence must be the encryption sequence reversed, or
// this round trip would not recover the plaintext.
func TestEncryptDecryptRoundTrip(t *testing.T) {
	ctx := context.Background()
	d := NewDES()
	key := mustDecode(t, "133457799BBCDFF1")
	require.NoError(t, d.SetKey(ctx, key))

	plaintext := mustDecode(t, "0123456789ABCDEF")
	ciphertext, err := d.Encrypt(ctx, plaintext)
	require.NoError(t, err)

	recovered, err := d.Decrypt(ctx, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, recovered)
}

// TestDeterminism checks that repeated invocations on identical inputs
// yield identical outputs.
func TestDeterminism(t *testing.T) {
	ctx := context.Background()
	key := mustDecode(t, "133457799BBCDFF1")
	plaintext := mustDecode(t, "0123456789ABCDEF")

	first := NewDES()
	require.NoError(t, first.SetKey(ctx, key))
	out1, err := first.Encrypt(ctx, plaintext)
	require.NoError(t, err)

	second := NewDES()
	require.NoError(t, second.SetKey(ctx, key))
	out2, err := second.Encrypt(ctx, plaintext)
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
}

// TestEncryptRejectsWrongBlockSize exercises the boundary validation that
// keeps the core cipher from ever seeing a malformed block.
func TestEncryptRejectsWrongBlockSize(t *testing.T) {
	ctx := context.Background()
	d := NewDES()
	require.NoError(t, d.SetKey(ctx, mustDecode(t, "133457799BBCDFF1")))

	_, err := d.Encrypt(ctx, []byte{0x01, 0x02, 0x03})
	assert.Error(t, err)
}

// TestSetKeyRejectsWrongKeySize exercises the same validation for the key.
func TestSetKeyRejectsWrongKeySize(t *testing.T) {
	d := NewDES()
	err := d.SetKey(context.Background(), []byte{0x01, 0x02, 0x03})
	assert.Error(t, err)
}

// TestRotationScheduleClosure checks that after the 16 rotations (totaling
// 28 bits), C16 and D16 equal C0 and D0.
func TestRotationScheduleClosure(t *testing.T) {
	key := mustDecode(t, "133457799BBCDFF1")
	cd, err := bits.Permute(key, pc1Table)
	require.NoError(t, err)

	c0, d0 := splitCD(cd)

	c, d := c0, d0
	for _, shift := range keyShifts {
		c = rotateLeft28(c, shift)
		d = rotateLeft28(d, shift)
	}

	assert.Equal(t, c0, c)
	assert.Equal(t, d0, d)
}

// TestSBoxesArePermutationsOfEachRow checks that every S-box row is a
// permutation of {0..15}: the row is well-formed as a substitution.
func TestSBoxesArePermutationsOfEachRow(t *testing.T) {
	for boxIdx, box := range sBoxes {
		for row := 0; row < 4; row++ {
			seen := make(map[byte]bool, 16)
			for col := 0; col < 16; col++ {
				v := box[row*16+col]
				assert.Falsef(t, seen[v], "S-box %d row %d has duplicate value %d", boxIdx, row, v)
				seen[v] = true
			}
			assert.Lenf(t, seen, 16, "S-box %d row %d is not a full permutation of 0-15", boxIdx, row)
		}
	}
}

// TestBitExactnessOfInitialPermutation spot-checks that IP routes the
// source bit named by each table entry to the output position the table
// claims, for a block with a single 1 bit walked across every byte.
func TestBitExactnessOfInitialPermutation(t *testing.T) {
	for srcByte := 0; srcByte < BlockSize; srcByte++ {
		for srcBit := 0; srcBit < 8; srcBit++ {
			block := make([]byte, BlockSize)
			block[srcByte] = 1 << (7 - srcBit)
			srcPos := srcByte*8 + srcBit + 1

			out, err := bits.Permute(block, initialPermutation)
			require.NoError(t, err)

			for outIdx, tablePos := range initialPermutation {
				if tablePos != srcPos {
					continue
				}
				outByte, outBit := outIdx/8, outIdx%8
				assert.Equalf(t, byte(1), (out[outByte]>>(7-outBit))&1,
					"source bit %d should land at output position %d", srcPos, outIdx+1)
			}
		}
	}
}
