package steg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stegano/internal/random"
)

func TestBytesToBits(t *testing.T) {
	t.Run("common", func(t *testing.T) {
		bits := bytesToBits([]byte{0xA5})
		require.Equal(t, []byte{1, 0, 1, 0, 0, 1, 0, 1}, bits)

		bits = bytesToBits([]byte{0x00, 0xFF})
		require.Equal(t, []byte{
			0, 0, 0, 0, 0, 0, 0, 0,
			1, 1, 1, 1, 1, 1, 1, 1,
		}, bits)
	})

	t.Run("empty", func(t *testing.T) {
		require.Empty(t, bytesToBits(nil))
	})
}

func TestBitsToBytes(t *testing.T) {
	t.Run("common", func(t *testing.T) {
		data := bitsToBytes([]byte{1, 0, 1, 0, 0, 1, 0, 1})
		require.Equal(t, []byte{0xA5}, data)
	})

	t.Run("trailing partial group", func(t *testing.T) {
		// fewer than 8 bits are zero padded on the right
		data := bitsToBytes([]byte{1, 1, 1})
		require.Equal(t, []byte{0xE0}, data)
	})

	t.Run("empty", func(t *testing.T) {
		require.Empty(t, bitsToBytes(nil))
	})

	t.Run("inverse", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			testdata := random.Bytes(1 + random.Int(128))
			require.Equal(t, testdata, bitsToBytes(bytesToBits(testdata)))
		}
	})
}

func TestWriteBitAndReadBit(t *testing.T) {
	pix := []byte{0x00, 0xFF, 0x80, 0x7F}

	writeBit(pix, 0, 1)
	writeBit(pix, 1, 0)
	writeBit(pix, 2, 1)
	writeBit(pix, 3, 0)

	// only the least significant bit changes
	require.Equal(t, []byte{0x01, 0xFE, 0x81, 0x7E}, pix)

	require.Equal(t, byte(1), readBit(pix, 0))
	require.Equal(t, byte(0), readBit(pix, 1))
	require.Equal(t, byte(1), readBit(pix, 2))
	require.Equal(t, byte(0), readBit(pix, 3))
}
