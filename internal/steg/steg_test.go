package steg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stegano/internal/random"
	"stegano/internal/testsuite"
)

func testGeneratePixmap(width, height int) *Pixmap {
	pm := NewPixmap(width, height)
	copy(pm.Pix, random.Bytes(len(pm.Pix)))
	return pm
}

func TestEncodeAndDecode(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		pm := testGeneratePixmap(10, 10)

		err := Encode(pm, "hi", "", nil)
		require.NoError(t, err)

		message, err := Decode(pm, "", nil)
		require.NoError(t, err)
		require.Equal(t, "hi", message)

		testsuite.IsDestroyed(t, pm)
	})

	t.Run("password", func(t *testing.T) {
		pm := testGeneratePixmap(10, 10)

		err := Encode(pm, "hi", "secret", nil)
		require.NoError(t, err)

		message, err := Decode(pm, "secret", nil)
		require.NoError(t, err)
		require.Equal(t, "hi", message)
	})

	t.Run("latin-1", func(t *testing.T) {
		pm := testGeneratePixmap(10, 10)

		err := Encode(pm, "café £5", "pass", nil)
		require.NoError(t, err)

		message, err := Decode(pm, "pass", nil)
		require.NoError(t, err)
		require.Equal(t, "café £5", message)
	})

	t.Run("random", func(t *testing.T) {
		pm := testGeneratePixmap(64, 48)
		capacity := pm.Capacity()

		for i := 0; i < 32; i++ {
			expected := random.String(1 + random.Int(capacity))
			password := random.String(random.Int(16))

			err := Encode(pm, expected, password, nil)
			require.NoError(t, err)

			message, err := Decode(pm, password, nil)
			require.NoError(t, err)
			require.Equal(t, expected, message)
		}
	})
}

func TestWrongPassword(t *testing.T) {
	pm := testGeneratePixmap(10, 10)

	err := Encode(pm, "hi", "abc", nil)
	require.NoError(t, err)

	// a wrong password is not detected, it yields a garbled message
	message, err := Decode(pm, "abd", nil)
	require.NoError(t, err)
	require.NotEqual(t, "hi", message)
	require.Len(t, []rune(message), 2)
}

func TestAlphaPreserved(t *testing.T) {
	pm := testGeneratePixmap(20, 10)
	origin := pm.Clone()

	message := random.String(pm.Capacity())
	err := Encode(pm, message, "pass", nil)
	require.NoError(t, err)

	for i := 0; i < len(pm.Pix); i++ {
		if i%4 == 3 {
			require.Equal(t, origin.Pix[i], pm.Pix[i], "alpha sample %d changed", i)
		} else {
			// color samples may only differ in the LSB
			require.Equal(t, origin.Pix[i]&0xFE, pm.Pix[i]&0xFE, "sample %d", i)
		}
	}
}

// 100 pixels give floor((300-64)/8) = 29 characters, "hi" must fit and
// only touch the first pixels.
func TestSmallImageScenario(t *testing.T) {
	pm := testGeneratePixmap(10, 10)
	require.Equal(t, 29, pm.Capacity())
	origin := pm.Clone()

	err := Encode(pm, "hi", "", nil)
	require.NoError(t, err)

	// the header declares length 2, so frame bit 30 is the first 1 bit
	for i := 0; i < 32; i++ {
		idx := i/3*4 + i%3
		expected := byte(0)
		if i == 30 {
			expected = 1
		}
		require.Equal(t, expected, readBit(pm.Pix, idx), "header bit %d", i)
	}

	// the frame is 80 bits = 27 pixels, the rest of the buffer is intact
	for i := 27 * 4; i < len(pm.Pix); i++ {
		require.Equal(t, origin.Pix[i], pm.Pix[i], "sample %d", i)
	}

	message, err := Decode(pm, "", nil)
	require.NoError(t, err)
	require.Equal(t, "hi", message)

	// 30 characters can not fit
	err = Encode(pm, "012345678901234567890123456789", "", nil)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestProgress(t *testing.T) {
	checkMonotonic := func(t *testing.T, reported []float64) {
		require.NotEmpty(t, reported)
		last := 0.0
		for _, percent := range reported {
			require.GreaterOrEqual(t, percent, last)
			last = percent
		}
		require.Equal(t, 100.0, reported[len(reported)-1])
	}

	pm := testGeneratePixmap(60, 60)
	message := random.String(1000)

	t.Run("encode", func(t *testing.T) {
		var reported []float64
		err := Encode(pm, message, "pass", func(percent float64) {
			reported = append(reported, percent)
		})
		require.NoError(t, err)
		checkMonotonic(t, reported)
	})

	t.Run("decode", func(t *testing.T) {
		var reported []float64
		decoded, err := Decode(pm, "pass", func(percent float64) {
			reported = append(reported, percent)
		})
		require.NoError(t, err)
		require.Equal(t, message, decoded)
		checkMonotonic(t, reported)
	})
}

func TestPixmapValidate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		require.NoError(t, NewPixmap(3, 2).Validate())
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		pm := Pixmap{Pix: make([]byte, 16), Width: 3, Height: 2}
		err := pm.Validate()
		require.ErrorIs(t, err, ErrInvalidPixmap)
	})

	t.Run("degenerate dimensions", func(t *testing.T) {
		pm := Pixmap{Width: 0, Height: 10}
		require.ErrorIs(t, pm.Validate(), ErrInvalidPixmap)
	})
}

func TestPixmapClone(t *testing.T) {
	pm := testGeneratePixmap(4, 4)
	clone := pm.Clone()

	require.Equal(t, pm.Pix, clone.Pix)

	clone.Pix[0] ^= 0xFF
	require.NotEqual(t, pm.Pix[0], clone.Pix[0])
}
