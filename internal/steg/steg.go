// Package steg implements LSB substitution of a text message into the
// color channels of a decoded image.
//
// The message is framed as a 32 bit big endian length, the payload and
// a 4 byte zero terminator, then written bit by bit into the least
// significant bit of the R, G and B samples of successive pixels. The
// alpha channel never carries data.
//
// The optional password only derives a repeatable XOR mask over the
// payload. It is obfuscation, not cryptography: it provides no
// confidentiality or integrity guarantee, and a wrong password yields
// garbled output instead of an error.
package steg

import (
	"github.com/pkg/errors"
)

// about steg errors.
var (
	// ErrCapacityExceeded is returned by Encode before any pixel is
	// touched when the message can not fit the image.
	ErrCapacityExceeded = errors.New("message is too large for this image")

	// ErrNoMessage is the routine Decode outcome for an image that
	// carries no plausible embedded message. Check it with errors.Is.
	ErrNoMessage = errors.New("no message embedded in this image")

	// ErrInvalidPixmap is returned when the flat sample buffer does not
	// match the declared dimensions.
	ErrInvalidPixmap = errors.New("pixel buffer does not match image dimensions")

	// ErrUnsupportedChar is returned by Encode when the message contains
	// a character that can not be stored in one byte.
	ErrUnsupportedChar = errors.New("message contains character outside Latin-1")
)

const (
	// samples per pixel and how many of them carry bits
	pixelSize    = 4 // R, G, B, A
	colorSamples = 3 // alpha is skipped

	// 32 bit length header + 32 bit zero terminator
	headerSize     = 4
	terminatorSize = 4
	reservedBits   = 8 * (headerSize + terminatorSize)
)

// ProgressFunc is called at checkpoints during Encode and Decode with
// the percentage of processed frame bits. Reported values never
// decrease and the final call on success is exactly 100.
type ProgressFunc func(percent float64)

// Pixmap is a decoded rectangular image: flat 8 bit samples with 4
// interleaved channels per pixel (R, G, B, A), pixels in row-major
// order. The buffer is owned by the caller, Encode mutates it in place
// and Decode only reads it.
type Pixmap struct {
	Pix    []byte
	Width  int
	Height int
}

// NewPixmap is used to create an opaque black pixmap.
func NewPixmap(width, height int) *Pixmap {
	pm := Pixmap{
		Pix:    make([]byte, width*height*pixelSize),
		Width:  width,
		Height: height,
	}
	for i := pixelSize - 1; i < len(pm.Pix); i += pixelSize {
		pm.Pix[i] = 0xFF
	}
	return &pm
}

// Validate is used to check the sample buffer matches the dimensions.
func (pm *Pixmap) Validate() error {
	if pm == nil || pm.Width < 1 || pm.Height < 1 {
		return ErrInvalidPixmap
	}
	if len(pm.Pix) != pm.Width*pm.Height*pixelSize {
		return errors.WithMessagef(ErrInvalidPixmap,
			"%d bytes for %dx%d", len(pm.Pix), pm.Width, pm.Height)
	}
	return nil
}

// Clone is used to copy the pixmap with an independent sample buffer.
func (pm *Pixmap) Clone() *Pixmap {
	pix := make([]byte, len(pm.Pix))
	copy(pix, pm.Pix)
	return &Pixmap{Pix: pix, Width: pm.Width, Height: pm.Height}
}

// Capacity is used to calculate the maximum message length in bytes
// that this pixmap can carry.
func (pm *Pixmap) Capacity() int {
	return Capacity(pm.Width, pm.Height)
}
