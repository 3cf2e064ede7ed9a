package steg

import (
	"strconv"

	"github.com/pkg/errors"

	"stegano/internal/convert"
	"stegano/internal/security"
)

// progress checkpoint interval in frame bits, a multiple of the three
// bits one pixel carries so checkpoints land on pixel boundaries
const progressStep = 3 * 1024

// Encode is used to embed message into the pixmap. The frame is the 32
// bit big endian length of the plain message, the payload (masked when
// password is not empty) and a 4 byte zero terminator. Frame bits are
// written into the LSB of the R, G and B samples of successive pixels,
// the alpha sample is never touched.
//
// ErrCapacityExceeded is returned before any sample is mutated, a
// failed Encode leaves the pixmap intact. progress may be nil.
func Encode(pm *Pixmap, message, password string, progress ProgressFunc) error {
	err := pm.Validate()
	if err != nil {
		return err
	}
	payload, err := messageBytes(message)
	if err != nil {
		return err
	}
	// the plain character count is compared, the 64 reserved bits in
	// Capacity already account for the header and the terminator
	if len(payload) > Capacity(pm.Width, pm.Height) {
		return ErrCapacityExceeded
	}
	// even an empty frame needs the reserved bits
	if reservedBits > pm.Width*pm.Height*colorSamples {
		return ErrCapacityExceeded
	}
	length := uint32(len(payload))
	if password != "" {
		maskBytes(payload, passwordKey(password))
		defer security.CoverBytes(payload)
	}
	frame := make([]byte, 0, headerSize+len(payload)+terminatorSize)
	frame = append(frame, convert.BEUint32ToBytes(length)...)
	frame = append(frame, payload...)
	frame = append(frame, make([]byte, terminatorSize)...)
	writeBits(pm, bytesToBits(frame), progress)
	return nil
}

// messageBytes converts the message to one byte per character, the
// frame format stores single byte code points only.
func messageBytes(message string) ([]byte, error) {
	b := make([]byte, 0, len(message))
	for _, r := range message {
		if r > 0xFF {
			return nil, errors.WithMessage(ErrUnsupportedChar, strconv.QuoteRune(r))
		}
		b = append(b, byte(r))
	}
	return b, nil
}

// writeBits walks the pixmap one pixel at a time and stores one frame
// bit in each color sample until all bits are consumed. The capacity
// check in Encode guarantees the frame fits.
func writeBits(pm *Pixmap, bits []byte, progress ProgressFunc) {
	total := len(bits)
	written := 0
	for pixel := 0; written < total; pixel++ {
		offset := pixel * pixelSize
		for c := 0; c < colorSamples && written < total; c++ {
			writeBit(pm.Pix, offset+c, bits[written])
			written++
		}
		if progress != nil && written%progressStep == 0 {
			progress(float64(written) / float64(total) * 100)
		}
	}
	if progress != nil {
		progress(100)
	}
}
