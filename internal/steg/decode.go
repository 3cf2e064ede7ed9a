package steg

import (
	"stegano/internal/convert"
	"stegano/internal/security"
)

// MaxMessageSize is the largest declared length Decode accepts, a
// header above it is treated as noise instead of a message.
const MaxMessageSize = 1000000

// Decode is used to extract an embedded message from the pixmap. It
// reads the same R, G, B bit stream Encode writes: a 32 bit big endian
// length first, then length*8 payload bits.
//
// ErrNoMessage is the routine outcome for an image without a plausible
// header, it is not a failure. A wrong password is not detected, it
// produces a garbled message. progress may be nil.
func Decode(pm *Pixmap, password string, progress ProgressFunc) (string, error) {
	err := pm.Validate()
	if err != nil {
		return "", err
	}
	samples := pm.Width * pm.Height * colorSamples
	if samples < headerSize*8 {
		// too small to even hold a length header
		return "", ErrNoMessage
	}
	reader := bitReader{pix: pm.Pix}
	header := bitsToBytes(reader.next(headerSize * 8))
	length := int(convert.BEBytesToUint32(header))
	if length <= 0 || length > MaxMessageSize {
		return "", ErrNoMessage
	}
	if reservedBits+length*8 > samples {
		// a frame this large can not fit, the header is noise
		return "", ErrNoMessage
	}
	// read the payload bit stream in checkpointed chunks
	payloadBits := make([]byte, 0, length*8)
	for remain := length * 8; remain > 0; {
		chunk := progressStep
		if remain < chunk {
			chunk = remain
		}
		payloadBits = append(payloadBits, reader.next(chunk)...)
		remain -= chunk
		if progress != nil {
			progress(float64(len(payloadBits)) / float64(length*8) * 100)
		}
	}
	payload := bitsToBytes(payloadBits)
	if password != "" {
		maskBytes(payload, passwordKey(password))
		defer security.CoverBytes(payload)
	}
	if len(payload) == 0 {
		return "", ErrNoMessage
	}
	return latin1String(payload), nil
}

// bitReader yields successive LSBs from the R, G and B samples of a
// flat pixel buffer, skipping every alpha sample.
type bitReader struct {
	pix  []byte
	read int // bits consumed so far
}

func (r *bitReader) next(n int) []byte {
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		idx := r.read/colorSamples*pixelSize + r.read%colorSamples
		bits[i] = readBit(r.pix, idx)
		r.read++
	}
	return bits
}

// latin1String widens each payload byte back to its code point, the
// inverse of messageBytes.
func latin1String(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
