package steg

// bytesToBits is used to expand each byte to 8 bits, most significant
// bit first. Each element of the result is 0 or 1.
func bytesToBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, b>>i&1)
		}
	}
	return bits
}

// bitsToBytes is the inverse of bytesToBits. A trailing group of fewer
// than 8 bits is treated as zero padded on the right.
func bitsToBytes(bits []byte) []byte {
	data := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		data[i/8] |= bit << (7 - i%8)
	}
	return data
}

// writeBit is used to set the least significant bit of one channel
// sample. The index must already be validated by the caller.
func writeBit(pix []byte, idx int, bit byte) {
	pix[idx] = pix[idx]&0xFE | bit
}

// readBit is used to get the least significant bit of one channel sample.
func readBit(pix []byte, idx int) byte {
	return pix[idx] & 1
}
