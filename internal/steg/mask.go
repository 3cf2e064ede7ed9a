package steg

// passwordKey is used to derive the 32 bit mask key from a password
// with the rolling hash h = h*31 + code point, truncated to int32,
// then the absolute value.
func passwordKey(password string) uint32 {
	var h int32
	for _, r := range password {
		h = h*31 + int32(r)
	}
	if h < 0 {
		h = -h
	}
	return uint32(h)
}

// maskBytes is used to XOR data in place with the position dependent
// key stream (key + index) mod 256. Applying it twice with the same
// key restores the input.
func maskBytes(data []byte, key uint32) {
	for i := 0; i < len(data); i++ {
		data[i] ^= byte(key + uint32(i))
	}
}
