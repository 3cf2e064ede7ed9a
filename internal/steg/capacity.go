package steg

// Capacity is used to calculate the maximum message length in bytes
// that an image with the given dimensions can carry. Each pixel
// contributes three LSB-carrying color samples and 64 bits are
// reserved for the length header and the terminator.
//
// Zero or negative dimensions report a capacity of 0, they are not
// an error.
func Capacity(width, height int) int {
	if width < 1 || height < 1 {
		return 0
	}
	available := width*height*colorSamples - reservedBits
	if available < 0 {
		return 0
	}
	return available / 8
}
