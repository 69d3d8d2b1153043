package common

// WipeByteArray overwrites b with zeros. Used for password buffers read
// from the terminal once they have been copied into a string.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
