// Package rot provides cyclic rotation of byte sequences.
package rot

// Left returns a copy of b rotated left by n positions.
// The first n bytes move to the end. b is not modified.
func Left(b []byte, n int) []byte {
	if n < 0 {
		panic("rot: n must not be negative")
	}

	out := make([]byte, 0, len(b))
	if len(b) == 0 {
		return out
	}

	n %= len(b)
	out = append(out, b[n:]...)
	return append(out, b[:n]...)
}

