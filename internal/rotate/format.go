package rotate

import (
	"encoding/hex"
	"strings"
)

// Format describes how a rotated word is printed.
type Format struct {
	Prefix   string `yaml:"prefix"`
	PadZeros int    `yaml:"padZeros"`
}

// DefaultFormat pads a 4-byte word out to a 32-byte value.
var DefaultFormat = Format{
	Prefix:   HexPrefix,
	PadZeros: 64 - 2*WordSize,
}

// Encode renders w as lowercase hex between the prefix and the zero padding.
func (f Format) Encode(w []byte) string {
	s := &strings.Builder{}
	s.Grow(len(f.Prefix) + hex.EncodedLen(len(w)) + max(f.PadZeros, 0))

	s.WriteString(f.Prefix)
	s.WriteString(hex.EncodeToString(w))
	for range f.PadZeros {
		s.WriteByte('0')
	}
	return s.String()
}
