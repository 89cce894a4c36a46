package rotate

import (
	"encoding/hex"
	"strings"
)

// HexPrefix is the optional prefix accepted on input and written on output.
const HexPrefix = "0x"

// DecodeHex decodes s, with or without a leading "0x".
// Malformed input decodes to an empty slice rather than an error.
func DecodeHex(s string) []byte {
	b, err := hex.DecodeString(strings.TrimPrefix(s, HexPrefix))
	if err != nil {
		return []byte{}
	}
	return b
}

// LeadingWord cuts s down to the hex digits of its first WordSize bytes,
// keeping the "0x" prefix if present. Shorter input is returned as is.
func LeadingWord(s string) string {
	n := 2 * WordSize
	if strings.HasPrefix(s, HexPrefix) {
		n += len(HexPrefix)
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
