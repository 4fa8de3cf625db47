// Package ascii decodes text in the EMV alphanumeric formats (an, ans)
// without a code page.
package ascii

import "strings"

// Decode interprets b as ASCII text. Bytes outside of the ASCII range are
// replaced by '?'.
func Decode(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c > 0x7f {
			c = '?'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
