package text

import (
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Escape appends the RFC8259 escaped form of src to dst and returns the
// extended slice.
//
// The following bytes are escaped:
//
//   - A double quote, 0x22, as \"
//   - A backslash, 0x5C, as \\
//   - A solidus, 0x2F, as \/
//   - A backspace, 0x08, as \b
//   - A form feed, 0x0C, as \f
//   - A line break, 0x0A, as \n
//   - A carriage return, 0x0D, as \r
//   - A tab character, 0x09, as \t
//   - Any other control character below 0x20 as \u00XX
//
// Other ASCII bytes pass through verbatim. Bytes at 0x80 and above are
// checked to be part of a well formed UTF-8 sequence and passed through
// verbatim; bytes that are not are replaced with the escape of the
// replacement character, �.
func Escape(dst, src []byte) []byte {
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '"':
			dst = append(dst, '\\', '"')
			i++
		case c == '\\':
			dst = append(dst, '\\', '\\')
			i++
		case c == '/':
			dst = append(dst, '\\', '/')
			i++
		case c == '\b':
			dst = append(dst, '\\', 'b')
			i++
		case c == '\f':
			dst = append(dst, '\\', 'f')
			i++
		case c == '\n':
			dst = append(dst, '\\', 'n')
			i++
		case c == '\r':
			dst = append(dst, '\\', 'r')
			i++
		case c == '\t':
			dst = append(dst, '\\', 't')
			i++
		case c < 0x20:
			dst = append(dst, '\\', 'u', '0', '0',
				hexDigits[c>>4], hexDigits[c&0xf])
			i++
		case c < utf8.RuneSelf:
			dst = append(dst, c)
			i++
		default:
			r, size := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && size == 1 {
				dst = append(dst, '\\', 'u', 'f', 'f', 'f', 'd')
				i++
			} else {
				dst = append(dst, src[i:i+size]...)
				i += size
			}
		}
	}
	return dst
}
