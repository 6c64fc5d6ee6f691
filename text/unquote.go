package text

import (
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"jot.lol/errorf"
)

// Unquote decodes a double quoted JSON string from the front of b, which must
// begin with the opening quote. The escape sequences \" \\ \/ \b \f \n \r \t
// and \uXXXX are decoded, with UTF-16 surrogate pairs in consecutive \uXXXX
// escapes combined and re-encoded as UTF-8. The decoded content is returned
// in a fresh buffer along with the remainder of b after the closing quote.
//
// Unpaired surrogate escapes and raw control characters below 0x20 are
// errors; truncation anywhere before the closing quote is io.EOF. On error
// rem marks the position the decoder stopped at.
func Unquote(b []byte) (content, rem []byte, err error) {
	if len(b) == 0 {
		err = io.EOF
		return
	}
	if b[0] != '"' {
		rem = b
		err = errorf.E("expected '\"', got %q", b[0])
		return
	}
	content = make([]byte, 0, len(b))
	i := 1
	for {
		if i >= len(b) {
			rem = b[len(b):]
			err = io.EOF
			return
		}
		c := b[i]
		switch {
		case c == '"':
			rem = b[i+1:]
			return
		case c == '\\':
			i++
			if i >= len(b) {
				rem = b[len(b):]
				err = io.EOF
				return
			}
			switch b[i] {
			case '"', '\\', '/':
				content = append(content, b[i])
				i++
			case 'b':
				content = append(content, '\b')
				i++
			case 'f':
				content = append(content, '\f')
				i++
			case 'n':
				content = append(content, '\n')
				i++
			case 'r':
				content = append(content, '\r')
				i++
			case 't':
				content = append(content, '\t')
				i++
			case 'u':
				var r rune
				if r, i, err = decodeUnicodeEscape(b, i-1); err != nil {
					rem = b[i:]
					return
				}
				content = utf8.AppendRune(content, r)
			default:
				rem = b[i:]
				err = errorf.E("invalid escape character %q", b[i])
				return
			}
		case c < 0x20:
			rem = b[i:]
			err = errorf.E("raw control character 0x%02x in string", c)
			return
		default:
			content = append(content, c)
			i++
		}
	}
}

// decodeUnicodeEscape reads a \uXXXX escape starting at b[i] (the backslash),
// combining a surrogate pair into its supplementary plane code point, and
// returns the rune and the index of the first byte after the escape(s). On
// error the returned index marks the offending position.
func decodeUnicodeEscape(b []byte, i int) (r rune, next int, err error) {
	var hi rune
	if hi, next, err = hex4(b, i+2); err != nil {
		return
	}
	if !utf16.IsSurrogate(hi) {
		r = hi
		return
	}
	if hi >= 0xdc00 {
		next = i
		err = errorf.E("unpaired low surrogate \\u%04x", hi)
		return
	}
	// a high surrogate must be immediately followed by a \uXXXX low surrogate
	if next+1 >= len(b) {
		next = len(b)
		err = io.EOF
		return
	}
	if b[next] != '\\' || b[next+1] != 'u' {
		err = errorf.E("high surrogate \\u%04x not followed by a low surrogate escape", hi)
		return
	}
	var lo rune
	if lo, next, err = hex4(b, next+2); err != nil {
		return
	}
	if lo < 0xdc00 || lo > 0xdfff {
		next = i
		err = errorf.E("high surrogate \\u%04x followed by non-surrogate \\u%04x", hi, lo)
		return
	}
	r = utf16.DecodeRune(hi, lo)
	return
}

// hex4 reads four hex digits at b[i:] as a rune.
func hex4(b []byte, i int) (r rune, next int, err error) {
	if i+4 > len(b) {
		next = len(b)
		err = io.EOF
		return
	}
	for _, c := range b[i : i+4] {
		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			next = i
			err = errorf.E("invalid hex digit %q in \\u escape", c)
			return
		}
		r = r<<4 | rune(d)
	}
	next = i + 4
	return
}
