package json

import (
	"io"

	"jot.lol/text"
)

// String is a JSON string. The payload is a byte buffer holding the decoded
// (unescaped) UTF-8 content; the length of the slice is authoritative and
// the content may contain NUL bytes. Escaping happens only on the way to and
// from JSON text.
//
// There is a convenience NewString function that generically accepts actual
// golang strings to save the caller from converting.
type String struct {
	V []byte
}

func NewString[V string | []byte](s V) *String { return &String{[]byte(s)} }

// Set replaces the content of the string.
func (s *String) Set(v []byte) { s.V = v }

// Text returns the content as a golang string.
func (s *String) Text() string { return string(s.V) }

func (s *String) Kind() Kind   { return KindString }
func (s *String) Clone() Value { return &String{append([]byte(nil), s.V...)} }

func (s *String) Marshal(dst []byte) (b []byte) {
	b = text.AppendQuote(dst, s.V, text.Escape)
	return
}

func (s *String) Unmarshal(b []byte) (rem []byte, err error) {
	d := newDecoder(b)
	d.whitespace()
	var c []byte
	if c, err = d.stringBytes(); err != nil {
		rem = d.rest()
		return
	}
	s.V = c
	rem = d.rest()
	return
}

func (s *String) print(w io.Writer, indent int) (err error) {
	_, err = w.Write(s.Marshal(nil))
	return
}
