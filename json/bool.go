package json

import (
	"io"
)

var (
	lTrue  = []byte("true")
	lFalse = []byte("false")
	lNull  = []byte("null")
)

// Bool is a JSON boolean, either `true` or `false` and only lower case. The
// zero value is false.
type Bool struct {
	V bool
}

func NewBool(v bool) *Bool { return &Bool{v} }

func (b2 *Bool) Kind() Kind   { return KindBool }
func (b2 *Bool) Clone() Value { return &Bool{b2.V} }

func (b2 *Bool) Marshal(dst []byte) (b []byte) {
	if b2.V {
		return append(dst, lTrue...)
	}
	return append(dst, lFalse...)
}

func (b2 *Bool) Unmarshal(b []byte) (rem []byte, err error) {
	d := newDecoder(b)
	d.whitespace()
	if !d.eof() && d.b[d.pos] == 't' {
		if err = d.literal(lTrue); err != nil {
			rem = d.rest()
			return
		}
		b2.V = true
		rem = d.rest()
		return
	}
	if err = d.literal(lFalse); err != nil {
		rem = d.rest()
		return
	}
	b2.V = false
	rem = d.rest()
	return
}

func (b2 *Bool) print(w io.Writer, indent int) (err error) {
	_, err = w.Write(b2.Marshal(nil))
	return
}
