package json

import (
	"io"
)

// Null is the JSON null value. All Null nodes are interchangeable; the type
// exists so that null occupies a kind of its own rather than being a nil
// Value.
type Null struct{}

func NewNull() *Null { return &Null{} }

func (n *Null) Kind() Kind   { return KindNull }
func (n *Null) Clone() Value { return &Null{} }

func (n *Null) Marshal(dst []byte) (b []byte) { return append(dst, lNull...) }

func (n *Null) Unmarshal(b []byte) (rem []byte, err error) {
	d := newDecoder(b)
	d.whitespace()
	if err = d.literal(lNull); err != nil {
		rem = d.rest()
		return
	}
	rem = d.rest()
	return
}

func (n *Null) print(w io.Writer, indent int) (err error) {
	_, err = w.Write(lNull)
	return
}
