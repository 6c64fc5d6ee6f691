package json

import (
	"io"
	"math"

	"jot.lol/floats"
)

// Number is a JSON number, always an IEEE-754 double. Integers round-trip
// exactly up to 2^53.
//
// JSON has no representation for NaN or the infinities; a non-finite Number
// marshals as null, so put one in a tree only if that lossy encoding is
// acceptable.
type Number struct {
	V float64
}

func NewNumber(v float64) *Number { return &Number{v} }

func (n *Number) Kind() Kind   { return KindNumber }
func (n *Number) Clone() Value { return &Number{n.V} }

func (n *Number) Marshal(dst []byte) (b []byte) {
	if math.IsNaN(n.V) || math.IsInf(n.V, 0) {
		return append(dst, lNull...)
	}
	b = floats.New(n.V).Marshal(dst)
	return
}

func (n *Number) Unmarshal(b []byte) (rem []byte, err error) {
	d := newDecoder(b)
	d.whitespace()
	var v *Number
	if v, err = d.number(); err != nil {
		rem = d.rest()
		return
	}
	n.V = v.V
	rem = d.rest()
	return
}

func (n *Number) print(w io.Writer, indent int) (err error) {
	_, err = w.Write(n.Marshal(nil))
	return
}
