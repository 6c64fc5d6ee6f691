// Package floats is a codec for IEEE-754 double precision numbers in the
// strict JSON number grammar, the floating point counterpart to an integer
// decimal codec. Encoding uses the shortest decimal form that converts back
// to exactly the same bits, so a marshal/unmarshal round trip is identity for
// every finite double.
package floats

import (
	"io"
	"strconv"

	"jot.lol/errorf"
)

type T struct {
	V float64
}

func New(f float64) *T { return &T{f} }

// Marshal appends the shortest round-tripping decimal form of the value to
// dst. The output is always a valid JSON number for finite values; the
// caller is responsible for not marshalling NaN or infinities.
func (f *T) Marshal(dst []byte) (b []byte) {
	b = strconv.AppendFloat(dst, f.V, 'g', -1, 64)
	return
}

// Unmarshal reads a number from the front of b per the JSON grammar: an
// optional minus, an integer part that is a lone zero or starts with a
// nonzero digit, an optional fraction with at least one digit, and an
// optional exponent with at least one digit. The accepted token is then
// converted, and the conversion must consume exactly the token. Values too
// large for a float64 saturate to infinity rather than erroring, the same as
// C strtod.
func (f *T) Unmarshal(b []byte) (rem []byte, err error) {
	if len(b) == 0 {
		err = io.EOF
		return
	}
	var i int
	if b[i] == '-' {
		i++
	}
	switch {
	case i < len(b) && b[i] == '0':
		i++
	case i < len(b) && b[i] >= '1' && b[i] <= '9':
		for i < len(b) && digit(b[i]) {
			i++
		}
	default:
		err = errorf.E("number has no integer part")
		return
	}
	if i < len(b) && digit(b[i]) {
		err = errorf.E("number has a leading zero")
		return
	}
	if i < len(b) && b[i] == '.' {
		i++
		if i >= len(b) || !digit(b[i]) {
			err = errorf.E("number has no digit after decimal point")
			return
		}
		for i < len(b) && digit(b[i]) {
			i++
		}
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			i++
		}
		if i >= len(b) || !digit(b[i]) {
			err = errorf.E("number has no digit in exponent")
			return
		}
		for i < len(b) && digit(b[i]) {
			i++
		}
	}
	var v float64
	if v, err = strconv.ParseFloat(string(b[:i]), 64); err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			err = nil
		} else {
			err = errorf.E("number %q does not convert: %v", b[:i], err)
			return
		}
	}
	f.V = v
	rem = b[i:]
	return
}

func digit(c byte) bool { return c >= '0' && c <= '9' }
