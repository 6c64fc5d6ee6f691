package json

import (
	"bytes"
	"fmt"
	"io"

	"jot.lol/chk"
	"jot.lol/floats"
	"jot.lol/text"
)

// MaxDepth is the nesting depth at which Decode gives up. Recursion depth
// tracks input nesting depth, so without a bound a pathological document
// exhausts the goroutine stack.
const MaxDepth = 1024

// Decode parses a complete JSON document into a Value tree. Leading and
// trailing whitespace is permitted; any other trailing content is an error.
//
// Decoding is all or nothing: on failure the returned Value is nil and the
// error is a *Error locating the failure in the input. The input buffer is
// not retained or modified; decoded strings are fresh allocations.
func Decode(b []byte) (v Value, err error) {
	d := newDecoder(b)
	d.whitespace()
	if d.eof() {
		err = d.eofError("empty input").locate(b)
		chk.D(err)
		return
	}
	if v, err = d.value(); err != nil {
		v = nil
		if e, ok := err.(*Error); ok {
			err = e.locate(b)
		}
		chk.D(err)
		return
	}
	d.whitespace()
	if !d.eof() {
		v = nil
		err = d.syntax("trailing content after document").locate(b)
		chk.D(err)
		return
	}
	return
}

// decoder is a cursor over a finite input buffer. There is no terminating
// sentinel; pos is bounded by len(b) everywhere.
type decoder struct {
	b     []byte
	pos   int
	depth int
}

func newDecoder(b []byte) *decoder { return &decoder{b: b} }

func (d *decoder) eof() bool    { return d.pos >= len(d.b) }
func (d *decoder) rest() []byte { return d.b[d.pos:] }

func (d *decoder) syntax(format string, a ...any) *Error {
	return &Error{Code: CodeSyntax, Offset: d.pos, Msg: fmt.Sprintf(format, a...)}
}

func (d *decoder) eofError(format string, a ...any) *Error {
	return &Error{Code: CodeEOF, Offset: d.pos, Msg: fmt.Sprintf(format, a...)}
}

// whitespace skips the four insignificant characters of the grammar.
func (d *decoder) whitespace() {
	for d.pos < len(d.b) {
		switch d.b[d.pos] {
		case ' ', '\t', '\n', '\r':
			d.pos++
		default:
			return
		}
	}
}

// literal consumes an exact token, length-bounded; a prefix of it at the end
// of input is EOF, anything else is a syntax error.
func (d *decoder) literal(l []byte) error {
	if len(d.b)-d.pos < len(l) {
		return d.eofError("truncated %q literal", l)
	}
	if !bytes.Equal(d.b[d.pos:d.pos+len(l)], l) {
		return d.syntax("expected %q", l)
	}
	d.pos += len(l)
	return nil
}

// value parses one value of any kind, dispatching on the first significant
// byte.
func (d *decoder) value() (v Value, err error) {
	if d.depth++; d.depth > MaxDepth {
		err = d.syntax("document nested deeper than %d", MaxDepth)
		return
	}
	defer func() { d.depth-- }()
	d.whitespace()
	if d.eof() {
		err = d.eofError("expected value")
		return
	}
	switch c := d.b[d.pos]; {
	case c == '"':
		var s []byte
		if s, err = d.stringBytes(); err != nil {
			return
		}
		v = &String{s}
	case c == '[':
		v, err = d.array()
	case c == '{':
		v, err = d.object()
	case c == 't':
		if err = d.literal(lTrue); err != nil {
			return
		}
		v = &Bool{true}
	case c == 'f':
		if err = d.literal(lFalse); err != nil {
			return
		}
		v = &Bool{false}
	case c == 'n':
		if err = d.literal(lNull); err != nil {
			return
		}
		v = &Null{}
	case c == '-' || (c >= '0' && c <= '9'):
		v, err = d.number()
	default:
		err = d.syntax("unexpected character %q", c)
	}
	return
}

// stringBytes parses a quoted string starting at the cursor and returns the
// decoded content.
func (d *decoder) stringBytes() (s []byte, err error) {
	content, rem, uerr := text.Unquote(d.b[d.pos:])
	if uerr != nil {
		d.pos = len(d.b) - len(rem)
		if uerr == io.EOF {
			err = d.eofError("unterminated string")
		} else {
			err = d.syntax("%s", uerr)
		}
		return
	}
	d.pos = len(d.b) - len(rem)
	s = content
	return
}

// number parses a number token starting at the cursor.
func (d *decoder) number() (v *Number, err error) {
	f := &floats.T{}
	rem, ferr := f.Unmarshal(d.b[d.pos:])
	if ferr != nil {
		if ferr == io.EOF {
			err = d.eofError("expected number")
		} else {
			err = &Error{Code: CodeInvalidNumber, Offset: d.pos, Msg: ferr.Error()}
		}
		return
	}
	d.pos = len(d.b) - len(rem)
	v = &Number{f.V}
	return
}

// array parses an array starting at the '[' under the cursor.
func (d *decoder) array() (v *Array, err error) {
	d.pos++
	a := &Array{}
	d.whitespace()
	if d.eof() {
		err = d.eofError("unterminated array")
		return
	}
	if d.b[d.pos] == ']' {
		d.pos++
		v = a
		return
	}
	for {
		var el Value
		if el, err = d.value(); err != nil {
			return
		}
		a.V = append(a.V, el)
		d.whitespace()
		if d.eof() {
			err = d.eofError("unterminated array")
			return
		}
		switch d.b[d.pos] {
		case ',':
			d.pos++
			d.whitespace()
			if !d.eof() && d.b[d.pos] == ']' {
				err = d.syntax("trailing comma before ']'")
				return
			}
		case ']':
			d.pos++
			v = a
			return
		default:
			err = d.syntax("expected ',' or ']' in array, got %q", d.b[d.pos])
			return
		}
	}
}

// object parses an object starting at the '{' under the cursor.
func (d *decoder) object() (v *Object, err error) {
	d.pos++
	o := &Object{}
	d.whitespace()
	if d.eof() {
		err = d.eofError("unterminated object")
		return
	}
	if d.b[d.pos] == '}' {
		d.pos++
		v = o
		return
	}
	for {
		d.whitespace()
		if d.eof() {
			err = d.eofError("unterminated object")
			return
		}
		if d.b[d.pos] != '"' {
			err = d.syntax("expected quoted object key, got %q", d.b[d.pos])
			return
		}
		var key []byte
		if key, err = d.stringBytes(); err != nil {
			return
		}
		d.whitespace()
		if d.eof() {
			err = d.eofError("expected ':' after object key")
			return
		}
		if d.b[d.pos] != ':' {
			err = d.syntax("expected ':' after object key, got %q", d.b[d.pos])
			return
		}
		d.pos++
		var el Value
		if el, err = d.value(); err != nil {
			return
		}
		// last write wins on duplicate keys
		o.Set(key, el)
		d.whitespace()
		if d.eof() {
			err = d.eofError("unterminated object")
			return
		}
		switch d.b[d.pos] {
		case ',':
			d.pos++
			d.whitespace()
			if !d.eof() && d.b[d.pos] == '}' {
				err = d.syntax("trailing comma before '}'")
				return
			}
		case '}':
			d.pos++
			v = o
			return
		default:
			err = d.syntax("expected ',' or '}' in object, got %q", d.b[d.pos])
			return
		}
	}
}
