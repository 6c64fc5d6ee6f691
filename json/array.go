package json

import (
	"io"
)

// An Array is an ordered list of values. Order is externally meaningful, so
// every mutation preserves the relative order of the remaining elements.
type Array struct {
	V []Value
}

func NewArray(vs ...Value) *Array { return &Array{vs} }

func (a *Array) Kind() Kind { return KindArray }

func (a *Array) Clone() Value {
	c := &Array{}
	if a.V != nil {
		c.V = make([]Value, len(a.V))
		for i, v := range a.V {
			c.V[i] = v.Clone()
		}
	}
	return c
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.V) }

// Get returns the element at index i, or nil if i is out of bounds.
func (a *Array) Get(i int) Value {
	if i < 0 || i >= len(a.V) {
		return nil
	}
	return a.V[i]
}

// Set replaces the element at index i, taking ownership of v. An index equal
// to the length appends. A nil v stores null. Reports whether the index was
// in range.
func (a *Array) Set(i int, v Value) bool {
	if i < 0 || i > len(a.V) {
		return false
	}
	if v == nil {
		v = &Null{}
	}
	if i == len(a.V) {
		a.V = append(a.V, v)
		return true
	}
	a.V[i] = v
	return true
}

// Push appends v to the end of the array, taking ownership of it.
func (a *Array) Push(v Value) {
	if v == nil {
		v = &Null{}
	}
	a.V = append(a.V, v)
}

// Remove deletes the element at index i, shifting all subsequent elements
// left by one. Reports whether the index was in range.
func (a *Array) Remove(i int) bool {
	if i < 0 || i >= len(a.V) {
		return false
	}
	copy(a.V[i:], a.V[i+1:])
	a.V[len(a.V)-1] = nil
	a.V = a.V[:len(a.V)-1]
	return true
}

// Clear empties the array, keeping the backing store.
func (a *Array) Clear() {
	for i := range a.V {
		a.V[i] = nil
	}
	a.V = a.V[:0]
}

func (a *Array) Marshal(dst []byte) (b []byte) {
	b = dst
	b = append(b, '[')
	last := len(a.V) - 1
	for i, v := range a.V {
		b = v.Marshal(b)
		if i != last {
			b = append(b, ',')
		}
	}
	b = append(b, ']')
	return
}

func (a *Array) Unmarshal(b []byte) (rem []byte, err error) {
	d := newDecoder(b)
	d.whitespace()
	if d.eof() {
		rem = d.rest()
		err = d.eofError("expected array")
		return
	}
	if d.b[d.pos] != '[' {
		rem = d.rest()
		err = d.syntax("expected '[', got %q", d.b[d.pos])
		return
	}
	var v *Array
	if v, err = d.array(); err != nil {
		rem = d.rest()
		return
	}
	*a = *v
	rem = d.rest()
	return
}

func (a *Array) print(w io.Writer, indent int) (err error) {
	if len(a.V) == 0 {
		_, err = w.Write([]byte("[]"))
		return
	}
	if _, err = w.Write([]byte("[\n")); err != nil {
		return
	}
	last := len(a.V) - 1
	for i, v := range a.V {
		if err = printIndent(w, indent+2); err != nil {
			return
		}
		if err = v.print(w, indent+2); err != nil {
			return
		}
		if i != last {
			if _, err = w.Write([]byte(",\n")); err != nil {
				return
			}
		} else {
			if _, err = w.Write([]byte("\n")); err != nil {
				return
			}
		}
	}
	if err = printIndent(w, indent); err != nil {
		return
	}
	_, err = w.Write([]byte("]"))
	return
}
