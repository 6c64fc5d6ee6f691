package json

import (
	"bytes"
	"io"

	"jot.lol/text"
)

// A KeyValue is one field of an Object.
type KeyValue struct {
	Key   []byte
	Value Value
}

// An Object is an insertion-ordered list of KeyValue with unique keys.
// Iteration order is the order keys were first set; Remove preserves the
// order of the remaining entries.
//
// Lookup is a linear scan. Document-shaped objects are small enough that a
// hash index does not pay for itself; anything managing thousands of keys
// wants a different data structure anyway.
//
// The V field is maintained by Set and Remove; mutating it directly can break
// the key uniqueness invariant.
type Object struct {
	V []KeyValue
}

func NewObject() *Object { return &Object{} }

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) Clone() Value {
	c := &Object{}
	if o.V != nil {
		c.V = make([]KeyValue, len(o.V))
		for i, kv := range o.V {
			c.V[i] = KeyValue{
				Key:   append([]byte(nil), kv.Key...),
				Value: kv.Value.Clone(),
			}
		}
	}
	return c
}

// Len returns the number of fields.
func (o *Object) Len() int { return len(o.V) }

// Get returns the value stored under key, or nil if the key is absent.
func (o *Object) Get(key []byte) Value {
	for i := range o.V {
		if bytes.Equal(o.V[i].Key, key) {
			return o.V[i].Value
		}
	}
	return nil
}

// Has reports whether key is present.
func (o *Object) Has(key []byte) bool { return o.Get(key) != nil }

// Set stores v under key, taking ownership of both. A key already present
// keeps its position and its original key buffer, and the previous value is
// dropped; a new key appends. Keys are stored verbatim.
func (o *Object) Set(key []byte, v Value) {
	if v == nil {
		v = &Null{}
	}
	for i := range o.V {
		if bytes.Equal(o.V[i].Key, key) {
			o.V[i].Value = v
			return
		}
	}
	o.V = append(o.V, KeyValue{Key: key, Value: v})
}

// Remove deletes the field under key, splicing it out so the order of the
// remaining entries is unchanged. Reports whether the key was present.
func (o *Object) Remove(key []byte) bool {
	for i := range o.V {
		if bytes.Equal(o.V[i].Key, key) {
			copy(o.V[i:], o.V[i+1:])
			o.V[len(o.V)-1] = KeyValue{}
			o.V = o.V[:len(o.V)-1]
			return true
		}
	}
	return false
}

// Clear empties the object, keeping the backing store.
func (o *Object) Clear() {
	for i := range o.V {
		o.V[i] = KeyValue{}
	}
	o.V = o.V[:0]
}

// Marshal a KeyValue, ie a field with its quoted key, colon and value.
func (k *KeyValue) Marshal(dst []byte) (b []byte) {
	b = text.AppendQuote(dst, k.Key, text.Escape)
	b = append(b, ':')
	b = k.Value.Marshal(b)
	return
}

func (o *Object) Marshal(dst []byte) (b []byte) {
	b = dst
	b = append(b, '{')
	last := len(o.V) - 1
	for i := range o.V {
		b = o.V[i].Marshal(b)
		if i != last {
			b = append(b, ',')
		}
	}
	b = append(b, '}')
	return
}

func (o *Object) Unmarshal(b []byte) (rem []byte, err error) {
	d := newDecoder(b)
	d.whitespace()
	if d.eof() {
		rem = d.rest()
		err = d.eofError("expected object")
		return
	}
	if d.b[d.pos] != '{' {
		rem = d.rest()
		err = d.syntax("expected '{', got %q", d.b[d.pos])
		return
	}
	var v *Object
	if v, err = d.object(); err != nil {
		rem = d.rest()
		return
	}
	*o = *v
	rem = d.rest()
	return
}

func (o *Object) print(w io.Writer, indent int) (err error) {
	if len(o.V) == 0 {
		_, err = w.Write([]byte("{}"))
		return
	}
	if _, err = w.Write([]byte("{\n")); err != nil {
		return
	}
	last := len(o.V) - 1
	for i := range o.V {
		if err = printIndent(w, indent+2); err != nil {
			return
		}
		if _, err = w.Write(text.AppendQuote(nil, o.V[i].Key, text.Escape)); err != nil {
			return
		}
		if _, err = w.Write([]byte(": ")); err != nil {
			return
		}
		if err = o.V[i].Value.print(w, indent+2); err != nil {
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
	_, err = w.Write([]byte("}"))
	return
}
