package json

import (
	"bytes"
)

// Equal reports deep structural equality of two document trees. Arrays
// compare element by element in order; objects compare as key to value
// mappings, so two objects holding the same fields in a different order are
// equal. Numbers compare by float64 equality, which means trees containing
// NaN never compare equal to anything, themselves included.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Null:
		return true
	case *Bool:
		return av.V == b.(*Bool).V
	case *Number:
		return av.V == b.(*Number).V
	case *String:
		return bytes.Equal(av.V, b.(*String).V)
	case *Array:
		bv := b.(*Array)
		if len(av.V) != len(bv.V) {
			return false
		}
		for i := range av.V {
			if !Equal(av.V[i], bv.V[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if len(av.V) != len(bv.V) {
			return false
		}
		for i := range av.V {
			w := bv.Get(av.V[i].Key)
			if w == nil || !Equal(av.V[i].Value, w) {
				return false
			}
		}
		return true
	}
	return false
}
