// Package json implements a mutable in-memory JSON document tree together
// with a strict RFC8259 decoder and a round-tripping encoder.
//
// A document is a tree of Value nodes. Value is a closed interface: exactly
// the six kinds Null, Bool, Number, String, Array and Object implement it, so
// dispatch is a type switch and there is no way to read the wrong payload out
// of a node. Every kind carries its payload in an exported V field, in the
// manner of the envelope codecs this package descends from, and implements
// the append/remainder codec.JSON interface so values compose into larger
// hand-rolled wire formats.
//
// Containers own their children: a Value reachable from an Array or Object
// must not be shared into another tree, use Clone for that. Nothing here is
// safe for concurrent mutation.
package json

import (
	"io"

	"jot.lol/codec"
)

// Kind enumerates the six JSON value kinds.
type Kind int

const (
	KindNull Kind = iota + 1
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = []string{"invalid", "null", "boolean", "number", "string", "array", "object"}

func (k Kind) String() string {
	if k < KindNull || k > KindObject {
		return kindNames[0]
	}
	return kindNames[k]
}

// Value is one node of a JSON document tree.
//
// The unexported method closes the interface; the complete set of
// implementations is *Null, *Bool, *Number, *String, *Array and *Object.
type Value interface {
	codec.JSON
	// Kind reports which of the six JSON kinds the value is.
	Kind() Kind
	// Clone returns a deep copy sharing no memory with the receiver.
	Clone() Value

	// print writes the two space indented form of the value at the given
	// depth, used by the pretty printer.
	print(w io.Writer, indent int) error
}

// The predicates are total over nil: a nil Value satisfies none of them.

func IsNull(v Value) bool   { _, ok := v.(*Null); return ok }
func IsBool(v Value) bool   { _, ok := v.(*Bool); return ok }
func IsNumber(v Value) bool { _, ok := v.(*Number); return ok }
func IsString(v Value) bool { _, ok := v.(*String); return ok }
func IsArray(v Value) bool  { _, ok := v.(*Array); return ok }
func IsObject(v Value) bool { _, ok := v.(*Object); return ok }

// Encode marshals a whole document tree to compact JSON text.
func Encode(v Value) (b []byte) { return v.Marshal(nil) }
