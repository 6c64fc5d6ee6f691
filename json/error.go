package json

import (
	"fmt"
)

// Code classifies a decode failure. The set is closed; every error returned
// by Decode carries exactly one of these.
type Code int

const (
	// CodeSyntax is a grammar violation at the cursor position.
	CodeSyntax Code = iota + 1
	// CodeInvalidNumber is a number token that breaks the number grammar or
	// does not convert to a float64 cleanly.
	CodeInvalidNumber
	// CodeEOF is input exhausted in the middle of a construct.
	CodeEOF
)

var codeNames = []string{"invalid", "syntax error", "invalid number", "unexpected end of input"}

func (c Code) String() string {
	if c < CodeSyntax || c > CodeEOF {
		return codeNames[0]
	}
	return codeNames[c]
}

// Error is the structured record attached to every decode failure. Offset is
// the byte position of the cursor when the failure was raised; Line and Col
// are derived from it by Decode, 1-based.
type Error struct {
	Code   Code
	Offset int
	Line   int
	Col    int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d column %d (offset %d): %s",
		e.Code, e.Line, e.Col, e.Offset, e.Msg)
}

// locate fills in Line and Col from Offset.
func (e *Error) locate(b []byte) *Error {
	if e.Offset > len(b) {
		e.Offset = len(b)
	}
	e.Line, e.Col = 1, 1
	for _, c := range b[:e.Offset] {
		if c == '\n' {
			e.Line++
			e.Col = 1
		} else {
			e.Col++
		}
	}
	return e
}
