package json

import (
	"io"
	"os"
)

// Fprint writes the two space indented form of a document tree to w. The
// layout matches Marshal except that array elements and object fields are
// placed one per line, indented two spaces per nesting level, with a space
// after each key's colon. Numbers and strings are rendered exactly as
// Marshal renders them, so indented output re-parses to an equal tree.
func Fprint(w io.Writer, v Value) (err error) {
	if v == nil {
		_, err = w.Write(lNull)
		return
	}
	return v.print(w, 0)
}

// Fprintln is Fprint with a trailing newline.
func Fprintln(w io.Writer, v Value) (err error) {
	if err = Fprint(w, v); err != nil {
		return
	}
	_, err = w.Write([]byte{'\n'})
	return
}

// Print writes the indented form of v to stdout.
func Print(v Value) error { return Fprint(os.Stdout, v) }

// Println writes the indented form of v and a newline to stdout.
func Println(v Value) error { return Fprintln(os.Stdout, v) }

var indentSpaces = []byte("                                ")

func printIndent(w io.Writer, n int) (err error) {
	for n > 0 {
		chunk := n
		if chunk > len(indentSpaces) {
			chunk = len(indentSpaces)
		}
		if _, err = w.Write(indentSpaces[:chunk]); err != nil {
			return
		}
		n -= chunk
	}
	return
}
