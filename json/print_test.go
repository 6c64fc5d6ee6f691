package json

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	v := decode(t, `{"a":1,"b":[true,null],"c":{},"d":[]}`)
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, v))
	want := strings.Join([]string{
		`{`,
		`  "a": 1,`,
		`  "b": [`,
		`    true,`,
		`    null`,
		`  ],`,
		`  "c": {},`,
		`  "d": []`,
		`}`,
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestFprintScalars(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, nil))
	require.Equal(t, "null", buf.String())
	buf.Reset()
	require.NoError(t, Fprint(&buf, NewNumber(1.5)))
	require.Equal(t, "1.5", buf.String())
	buf.Reset()
	require.NoError(t, Fprintln(&buf, NewString("hi")))
	require.Equal(t, "\"hi\"\n", buf.String())
}

// indented output must re-parse to an equal tree, including when the nesting
// runs past one indent chunk.
func TestFprintRoundTrip(t *testing.T) {
	doc := strings.Repeat(`{"k":[`, 30) + "1" + strings.Repeat(`]}`, 30)
	v := decode(t, doc)
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, v))
	require.True(t, Equal(v, decode(t, buf.String())))
}
