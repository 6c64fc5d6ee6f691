package json

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The Unmarshal side of the codec consumes one value from the front of the
// buffer and hands back the rest, so values can be pulled out of a larger
// stream of bytes without slicing it up first.

func TestNullUnmarshalRemainder(t *testing.T) {
	n := &Null{}
	rem, err := n.Unmarshal([]byte(" null,1]"))
	require.NoError(t, err)
	require.Equal(t, ",1]", string(rem))
	_, err = n.Unmarshal([]byte("nul"))
	require.Error(t, err)
}

func TestBoolUnmarshalRemainder(t *testing.T) {
	b := &Bool{}
	rem, err := b.Unmarshal([]byte("true,false"))
	require.NoError(t, err)
	require.True(t, b.V)
	require.Equal(t, ",false", string(rem))
	rem, err = b.Unmarshal(rem[1:])
	require.NoError(t, err)
	require.False(t, b.V)
	require.Empty(t, rem)
	_, err = b.Unmarshal([]byte("TRUE"))
	require.Error(t, err)
}

func TestNumberUnmarshalRemainder(t *testing.T) {
	n := &Number{}
	rem, err := n.Unmarshal([]byte("-0.5e2}tail"))
	require.NoError(t, err)
	require.Equal(t, -50.0, n.V)
	require.Equal(t, "}tail", string(rem))
}

func TestStringUnmarshalRemainder(t *testing.T) {
	s := &String{}
	rem, err := s.Unmarshal([]byte(`"a b" tail`))
	require.NoError(t, err)
	require.Equal(t, "a b", s.Text())
	require.Equal(t, " tail", string(rem))
}

func TestArrayUnmarshalRemainder(t *testing.T) {
	a := &Array{}
	rem, err := a.Unmarshal([]byte(`[1, [2]] tail`))
	require.NoError(t, err)
	require.Equal(t, 2, a.Len())
	require.Equal(t, " tail", string(rem))
	_, err = a.Unmarshal([]byte(`{"a":1}`))
	require.Error(t, err)
}

func TestObjectUnmarshalRemainder(t *testing.T) {
	o := &Object{}
	rem, err := o.Unmarshal([]byte(`{"a":1,"b":{}}, tail`))
	require.NoError(t, err)
	require.Equal(t, 2, o.Len())
	require.Equal(t, ", tail", string(rem))
	_, err = o.Unmarshal([]byte(`[1]`))
	require.Error(t, err)
}

// marshalling appends to whatever the caller hands in, so a document can be
// assembled into one buffer without intermediate copies.
func TestMarshalAppends(t *testing.T) {
	dst := []byte("prefix:")
	dst = NewArray(NewNumber(1), NewString("x")).Marshal(dst)
	require.Equal(t, `prefix:[1,"x"]`, string(dst))
}
