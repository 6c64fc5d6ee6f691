package floats

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestRandomRoundTrip(t *testing.T) {
	// every finite double must survive a marshal/unmarshal cycle bit for bit
	for i := 0; i < 10000; i++ {
		bits := binary.LittleEndian.Uint64(frand.Bytes(8))
		v := math.Float64frombits(bits)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		b := New(v).Marshal(nil)
		f := &T{}
		rem, err := f.Unmarshal(b)
		require.NoError(t, err, "input %q", b)
		require.Empty(t, rem)
		require.Equal(t, math.Float64bits(v), math.Float64bits(f.V), "input %q", b)
	}
}

func TestUnmarshal(t *testing.T) {
	for _, tc := range []struct {
		in  string
		v   float64
		rem string
	}{
		{"0", 0, ""},
		{"-0", math.Copysign(0, -1), ""},
		{"3.25,4", 3.25, ",4"},
		{"1e3]", 1000, "]"},
		{"-12.5E-1}", -1.25, "}"},
		{"9007199254740993", 9007199254740992, ""},
		{"1e999", math.Inf(1), ""},
		{"-1e999", math.Inf(-1), ""},
		{"0.5 ", 0.5, " "},
	} {
		f := &T{}
		rem, err := f.Unmarshal([]byte(tc.in))
		require.NoError(t, err, tc.in)
		require.Equal(t, math.Float64bits(tc.v), math.Float64bits(f.V), tc.in)
		require.Equal(t, tc.rem, string(rem), tc.in)
	}
}

func TestUnmarshalRejects(t *testing.T) {
	for _, in := range []string{
		"01",  // leading zero
		"-01", // leading zero after sign
		"-",   // sign alone
		"+1",  // no leading plus in JSON
		"1.",  // no digit after point
		".5",  // no integer part
		"1e",  // no digit in exponent
		"1e+", // no digit after exponent sign
		"a",   // not a number at all
	} {
		f := &T{}
		_, err := f.Unmarshal([]byte(in))
		require.Error(t, err, in)
	}
}
