package text

// AppendBytesClosure is an appender that transforms src onto dst.
type AppendBytesClosure func(dst, src []byte) []byte

// Noop appends src to dst unchanged.
func Noop(dst, src []byte) []byte { return append(dst, src...) }

// AppendQuote wraps the transformation of src by ac in double quotes.
func AppendQuote(dst, src []byte, ac AppendBytesClosure) []byte {
	dst = append(dst, '"')
	dst = ac(dst, src)
	dst = append(dst, '"')
	return dst
}

// Quote wraps src in double quotes without any transformation.
func Quote(dst, src []byte) []byte { return AppendQuote(dst, src, Noop) }
