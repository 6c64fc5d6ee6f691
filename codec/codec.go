// Package codec defines the byte slice codec interface that every JSON value
// kind implements.
package codec

// JSON is a somewhat simplified version of the json.Marshaler/json.Unmarshaler
// that has no error for the Marshal side of the operation.
type JSON interface {
	// Marshal converts the data of the type into JSON, appending it to the
	// provided slice and returning the extended slice.
	Marshal(dst []byte) (b []byte)
	// Unmarshal decodes one JSON value of the type's kind from the front of b,
	// and returns whatever remains after the value has been decoded out.
	Unmarshal(b []byte) (rem []byte, err error)
}
