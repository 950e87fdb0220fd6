package gohjson

import (
	"bytes"
	"io"
)

// Encode writes v to w as compact JSON. v may be a Serializable (such as a
// Value) or any Go value Marshal understands.
func Encode(w io.Writer, v any) error {
	return EncodeWithOptions(w, v, DefaultEncodeOpt())
}

// EncodePretty writes v to w as indented Hjson.
func EncodePretty(w io.Writer, v any) error {
	opt := DefaultEncodeOpt()
	opt.Pretty = true
	return EncodeWithOptions(w, v, opt)
}

// EncodeWithOptions writes v to w as configured by opt. Output written before
// a failure stays in w.
func EncodeWithOptions(w io.Writer, v any, opt EncodeOpt) error {
	ser := NewSerializerWithFormatter(w, opt.formatter())
	return ser.Encode(serializableOf(v, opt.SortMapKeys))
}

// Marshal returns the compact encoding of v.
func Marshal(v any) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, 128))
	if err := Encode(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalPretty returns the indented Hjson encoding of v.
func MarshalPretty(v any) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, 128))
	if err := EncodePretty(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalString is Marshal returning a string. The encoder only ever emits
// valid UTF-8, so no check is made.
func MarshalString(v any) (string, error) {
	b, err := Marshal(v)
	return string(b), err
}

// MarshalPrettyString is MarshalPretty returning a string.
func MarshalPrettyString(v any) (string, error) {
	b, err := MarshalPretty(v)
	return string(b), err
}
