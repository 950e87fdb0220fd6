package gohjson

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKeys(t *testing.T) {
	cases := []struct {
		name    string
		key     Value
		compact string
		pretty  string
	}{
		{"string", String("k"), `{"k":true}`, "{\n  k: true\n}"},
		{"string needing quotes", String("a:b"), `{"a:b":true}`, "{\n  \"a:b\": true\n}"},
		{"int", Int(3), `{"3":true}`, "{\n  \"3\": true\n}"},
		{"negative int8", Int8(-1), `{"-1":true}`, "{\n  \"-1\": true\n}"},
		{"uint64", Uint64(18446744073709551615), `{"18446744073709551615":true}`, "{\n  \"18446744073709551615\": true\n}"},
		{"unit variant", UnitVariant("Color", "Red"), `{"Red":true}`, "{\n  Red: true\n}"},
		{"newtype around string", Newtype("Name", String("n")), `{"n":true}`, "{\n  n: true\n}"},
		{"newtype around int", Newtype("ID", Uint16(7)), `{"7":true}`, "{\n  \"7\": true\n}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Map(Entry{Key: tc.key, Value: Bool(true)})
			assert.Equal(t, tc.compact, compactString(t, v))
			assert.Equal(t, tc.pretty, prettyString(t, v))
		})
	}
}

func TestMapKeys_Rejected(t *testing.T) {
	bad := []Value{
		Null(),
		Bool(true),
		Float64(1),
		Float32(1),
		Char('c'),
		Bytes([]byte("k")),
		Seq(String("k")),
		Map(),
		Struct("S"),
		NewtypeVariant("E", "V", String("k")),
		TupleVariant("E", "T"),
		StructVariant("E", "S"),
		Display(celsius(1)),
		Newtype("Flag", Bool(false)),
	}
	for _, key := range bad {
		t.Run(key.Kind().String(), func(t *testing.T) {
			v := Map(Pair("a", Int(1)), Entry{Key: key, Value: Int(2)})

			var buf bytes.Buffer
			err := Encode(&buf, v)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrKeyMustBeAString))
			assert.Equal(t, `{"a":1`, buf.String())

			buf.Reset()
			err = EncodePretty(&buf, v)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrKeyMustBeAString))
			assert.Equal(t, "{\n  a: 1", buf.String())
		})
	}
}

func TestMapKeys_RejectedFirstEntry(t *testing.T) {
	var buf bytes.Buffer
	err := EncodePretty(&buf, Map(Entry{Key: Bool(true), Value: Null()}))
	assert.True(t, errors.Is(err, ErrKeyMustBeAString))
	assert.Equal(t, "", buf.String())
}

func TestMapKeys_ErrorPath(t *testing.T) {
	v := Map(Pair("outer", Seq(Map(Entry{Key: Seq(), Value: Null()}))))
	err := Encode(&bytes.Buffer{}, v)
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeKeyMustBeAString, e.Code)
	assert.Equal(t, "/outer/0", e.Path)
	assert.EqualError(t, err, "gohjson: key must be a string at /outer/0")
}
