package gohjson

import "fmt"

// Serializable is implemented by values that know how to push themselves
// into a Visitor. Value implements it; so can any caller-defined type.
type Serializable interface {
	SerializeHjson(v Visitor) error
}

// Visitor receives one call per scalar and opens one serializer per
// container. Container lengths are hints: n < 0 means unknown, n == 0 lets
// the visitor write the empty form immediately.
type Visitor interface {
	SerializeNull() error
	SerializeBool(v bool) error
	SerializeInt8(v int8) error
	SerializeInt16(v int16) error
	SerializeInt32(v int32) error
	SerializeInt64(v int64) error
	SerializeUint8(v uint8) error
	SerializeUint16(v uint16) error
	SerializeUint32(v uint32) error
	SerializeUint64(v uint64) error
	SerializeFloat32(v float32) error
	SerializeFloat64(v float64) error
	SerializeChar(v rune) error
	SerializeString(v string) error
	SerializeBytes(v []byte) error

	// SerializeUnitVariant writes a data-less enum member.
	SerializeUnitVariant(name, variant string) error
	// SerializeNewtype writes a named wrapper transparently.
	SerializeNewtype(name string, v Serializable) error
	// SerializeNewtypeVariant writes {variant: v}.
	SerializeNewtypeVariant(name, variant string, v Serializable) error

	SerializeSeq(n int) (SeqSerializer, error)
	// SerializeTupleVariant opens {variant: [...]}.
	SerializeTupleVariant(name, variant string, n int) (SeqSerializer, error)
	SerializeMap(n int) (MapSerializer, error)
	SerializeStruct(name string, n int) (StructSerializer, error)
	// SerializeStructVariant opens {variant: {...}}.
	SerializeStructVariant(name, variant string, n int) (StructSerializer, error)

	// CollectString writes the text rendered by v as a string.
	CollectString(v fmt.Stringer) error
}

// SeqSerializer is returned by SerializeSeq and SerializeTupleVariant.
type SeqSerializer interface {
	SerializeElement(v Serializable) error
	End() error
}

// MapSerializer is returned by SerializeMap. Keys must serialize as strings
// or integers.
type MapSerializer interface {
	SerializeKey(k Serializable) error
	SerializeValue(v Serializable) error
	SerializeEntry(k, v Serializable) error
	End() error
}

// StructSerializer is returned by SerializeStruct and SerializeStructVariant.
type StructSerializer interface {
	SerializeField(key string, v Serializable) error
	End() error
}
