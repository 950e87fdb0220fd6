package gohjson

import (
	"fmt"
	"io"
	"strconv"
)

// keySerializer accepts the values that can stand as an object key and
// records how to write them. Strings and unit variant names are written as
// member strings; integers are always double quoted. Nothing is written
// until the caller knows the key is valid.
type keySerializer struct {
	text string
	emit func(f Formatter, w io.Writer) error
}

var _ Visitor = (*keySerializer)(nil)

func (k *keySerializer) write(f Formatter, w io.Writer) error { return k.emit(f, w) }

func (k *keySerializer) member(s string) error {
	k.text = s
	k.emit = func(f Formatter, w io.Writer) error { return f.WriteMemberString(w, s) }
	return nil
}

// quoted records an integer key written between BeginString and EndString.
func (k *keySerializer) quoted(text string, digits func(f Formatter, w io.Writer) error) error {
	k.text = text
	k.emit = func(f Formatter, w io.Writer) error {
		if err := f.BeginString(w); err != nil {
			return err
		}
		if err := digits(f, w); err != nil {
			return err
		}
		return f.EndString(w)
	}
	return nil
}

func (k *keySerializer) SerializeString(v string) error { return k.member(v) }

func (k *keySerializer) SerializeUnitVariant(_, variant string) error { return k.member(variant) }

func (k *keySerializer) SerializeNewtype(_ string, v Serializable) error {
	return v.SerializeHjson(k)
}

func (k *keySerializer) SerializeInt8(v int8) error {
	return k.quoted(strconv.FormatInt(int64(v), 10), func(f Formatter, w io.Writer) error { return f.WriteInt8(w, v) })
}

func (k *keySerializer) SerializeInt16(v int16) error {
	return k.quoted(strconv.FormatInt(int64(v), 10), func(f Formatter, w io.Writer) error { return f.WriteInt16(w, v) })
}

func (k *keySerializer) SerializeInt32(v int32) error {
	return k.quoted(strconv.FormatInt(int64(v), 10), func(f Formatter, w io.Writer) error { return f.WriteInt32(w, v) })
}

func (k *keySerializer) SerializeInt64(v int64) error {
	return k.quoted(strconv.FormatInt(v, 10), func(f Formatter, w io.Writer) error { return f.WriteInt64(w, v) })
}

func (k *keySerializer) SerializeUint8(v uint8) error {
	return k.quoted(strconv.FormatUint(uint64(v), 10), func(f Formatter, w io.Writer) error { return f.WriteUint8(w, v) })
}

func (k *keySerializer) SerializeUint16(v uint16) error {
	return k.quoted(strconv.FormatUint(uint64(v), 10), func(f Formatter, w io.Writer) error { return f.WriteUint16(w, v) })
}

func (k *keySerializer) SerializeUint32(v uint32) error {
	return k.quoted(strconv.FormatUint(uint64(v), 10), func(f Formatter, w io.Writer) error { return f.WriteUint32(w, v) })
}

func (k *keySerializer) SerializeUint64(v uint64) error {
	return k.quoted(strconv.FormatUint(v, 10), func(f Formatter, w io.Writer) error { return f.WriteUint64(w, v) })
}

func (k *keySerializer) SerializeNull() error           { return keyMustBeAString("") }
func (k *keySerializer) SerializeBool(bool) error       { return keyMustBeAString("") }
func (k *keySerializer) SerializeFloat32(float32) error { return keyMustBeAString("") }
func (k *keySerializer) SerializeFloat64(float64) error { return keyMustBeAString("") }
func (k *keySerializer) SerializeChar(rune) error       { return keyMustBeAString("") }
func (k *keySerializer) SerializeBytes([]byte) error    { return keyMustBeAString("") }

func (k *keySerializer) SerializeNewtypeVariant(_, _ string, _ Serializable) error {
	return keyMustBeAString("")
}

func (k *keySerializer) SerializeSeq(int) (SeqSerializer, error) {
	return nil, keyMustBeAString("")
}

func (k *keySerializer) SerializeTupleVariant(_, _ string, _ int) (SeqSerializer, error) {
	return nil, keyMustBeAString("")
}

func (k *keySerializer) SerializeMap(int) (MapSerializer, error) {
	return nil, keyMustBeAString("")
}

func (k *keySerializer) SerializeStruct(string, int) (StructSerializer, error) {
	return nil, keyMustBeAString("")
}

func (k *keySerializer) SerializeStructVariant(_, _ string, _ int) (StructSerializer, error) {
	return nil, keyMustBeAString("")
}

func (k *keySerializer) CollectString(fmt.Stringer) error { return keyMustBeAString("") }
