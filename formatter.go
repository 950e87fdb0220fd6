package gohjson

import (
	"io"

	"github.com/reoring/gohjson/internal/textify"
)

// Formatter controls the exact bytes written for each lexical event. The
// Serializer calls it in strict depth-first order; implementations may keep
// state across calls.
type Formatter interface {
	WriteNull(w io.Writer) error
	WriteBool(w io.Writer, v bool) error
	WriteInt8(w io.Writer, v int8) error
	WriteInt16(w io.Writer, v int16) error
	WriteInt32(w io.Writer, v int32) error
	WriteInt64(w io.Writer, v int64) error
	WriteUint8(w io.Writer, v uint8) error
	WriteUint16(w io.Writer, v uint16) error
	WriteUint32(w io.Writer, v uint32) error
	WriteUint64(w io.Writer, v uint64) error
	WriteFloat32(w io.Writer, v float32) error
	WriteFloat64(w io.Writer, v float64) error

	// BeginString and EndString bracket values written as quoted strings
	// piecewise, such as integer map keys.
	BeginString(w io.Writer) error
	EndString(w io.Writer) error
	// WriteString writes a complete string value, quotes included.
	WriteString(w io.Writer, s string) error
	// WriteMemberString writes a complete object key, quotes included.
	WriteMemberString(w io.Writer, s string) error
	// WriteCharEscape writes the escape for the sequence starting at b[0]
	// and returns how many bytes of b it consumed.
	WriteCharEscape(w io.Writer, b []byte) (int, error)

	BeginArray(w io.Writer) error
	EndArray(w io.Writer) error
	BeginArrayValue(w io.Writer, first bool) error
	EndArrayValue(w io.Writer) error

	BeginObject(w io.Writer) error
	EndObject(w io.Writer) error
	BeginObjectKey(w io.Writer, first bool) error
	// EndObjectKey and BeginObjectValue are called back to back; one of
	// them writes the key separator.
	EndObjectKey(w io.Writer) error
	BeginObjectValue(w io.Writer) error
	EndObjectValue(w io.Writer) error
}

// CompactFormatter writes plain JSON with no whitespace.
type CompactFormatter struct{}

var _ Formatter = CompactFormatter{}

var (
	litNull  = []byte("null")
	litTrue  = []byte("true")
	litFalse = []byte("false")
)

// WriteNull writes null.
func (CompactFormatter) WriteNull(w io.Writer) error { return writeAll(w, litNull) }

func (CompactFormatter) WriteBool(w io.Writer, v bool) error {
	if v {
		return writeAll(w, litTrue)
	}
	return writeAll(w, litFalse)
}

func (CompactFormatter) WriteInt8(w io.Writer, v int8) error   { return writeInt(w, int64(v)) }
func (CompactFormatter) WriteInt16(w io.Writer, v int16) error { return writeInt(w, int64(v)) }
func (CompactFormatter) WriteInt32(w io.Writer, v int32) error { return writeInt(w, int64(v)) }
func (CompactFormatter) WriteInt64(w io.Writer, v int64) error { return writeInt(w, v) }

func (CompactFormatter) WriteUint8(w io.Writer, v uint8) error   { return writeUint(w, uint64(v)) }
func (CompactFormatter) WriteUint16(w io.Writer, v uint16) error { return writeUint(w, uint64(v)) }
func (CompactFormatter) WriteUint32(w io.Writer, v uint32) error { return writeUint(w, uint64(v)) }
func (CompactFormatter) WriteUint64(w io.Writer, v uint64) error { return writeUint(w, v) }

// WriteFloat32 writes the shortest text that reads back as v. The
// Serializer turns NaN and the infinities into null before they get here.
func (CompactFormatter) WriteFloat32(w io.Writer, v float32) error {
	var buf [32]byte
	return writeAll(w, textify.AppendFloat32(buf[:0], v))
}

func (CompactFormatter) WriteFloat64(w io.Writer, v float64) error {
	var buf [32]byte
	return writeAll(w, textify.AppendFloat64(buf[:0], v))
}

func (CompactFormatter) BeginString(w io.Writer) error { return writeAll(w, quote) }
func (CompactFormatter) EndString(w io.Writer) error   { return writeAll(w, quote) }

func (f CompactFormatter) WriteString(w io.Writer, s string) error { return writeEscaped(w, f, s) }

func (f CompactFormatter) WriteMemberString(w io.Writer, s string) error {
	return writeEscaped(w, f, s)
}

func (CompactFormatter) WriteCharEscape(w io.Writer, b []byte) (int, error) {
	return writeCharEscape(w, b)
}

func (CompactFormatter) BeginArray(w io.Writer) error { return writeAll(w, []byte{'['}) }
func (CompactFormatter) EndArray(w io.Writer) error   { return writeAll(w, []byte{']'}) }

// BeginArrayValue writes the comma before every element but the first.
func (CompactFormatter) BeginArrayValue(w io.Writer, first bool) error {
	if first {
		return nil
	}
	return writeAll(w, []byte{','})
}

func (CompactFormatter) EndArrayValue(io.Writer) error { return nil }

func (CompactFormatter) BeginObject(w io.Writer) error { return writeAll(w, []byte{'{'}) }
func (CompactFormatter) EndObject(w io.Writer) error   { return writeAll(w, []byte{'}'}) }

// BeginObjectKey writes the comma before every entry but the first.
func (CompactFormatter) BeginObjectKey(w io.Writer, first bool) error {
	if first {
		return nil
	}
	return writeAll(w, []byte{','})
}

func (CompactFormatter) EndObjectKey(io.Writer) error { return nil }

func (CompactFormatter) BeginObjectValue(w io.Writer) error { return writeAll(w, []byte{':'}) }

func (CompactFormatter) EndObjectValue(io.Writer) error { return nil }

func writeInt(w io.Writer, v int64) error {
	var buf [20]byte
	return writeAll(w, textify.AppendInt(buf[:0], v))
}

func writeUint(w io.Writer, v uint64) error {
	var buf [20]byte
	return writeAll(w, textify.AppendUint(buf[:0], v))
}
