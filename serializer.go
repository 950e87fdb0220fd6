package gohjson

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Serializer walks one value tree into a writer through a Formatter. It is
// not safe for concurrent use; create one per encode.
type Serializer struct {
	w    io.Writer
	f    Formatter
	path []string
}

var _ Visitor = (*Serializer)(nil)

// NewSerializer returns a Serializer writing compact output.
func NewSerializer(w io.Writer) *Serializer {
	return NewSerializerWithFormatter(w, CompactFormatter{})
}

// NewPrettySerializer returns a Serializer writing indented Hjson with the
// default two-space indent.
func NewPrettySerializer(w io.Writer) *Serializer {
	return NewSerializerWithFormatter(w, NewPrettyFormatter())
}

func NewSerializerWithFormatter(w io.Writer, f Formatter) *Serializer {
	return &Serializer{w: w, f: f}
}

// Writer returns the underlying writer.
func (s *Serializer) Writer() io.Writer { return s.w }

// Encode writes v.
func (s *Serializer) Encode(v Serializable) error {
	s.path = s.path[:0]
	return v.SerializeHjson(s)
}

func (s *Serializer) push(seg string) { s.path = append(s.path, seg) }
func (s *Serializer) pop()            { s.path = s.path[:len(s.path)-1] }

// pointer renders the current position as a JSON Pointer.
func (s *Serializer) pointer() string {
	if len(s.path) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for _, seg := range s.path {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(seg))
	}
	return b.String()
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// sinkErr maps a formatter failure to a CodeIO error at the current position.
func (s *Serializer) sinkErr(err error) error {
	if err == nil {
		return nil
	}
	return ioError(s.pointer(), err)
}

func (s *Serializer) SerializeNull() error           { return s.sinkErr(s.f.WriteNull(s.w)) }
func (s *Serializer) SerializeBool(v bool) error     { return s.sinkErr(s.f.WriteBool(s.w, v)) }
func (s *Serializer) SerializeInt8(v int8) error     { return s.sinkErr(s.f.WriteInt8(s.w, v)) }
func (s *Serializer) SerializeInt16(v int16) error   { return s.sinkErr(s.f.WriteInt16(s.w, v)) }
func (s *Serializer) SerializeInt32(v int32) error   { return s.sinkErr(s.f.WriteInt32(s.w, v)) }
func (s *Serializer) SerializeInt64(v int64) error   { return s.sinkErr(s.f.WriteInt64(s.w, v)) }
func (s *Serializer) SerializeUint8(v uint8) error   { return s.sinkErr(s.f.WriteUint8(s.w, v)) }
func (s *Serializer) SerializeUint16(v uint16) error { return s.sinkErr(s.f.WriteUint16(s.w, v)) }
func (s *Serializer) SerializeUint32(v uint32) error { return s.sinkErr(s.f.WriteUint32(s.w, v)) }
func (s *Serializer) SerializeUint64(v uint64) error { return s.sinkErr(s.f.WriteUint64(s.w, v)) }

// SerializeFloat32 writes null for NaN and infinities.
func (s *Serializer) SerializeFloat32(v float32) error {
	if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
		return s.SerializeNull()
	}
	return s.sinkErr(s.f.WriteFloat32(s.w, v))
}

// SerializeFloat64 writes null for NaN and infinities.
func (s *Serializer) SerializeFloat64(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s.SerializeNull()
	}
	return s.sinkErr(s.f.WriteFloat64(s.w, v))
}

func (s *Serializer) SerializeChar(v rune) error { return s.SerializeString(string(v)) }

func (s *Serializer) SerializeString(v string) error { return s.sinkErr(s.f.WriteString(s.w, v)) }

// SerializeBytes writes b as a sequence of unsigned bytes.
func (s *Serializer) SerializeBytes(b []byte) error {
	seq, err := s.SerializeSeq(len(b))
	if err != nil {
		return err
	}
	for _, c := range b {
		if err := seq.SerializeElement(Uint8(c)); err != nil {
			return err
		}
	}
	return seq.End()
}

// SerializeUnitVariant writes the variant name as a plain string.
func (s *Serializer) SerializeUnitVariant(_, variant string) error {
	return s.SerializeString(variant)
}

func (s *Serializer) SerializeNewtype(_ string, v Serializable) error {
	return v.SerializeHjson(s)
}

func (s *Serializer) SerializeNewtypeVariant(_, variant string, v Serializable) error {
	if err := s.openVariant(variant); err != nil {
		return err
	}
	if err := v.SerializeHjson(s); err != nil {
		return err
	}
	return s.closeVariant()
}

// openVariant writes the head of the single-key object {variant: ...} and
// leaves the formatter ready for the value.
func (s *Serializer) openVariant(variant string) error {
	if err := s.sinkErr(s.f.BeginObject(s.w)); err != nil {
		return err
	}
	if err := s.sinkErr(s.f.BeginObjectKey(s.w, true)); err != nil {
		return err
	}
	if err := s.sinkErr(s.f.WriteMemberString(s.w, variant)); err != nil {
		return err
	}
	if err := s.sinkErr(s.f.EndObjectKey(s.w)); err != nil {
		return err
	}
	if err := s.sinkErr(s.f.BeginObjectValue(s.w)); err != nil {
		return err
	}
	s.push(variant)
	return nil
}

func (s *Serializer) closeVariant() error {
	s.pop()
	if err := s.sinkErr(s.f.EndObjectValue(s.w)); err != nil {
		return err
	}
	return s.sinkErr(s.f.EndObject(s.w))
}

func (s *Serializer) SerializeSeq(n int) (SeqSerializer, error) {
	return s.openSeq(n, false)
}

func (s *Serializer) SerializeTupleVariant(_, variant string, n int) (SeqSerializer, error) {
	if err := s.openVariant(variant); err != nil {
		return nil, err
	}
	return s.openSeq(n, true)
}

func (s *Serializer) openSeq(n int, variant bool) (*Compound, error) {
	if err := s.sinkErr(s.f.BeginArray(s.w)); err != nil {
		return nil, err
	}
	c := &Compound{ser: s, variant: variant, state: stateFirst}
	if n == 0 {
		if err := s.sinkErr(s.f.EndArray(s.w)); err != nil {
			return nil, err
		}
		c.state = stateEmpty
	}
	return c, nil
}

func (s *Serializer) SerializeMap(n int) (MapSerializer, error) {
	return s.openMap(n, false)
}

// SerializeStruct writes a struct as an object of its fields; the type name
// is not written.
func (s *Serializer) SerializeStruct(_ string, n int) (StructSerializer, error) {
	return s.openMap(n, false)
}

func (s *Serializer) SerializeStructVariant(_, variant string, n int) (StructSerializer, error) {
	if err := s.openVariant(variant); err != nil {
		return nil, err
	}
	return s.openMap(n, true)
}

func (s *Serializer) openMap(n int, variant bool) (*Compound, error) {
	if err := s.sinkErr(s.f.BeginObject(s.w)); err != nil {
		return nil, err
	}
	c := &Compound{ser: s, isMap: true, variant: variant, state: stateFirst}
	if n == 0 {
		if err := s.sinkErr(s.f.EndObject(s.w)); err != nil {
			return nil, err
		}
		c.state = stateEmpty
	}
	return c, nil
}

// CollectString renders v through fmt and writes each chunk fmt produces
// as a string. A failed chunk stops the rendering and its error is returned.
func (s *Serializer) CollectString(v fmt.Stringer) error {
	a := &stringAdapter{ser: s}
	if _, err := fmt.Fprint(a, v); err != nil {
		if a.err != nil {
			return a.err
		}
		return s.sinkErr(err)
	}
	return nil
}

type stringAdapter struct {
	ser *Serializer
	err error
}

func (a *stringAdapter) Write(p []byte) (int, error) {
	if a.err != nil {
		return 0, a.err
	}
	if err := a.ser.SerializeString(string(p)); err != nil {
		a.err = err
		return 0, err
	}
	return len(p), nil
}
