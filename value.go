package gohjson

import (
	"bytes"
	"fmt"
)

// Kind enumerates the shapes a Value can take.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat32
	KindFloat64
	KindChar
	KindString
	KindBytes
	KindSeq
	KindMap
	KindStruct
	KindNewtype
	KindUnitVariant
	KindNewtypeVariant
	KindTupleVariant
	KindStructVariant
	KindDisplay
)

var kindNames = [...]string{
	KindNull:           "null",
	KindBool:           "bool",
	KindInt:            "int",
	KindUint:           "uint",
	KindFloat32:        "float32",
	KindFloat64:        "float64",
	KindChar:           "char",
	KindString:         "string",
	KindBytes:          "bytes",
	KindSeq:            "seq",
	KindMap:            "map",
	KindStruct:         "struct",
	KindNewtype:        "newtype",
	KindUnitVariant:    "unit_variant",
	KindNewtypeVariant: "newtype_variant",
	KindTupleVariant:   "tuple_variant",
	KindStructVariant:  "struct_variant",
	KindDisplay:        "display",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a closed tagged union over everything the encoder can write.
// The zero Value is null. Values are immutable once built; containers hold
// their children by value, so a Value tree can never be cyclic.
type Value struct {
	kind    Kind
	width   uint8 // 8, 16, 32 or 64 for KindInt/KindUint
	unsized bool  // containers: report an unknown length to the visitor
	b       bool
	i       int64
	u       uint64
	f       float64
	s       string // string payload, or the type name for structs, newtypes and variants
	variant string
	raw     []byte
	items   []Value
	entries []Entry
	fields  []Field
	display fmt.Stringer
}

// Entry is one key/value pair of a map. Keys are Values so integer and
// variant keys can be expressed; anything else fails at encode time.
type Entry struct {
	Key   Value
	Value Value
}

// Field is one named member of a struct or struct variant.
type Field struct {
	Name  string
	Value Value
}

// Pair is a shorthand for a map entry with a string key.
func Pair(key string, v Value) Entry { return Entry{Key: String(key), Value: v} }

func Null() Value         { return Value{} }
func Bool(v bool) Value   { return Value{kind: KindBool, b: v} }
func Int(v int64) Value   { return Value{kind: KindInt, width: 64, i: v} }
func Int8(v int8) Value   { return Value{kind: KindInt, width: 8, i: int64(v)} }
func Int16(v int16) Value { return Value{kind: KindInt, width: 16, i: int64(v)} }
func Int32(v int32) Value { return Value{kind: KindInt, width: 32, i: int64(v)} }
func Int64(v int64) Value { return Int(v) }

func Uint(v uint64) Value   { return Value{kind: KindUint, width: 64, u: v} }
func Uint8(v uint8) Value   { return Value{kind: KindUint, width: 8, u: uint64(v)} }
func Uint16(v uint16) Value { return Value{kind: KindUint, width: 16, u: uint64(v)} }
func Uint32(v uint32) Value { return Value{kind: KindUint, width: 32, u: uint64(v)} }
func Uint64(v uint64) Value { return Uint(v) }

func Float32(v float32) Value { return Value{kind: KindFloat32, f: float64(v)} }
func Float64(v float64) Value { return Value{kind: KindFloat64, f: v} }
func Char(v rune) Value       { return Value{kind: KindChar, i: int64(v)} }
func String(v string) Value   { return Value{kind: KindString, s: v} }

// Bytes is written as a sequence of unsigned bytes.
func Bytes(v []byte) Value { return Value{kind: KindBytes, raw: v} }

func Seq(items ...Value) Value   { return Value{kind: KindSeq, items: items} }
func Map(entries ...Entry) Value { return Value{kind: KindMap, entries: entries} }
func Struct(name string, fields ...Field) Value {
	return Value{kind: KindStruct, s: name, fields: fields}
}

// Newtype wraps v under a type name; it encodes exactly like v.
func Newtype(name string, v Value) Value {
	return Value{kind: KindNewtype, s: name, items: []Value{v}}
}

func UnitVariant(name, variant string) Value {
	return Value{kind: KindUnitVariant, s: name, variant: variant}
}

func NewtypeVariant(name, variant string, v Value) Value {
	return Value{kind: KindNewtypeVariant, s: name, variant: variant, items: []Value{v}}
}

func TupleVariant(name, variant string, items ...Value) Value {
	return Value{kind: KindTupleVariant, s: name, variant: variant, items: items}
}

func StructVariant(name, variant string, fields ...Field) Value {
	return Value{kind: KindStructVariant, s: name, variant: variant, fields: fields}
}

// Display encodes whatever v.String() renders, as a string.
func Display(v fmt.Stringer) Value { return Value{kind: KindDisplay, display: v} }

// Unsized returns a copy of a sequence or map that does not announce its
// length, the way an iterator-backed container would.
func (v Value) Unsized() Value {
	v.unsized = true
	return v
}

func (v Value) Kind() Kind             { return v.kind }
func (v Value) Width() int             { return int(v.width) }
func (v Value) AsBool() bool           { return v.b }
func (v Value) AsInt() int64           { return v.i }
func (v Value) AsUint() uint64         { return v.u }
func (v Value) AsFloat() float64       { return v.f }
func (v Value) AsChar() rune           { return rune(v.i) }
func (v Value) AsString() string       { return v.s }
func (v Value) AsBytes() []byte        { return v.raw }
func (v Value) Items() []Value         { return v.items }
func (v Value) Entries() []Entry       { return v.entries }
func (v Value) Fields() []Field        { return v.fields }
func (v Value) Name() string           { return v.s }
func (v Value) Variant() string        { return v.variant }
func (v Value) Stringer() fmt.Stringer { return v.display }

// Inner returns the wrapped value of a newtype or newtype variant.
func (v Value) Inner() Value {
	if len(v.items) == 0 {
		return Value{}
	}
	return v.items[0]
}

func (v Value) lenHint(n int) int {
	if v.unsized {
		return -1
	}
	return n
}

// SerializeHjson pushes v into vis.
func (v Value) SerializeHjson(vis Visitor) error {
	switch v.kind {
	case KindNull:
		return vis.SerializeNull()
	case KindBool:
		return vis.SerializeBool(v.b)
	case KindInt:
		switch v.width {
		case 8:
			return vis.SerializeInt8(int8(v.i))
		case 16:
			return vis.SerializeInt16(int16(v.i))
		case 32:
			return vis.SerializeInt32(int32(v.i))
		default:
			return vis.SerializeInt64(v.i)
		}
	case KindUint:
		switch v.width {
		case 8:
			return vis.SerializeUint8(uint8(v.u))
		case 16:
			return vis.SerializeUint16(uint16(v.u))
		case 32:
			return vis.SerializeUint32(uint32(v.u))
		default:
			return vis.SerializeUint64(v.u)
		}
	case KindFloat32:
		return vis.SerializeFloat32(float32(v.f))
	case KindFloat64:
		return vis.SerializeFloat64(v.f)
	case KindChar:
		return vis.SerializeChar(rune(v.i))
	case KindString:
		return vis.SerializeString(v.s)
	case KindBytes:
		return vis.SerializeBytes(v.raw)
	case KindSeq:
		seq, err := vis.SerializeSeq(v.lenHint(len(v.items)))
		if err != nil {
			return err
		}
		return serializeItems(seq, v.items)
	case KindTupleVariant:
		seq, err := vis.SerializeTupleVariant(v.s, v.variant, len(v.items))
		if err != nil {
			return err
		}
		return serializeItems(seq, v.items)
	case KindMap:
		m, err := vis.SerializeMap(v.lenHint(len(v.entries)))
		if err != nil {
			return err
		}
		for _, e := range v.entries {
			if err := m.SerializeEntry(e.Key, e.Value); err != nil {
				return err
			}
		}
		return m.End()
	case KindStruct:
		st, err := vis.SerializeStruct(v.s, len(v.fields))
		if err != nil {
			return err
		}
		return serializeFields(st, v.fields)
	case KindStructVariant:
		st, err := vis.SerializeStructVariant(v.s, v.variant, len(v.fields))
		if err != nil {
			return err
		}
		return serializeFields(st, v.fields)
	case KindNewtype:
		return vis.SerializeNewtype(v.s, v.Inner())
	case KindUnitVariant:
		return vis.SerializeUnitVariant(v.s, v.variant)
	case KindNewtypeVariant:
		return vis.SerializeNewtypeVariant(v.s, v.variant, v.Inner())
	case KindDisplay:
		return vis.CollectString(v.display)
	}
	return Errorf("unknown value kind %d", int(v.kind))
}

func serializeItems(seq SeqSerializer, items []Value) error {
	for _, it := range items {
		if err := seq.SerializeElement(it); err != nil {
			return err
		}
	}
	return seq.End()
}

func serializeFields(st StructSerializer, fields []Field) error {
	for _, f := range fields {
		if err := st.SerializeField(f.Name, f.Value); err != nil {
			return err
		}
	}
	return st.End()
}

// Equal reports whether two values have the same kind, width and content.
// Display values compare by their rendered text.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt, KindChar:
		return v.width == o.width && v.i == o.i
	case KindUint:
		return v.width == o.width && v.u == o.u
	case KindFloat32, KindFloat64:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindBytes:
		return bytes.Equal(v.raw, o.raw)
	case KindDisplay:
		if v.display == nil || o.display == nil {
			return v.display == nil && o.display == nil
		}
		return v.display.String() == o.display.String()
	}
	if v.s != o.s || v.variant != o.variant {
		return false
	}
	if len(v.items) != len(o.items) || len(v.entries) != len(o.entries) || len(v.fields) != len(o.fields) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Equal(o.items[i]) {
			return false
		}
	}
	for i := range v.entries {
		if !v.entries[i].Key.Equal(o.entries[i].Key) || !v.entries[i].Value.Equal(o.entries[i].Value) {
			return false
		}
	}
	for i := range v.fields {
		if v.fields[i].Name != o.fields[i].Name || !v.fields[i].Value.Equal(o.fields[i].Value) {
			return false
		}
	}
	return true
}
