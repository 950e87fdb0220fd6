package gohjson

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// goValue adapts an arbitrary Go value to Serializable by walking it with
// reflect. Values that already implement Serializable are used as they are.
type goValue struct {
	rv       reflect.Value
	sortKeys bool
}

// serializableOf returns v itself when it is Serializable, and a reflection
// walker over it otherwise.
func serializableOf(v any, sortKeys bool) Serializable {
	if s, ok := v.(Serializable); ok {
		return s
	}
	return goValue{rv: reflect.ValueOf(v), sortKeys: sortKeys}
}

var (
	serializableType  = reflect.TypeOf((*Serializable)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

func (g goValue) with(rv reflect.Value) goValue { return goValue{rv: rv, sortKeys: g.sortKeys} }

func (g goValue) SerializeHjson(vis Visitor) error {
	rv := g.rv
	if !rv.IsValid() {
		return vis.SerializeNull()
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return vis.SerializeNull()
		}
	}
	if s, ok := asInterface[Serializable](rv, serializableType); ok {
		return s.SerializeHjson(vis)
	}
	if tm, ok := asInterface[encoding.TextMarshaler](rv, textMarshalerType); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return err
		}
		return vis.SerializeString(string(text))
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return g.with(rv.Elem()).SerializeHjson(vis)
	case reflect.Bool:
		return vis.SerializeBool(rv.Bool())
	case reflect.Int8:
		return vis.SerializeInt8(int8(rv.Int()))
	case reflect.Int16:
		return vis.SerializeInt16(int16(rv.Int()))
	case reflect.Int32:
		return vis.SerializeInt32(int32(rv.Int()))
	case reflect.Int, reflect.Int64:
		return vis.SerializeInt64(rv.Int())
	case reflect.Uint8:
		return vis.SerializeUint8(uint8(rv.Uint()))
	case reflect.Uint16:
		return vis.SerializeUint16(uint16(rv.Uint()))
	case reflect.Uint32:
		return vis.SerializeUint32(uint32(rv.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return vis.SerializeUint64(rv.Uint())
	case reflect.Float32:
		return vis.SerializeFloat32(float32(rv.Float()))
	case reflect.Float64:
		return vis.SerializeFloat64(rv.Float())
	case reflect.String:
		return vis.SerializeString(rv.String())
	case reflect.Slice:
		if rv.IsNil() {
			return vis.SerializeNull()
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 && !hasMethods(rv.Type().Elem()) {
			return vis.SerializeBytes(rv.Bytes())
		}
		return g.serializeList(vis, rv)
	case reflect.Array:
		return g.serializeList(vis, rv)
	case reflect.Map:
		if rv.IsNil() {
			return vis.SerializeNull()
		}
		return g.serializeMap(vis, rv)
	case reflect.Struct:
		return g.serializeStruct(vis, rv)
	}
	return unsupported(visitorPath(vis), rv.Type().String())
}

// asInterface returns rv, or its address when only the pointer has the
// method set, as a T.
func asInterface[T any](rv reflect.Value, it reflect.Type) (T, bool) {
	var zero T
	if !rv.CanInterface() {
		return zero, false
	}
	if rv.Type().Implements(it) {
		t, ok := rv.Interface().(T)
		return t, ok
	}
	if rv.CanAddr() && reflect.PointerTo(rv.Type()).Implements(it) {
		t, ok := rv.Addr().Interface().(T)
		return t, ok
	}
	return zero, false
}

func hasMethods(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return pt.Implements(serializableType) || pt.Implements(textMarshalerType)
}

func visitorPath(vis Visitor) string {
	if s, ok := vis.(*Serializer); ok {
		return s.pointer()
	}
	return ""
}

func (g goValue) serializeList(vis Visitor, rv reflect.Value) error {
	n := rv.Len()
	seq, err := vis.SerializeSeq(n)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := seq.SerializeElement(g.with(rv.Index(i))); err != nil {
			return err
		}
	}
	return seq.End()
}

type mapEntry struct {
	key  Serializable
	text string
	val  reflect.Value
}

func (g goValue) serializeMap(vis Visitor, rv reflect.Value) error {
	entries := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, text, err := g.mapKey(iter.Key())
		if err != nil {
			return err
		}
		entries = append(entries, mapEntry{key: key, text: text, val: iter.Value()})
	}
	if g.sortKeys {
		slices.SortFunc(entries, func(a, b mapEntry) int { return strings.Compare(a.text, b.text) })
	}
	m, err := vis.SerializeMap(len(entries))
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := m.SerializeEntry(e.key, g.with(e.val)); err != nil {
			return err
		}
	}
	return m.End()
}

// mapKey converts a map key the way encoding/json does: string kinds are
// used directly, then TextMarshaler, then integers. Anything else is handed
// to the key serializer as is, which rejects it unless it is Serializable.
func (g goValue) mapKey(k reflect.Value) (Serializable, string, error) {
	switch k.Kind() {
	case reflect.String:
		return String(k.String()), k.String(), nil
	}
	if tm, ok := asInterface[encoding.TextMarshaler](k, textMarshalerType); ok {
		if k.Kind() == reflect.Pointer && k.IsNil() {
			return String(""), "", nil
		}
		text, err := tm.MarshalText()
		if err != nil {
			return nil, "", err
		}
		return String(string(text)), string(text), nil
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int64(k.Int()), strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint64(k.Uint()), strconv.FormatUint(k.Uint(), 10), nil
	}
	return g.with(k), fmt.Sprint(k), nil
}

func (g goValue) serializeStruct(vis Visitor, rv reflect.Value) error {
	t := rv.Type()
	if t.NumField() == 0 {
		return vis.SerializeNull()
	}
	fields := cachedFields(t)
	present := make([]reflect.Value, len(fields))
	n := 0
	for i, f := range fields {
		fv, ok := fieldByIndex(rv, f.index)
		if !ok || (f.omitEmpty && isEmptyValue(fv)) {
			continue
		}
		present[i] = fv
		n++
	}
	st, err := vis.SerializeStruct(t.Name(), n)
	if err != nil {
		return err
	}
	for i, f := range fields {
		if !present[i].IsValid() {
			continue
		}
		if err := st.SerializeField(f.name, g.with(present[i])); err != nil {
			return err
		}
	}
	return st.End()
}

// fieldByIndex is reflect.Value.FieldByIndex that reports a nil embedded
// pointer instead of panicking.
func fieldByIndex(rv reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return reflect.Value{}, false
			}
			rv = rv.Elem()
		}
		rv = rv.Field(x)
	}
	return rv, true
}

type structField struct {
	name      string
	index     []int
	depth     int
	omitEmpty bool
}

var fieldCache sync.Map // reflect.Type -> []structField

func cachedFields(t reflect.Type) []structField {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]structField)
	}
	f, _ := fieldCache.LoadOrStore(t, typeFields(t))
	return f.([]structField)
}

// typeFields lists the encodable fields of t in declaration order, with
// untagged embedded structs flattened into their parent. When two fields
// share a name the shallower one wins; at equal depth the first one does.
func typeFields(t reflect.Type) []structField {
	var out []structField
	visiting := map[reflect.Type]bool{t: true}
	var walk func(t reflect.Type, prefix []int, depth int)
	walk = func(t reflect.Type, prefix []int, depth int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			name, omitEmpty, tagged := ResolveFieldKey(sf)
			if name == "-" {
				continue
			}
			index := append(slices.Clone(prefix), i)
			if sf.Anonymous {
				ft := sf.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				if ft.Kind() != reflect.Struct {
					if !sf.IsExported() {
						continue
					}
				} else if !tagged {
					if !visiting[ft] {
						visiting[ft] = true
						walk(ft, index, depth+1)
						delete(visiting, ft)
					}
					continue
				}
			} else if !sf.IsExported() {
				continue
			}
			out = append(out, structField{name: name, index: index, depth: depth, omitEmpty: omitEmpty})
		}
	}
	walk(t, nil, 0)

	best := map[string]int{}
	for i, f := range out {
		if j, ok := best[f.name]; !ok || f.depth < out[j].depth {
			best[f.name] = i
		}
	}
	kept := out[:0:0]
	for i, f := range out {
		if best[f.name] == i {
			kept = append(kept, f)
		}
	}
	return kept
}

// ResolveFieldKey applies the struct tag rule used by Marshal.
// Priority: hjson tag name > json tag name > field name; "-" drops the
// field. tagged reports whether a tag supplied the name.
func ResolveFieldKey(sf reflect.StructField) (name string, omitEmpty, tagged bool) {
	for _, key := range [...]string{"hjson", "json"} {
		tag, ok := sf.Tag.Lookup(key)
		if !ok {
			continue
		}
		if tag == "-" {
			return "-", false, true
		}
		name, opts, _ := strings.Cut(tag, ",")
		for _, o := range strings.Split(opts, ",") {
			if strings.TrimSpace(o) == "omitempty" {
				omitEmpty = true
			}
		}
		if name != "" {
			return name, omitEmpty, true
		}
		return sf.Name, omitEmpty, false
	}
	return sf.Name, false, false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
