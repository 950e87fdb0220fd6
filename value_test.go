package gohjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "tuple_variant", KindTupleVariant.String())
	assert.Equal(t, "display", KindDisplay.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Equal(t, "Kind(-1)", Kind(-1).String())
}

func TestValueAccessors(t *testing.T) {
	assert.Equal(t, KindNull, Value{}.Kind())
	assert.True(t, Bool(true).AsBool())
	assert.Equal(t, int64(-5), Int16(-5).AsInt())
	assert.Equal(t, 16, Int16(-5).Width())
	assert.Equal(t, 64, Int(1).Width())
	assert.Equal(t, uint64(9), Uint8(9).AsUint())
	assert.Equal(t, 8, Uint8(9).Width())
	assert.Equal(t, 0.5, Float64(0.5).AsFloat())
	assert.Equal(t, KindFloat32, Float32(0.5).Kind())
	assert.Equal(t, 'x', Char('x').AsChar())
	assert.Equal(t, "s", String("s").AsString())
	assert.Equal(t, []byte{1}, Bytes([]byte{1}).AsBytes())
	assert.Len(t, Seq(Null(), Null()).Items(), 2)
	assert.Len(t, Map(Pair("a", Null())).Entries(), 1)

	st := StructVariant("Shape", "Circle", Field{"r", Float64(1)})
	assert.Equal(t, "Shape", st.Name())
	assert.Equal(t, "Circle", st.Variant())
	assert.Equal(t, "r", st.Fields()[0].Name)

	nt := Newtype("Meters", Int(3))
	assert.Equal(t, int64(3), nt.Inner().AsInt())
	assert.Equal(t, KindNull, UnitVariant("E", "A").Inner().Kind())

	d := Display(celsius(1))
	assert.Equal(t, "1.0°C", d.Stringer().String())
}

func TestValueEqual(t *testing.T) {
	equal := [][2]Value{
		{Null(), Value{}},
		{Int8(1), Int8(1)},
		{Seq(Int(1), String("a")), Seq(Int(1), String("a")).Unsized()},
		{Map(Pair("k", Bool(true))), Map(Pair("k", Bool(true)))},
		{Struct("P", Field{"x", Int(1)}), Struct("P", Field{"x", Int(1)})},
		{TupleVariant("E", "T", Null()), TupleVariant("E", "T", Null())},
		{Bytes([]byte("ab")), Bytes([]byte("ab"))},
		{Display(celsius(2)), Display(celsius(2))},
		{Display(nil), Display(nil)},
	}
	for _, p := range equal {
		assert.True(t, p[0].Equal(p[1]), "%v", p[0].Kind())
	}

	different := [][2]Value{
		{Null(), Bool(false)},
		{Int8(1), Int16(1)},
		{Int(1), Uint(1)},
		{Float32(1), Float64(1)},
		{String("a"), String("b")},
		{Seq(Int(1)), Seq(Int(1), Int(2))},
		{Map(Pair("k", Int(1))), Map(Pair("k", Int(2)))},
		{Map(Pair("a", Null())), Map(Pair("b", Null()))},
		{Struct("P", Field{"x", Int(1)}), Struct("Q", Field{"x", Int(1)})},
		{Struct("P", Field{"x", Int(1)}), Struct("P", Field{"y", Int(1)})},
		{UnitVariant("E", "A"), UnitVariant("E", "B")},
		{Newtype("N", Int(1)), Newtype("N", Int(2))},
		{Display(nil), Display(celsius(0))},
		{Display(celsius(0)), Display(nil)},
	}
	for _, p := range different {
		assert.False(t, p[0].Equal(p[1]), "%v vs %v", p[0].Kind(), p[1].Kind())
	}
}
