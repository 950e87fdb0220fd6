package gohjson

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prettyString(t *testing.T, v Value) string {
	t.Helper()
	s, err := MarshalPrettyString(v)
	require.NoError(t, err)
	return s
}

func TestPrettyLayout(t *testing.T) {
	cases := []struct {
		name string
		in   Value
		want string
	}{
		{"bare string", String("hello"), "hello"},
		{"literal collision", String("true"), `"true"`},
		{"number", Int(42), "42"},
		{"nan", Float64(math.NaN()), "null"},
		{"empty seq", Seq(), "[]"},
		{"empty map", Map(), "{}"},
		{"unsized empty seq", Seq().Unsized(), "[]"},
		{"unsized empty map", Map().Unsized(), "{}"},
		{
			"flat object",
			Map(Pair("a", Int(1)), Pair("b", String("x y"))),
			"{\n  a: 1\n  b: x y\n}",
		},
		{
			"nested containers",
			Map(
				Pair("a", Int(1)),
				Pair("b", Seq(Int(1), Int(2))),
				Pair("c", Map()),
				Pair("d", Seq()),
			),
			"{\n  a: 1\n  b:\n  [\n    1\n    2\n  ]\n  c: {}\n  d: []\n}",
		},
		{
			"deep empty",
			Map(Pair("a", Map(Pair("b", Seq())))),
			"{\n  a:\n  {\n    b: []\n  }\n}",
		},
		{
			"unsized empty value",
			Map(Pair("x", Seq().Unsized()), Pair("y", Map().Unsized())),
			"{\n  x: []\n  y: {}\n}",
		},
		{
			"unsized non-empty",
			Seq(Int(1), Int(2)).Unsized(),
			"[\n  1\n  2\n]",
		},
		{
			"seq of objects",
			Seq(Map(Pair("a", Int(1))), Map()),
			"[\n  {\n    a: 1\n  }\n  {}\n]",
		},
		{
			"seq of seqs",
			Seq(Seq(Int(1)), Seq()),
			"[\n  [\n    1\n  ]\n  []\n]",
		},
		{
			"quoted key",
			Map(Pair("with space", Bool(true)), Pair("", Null())),
			"{\n  \"with space\": true\n  \"\": null\n}",
		},
		{
			"string styles",
			Map(
				Pair("bare", String("hello")),
				Pair("literal", String("null")),
				Pair("quote", String(`say "hi"`)),
				Pair("padded", String(" x ")),
			),
			"{\n  bare: hello\n  literal: \"null\"\n  quote: '''say \"hi\"'''\n  padded: \" x \"\n}",
		},
		{
			"multiline value",
			Map(Pair("text", String("line1\nline2"))),
			"{\n  text:\n    '''\n    line1\n    line2\n    '''\n}",
		},
		{
			"multiline with blank line",
			Map(Pair("text", String("a\n\nb\n"))),
			"{\n  text:\n    '''\n    a\n\n    b\n\n    '''\n}",
		},
		{
			"multiline in seq",
			Seq(String("a\nb")),
			"[\n  '''\n  a\n  b\n  '''\n]",
		},
		{
			"multiline at top level",
			String("a\nb"),
			"'''\na\nb\n'''",
		},
		{
			"multiline then sibling",
			Map(Pair("m", String("a\nb")), Pair("n", Int(1))),
			"{\n  m:\n    '''\n    a\n    b\n    '''\n  n: 1\n}",
		},
		{
			"invisible characters escaped",
			Seq(String("\ufeffx"), String("a\u202eb")),
			"[\n  \"\\ufeffx\"\n  \"a\\u202eb\"\n]",
		},
		{
			"escapes in quoted key",
			Map(Pair("a\tb", Int(1))),
			"{\n  \"a\\tb\": 1\n}",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, prettyString(t, tc.in))
		})
	}
}

func TestPrettyFormatter_CustomIndent(t *testing.T) {
	var buf bytes.Buffer
	ser := NewSerializerWithFormatter(&buf, NewPrettyFormatterIndent("\t"))
	require.NoError(t, ser.Encode(Map(Pair("a", Seq(Int(1))))))
	assert.Equal(t, "{\n\ta:\n\t[\n\t\t1\n\t]\n}", buf.String())
}

func TestPrettyFormatter_IndentNeverNegative(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyFormatter()
	require.NoError(t, p.EndArray(&buf))
	require.NoError(t, p.EndObject(&buf))
	assert.Equal(t, "]}", buf.String())
	assert.Equal(t, 0, p.currentIndent)
}

func TestPrettyFormatter_EmptyContainerLeavesIndent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyFormatter()
	require.NoError(t, p.BeginArray(&buf))
	require.NoError(t, p.EndArray(&buf))
	assert.Equal(t, 0, p.currentIndent)
	assert.Zero(t, p.nextBracket)
	assert.Equal(t, "[]", buf.String())
}

func TestPrettyFormatter_Reusable(t *testing.T) {
	var buf bytes.Buffer
	ser := NewPrettySerializer(&buf)
	v := Map(Pair("a", Map(Pair("b", String("x\ny")))))
	require.NoError(t, ser.Encode(v))
	first := buf.String()
	buf.Reset()
	require.NoError(t, ser.Encode(v))
	assert.Equal(t, first, buf.String())
}
