package source

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/gohjson"
	eng "github.com/reoring/gohjson/internal/engine"
)

func TestYAML_Scalars(t *testing.T) {
	doc := `
s: hello
q: "123"
i: 42
big: 18446744073709551615
neg: -7
f: 1.5
inf: .inf
b: true
n: ~
bin: !!binary aGVsbG8=
`
	v, err := YAML(strings.NewReader(doc))
	require.NoError(t, err)
	want := gohjson.Map(
		gohjson.Pair("s", gohjson.String("hello")),
		gohjson.Pair("q", gohjson.String("123")),
		gohjson.Pair("i", gohjson.Int64(42)),
		gohjson.Pair("big", gohjson.Uint64(math.MaxUint64)),
		gohjson.Pair("neg", gohjson.Int64(-7)),
		gohjson.Pair("f", gohjson.Float64(1.5)),
		gohjson.Pair("inf", gohjson.Float64(math.Inf(1))),
		gohjson.Pair("b", gohjson.Bool(true)),
		gohjson.Pair("n", gohjson.Null()),
		gohjson.Pair("bin", gohjson.Bytes([]byte("hello"))),
	)
	assert.True(t, want.Equal(v))
}

func TestYAML_MergeKeys(t *testing.T) {
	doc := `
base: &b
  x: 1
  y: 2
extra: &e
  w: 0
derived:
  <<: *b
  y: 3
  z: 4
both:
  <<: [*b, *e]
`
	v, err := YAML(strings.NewReader(doc))
	require.NoError(t, err)
	out, err := gohjson.MarshalString(v)
	require.NoError(t, err)
	assert.Equal(t, `{"base":{"x":1,"y":2},"extra":{"w":0},"derived":{"y":3,"z":4,"x":1},"both":{"x":1,"y":2,"w":0}}`, out)

	_, err = YAML(strings.NewReader("a:\n  <<: 1\n"))
	assert.Error(t, err)
}

func TestYAML_Keys(t *testing.T) {
	v, err := YAML(strings.NewReader("1: one\n-2: two\ntrue: yes\n"))
	require.NoError(t, err)
	entries := v.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, gohjson.KindInt, entries[0].Key.Kind())
	assert.Equal(t, int64(-2), entries[1].Key.AsInt())
	assert.Equal(t, "true", entries[2].Key.AsString())

	out, err := gohjson.MarshalPrettyString(v)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"1\": one\n  \"-2\": two\n  true: yes\n}", out)
}

func TestYAML_CollectionKeyIsRejectedByEncoder(t *testing.T) {
	v, err := YAML(strings.NewReader("? [a, b]\n: 1\n"))
	require.NoError(t, err)
	_, err = gohjson.Marshal(v)
	assert.True(t, errors.Is(err, gohjson.ErrKeyMustBeAString))
}

func TestYAML_Documents(t *testing.T) {
	docs, err := YAMLDocuments(strings.NewReader("a: 1\n---\n- x\n---\nplain\n"), Options{})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, gohjson.KindMap, docs[0].Kind())
	assert.Equal(t, gohjson.KindSeq, docs[1].Kind())
	assert.Equal(t, "plain", docs[2].AsString())

	docs, err = YAMLDocuments(strings.NewReader(""), Options{})
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = YAML(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestYAML_Limits(t *testing.T) {
	_, err := YAMLWithOptions(strings.NewReader("a: 1\na: 2\n"), Options{RejectDuplicateKeys: true})
	var issue eng.IssueError
	require.True(t, errors.As(err, &issue), "%v", err)
	assert.Equal(t, eng.CodeDuplicateKey, issue.Code)
	assert.Equal(t, "/a", issue.Path)

	_, err = YAMLWithOptions(strings.NewReader("a: [[1]]\n"), Options{MaxDepth: 2})
	require.True(t, errors.As(err, &issue), "%v", err)
	assert.Equal(t, eng.CodeDepthExceeded, issue.Code)
	assert.Equal(t, "/a/0", issue.Path)

	_, err = YAMLWithOptions(strings.NewReader("a: [1]\n"), Options{MaxDepth: 2})
	assert.NoError(t, err)
}

func TestYAML_Errors(t *testing.T) {
	_, err := YAML(strings.NewReader("a: !!binary '@@@'\n"))
	assert.Error(t, err)

	_, err = YAML(strings.NewReader("a: &x [*x]\n"))
	assert.Error(t, err)

	_, err = YAML(strings.NewReader("a: [unclosed\n"))
	assert.Error(t, err)
}
