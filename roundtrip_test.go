package gohjson_test

import (
	"math"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/hjson/hjson-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/gohjson"
	"github.com/reoring/gohjson/source"
)

var trickyStrings = []string{
	"plain",
	"",
	"true",
	"null",
	"123",
	"-1.5e3",
	"12 monkeys",
	" padded ",
	"x: y",
	"a:b",
	"x:",
	"é:1",
	"1.",
	"0.",
	"1e",
	"1e+",
	"#hash",
	"// slash",
	"/* block",
	"{brace",
	"[bracket",
	",comma",
	"tab\there",
	`say "hi"`,
	`"quoted"`,
	"it's",
	"ends with '",
	"has ''' inside",
	"line1\nline2",
	"a\n\nb\n",
	"  indented\n  block",
	"café 漢字",
	"ctl\x01char",
	"del\x7f",
	"zw\u200bspace",
	"ls\u2028sep",
}

func TestRoundTrip_CompactThroughJSONReader(t *testing.T) {
	items := make([]gohjson.Value, 0, len(trickyStrings))
	for _, s := range trickyStrings {
		items = append(items, gohjson.String(s))
	}
	v := gohjson.Map(
		gohjson.Pair("strings", gohjson.Seq(items...)),
		gohjson.Pair("ints", gohjson.Seq(gohjson.Int(math.MinInt64), gohjson.Int(0), gohjson.Uint(math.MaxUint64))),
		gohjson.Pair("floats", gohjson.Seq(gohjson.Float64(2), gohjson.Float64(0.1), gohjson.Float64(1e-7), gohjson.Float64(1e300))),
		gohjson.Pair("flags", gohjson.Seq(gohjson.Bool(true), gohjson.Bool(false), gohjson.Null())),
		gohjson.Pair("", gohjson.Map()),
		gohjson.Pair("key \"with\" quotes", gohjson.Seq()),
	)

	out, err := gohjson.Marshal(v)
	require.NoError(t, err)
	assert.True(t, json.Valid(out), "%s", out)

	back, err := source.JSONBytes(out)
	require.NoError(t, err)
	assert.True(t, v.Equal(back), "%s", out)

	again, err := gohjson.Marshal(back)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))
}

func TestRoundTrip_PrettyThroughHjson(t *testing.T) {
	doc := map[string]any{
		"strings":    trickyStrings,
		"with space": true,
		"a:b":        nil,
		"":           1.5,
		"#":          "hash key",
		"nested": map[string]any{
			"n":     3,
			"empty": []int{},
			"obj":   map[string]int{},
			"deep":  []any{[]any{1, "x"}, map[string]any{"k": "v w"}},
		},
		"multi": "line1\nline2",
	}

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	var want any
	require.NoError(t, json.Unmarshal(raw, &want))

	out, err := gohjson.MarshalPretty(doc)
	require.NoError(t, err)
	var got any
	require.NoError(t, hjson.Unmarshal(out, &got), "%s", out)
	assert.Equal(t, want, got, "%s", out)
}

func TestRoundTrip_PrettyScalarsThroughHjson(t *testing.T) {
	for _, s := range trickyStrings {
		out, err := gohjson.MarshalPretty([]string{s})
		require.NoError(t, err)
		var got []any
		require.NoError(t, hjson.Unmarshal(out, &got), "%s", out)
		require.Len(t, got, 1, "%s", out)
		assert.Equal(t, s, got[0], "%s", out)
	}
}

func TestRoundTrip_PrettyRootStringsThroughHjson(t *testing.T) {
	for _, s := range trickyStrings {
		if strings.Contains(s, "\n") {
			// multiline blocks are checked inside containers above
			continue
		}
		out, err := gohjson.MarshalPrettyString(gohjson.String(s))
		require.NoError(t, err)
		var got any
		require.NoError(t, hjson.Unmarshal([]byte(out), &got), "%s", out)
		assert.Equal(t, s, got, "%s", out)
	}
}

func TestRoundTrip_CompactIsJSON(t *testing.T) {
	type inner struct {
		Tags []string `json:"tags"`
	}
	type record struct {
		Name  string         `json:"name"`
		Count uint32         `json:"count"`
		Ratio float64        `json:"ratio"`
		Inner inner          `json:"inner"`
		Attrs map[string]int `json:"attrs"`
	}
	in := record{Name: "résumé", Count: 4, Ratio: 0.25, Inner: inner{Tags: []string{"a", "b\nc"}}, Attrs: map[string]int{"z": 1, "a": 2}}

	out, err := gohjson.Marshal(in)
	require.NoError(t, err)
	var back record
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, in, back)
	assert.Equal(t, `{"name":"résumé","count":4,"ratio":0.25,"inner":{"tags":["a","b\nc"]},"attrs":{"a":2,"z":1}}`, string(out))
}
