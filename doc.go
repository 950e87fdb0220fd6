// Package gohjson encodes value trees as Hjson, the human-friendly JSON
// superset, in a compact or a pretty-printed layout.
//
// - Compact output is plain JSON: no whitespace, every string double quoted.
// - Pretty output indents one child per line and quotes strings only as much
//   as a reader needs: bare, "double quoted", '''triple quoted''' or as a
//   ''' block spanning several lines.
// - Invisible and bidi-control characters are always escaped.
//
// Design policy:
// - Keep only public APIs in the root package; helpers live under internal/.
// - Readers for other formats live under source/, the CLI under cmd/gohjson.
// - Values reach the encoder through the Visitor push protocol; Value is a
//   ready-made tree, and plain Go values are walked with reflect.
//
// Typical usage:
//
//	s, err := gohjson.MarshalPrettyString(map[string]any{"name": "hello", "n": 1})
//
//	v := gohjson.Map(gohjson.Pair("text", gohjson.String("a\nb")))
//	err := gohjson.EncodePretty(os.Stdout, v)
//
//	var buf bytes.Buffer
//	ser := gohjson.NewSerializerWithFormatter(&buf, gohjson.NewPrettyFormatterIndent("\t"))
//	err := ser.Encode(v)
package gohjson
