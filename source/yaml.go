package source

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/gohjson"
	eng "github.com/reoring/gohjson/internal/engine"
)

// ErrNoDocument is returned when the YAML input holds no document.
var ErrNoDocument = errors.New("source: no YAML document")

// YAML reads the first document of r into a Value. Mapping order is kept;
// aliases are expanded and merge keys applied.
func YAML(r io.Reader) (gohjson.Value, error) { return YAMLWithOptions(r, Options{}) }

// YAMLWithOptions is YAML with input limits. MaxBytes is not applied.
func YAMLWithOptions(r io.Reader, opt Options) (gohjson.Value, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return gohjson.Value{}, ErrNoDocument
		}
		return gohjson.Value{}, err
	}
	return newYAMLBuilder(opt).build(&doc, "", 0)
}

// YAMLDocuments reads every document of a multi-document stream.
func YAMLDocuments(r io.Reader, opt Options) ([]gohjson.Value, error) {
	dec := yaml.NewDecoder(r)
	var out []gohjson.Value
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		v, err := newYAMLBuilder(opt).build(&doc, "", 0)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

type yamlBuilder struct {
	opt       Options
	expanding map[*yaml.Node]bool // aliases being expanded, to stop cycles
}

func newYAMLBuilder(opt Options) *yamlBuilder {
	return &yamlBuilder{opt: opt, expanding: map[*yaml.Node]bool{}}
}

func (b *yamlBuilder) build(n *yaml.Node, path string, depth int) (gohjson.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return gohjson.Null(), nil
		}
		return b.build(n.Content[0], path, depth)
	case yaml.AliasNode:
		if b.expanding[n.Alias] {
			return gohjson.Value{}, fmt.Errorf("source: recursive YAML alias *%s at %s", n.Value, pointerOrRoot(path))
		}
		b.expanding[n.Alias] = true
		defer delete(b.expanding, n.Alias)
		return b.build(n.Alias, path, depth)
	case yaml.ScalarNode:
		return yamlScalar(n)
	case yaml.SequenceNode:
		if err := b.checkDepth(path, depth+1); err != nil {
			return gohjson.Value{}, err
		}
		items := make([]gohjson.Value, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := b.build(c, fmt.Sprintf("%s/%d", path, i), depth+1)
			if err != nil {
				return gohjson.Value{}, err
			}
			items = append(items, v)
		}
		return gohjson.Seq(items...), nil
	case yaml.MappingNode:
		if err := b.checkDepth(path, depth+1); err != nil {
			return gohjson.Value{}, err
		}
		entries, err := b.mapping(n, path, depth+1)
		if err != nil {
			return gohjson.Value{}, err
		}
		return gohjson.Map(entries...), nil
	}
	return gohjson.Value{}, fmt.Errorf("source: unsupported YAML node kind %d at %s", n.Kind, pointerOrRoot(path))
}

func (b *yamlBuilder) checkDepth(path string, depth int) error {
	if b.opt.MaxDepth > 0 && depth > b.opt.MaxDepth {
		return eng.IssueError{Code: eng.CodeDepthExceeded, Path: pointerOrRoot(path), Message: "max depth exceeded"}
	}
	return nil
}

// mapping converts the pairs of a mapping node. Entries pulled in by a
// merge key (<<) never override keys written in the mapping itself.
func (b *yamlBuilder) mapping(n *yaml.Node, path string, depth int) ([]gohjson.Entry, error) {
	var entries, merged []gohjson.Entry
	seen := map[string]bool{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if kn.Kind == yaml.ScalarNode && kn.ShortTag() == "!!merge" {
			m, err := b.mergeSources(vn, path, depth)
			if err != nil {
				return nil, err
			}
			merged = append(merged, m...)
			continue
		}
		key, text, err := b.key(kn, path, depth)
		if err != nil {
			return nil, err
		}
		child := path + "/" + pointerEscape(text)
		if seen[text] && b.opt.RejectDuplicateKeys {
			return nil, eng.IssueError{Code: eng.CodeDuplicateKey, Path: child, Message: "key '" + text + "' duplicated"}
		}
		seen[text] = true
		v, err := b.build(vn, child, depth)
		if err != nil {
			return nil, err
		}
		entries = append(entries, gohjson.Entry{Key: key, Value: v})
	}
	for _, e := range merged {
		text := keyText(e.Key)
		if seen[text] {
			continue
		}
		seen[text] = true
		entries = append(entries, e)
	}
	return entries, nil
}

func (b *yamlBuilder) mergeSources(vn *yaml.Node, path string, depth int) ([]gohjson.Entry, error) {
	v, err := b.build(vn, path, depth-1)
	if err != nil {
		return nil, err
	}
	switch v.Kind() {
	case gohjson.KindMap:
		return v.Entries(), nil
	case gohjson.KindSeq:
		var out []gohjson.Entry
		for _, it := range v.Items() {
			if it.Kind() != gohjson.KindMap {
				return nil, fmt.Errorf("source: merge key expects mappings at %s", pointerOrRoot(path))
			}
			out = append(out, it.Entries()...)
		}
		return out, nil
	}
	return nil, fmt.Errorf("source: merge key expects a mapping at %s", pointerOrRoot(path))
}

// key converts a mapping key. Integer keys stay integers; other scalars use
// their source text, so `true: x` keeps the key "true". Collection keys are
// kept as they are and rejected by the encoder.
func (b *yamlBuilder) key(kn *yaml.Node, path string, depth int) (gohjson.Value, string, error) {
	for kn.Kind == yaml.AliasNode {
		kn = kn.Alias
	}
	if kn.Kind != yaml.ScalarNode {
		v, err := b.build(kn, path, depth)
		return v, kn.Value, err
	}
	if kn.ShortTag() == "!!int" {
		v, err := yamlScalar(kn)
		if err != nil {
			return gohjson.Value{}, "", err
		}
		if v.Kind() == gohjson.KindInt || v.Kind() == gohjson.KindUint {
			return v, keyText(v), nil
		}
	}
	return gohjson.String(kn.Value), kn.Value, nil
}

func keyText(v gohjson.Value) string {
	switch v.Kind() {
	case gohjson.KindInt:
		return fmt.Sprint(v.AsInt())
	case gohjson.KindUint:
		return fmt.Sprint(v.AsUint())
	}
	return v.AsString()
}

// yamlScalar resolves a scalar by its tag.
func yamlScalar(n *yaml.Node) (gohjson.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return gohjson.Null(), nil
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return gohjson.Value{}, err
		}
		return gohjson.Bool(v), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return gohjson.Int64(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return gohjson.Uint64(u), nil
		}
		return yamlFloat(n)
	case "!!float":
		return yamlFloat(n)
	case "!!binary":
		raw, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(n.Value), ""))
		if err != nil {
			return gohjson.Value{}, fmt.Errorf("source: invalid !!binary at line %d: %w", n.Line, err)
		}
		return gohjson.Bytes(raw), nil
	}
	return gohjson.String(n.Value), nil
}

func yamlFloat(n *yaml.Node) (gohjson.Value, error) {
	var f float64
	if err := n.Decode(&f); err != nil {
		return gohjson.Value{}, err
	}
	return gohjson.Float64(f), nil
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func pointerEscape(s string) string { return pointerEscaper.Replace(s) }

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
