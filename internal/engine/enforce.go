package engine

import (
	"strconv"
	"strings"
)

// EnforceOptions bounds what a TokenSource may deliver. Zero values disable
// each check.
type EnforceOptions struct {
	RejectDuplicateKeys bool
	MaxDepth            int
	MaxBytes            int64
}

// Issue codes reported through IssueError.
const (
	CodeDuplicateKey  = "duplicate_key"
	CodeDepthExceeded = "depth_exceeded"
	CodeTruncated     = "truncated"
)

// IssueError is a limit violation at a JSON Pointer path.
type IssueError struct {
	Code    string
	Path    string
	Message string
}

func (e IssueError) Error() string {
	return "engine: " + e.Message + " at " + e.Path
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind      containerKind
	keys      map[string]struct{}
	path      string
	nextIndex int
	key       string // last key read in this object
}

// WrapWithEnforcement returns a TokenSource that checks duplicate keys,
// nesting depth and consumed bytes as tokens go by.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	if e.opt.MaxBytes > 0 {
		if off := e.inner.Location(); off > e.opt.MaxBytes {
			return Token{}, e.issue(CodeTruncated, e.currentPath(), "max bytes exceeded")
		}
	}

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		path := e.childPath()
		f := frame{kind: kindArray, path: path}
		if tok.Kind == KindBeginObject {
			f = frame{kind: kindObject, path: path, keys: map[string]struct{}{}}
		}
		e.stack = append(e.stack, f)
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, e.issue(CodeDepthExceeded, path, "max depth exceeded")
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
	case KindKey:
		if n := len(e.stack); n > 0 {
			top := &e.stack[n-1]
			top.key = tok.String
			if e.opt.RejectDuplicateKeys {
				if _, dup := top.keys[tok.String]; dup {
					return Token{}, e.issue(CodeDuplicateKey, joinPointer(top.path, tok.String), "key '"+tok.String+"' duplicated")
				}
				top.keys[tok.String] = struct{}{}
			}
		}
	default:
		e.childPath()
	}
	return tok, nil
}

// childPath returns the path of the value about to be read in the current
// container and advances array indexes.
func (e *enforcingTokenSource) childPath() string {
	n := len(e.stack)
	if n == 0 {
		return ""
	}
	top := &e.stack[n-1]
	if top.kind == kindArray {
		p := joinPointer(top.path, strconv.Itoa(top.nextIndex))
		top.nextIndex++
		return p
	}
	return joinPointer(top.path, top.key)
}

func (e *enforcingTokenSource) currentPath() string {
	if n := len(e.stack); n > 0 {
		return e.stack[n-1].path
	}
	return ""
}

func (e *enforcingTokenSource) issue(code, path, msg string) error {
	if path == "" {
		path = "/"
	}
	return IssueError{Code: code, Path: path, Message: msg}
}

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
