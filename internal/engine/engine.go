package engine

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/reoring/gohjson"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string // literal text, kept so integers survive unchanged
	Bool   bool
	Offset int64
}

// TokenSource is the minimal interface the value builder needs.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// ErrUnexpectedToken reports a token that cannot appear where it was read.
var ErrUnexpectedToken = errors.New("engine: unexpected token")

// BuildValue reads one complete value from src. Object members keep their
// input order.
func BuildValue(src TokenSource) (gohjson.Value, error) {
	tok, err := src.NextToken()
	if err != nil {
		return gohjson.Value{}, err
	}
	return buildValue(src, tok)
}

func buildValue(src TokenSource, tok Token) (gohjson.Value, error) {
	switch tok.Kind {
	case KindBeginObject:
		return buildObject(src)
	case KindBeginArray:
		return buildArray(src)
	case KindString:
		return gohjson.String(tok.String), nil
	case KindNumber:
		return NumberValue(tok.Number)
	case KindBool:
		return gohjson.Bool(tok.Bool), nil
	case KindNull:
		return gohjson.Null(), nil
	}
	return gohjson.Value{}, ErrUnexpectedToken
}

func buildObject(src TokenSource) (gohjson.Value, error) {
	var entries []gohjson.Entry
	for {
		tok, err := src.NextToken()
		if err != nil {
			return gohjson.Value{}, unexpectedEOF(err)
		}
		if tok.Kind == KindEndObject {
			return gohjson.Map(entries...), nil
		}
		if tok.Kind != KindKey {
			return gohjson.Value{}, ErrUnexpectedToken
		}
		vt, err := src.NextToken()
		if err != nil {
			return gohjson.Value{}, unexpectedEOF(err)
		}
		v, err := buildValue(src, vt)
		if err != nil {
			return gohjson.Value{}, err
		}
		entries = append(entries, gohjson.Pair(tok.String, v))
	}
}

func buildArray(src TokenSource) (gohjson.Value, error) {
	var items []gohjson.Value
	for {
		tok, err := src.NextToken()
		if err != nil {
			return gohjson.Value{}, unexpectedEOF(err)
		}
		if tok.Kind == KindEndArray {
			return gohjson.Seq(items...), nil
		}
		v, err := buildValue(src, tok)
		if err != nil {
			return gohjson.Value{}, err
		}
		items = append(items, v)
	}
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// NumberValue classifies a number literal: integers become Int64, or
// Uint64 when they only fit unsigned; anything with a fraction or exponent,
// or too large for either, becomes Float64.
func NumberValue(lit string) (gohjson.Value, error) {
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return gohjson.Int64(i), nil
		}
		if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
			return gohjson.Uint64(u), nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		var ne *strconv.NumError
		if !errors.As(err, &ne) || ne.Err != strconv.ErrRange {
			return gohjson.Value{}, err
		}
	}
	return gohjson.Float64(f), nil
}
