package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/gohjson"
	eng "github.com/reoring/gohjson/internal/engine"
)

// Options bounds the input the readers in this package accept. Zero values
// disable each limit.
type Options struct {
	RejectDuplicateKeys bool  // fail on a key repeated within one object
	MaxDepth            int   // maximum container nesting
	MaxBytes            int64 // maximum input consumed (approximate, JSON only)
}

func (o Options) enforce() eng.EnforceOptions {
	return eng.EnforceOptions{RejectDuplicateKeys: o.RejectDuplicateKeys, MaxDepth: o.MaxDepth, MaxBytes: o.MaxBytes}
}

// ErrTrailingData is returned when a JSON document is followed by more
// than whitespace.
var ErrTrailingData = errors.New("source: trailing data after JSON value")

// JSON reads one JSON document from r into a Value. Objects keep their
// member order and numbers keep their integer precision.
func JSON(r io.Reader) (gohjson.Value, error) { return JSONWithOptions(r, Options{}) }

// JSONBytes is JSON over a byte slice.
func JSONBytes(b []byte) (gohjson.Value, error) { return JSON(bytes.NewReader(b)) }

// JSONWithOptions is JSON with input limits.
func JSONWithOptions(r io.Reader, opt Options) (gohjson.Value, error) {
	src := eng.WrapWithEnforcement(newJSONTokens(r), opt.enforce())
	v, err := eng.BuildValue(src)
	if err != nil {
		if err == io.EOF {
			return gohjson.Value{}, io.ErrUnexpectedEOF
		}
		return gohjson.Value{}, err
	}
	if _, err := src.NextToken(); err != io.EOF {
		if err != nil {
			return gohjson.Value{}, fmt.Errorf("%w: %v", ErrTrailingData, err)
		}
		return gohjson.Value{}, ErrTrailingData
	}
	return v, nil
}

// jsonTokens is an engine.TokenSource over a go-json Decoder.
type jsonTokens struct {
	dec   *j.Decoder
	in    *countingReader
	stack []frame
}

type frame struct {
	object       bool
	expectingKey bool
}

func newJSONTokens(r io.Reader) *jsonTokens {
	in := &countingReader{r: r}
	dec := j.NewDecoder(in)
	dec.UseNumber()
	return &jsonTokens{dec: dec, in: in}
}

// valueDone flips the enclosing object back to expecting a key.
func (s *jsonTokens) valueDone() {
	if n := len(s.stack); n > 0 && s.stack[n-1].object {
		s.stack[n-1].expectingKey = true
	}
}

func (s *jsonTokens) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	off := s.in.n
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{object: true, expectingKey: true})
			return eng.Token{Kind: eng.KindBeginObject, Offset: off}, nil
		case '[':
			s.stack = append(s.stack, frame{})
			return eng.Token{Kind: eng.KindBeginArray, Offset: off}, nil
		case '}', ']':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueDone()
			kind := eng.KindEndArray
			if v == '}' {
				kind = eng.KindEndObject
			}
			return eng.Token{Kind: kind, Offset: off}, nil
		}
	case string:
		if n := len(s.stack); n > 0 && s.stack[n-1].object && s.stack[n-1].expectingKey {
			s.stack[n-1].expectingKey = false
			return eng.Token{Kind: eng.KindKey, String: v, Offset: off}, nil
		}
		s.valueDone()
		return eng.Token{Kind: eng.KindString, String: v, Offset: off}, nil
	case bool:
		s.valueDone()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: off}, nil
	case j.Number:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: off}, nil
	case float64:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: off}, nil
	case nil:
		s.valueDone()
		return eng.Token{Kind: eng.KindNull, Offset: off}, nil
	}
	return eng.Token{}, fmt.Errorf("source: unexpected JSON token %T", tok)
}

func (s *jsonTokens) Location() int64 { return s.in.n }

// countingReader counts bytes handed to the decoder. The decoder buffers
// ahead, so the count is an upper bound on what has been tokenized.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
