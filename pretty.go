package gohjson

import (
	"bytes"
	"io"
)

// PrettyFormatter writes indented Hjson: one child per line, brackets on
// their own line, and strings quoted only as much as they need.
//
// Opening a container only records the bracket. The next event for that
// container resolves it: an immediate close prints the collapsed form
// ([] or {}), anything else prints the bracket and descends one level.
type PrettyFormatter struct {
	indent        []byte
	currentIndent int
	hasValue      bool // the open container wrote at least one child
	inObject      bool // between "key:" and its value
	nextBracket   byte // pending '[' or '{', 0 when none
}

var _ Formatter = (*PrettyFormatter)(nil)

// NewPrettyFormatter returns a formatter indenting with two spaces.
func NewPrettyFormatter() *PrettyFormatter { return NewPrettyFormatterIndent("  ") }

// NewPrettyFormatterIndent returns a formatter that repeats indent once per
// nesting level.
func NewPrettyFormatterIndent(indent string) *PrettyFormatter {
	return &PrettyFormatter{indent: []byte(indent)}
}

// inlineSpace writes the single space that separates "key:" from an inline
// value.
func (p *PrettyFormatter) inlineSpace(w io.Writer) error {
	if !p.inObject {
		return nil
	}
	p.inObject = false
	return writeAll(w, []byte{' '})
}

func (p *PrettyFormatter) newline(w io.Writer) error {
	if err := writeAll(w, []byte{'\n'}); err != nil {
		return err
	}
	return writeIndent(w, p.currentIndent, p.indent)
}

// flushBracket prints a pending open bracket, on a fresh line when the
// container is an object value.
func (p *PrettyFormatter) flushBracket(w io.Writer) error {
	if p.nextBracket == 0 {
		return nil
	}
	bracket := p.nextBracket
	p.nextBracket = 0
	if p.inObject {
		p.inObject = false
		if err := p.newline(w); err != nil {
			return err
		}
	}
	p.currentIndent++
	p.hasValue = false
	return writeAll(w, []byte{bracket})
}

func (p *PrettyFormatter) closeContainer(w io.Writer, empty, closing string) error {
	if p.nextBracket != 0 {
		p.nextBracket = 0
		if p.inObject {
			p.inObject = false
			return writeAll(w, []byte(" "+empty))
		}
		return writeAll(w, []byte(empty))
	}
	if p.currentIndent > 0 {
		p.currentIndent--
	}
	if p.hasValue {
		if err := p.newline(w); err != nil {
			return err
		}
	}
	return writeAll(w, []byte(closing))
}

// WriteNull and the other scalar writers put one space after a pending
// "key:" and then write the value as the compact form would.
func (p *PrettyFormatter) WriteNull(w io.Writer) error {
	if err := p.inlineSpace(w); err != nil {
		return err
	}
	return CompactFormatter{}.WriteNull(w)
}

func (p *PrettyFormatter) WriteBool(w io.Writer, v bool) error {
	if err := p.inlineSpace(w); err != nil {
		return err
	}
	return CompactFormatter{}.WriteBool(w, v)
}

func (p *PrettyFormatter) WriteInt8(w io.Writer, v int8) error   { return p.WriteInt64(w, int64(v)) }
func (p *PrettyFormatter) WriteInt16(w io.Writer, v int16) error { return p.WriteInt64(w, int64(v)) }
func (p *PrettyFormatter) WriteInt32(w io.Writer, v int32) error { return p.WriteInt64(w, int64(v)) }

func (p *PrettyFormatter) WriteInt64(w io.Writer, v int64) error {
	if err := p.inlineSpace(w); err != nil {
		return err
	}
	return writeInt(w, v)
}

func (p *PrettyFormatter) WriteUint8(w io.Writer, v uint8) error   { return p.WriteUint64(w, uint64(v)) }
func (p *PrettyFormatter) WriteUint16(w io.Writer, v uint16) error { return p.WriteUint64(w, uint64(v)) }
func (p *PrettyFormatter) WriteUint32(w io.Writer, v uint32) error { return p.WriteUint64(w, uint64(v)) }

func (p *PrettyFormatter) WriteUint64(w io.Writer, v uint64) error {
	if err := p.inlineSpace(w); err != nil {
		return err
	}
	return writeUint(w, v)
}

func (p *PrettyFormatter) WriteFloat32(w io.Writer, v float32) error {
	if err := p.inlineSpace(w); err != nil {
		return err
	}
	return CompactFormatter{}.WriteFloat32(w, v)
}

func (p *PrettyFormatter) WriteFloat64(w io.Writer, v float64) error {
	if err := p.inlineSpace(w); err != nil {
		return err
	}
	return CompactFormatter{}.WriteFloat64(w, v)
}

// BeginString opens a double-quoted string written in escaped chunks.
func (p *PrettyFormatter) BeginString(w io.Writer) error {
	if err := p.inlineSpace(w); err != nil {
		return err
	}
	return writeAll(w, quote)
}

func (p *PrettyFormatter) EndString(w io.Writer) error { return writeAll(w, quote) }

func (p *PrettyFormatter) WriteCharEscape(w io.Writer, b []byte) (int, error) {
	return writeCharEscape(w, b)
}

// WriteString writes s in the style ClassifyString picks for it.
func (p *PrettyFormatter) WriteString(w io.Writer, s string) error {
	switch ClassifyString(s) {
	case StyleUnquoted:
		if err := p.inlineSpace(w); err != nil {
			return err
		}
		return writeAll(w, []byte(s))
	case StyleTripleQuoted:
		if err := p.inlineSpace(w); err != nil {
			return err
		}
		return writeAll(w, []byte("'''"+s+"'''"))
	case StyleMultiline:
		return p.writeMultiline(w, s)
	default:
		if err := p.inlineSpace(w); err != nil {
			return err
		}
		return writeEscaped(w, p, s)
	}
}

// writeMultiline writes s as a ''' block. The delimiters and every
// non-empty line sit at the current indentation, one level deeper when the
// block is an object value; empty lines carry no indentation.
func (p *PrettyFormatter) writeMultiline(w io.Writer, s string) error {
	nested := p.inObject
	if nested {
		p.inObject = false
		p.currentIndent++
		defer func() { p.currentIndent-- }()
		if err := p.newline(w); err != nil {
			return err
		}
	}
	if err := writeAll(w, []byte("'''\n")); err != nil {
		return err
	}
	for rest := []byte(s); ; {
		line := rest
		i := bytes.IndexByte(rest, '\n')
		if i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		}
		if len(line) > 0 {
			if err := writeIndent(w, p.currentIndent, p.indent); err != nil {
				return err
			}
			if err := writeAll(w, line); err != nil {
				return err
			}
		}
		if err := writeAll(w, []byte{'\n'}); err != nil {
			return err
		}
		if i < 0 {
			break
		}
	}
	if err := writeIndent(w, p.currentIndent, p.indent); err != nil {
		return err
	}
	return writeAll(w, []byte("'''"))
}

// WriteMemberString writes an object key bare when ClassifyMember allows
// it, double quoted otherwise.
func (p *PrettyFormatter) WriteMemberString(w io.Writer, s string) error {
	if ClassifyMember(s) == StyleUnquoted {
		return writeAll(w, []byte(s))
	}
	return writeEscaped(w, p, s)
}

// BeginArray records a pending [ without writing anything.
func (p *PrettyFormatter) BeginArray(io.Writer) error {
	p.nextBracket = '['
	return nil
}

// EndArray writes [] when the array never received an element, otherwise
// the closing ] on its own line one level up.
func (p *PrettyFormatter) EndArray(w io.Writer) error { return p.closeContainer(w, "[]", "]") }

// BeginArrayValue writes a still pending [ and then starts the element on
// a new line. No comma is written between elements.
func (p *PrettyFormatter) BeginArrayValue(w io.Writer, _ bool) error {
	if err := p.flushBracket(w); err != nil {
		return err
	}
	p.inObject = false
	return p.newline(w)
}

// EndArrayValue marks the array as non-empty.
func (p *PrettyFormatter) EndArrayValue(io.Writer) error {
	p.hasValue = true
	return nil
}

// BeginObject records a pending { without writing anything.
func (p *PrettyFormatter) BeginObject(io.Writer) error {
	p.nextBracket = '{'
	return nil
}

// EndObject is the object counterpart of EndArray.
func (p *PrettyFormatter) EndObject(w io.Writer) error { return p.closeContainer(w, "{}", "}") }

// BeginObjectKey writes a still pending { and starts the key on a new line.
func (p *PrettyFormatter) BeginObjectKey(w io.Writer, _ bool) error {
	if err := p.flushBracket(w); err != nil {
		return err
	}
	return p.newline(w)
}

func (p *PrettyFormatter) EndObjectKey(io.Writer) error { return nil }

// BeginObjectValue writes the colon straight after the key. The value
// decides what follows: a space for a scalar, a new line for a container
// or multiline string.
func (p *PrettyFormatter) BeginObjectValue(w io.Writer) error {
	p.inObject = true
	return writeAll(w, []byte{':'})
}

func (p *PrettyFormatter) EndObjectValue(io.Writer) error {
	p.hasValue = true
	return nil
}
