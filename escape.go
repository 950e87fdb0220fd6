package gohjson

import (
	"io"
	"unicode/utf8"
)

const (
	escBS = 'b'  // \x08
	escTT = 't'  // \x09
	escNN = 'n'  // \x0A
	escFF = 'f'  // \x0C
	escRR = 'r'  // \x0D
	escQU = '"'  // \x22
	escBB = '\\' // \x5C
	escU  = 'u'  // \x00...\x1F except the ones above, and \x7F
	escUU = 1    // first byte of a multi-byte sequence
)

// escapeTable maps every byte to its escape class. 0 means the byte is
// copied as-is.
var escapeTable = func() (t [256]byte) {
	for b := 0; b < 0x20; b++ {
		t[b] = escU
	}
	t['\b'] = escBS
	t['\t'] = escTT
	t['\n'] = escNN
	t['\f'] = escFF
	t['\r'] = escRR
	t['"'] = escQU
	t['\\'] = escBB
	t[0x7f] = escU
	for b := 0x80; b < 0x100; b++ {
		t[b] = escUU
	}
	return t
}()

const hexDigits = "0123456789abcdef"

// isInvisible reports code points that render as nothing, reorder text or
// are otherwise unsafe to write literally.
func isInvisible(r rune) bool {
	switch {
	case r >= 0x7f && r <= 0x9f,
		r == 0xad,
		r >= 0x0600 && r <= 0x0604,
		r == 0x070f,
		r == 0x17b4, r == 0x17b5,
		r >= 0x200c && r <= 0x200f,
		r >= 0x2028 && r <= 0x202f,
		r >= 0x2060 && r <= 0x206f,
		r == 0xfeff,
		r >= 0xfff0 && r <= 0xffff:
		return true
	}
	return false
}

// writeCharEscape writes the escape for the sequence at the start of b and
// returns the number of bytes it covers. b[0] must be a byte whose table
// entry is non-zero.
func writeCharEscape(w io.Writer, b []byte) (int, error) {
	var buf [10]byte
	switch c := escapeTable[b[0]]; c {
	case escU:
		buf = [10]byte{'\\', 'u', '0', '0', hexDigits[b[0]>>4], hexDigits[b[0]&0xf]}
		return 1, writeAll(w, buf[:6])
	case escUU:
		r, n := utf8.DecodeRune(b)
		switch {
		case r == utf8.RuneError && n <= 1:
			return 1, writeAll(w, []byte("\\ufffd"))
		case r > 0xffff:
			buf = [10]byte{'\\', 'u', '{',
				hexDigits[r>>20&0xf], hexDigits[r>>16&0xf], hexDigits[r>>12&0xf],
				hexDigits[r>>8&0xf], hexDigits[r>>4&0xf], hexDigits[r&0xf], '}'}
			return n, writeAll(w, buf[:])
		case isInvisible(r):
			buf = [10]byte{'\\', 'u',
				hexDigits[r>>12&0xf], hexDigits[r>>8&0xf], hexDigits[r>>4&0xf], hexDigits[r&0xf]}
			return n, writeAll(w, buf[:6])
		default:
			return n, writeAll(w, b[:n])
		}
	case 0:
		return 1, writeAll(w, b[:1])
	default:
		buf[0], buf[1] = '\\', c
		return 1, writeAll(w, buf[:2])
	}
}

// writeEscaped writes s as a double-quoted string. Runs of bytes that need
// no escaping are copied in one write; everything else goes through
// f.WriteCharEscape, which reports how far to skip.
func writeEscaped(w io.Writer, f Formatter, s string) error {
	if err := writeAll(w, quote); err != nil {
		return err
	}
	b := []byte(s)
	start := 0
	for i := 0; i < len(b); {
		if escapeTable[b[i]] == 0 {
			i++
			continue
		}
		if start < i {
			if err := writeAll(w, b[start:i]); err != nil {
				return err
			}
		}
		n, err := f.WriteCharEscape(w, b[i:])
		if err != nil {
			return err
		}
		if n < 1 {
			n = 1
		}
		i += n
		start = i
	}
	if start < len(b) {
		if err := writeAll(w, b[start:]); err != nil {
			return err
		}
	}
	return writeAll(w, quote)
}

var quote = []byte{'"'}

func writeAll(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}

func writeIndent(w io.Writer, n int, unit []byte) error {
	for ; n > 0; n-- {
		if err := writeAll(w, unit); err != nil {
			return err
		}
	}
	return nil
}
