package gohjson

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StringStyle is the quoting form chosen for a string.
type StringStyle int

const (
	StyleUnquoted     StringStyle = iota // hello
	StyleDoubleQuoted                    // "hello\tworld"
	StyleTripleQuoted                    // '''say "hi"'''
	StyleMultiline                       // ''' block over several lines
)

func (s StringStyle) String() string {
	switch s {
	case StyleUnquoted:
		return "unquoted"
	case StyleDoubleQuoted:
		return "double-quoted"
	case StyleTripleQuoted:
		return "triple-quoted"
	case StyleMultiline:
		return "multiline"
	}
	return "unknown"
}

// ClassifyString picks the lightest quoting under which s reads back
// unchanged as a value.
func ClassifyString(s string) StringStyle {
	if !looksLikeLiteral(s) && !isPartialNumber(s) && isBareSafe(s) {
		return StyleUnquoted
	}
	if isDoubleLineSafe(s) || !isVerbatimSafe(s) {
		return StyleDoubleQuoted
	}
	if strings.IndexByte(s, '\n') < 0 {
		if hasOuterSpace(s) {
			return StyleDoubleQuoted
		}
		return StyleTripleQuoted
	}
	return StyleMultiline
}

// ClassifyMember picks the quoting for an object key. Keys are either bare
// or double quoted.
func ClassifyMember(s string) StringStyle {
	if isMemberBareSafe(s) {
		return StyleUnquoted
	}
	return StyleDoubleQuoted
}

// looksLikeLiteral reports whether a reader would take the start of s for a
// number, true, false or null: the literal followed by optional whitespace
// and then the end of input, a delimiter or a comment.
func looksLikeLiteral(s string) bool {
	n := literalPrefix(s)
	if n == 0 {
		return false
	}
	rest := strings.TrimLeftFunc(s[n:], unicode.IsSpace)
	if rest == "" {
		return true
	}
	switch rest[0] {
	case ',', '}', ']', '#', '/':
		return true
	}
	return false
}

func literalPrefix(s string) int {
	for _, lit := range [...]string{"true", "false", "null"} {
		if strings.HasPrefix(s, lit) {
			return len(lit)
		}
	}
	return numberPrefix(s)
}

// numberPrefix returns the length of the longest JSON number at the start
// of s, or 0.
func numberPrefix(s string) int {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		i = skipDigits(s, i+1)
	default:
		return 0
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i = skipDigits(s, i+2)
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			i = skipDigits(s, j+1)
		}
	}
	return i
}

// isPartialNumber reports whether s is a number cut short after its
// decimal point or exponent marker, such as "1." or "2e+". Readers disagree
// on these, so they are never left bare.
func isPartialNumber(s string) bool {
	n := numberPrefix(s)
	if n == 0 {
		return false
	}
	switch rest := s[n:]; rest {
	case ".", "e", "E", "e+", "e-", "E+", "E-":
		return true
	}
	return false
}

func skipDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isBareSafe reports whether s survives being written with no quotes at
// all: nothing a reader would take for structure or a comment up front, no
// colon, no control or invisible characters anywhere, no whitespace at
// either end. A colon anywhere would turn a root string into a braceless
// object.
func isBareSafe(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	first, n := utf8.DecodeRuneInString(s)
	if first == '/' {
		next, m := utf8.DecodeRuneInString(s[n:])
		if m == 0 || next < 0x20 || next == '/' || next == '*' {
			return false
		}
	} else if first < 0x20 || unicode.IsSpace(first) || strings.ContainsRune(`"'{}[],:/#`, first) {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(s)
	if unicode.IsSpace(last) || last == '"' {
		return false
	}
	for _, r := range s {
		if r < 0x20 || r == ':' || isInvisible(r) {
			return false
		}
	}
	return true
}

// isDoubleLineSafe reports whether s reads best as one double-quoted line:
// it has no tab, newline or double quote, or it is nothing but whitespace.
func isDoubleLineSafe(s string) bool {
	if !strings.ContainsAny(s, "\t\n\"") {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) && r != '\b' {
			return false
		}
	}
	return true
}

// isVerbatimSafe reports whether s can sit between ''' delimiters with no
// escaping and still read back byte for byte.
func isVerbatimSafe(s string) bool {
	if !utf8.ValidString(s) || strings.HasSuffix(s, "'") || strings.Contains(s, "'''") {
		return false
	}
	for _, r := range s {
		if r == '\t' || r == '\n' {
			continue
		}
		if r < 0x20 || isInvisible(r) {
			return false
		}
	}
	return true
}

func hasOuterSpace(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}

// isMemberBareSafe is the key counterpart of isBareSafe. Keys end at the
// colon, so no delimiter or comment start may appear anywhere in them.
func isMemberBareSafe(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	afterSlash := false
	for _, r := range s {
		if afterSlash && (r == '/' || r == '*') {
			return false
		}
		if r < 0x20 || unicode.IsSpace(r) || isInvisible(r) || strings.ContainsRune(`"'{}[],:#`, r) {
			return false
		}
		afterSlash = r == '/'
	}
	return !afterSlash
}
