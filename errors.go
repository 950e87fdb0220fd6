package gohjson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/gohjson/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeIO               = "io"
	CodeKeyMustBeAString = "key_must_be_a_string"
	CodeCustom           = "custom"
	CodeUnsupported      = "unsupported_type"
)

// Error is the failure reported by an encode call.
type Error struct {
	Code    string // One of the codes listed above.
	Path    string // JSON Pointer of the node being written (for example: /items/2).
	Message string // Optional: overrides the localized message for Code.
	Cause   error  // Optional: underlying error (the sink error for CodeIO).
	Type    string // Optional: the Go type that could not be mapped (CodeUnsupported).
}

// Sentinels for errors.Is. They match any *Error carrying the same code.
var (
	ErrIO               = &Error{Code: CodeIO}
	ErrKeyMustBeAString = &Error{Code: CodeKeyMustBeAString}
	ErrUnsupported      = &Error{Code: CodeUnsupported}
)

func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString("gohjson: ")
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		var data map[string]string
		if e.Type != "" {
			data = map[string]string{"type": e.Type}
		}
		b.WriteString(i18n.T(e.Code, data))
	}
	if e.Path != "" {
		fmt.Fprintf(b, " at %s", e.Path)
	}
	if e.Cause != nil {
		fmt.Fprintf(b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Path == "" || t.Path == e.Path)
}

// Errorf builds an upstream failure for Serializable implementations that
// cannot encode themselves. The serializer returns it untouched.
func Errorf(format string, args ...any) error {
	return &Error{Code: CodeCustom, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts an *Error from an error chain using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func ioError(path string, err error) error {
	return &Error{Code: CodeIO, Path: path, Cause: err}
}

func keyMustBeAString(path string) error {
	return &Error{Code: CodeKeyMustBeAString, Path: path}
}

func unsupported(path, typ string) error {
	return &Error{Code: CodeUnsupported, Path: path, Type: typ}
}
