package seg

import (
	"errors"
	"fmt"
)

// Kind classifies why a render was aborted.
type Kind int

const (
	SchemaError Kind = iota + 1
	TokenCountError
	TypeError
	SpanError
)

func (k Kind) String() string {
	switch k {
	case SchemaError:
		return "schema error"
	case TokenCountError:
		return "token count error"
	case TypeError:
		return "type error"
	case SpanError:
		return "span error"
	default:
		return "unknown error"
	}
}

var (
	ErrMissingField = errors.New("missing s/t")
	ErrTokenCount   = errors.New("format error")
	ErrNotInteger   = errors.New("s/t must be integers")
	ErrInvalidSpan  = errors.New("t must not be less than s")
)

// ParseError reports the first problem found in the schema or data text.
// Line is 1-based and zero for schema errors.
type ParseError struct {
	Kind  Kind
	Line  int
	Field string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case SchemaError:
		return e.Err.Error()
	case TypeError:
		return fmt.Sprintf("line %d: %v (field %q got %q)", e.Line, e.Err, e.Field, e.Token)
	default:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or zero if err is not a *ParseError.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
