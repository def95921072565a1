package dictionary

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal dictionary error
type Kind int

const (
	KindUsage Kind = iota + 1
	KindNotFound
	KindDecode
	KindIO
)

// Sentinels matched by (*Error).Is
var (
	ErrUsage    = errors.New("usage error")
	ErrNotFound = errors.New("dictionary file not found")
	ErrDecode   = errors.New("dictionary file is not valid UTF-8")
	ErrIO       = errors.New("dictionary i/o error")
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindNotFound:
		return "not found"
	case KindDecode:
		return "decode"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindUsage:
		return ErrUsage
	case KindNotFound:
		return ErrNotFound
	case KindDecode:
		return ErrDecode
	default:
		return ErrIO
	}
}

// Error is the error type returned for usage, lookup and decoding failures
type Error struct {
	Kind Kind
	Path string
	Line int // 1-based, zero when not tied to a line
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == KindUsage {
		return e.Msg
	}

	msg := e.Msg
	if msg == "" {
		msg = e.Kind.sentinel().Error()
	}
	switch {
	case e.Line > 0 && e.Path != "":
		msg = fmt.Sprintf("%s:%d: %s", e.Path, e.Line, msg)
	case e.Line > 0:
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	case e.Path != "":
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// UsageError returns a usage error carrying the given usage line
func UsageError(usage string) error {
	return &Error{Kind: KindUsage, Msg: usage}
}

// KindOf returns the kind of the first *Error in err's chain, or zero
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
