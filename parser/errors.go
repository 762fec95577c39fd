package parser

import "fmt"

// Kind classifies an Error.
type Kind int

const (
	// KindParameter means a call-time argument was invalid, such as
	// reading into an already populated document. The caller can recover.
	KindParameter Kind = iota + 1

	// KindFile means the input could not be opened or read. The read
	// attempt is over.
	KindFile

	// KindSyntax means a line violated the control file grammar. Reading
	// halts at the offending line and the document must be discarded.
	KindSyntax
)

func (k Kind) String() string {
	switch k {
	case KindParameter:
		return "parameter error"
	case KindFile:
		return "file error"
	case KindSyntax:
		return "syntax error"
	default:
		return "unknown error"
	}
}

// Error is a failed read. Path and Line are zero when the failure is not
// tied to a position in the input, such as an unreadable file.
type Error struct {
	Kind    Kind
	Path    string
	Line    int
	Message string
}

func (e *Error) Error() string {
	if e.Path != "" {
		if e.Line > 0 {
			return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

func newError(kind Kind, ctx *Context, message string) *Error {
	e := &Error{Kind: kind, Message: message}
	if ctx != nil {
		e.Path = ctx.Path
		e.Line = ctx.Line
	}
	return e
}
