package types

import "errors"

// Configuration errors are returned while options are being defined and indicate a mistake in the option schema.
var (
	ErrDuplicateShortName = errors.New("argument with short name already defined")
	ErrDuplicateLongName  = errors.New("argument with long name already defined")
	ErrEmptyName          = errors.New("argument names must not be empty")
	ErrUndefinedArgument  = errors.New("undefined argument")
)

// Coercion errors classify why raw text could not be turned into a typed value.
var (
	ErrMalformed      = errors.New("malformed value")
	ErrOutOfRange     = errors.New("value out of range")
	ErrInvalidFormat  = errors.New("invalid pair format")
	ErrNotImplemented = errors.New("no conversion implemented")
	ErrTypeMismatch   = errors.New("invalid type")
	ErrEmptyJoin      = errors.New("join requires at least one part")
)

// FmtErrorWithString wraps a sentinel error with a detail string
const FmtErrorWithString = "%w: %s"

// Error is a classified error with a pre-formatted message. Kind is one of the sentinel errors declared
// in this package, so callers can test it with errors.Is.
type Error struct {
	Kind    error
	Message string
}

// NewError returns an Error of the given kind
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}

	return e.Message
}

// Unwrap returns the kind of the error
func (e *Error) Unwrap() error {
	return e.Kind
}
