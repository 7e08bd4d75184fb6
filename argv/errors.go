package argv

import (
	"errors"
	"fmt"
)

// ErrorType represents error categories for parse failures.
// These categories drive exit-code mapping (see ExitCode).
type ErrorType string

const (
	ErrorTypeUnassociatedArgument ErrorType = "unassociated_argument"
	ErrorTypeEmptyVector          ErrorType = "empty_vector"
)

// Sentinels for errors.Is; a *ParseError matches the one for its Type.
var (
	ErrUnassociatedArgument = errors.New("argument is not assigned to any option")
	ErrEmptyVector          = errors.New("empty argument vector")
)

// ParseError is returned by Parse. Parse never returns a partial result
// alongside it.
type ParseError struct {
	Type    ErrorType
	Message string
	// Token is the offending argument, when there is one.
	Token string
	// Position is the index of Token in the vector passed to Parse, or -1.
	Position int
}

func (e *ParseError) Error() string {
	return e.Message
}

// Is matches the sentinel error for e.Type.
func (e *ParseError) Is(target error) bool {
	switch e.Type {
	case ErrorTypeUnassociatedArgument:
		return target == ErrUnassociatedArgument
	case ErrorTypeEmptyVector:
		return target == ErrEmptyVector
	}
	return false
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:     errType,
		Message:  message,
		Position: -1,
	}
}

func newUnassociatedError(token string, position int) *ParseError {
	return &ParseError{
		Type:     ErrorTypeUnassociatedArgument,
		Message:  fmt.Sprintf("argument %q is not assigned to any option", token),
		Token:    token,
		Position: position,
	}
}
