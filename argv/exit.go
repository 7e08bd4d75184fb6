package argv

import "errors"

// Exit codes returned by ExitCode.
const (
	ExitSuccess  = 0
	ExitGeneral  = 1
	ExitMisusage = 2
)

// ExitError requests a specific process exit code from a CLI front end.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps err to a process exit code. Parse errors are usage errors;
// an *ExitError anywhere in the chain wins over the category mapping.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		switch parseErr.Type {
		case ErrorTypeUnassociatedArgument, ErrorTypeEmptyVector:
			return ExitMisusage
		}
	}

	return ExitGeneral
}
