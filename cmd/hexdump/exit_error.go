package main

import (
	"errors"
	"fmt"
)

// Error kinds reported by the command. Each maps to a process exit code.
var (
	ErrInvalidInputPath = errors.New("invalid input file path")
	ErrCannotOpenInput  = errors.New("cannot open input file for reading")
	ErrWriteOutput      = errors.New("cannot write to standard output")
	ErrArgumentParsing  = errors.New("invalid arguments")
)

// Process exit codes.
const (
	ExitOK              = 0
	ExitInvalidInput    = 1
	ExitCannotOpenInput = 2
	ExitWriteOutput     = 3
	ExitArgumentParsing = 4
)

// ExitError carries an exit code alongside the error that caused it.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// newExitError wraps cause with the sentinel kind and its exit code.
func newExitError(kind error, cause error) *ExitError {
	return &ExitError{Code: exitCodeFor(kind), Err: fmt.Errorf("%w: %w", kind, cause)}
}

func exitCodeFor(kind error) int {
	switch {
	case errors.Is(kind, ErrInvalidInputPath):
		return ExitInvalidInput
	case errors.Is(kind, ErrCannotOpenInput):
		return ExitCannotOpenInput
	case errors.Is(kind, ErrWriteOutput):
		return ExitWriteOutput
	default:
		return ExitArgumentParsing
	}
}

// exitCode returns the process exit code for err. Errors that did not pass
// through newExitError come from cobra's own argument handling.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitArgumentParsing
}
