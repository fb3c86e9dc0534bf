package server

import (
	"errors"
	"fmt"
)

// FailureKind classifies why the server could not start or keep running.
type FailureKind int

const (
	// FailureUnexpected is anything not anticipated by the startup sequence.
	FailureUnexpected FailureKind = iota
	// FailureAddrInUse means another process already holds the port.
	FailureAddrInUse
	// FailureStartup covers every other bind, root or configuration failure.
	FailureStartup
	// FailureServe means the accept loop failed after the server was up.
	FailureServe
)

func (k FailureKind) String() string {
	switch k {
	case FailureAddrInUse:
		return "addr_in_use"
	case FailureStartup:
		return "startup"
	case FailureServe:
		return "serve"
	default:
		return "unexpected"
	}
}

// StartupError is the single error type the process boundary translates into
// a message and an exit status.
type StartupError struct {
	Kind FailureKind
	Port int
	Err  error
}

func (e *StartupError) Error() string {
	if e.Kind == FailureAddrInUse {
		return fmt.Sprintf("port %d is already in use", e.Port)
	}
	return e.Err.Error()
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// Startup wraps err as a FailureStartup error.
func Startup(err error) error {
	return &StartupError{Kind: FailureStartup, Err: err}
}

// Classify returns err as a *StartupError, wrapping unknown errors as unexpected.
func Classify(err error) *StartupError {
	var se *StartupError
	if errors.As(err, &se) {
		return se
	}
	return &StartupError{Kind: FailureUnexpected, Err: err}
}
