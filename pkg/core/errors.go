// Package core provides the application configuration and component wiring.
package core

import (
	"errors"
	"fmt"
)

// Predefined errors for common failure scenarios.
var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates that a connection to a backend failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnknownProvider indicates an unrecognized provider name in the
	// configuration.
	ErrUnknownProvider = errors.New("unknown provider")
)

// AgentError wraps errors with operation context.
//
// It provides additional context about which operation failed,
// making error messages more informative for debugging.
//
// Example:
//
//	err := &AgentError{
//	    Op:  "NewApp",
//	    Err: ErrInvalidConfig,
//	}
//	// Error() returns: "staragent: NewApp: invalid configuration"
type AgentError struct {
	// Op is the name of the operation that failed.
	Op string

	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message.
//
// The format is: "staragent: <Op>: <Err>"
func (e *AgentError) Error() string {
	return fmt.Sprintf("staragent: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
//
// This allows using errors.Is() and errors.As() with AgentError.
func (e *AgentError) Unwrap() error {
	return e.Err
}

// NewAgentError creates a new AgentError wrapping the given error.
//
// If err is nil, returns nil. This allows safe error wrapping:
//
//	if err != nil {
//	    return NewAgentError("Chat", err)
//	}
func NewAgentError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &AgentError{
		Op:  op,
		Err: err,
	}
}
