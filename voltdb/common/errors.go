package common

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Sentinel Errors
// --------------------------------------------------------------------------

var (
	// ErrAuthFailed is returned when the server rejects the credentials
	// during the login handshake.
	ErrAuthFailed = errors.New("authentication rejected by server")

	// ErrConnectionNotAvailable is returned when an operation is attempted
	// on a session whose socket no longer exists (after Shutdown or a
	// failed construction).
	ErrConnectionNotAvailable = errors.New("connection not available")
)

// --------------------------------------------------------------------------
// Error Types
// --------------------------------------------------------------------------

// ConnectionError wraps a socket-level failure (dial, read or write).
type ConnectionError struct {
	Op  string // the operation that failed, e.g. "dial", "read frame"
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error during %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// NewConnectionError creates a ConnectionError for the given operation
func NewConnectionError(op string, err error) *ConnectionError {
	return &ConnectionError{Op: op, Err: err}
}

// DecodeError reports a malformed or truncated frame.
type DecodeError struct {
	What string // what was being decoded when the data ran out or was invalid
	Err  error  // optional underlying cause
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode error: %s: %v", e.What, e.Err)
	}
	return fmt.Sprintf("decode error: %s", e.What)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NewDecodeError creates a DecodeError with a description of the failed read
func NewDecodeError(what string) *DecodeError {
	return &DecodeError{What: what}
}

// ServerError is an application-level failure reported by the server inside
// an otherwise well-formed response. It is only surfaced by the blocking
// wait helper, never by the receive loop itself.
type ServerError struct {
	Status  int8   // server status code, non-zero and != 1 (success)
	Message string // server-provided status string, may be empty
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server reported error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server reported error (status %d)", e.Status)
}
