package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a starmap error code.
type ErrorCode string

const (
	ErrConfig         ErrorCode = "CONFIG"          // missing or malformed configuration
	ErrConnection     ErrorCode = "CONNECTION"      // catalog unreachable or misauthenticated
	ErrQuery          ErrorCode = "QUERY"           // statement rejected (schema mismatch)
	ErrData           ErrorCode = "DATA"            // row could not be scanned
	ErrIO             ErrorCode = "IO"              // output file could not be written
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // bad CLI input
	ErrCancelled      ErrorCode = "CANCELLED"
	ErrInternal       ErrorCode = "INTERNAL"
)

// StarmapError represents a structured error with code, message and details.
type StarmapError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface.
func (e *StarmapError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *StarmapError) Unwrap() error {
	return e.Err
}

// NewConfig creates an error for missing or invalid configuration.
func NewConfig(msg string, missing ...string) *StarmapError {
	e := &StarmapError{
		Code:    ErrConfig,
		Message: msg,
	}
	if len(missing) > 0 {
		e.Details = map[string]any{"missing": missing}
	}
	return e
}

// NewConnection creates an error for a catalog that cannot be reached.
func NewConnection(driver string, err error) *StarmapError {
	return &StarmapError{
		Code:    ErrConnection,
		Message: fmt.Sprintf("cannot connect to %s catalog", driver),
		Details: map[string]any{"driver": driver},
		Err:     err,
	}
}

// NewQuery creates an error for a rejected catalog statement.
func NewQuery(err error) *StarmapError {
	return &StarmapError{
		Code:    ErrQuery,
		Message: "catalog query failed",
		Err:     err,
	}
}

// NewData creates an error for a row that does not match the expected schema.
func NewData(row int, err error) *StarmapError {
	return &StarmapError{
		Code:    ErrData,
		Message: fmt.Sprintf("cannot read catalog row %d", row),
		Details: map[string]any{"row": row},
		Err:     err,
	}
}

// NewIO creates an error for a failed filesystem operation on path.
func NewIO(path string, err error) *StarmapError {
	return &StarmapError{
		Code:    ErrIO,
		Message: fmt.Sprintf("cannot write %s", path),
		Details: map[string]any{"path": path},
		Err:     err,
	}
}

// NewInvalidRequest creates an error for invalid command-line input.
func NewInvalidRequest(msg string) *StarmapError {
	return &StarmapError{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewCancelled creates an error for an operation interrupted by its context.
func NewCancelled(operation string) *StarmapError {
	return &StarmapError{
		Code:    ErrCancelled,
		Message: fmt.Sprintf("%s cancelled", operation),
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *StarmapError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &StarmapError{
		Code:    ErrInternal,
		Message: msg,
	}
}

// Is checks if err (or anything it wraps) is a StarmapError with the given code.
func Is(err error, code ErrorCode) bool {
	var sErr *StarmapError
	if stderrors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}
