package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes. Every failure barrel reports maps to one of these.
const (
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// ErrConfig covers invalid invocation parameters and base/out
	// directories that are missing or not directories.
	ErrConfig ErrorCode = "CONFIG"

	// ErrNaming is raised when a component file name cannot be turned
	// into an exported identifier.
	ErrNaming ErrorCode = "NAMING"

	// ErrIO covers read and write failures against the filesystem.
	ErrIO ErrorCode = "IO"
)

// DetailPath is the detail key holding the offending path.
const DetailPath = "path"

// BarrelError represents a structured error with code and details
type BarrelError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BarrelError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BarrelError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a BarrelError with the same code
func (e *BarrelError) Is(target error) bool {
	var targetErr *BarrelError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BarrelError with the given code and message
func New(code ErrorCode, message string) *BarrelError {
	return &BarrelError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BarrelError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BarrelError {
	return &BarrelError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BarrelError
func Wrap(err error, code ErrorCode, message string) *BarrelError {
	if err == nil {
		return nil
	}
	return &BarrelError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BarrelError {
	if err == nil {
		return nil
	}
	return &BarrelError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BarrelError) WithDetail(key string, value interface{}) *BarrelError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithPath records the offending path
func (e *BarrelError) WithPath(path string) *BarrelError {
	return e.WithDetail(DetailPath, path)
}

// EnsurePath records path on the first BarrelError in err's chain unless it
// already names one. Other errors are returned unchanged.
func EnsurePath(err error, path string) error {
	var barrelErr *BarrelError
	if errors.As(err, &barrelErr) && GetPath(barrelErr) == "" {
		barrelErr.WithPath(path)
	}
	return err
}

// Describe returns err's message followed by the offending path, unless the
// message already names it.
func Describe(err error) string {
	msg := err.Error()
	if path := GetPath(err); path != "" && !strings.Contains(msg, path) {
		msg += " (" + path + ")"
	}
	return msg
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var barrelErr *BarrelError
	if errors.As(err, &barrelErr) {
		return barrelErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BarrelError
func GetErrorCode(err error) ErrorCode {
	var barrelErr *BarrelError
	if errors.As(err, &barrelErr) {
		return barrelErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BarrelError
func GetErrorDetails(err error) map[string]interface{} {
	var barrelErr *BarrelError
	if errors.As(err, &barrelErr) {
		return barrelErr.Details
	}
	return nil
}

// GetPath returns the offending path recorded on err, if any
func GetPath(err error) string {
	details := GetErrorDetails(err)
	if details == nil {
		return ""
	}
	path, _ := details[DetailPath].(string)
	return path
}
