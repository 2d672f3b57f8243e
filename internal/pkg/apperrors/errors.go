package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrCourseNotFound       = errors.New("course not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrStudentNotFound      = errors.New("student not found")

	// Registration business-rule errors
	ErrCapacityExceeded      = errors.New("course is full")
	ErrDuplicateRegistration = errors.New("already registered for this course")
	ErrScheduleConflict      = errors.New("schedule conflict detected")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMissing       = errors.New("access token required")

	// Validation and uniqueness errors
	ErrValidationFailed       = errors.New("validation failed")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrStudentIDAlreadyExists = errors.New("student ID already exists")
	ErrCourseCodeExists       = errors.New("course ID already exists")

	// ErrInconsistency signals that a multi-write operation failed after
	// some of its writes may have taken effect. Callers must surface it,
	// never fold it into a generic failure.
	ErrInconsistency = errors.New("state may be inconsistent, reconciliation required")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping err with a message
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}
