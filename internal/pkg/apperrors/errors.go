package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidInput     = errors.New("invalid input")
	ErrBadRequest       = errors.New("bad request")

	// Referential integrity errors
	ErrIntegrityViolation = errors.New("referential integrity violation")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Identity resolution: the authenticated user has no linked
	// student or teacher profile row.
	ErrNoProfile = errors.New("no profile linked to this account")
)

// Catalog errors
var (
	ErrAcademicYearNotFound      = errors.New("academic year not found")
	ErrAcademicYearAlreadyExists = errors.New("academic year with this label already exists")
	ErrSemesterNotFound          = errors.New("semester not found")
	ErrBranchNotFound            = errors.New("branch not found")
	ErrBranchAlreadyExists       = errors.New("branch with this name or code already exists")
	ErrDivisionNotFound          = errors.New("division not found")
)

// Person errors
var (
	ErrStudentNotFound         = errors.New("student not found")
	ErrStudentAlreadyExists    = errors.New("student with this id already exists")
	ErrTeacherNotFound         = errors.New("teacher not found")
	ErrEmployeeIDAlreadyExists = errors.New("teacher with this employee id already exists")
	ErrUserAlreadyLinked       = errors.New("user account already linked to a profile")
)

// Enrollment & activity errors
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrGradeNotFound      = errors.New("grade not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNotEnrolled        = errors.New("student not enrolled in course")
	ErrAlreadyEnrolled    = errors.New("student already enrolled in course")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewInvalidInputError creates a new custom error for rejected request input
func NewInvalidInputError(message string) error {
	return &CustomError{
		Err:     ErrInvalidInput,
		Message: message,
	}
}

// NewIntegrityViolationError creates a new custom error for broken relational invariants
func NewIntegrityViolationError(message string) error {
	return &CustomError{
		Err:     ErrIntegrityViolation,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
