package error

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorCategory classifies errors by their nature and appropriate handling strategy.
type ErrorCategory int

const (
	// ErrCategoryUser represents errors caused by invalid user input or operations.
	// Examples: invalid SQL syntax, duplicate table names, unknown tables.
	// These errors are typically fixable by modifying the user's request.
	ErrCategoryUser ErrorCategory = iota

	// ErrCategorySystem represents errors requiring administrator intervention.
	// Examples: an unusable database identifier, missing files.
	ErrCategorySystem
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryUser:
		return "user"
	case ErrCategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// Error codes produced by the engine.
const (
	CodeConnectionFailure  = "CONNECTION_FAILURE"
	CodeInvalidQuery       = "INVALID_QUERY"
	CodeTableAlreadyExists = "TABLE_ALREADY_EXISTS"
	CodeTableNotFound      = "TABLE_NOT_FOUND"
	CodeInvalidInsert      = "INVALID_INSERT"
	CodeInvalidSchema      = "INVALID_SCHEMA"
)

// DBError represents a structured database error with rich context information.
type DBError struct {
	// Code is a unique identifier for this error type (e.g., "INVALID_QUERY").
	Code string

	// Category classifies the error for appropriate handling strategy.
	Category ErrorCategory

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific error instance.
	// Example: "table `users` already exists" where Message might be "relation already exists".
	Detail string

	// Hint suggests how the user might fix or work around this error.
	// Example: "Try using CREATE TABLE IF NOT EXISTS instead".
	Hint string

	// Operation identifies the database operation that was being performed when the error occurred.
	// Examples: "ParseStatement", "CreateTable", "Insert".
	Operation string

	// Component identifies the system component where the error originated.
	// Examples: "Parser", "Catalog", "Table".
	Component string

	// Cause is the underlying error that triggered this database error.
	Cause error

	// Stack contains the call stack where this error was created.
	Stack []uintptr
}

// New creates a new DBError with the specified code, category, and message.
func New(category ErrorCategory, code, message string) *DBError {
	return &DBError{
		Code:     code,
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
}

// Wrap wraps an existing error with database-specific context information.
// If the error is already a DBError, it enriches the existing error with
// operation and component context (only if not already set).
func Wrap(err error, code, operation, component string) *DBError {
	if err == nil {
		return nil
	}

	var dbErr *DBError
	if errors.As(err, &dbErr) {
		if dbErr.Operation == "" {
			dbErr.Operation = operation
		}
		if dbErr.Component == "" {
			dbErr.Component = component
		}
		return dbErr
	}

	return &DBError{
		Code:      code,
		Category:  ErrCategorySystem,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

// NewInvalidQuery reports a statement that failed to parse or validate.
// cause may be nil.
func NewInvalidQuery(message string, cause error) *DBError {
	err := New(ErrCategoryUser, CodeInvalidQuery, "invalid query")
	err.Detail = message
	err.Cause = cause
	err.Component = "Parser"
	err.Operation = "ParseStatement"
	return err
}

func NewTableAlreadyExists(name string) *DBError {
	err := New(ErrCategoryUser, CodeTableAlreadyExists, fmt.Sprintf("table `%s` already exists", name))
	err.Hint = "Try using CREATE TABLE IF NOT EXISTS instead"
	return err
}

func NewTableNotFound(name string) *DBError {
	return New(ErrCategoryUser, CodeTableNotFound, fmt.Sprintf("table `%s` does not exist", name))
}

func NewInvalidInsert(detail string) *DBError {
	err := New(ErrCategoryUser, CodeInvalidInsert, "unable to insert")
	err.Detail = detail
	return err
}

func NewInvalidSchema(detail string) *DBError {
	err := New(ErrCategoryUser, CodeInvalidSchema, "invalid table schema")
	err.Detail = detail
	return err
}

func NewConnectionFailure(detail string, cause error) *DBError {
	err := New(ErrCategorySystem, CodeConnectionFailure, "unable to connect to database")
	err.Detail = detail
	err.Cause = cause
	return err
}

// IsCode reports whether err, or any error it wraps, is a DBError with code.
func IsCode(err error, code string) bool {
	var dbErr *DBError
	if !errors.As(err, &dbErr) {
		return false
	}
	return dbErr.Code == code
}

// captureStack captures the current call stack for debugging purposes.
// It skips the first 3 frames to exclude captureStack, New/Wrap, and the
// immediate caller, focusing on the actual error origin.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the standard Go error interface
//
// The format follows the pattern:
// [ERROR_CODE] Message: Detail (operation: Operation, component: Component) caused by: underlying error
func (e *DBError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(": %s", e.Detail))
	}

	if e.Operation != "" {
		b.WriteString(fmt.Sprintf(" (operation: %s", e.Operation))
		if e.Component != "" {
			b.WriteString(fmt.Sprintf(", component: %s", e.Component))
		}
		b.WriteString(")")
	}

	if e.Cause != nil && e.Cause.Error() != e.Detail {
		b.WriteString(fmt.Sprintf(" caused by: %v", e.Cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error, enabling error chain traversal
// with Go's standard error handling functions like errors.Is and errors.As.
func (e *DBError) Unwrap() error {
	return e.Cause
}

// FormatStack returns a human-readable stack trace for debugging purposes.
func (e *DBError) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		b.WriteString(fmt.Sprintf("  %s\n    %s:%d\n",
			f.Function, f.File, f.Line))
		if !more {
			break
		}
	}

	return b.String()
}
