// Package errors provides structured error types for remind.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Code represents a unique error code.
type Code string

// Error codes for remind.
const (
	// Setup errors
	CodeNotInitialized Code = "REMIND_NOT_INITIALIZED"
	CodeConfigInvalid  Code = "CONFIG_INVALID"

	// Task errors
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeTaskNotFound     Code = "TASK_NOT_FOUND"
	CodeTaskAlreadyDone  Code = "TASK_ALREADY_DONE"

	// Store errors
	CodeStoreCorrupt   Code = "STORE_CORRUPT"
	CodeStoreWriteFail Code = "STORE_WRITE_FAILED"
	CodePersistFailed  Code = "PERSIST_FAILED"
)

// RemindError is the structured error type for remind.
type RemindError struct {
	Code  Code
	What  string
	Why   string
	Fix   string
	Cause error
}

// Error implements the error interface.
func (e *RemindError) Error() string {
	var b strings.Builder
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString(": ")
		b.WriteString(e.Why)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *RemindError) Unwrap() error {
	return e.Cause
}

// UserMessage returns a user-friendly message for CLI output.
func (e *RemindError) UserMessage() string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString("\n\nWhy: ")
		b.WriteString(e.Why)
	}
	if e.Fix != "" {
		b.WriteString("\n\nFix: ")
		b.WriteString(e.Fix)
	}
	return b.String()
}

// Is reports whether target is a RemindError with the same code.
func (e *RemindError) Is(target error) bool {
	t, ok := target.(*RemindError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause.
func (e *RemindError) WithCause(err error) *RemindError {
	return &RemindError{
		Code:  e.Code,
		What:  e.What,
		Why:   e.Why,
		Fix:   e.Fix,
		Cause: err,
	}
}

// --- Error constructors ---

// ErrNotInitialized returns an error for a missing data directory.
func ErrNotInitialized(dir string) *RemindError {
	return &RemindError{
		Code: CodeNotInitialized,
		What: "remind is not initialized",
		Why:  fmt.Sprintf("No data directory found at %s", dir),
		Fix:  "Run 'remind init' to create the data directory and config",
	}
}

// ErrConfigInvalid returns an error for invalid configuration.
func ErrConfigInvalid(field, reason string) *RemindError {
	return &RemindError{
		Code: CodeConfigInvalid,
		What: fmt.Sprintf("invalid configuration: %s", field),
		Why:  reason,
		Fix:  "Check config.yaml and fix the invalid field",
	}
}

// ErrValidation wraps field validation failures on task input.
func ErrValidation(cause error) *RemindError {
	return &RemindError{
		Code:  CodeValidationFailed,
		What:  "task fields failed validation",
		Why:   cause.Error(),
		Fix:   "Correct the listed fields and try again",
		Cause: cause,
	}
}

// ErrTaskNotFound returns an error when a task doesn't exist.
func ErrTaskNotFound(id string) *RemindError {
	return &RemindError{
		Code: CodeTaskNotFound,
		What: fmt.Sprintf("task %s not found", id),
		Why:  "No task with this ID exists",
		Fix:  "Run 'remind list' to see available tasks",
	}
}

// ErrTaskAlreadyDone returns an error when completing a finished task.
func ErrTaskAlreadyDone(id string) *RemindError {
	return &RemindError{
		Code: CodeTaskAlreadyDone,
		What: fmt.Sprintf("task %s is already completed", id),
		Why:  "Completing a finished task would be a no-op",
		Fix:  "Nothing to do. Use 'remind list --completed' to review finished tasks",
	}
}

// ErrStoreCorrupt returns an error when persisted data is malformed.
func ErrStoreCorrupt(path string, cause error) *RemindError {
	return &RemindError{
		Code:  CodeStoreCorrupt,
		What:  "stored task data is corrupt",
		Why:   fmt.Sprintf("Could not parse %s", path),
		Fix:   "Restore the file from a backup, or move it aside and run 'remind init'",
		Cause: cause,
	}
}

// ErrStoreWrite returns an error when saving to the store fails.
func ErrStoreWrite(path string, cause error) *RemindError {
	return &RemindError{
		Code:  CodeStoreWriteFail,
		What:  "could not write task data",
		Why:   fmt.Sprintf("Saving to %s failed", path),
		Fix:   "Check disk space and permissions, then retry",
		Cause: cause,
	}
}

// ErrPersistFailed wraps a store failure during a manager mutation.
// The in-memory change is kept; only the durable copy is stale.
func ErrPersistFailed(cause error) *RemindError {
	return &RemindError{
		Code:  CodePersistFailed,
		What:  "task change was applied but could not be saved",
		Why:   "The store rejected the save; the durable copy is out of date",
		Fix:   "Retry the operation or any other mutating command to re-save",
		Cause: cause,
	}
}

// AsRemindError attempts to convert an error to a RemindError.
// Returns nil if the error is not a RemindError.
func AsRemindError(err error) *RemindError {
	var re *RemindError
	if stderrors.As(err, &re) {
		return re
	}
	return nil
}

// HasCode reports whether err is or wraps a RemindError with the given code.
func HasCode(err error, code Code) bool {
	re := AsRemindError(err)
	return re != nil && re.Code == code
}
