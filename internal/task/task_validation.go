package task

import (
	"fmt"
	"strings"
	"time"
)

// Deadline layouts accepted from user input and the persisted record.
const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	TimeShortLayout = "15:04"
)

// ParseDeadline combines a date string (YYYY-MM-DD) and an optional time
// string (HH:MM or HH:MM:SS) into a local wall-clock deadline. An empty
// time means end of day, so a date-only deadline is not overdue until the
// day is over.
func ParseDeadline(dateStr, timeStr string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(dateStr), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse deadline date %q: %w", dateStr, err)
	}

	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.Local), nil
	}

	clock, err := time.ParseInLocation(TimeLayout, timeStr, time.Local)
	if err != nil {
		clock, err = time.ParseInLocation(TimeShortLayout, timeStr, time.Local)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parse deadline time %q: %w", timeStr, err)
	}

	return time.Date(d.Year(), d.Month(), d.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.Local), nil
}

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error returns a combined error message.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// ToError returns an error if there are validation errors, nil otherwise.
func (e ValidationErrors) ToError() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Validate checks all field constraints on a task.
func (t *Task) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, ValidationError{
			Field:   "title",
			Message: "must not be empty",
		})
	}

	if t.Deadline.IsZero() {
		errs = append(errs, ValidationError{
			Field:   "deadline",
			Message: "is required",
		})
	}

	if !IsValidPriority(t.Priority) {
		errs = append(errs, ValidationError{
			Field:   "priority",
			Value:   fmt.Sprintf("%d", int(t.Priority)),
			Message: "invalid priority",
		})
	}

	if strings.TrimSpace(t.Category) == "" {
		errs = append(errs, ValidationError{
			Field:   "category",
			Message: "must not be empty",
		})
	}

	if !IsValidKind(t.Kind) {
		errs = append(errs, ValidationError{
			Field:   "kind",
			Value:   string(t.Kind),
			Message: "invalid kind",
		})
	}

	if t.Kind == KindRecurring {
		if !IsValidRecurrence(t.Recurrence) {
			errs = append(errs, ValidationError{
				Field:   "recurrence",
				Value:   string(t.Recurrence),
				Message: "invalid recurrence",
			})
		}
		if t.Every < 1 {
			errs = append(errs, ValidationError{
				Field:   "every",
				Value:   fmt.Sprintf("%d", t.Every),
				Message: "must be at least 1",
			})
		}
	}

	if t.Completed != (t.CompletedAt != nil) {
		errs = append(errs, ValidationError{
			Field:   "completed_at",
			Message: "must be set if and only if the task is completed",
		})
	}

	return errs
}
