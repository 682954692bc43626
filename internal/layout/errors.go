// Package layout implements the furniture layout derivation engine: the
// constraint validator, style layout strategies, row-height resolver,
// component assembler, compartment builder, and material grouping. Every
// function in this package is pure and deterministic; identical inputs
// always yield identical output, so the pipeline can be rerun on every
// configuration edit and called concurrently without locking.
package layout

import "fmt"

// Violation reports one manufacturing-constraint failure. Violations are
// data, not panics: the caller decides whether to block the edit, clamp,
// or warn. The engine only reports, never corrects.
type Violation struct {
	Field   string `json:"field"`
	Limit   string `json:"limit"`
	Actual  string `json:"actual"`
	Message string `json:"message"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s (limit %s, got %s)", v.Field, v.Message, v.Limit, v.Actual)
}

// violationf builds a violation with formatted limit and actual values.
func violationf(field, message string, limit, actual interface{}) Violation {
	return Violation{
		Field:   field,
		Limit:   fmt.Sprint(limit),
		Actual:  fmt.Sprint(actual),
		Message: message,
	}
}

// DomainError marks a caller contract violation: the assembler or
// compartment builder was invoked with an unvalidated or internally
// inconsistent configuration. It indicates a bug in the calling layer,
// not a user-facing condition, and is never silently recovered.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("layout: %s: %s", e.Op, e.Reason)
}

func domainErrorf(op, format string, args ...interface{}) *DomainError {
	return &DomainError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
