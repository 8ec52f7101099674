// Package validation provides the accumulating validation result shared by
// domain validators and the HTTP error mapper. All violated rules are
// reported together rather than failing on the first.
package validation

import "strings"

// FieldError describes a single violated rule.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Errors accumulates rule violations. A nil or empty Errors means valid.
type Errors struct {
	Violations []FieldError `json:"errors"`
}

// Add records a violation.
func (e *Errors) Add(field, code, message string) {
	e.Violations = append(e.Violations, FieldError{
		Field:   field,
		Code:    code,
		Message: message,
	})
}

// Err returns e as an error when any rule was violated, nil otherwise.
func (e *Errors) Err() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

// Error joins every violation message so callers can surface the full list.
func (e *Errors) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// New builds an Errors holding a single violation.
func New(field, code, message string) *Errors {
	e := &Errors{}
	e.Add(field, code, message)
	return e
}
