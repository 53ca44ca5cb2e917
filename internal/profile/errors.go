// Package profile provides functionality to load and validate candidate data collections.
package profile

import (
	"fmt"
	"strings"
)

// Violation describes a single failed validation check at a specific field
type Violation struct {
	Document string
	Field    string
	Message  string
}

// ValidationError reports every violation found in the candidate data, not
// just the first. It is fatal: a profile that fails validation is never used.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("candidate data validation failed (%d violations):\n", len(e.Violations)))
	for i, v := range e.Violations {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s: %s\n", i+1, v.Document, v.Field, v.Message))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// add appends a violation
func (e *ValidationError) add(document, field, message string) {
	e.Violations = append(e.Violations, Violation{Document: document, Field: field, Message: message})
}

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
