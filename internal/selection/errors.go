// Package selection chooses the subset of scored content that fits the page
// budget.
package selection

import "fmt"

// InvalidBudgetError reports a budget that can never produce a resume, such as
// zero or negative pages. It is fatal; a small-but-positive budget is not an
// error and yields a BudgetTooSmall result instead.
type InvalidBudgetError struct {
	Budget int
}

func (e *InvalidBudgetError) Error() string {
	return fmt.Sprintf("invalid line budget %d: must be positive", e.Budget)
}

// Error represents an unexpected failure during selection
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
