package optimize

import "fmt"

// UnavailableError reports that the optimization service could not be used at
// all. Callers treat it as a warning and keep the unoptimized text; it never
// aborts a curation run.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
