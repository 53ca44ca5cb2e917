// Package assemble builds the final resume document from a finished
// selection.
package assemble

import "strings"

// IncompleteProfileError reports that the profile's metadata cannot head a
// resume: the candidate has no name or no way to be contacted. It is fatal;
// a resume without a reachable owner is useless no matter how good the
// content.
type IncompleteProfileError struct {
	Missing []string
}

func (e *IncompleteProfileError) Error() string {
	return "profile metadata incomplete: missing " + strings.Join(e.Missing, ", ")
}
