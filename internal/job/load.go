// Package job provides functionality to load and normalize parsed job descriptions.
package job

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-curator/internal/types"
)

//go:embed job.schema.json
var jobSchema []byte

// ValidationError reports every schema violation found in a job document
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("job description validation failed (%d violations):\n", len(e.Problems)))
	for i, p := range e.Problems {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, p))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Parse validates raw job description JSON (as produced by the external
// normalizer) and returns the typed, normalized job model. Skills and keywords
// come back deduplicated and case-normalized.
func Parse(content []byte) (*types.JobDescription, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(jobSchema),
		gojsonschema.NewBytesLoader(content),
	)
	if err != nil {
		return nil, &ValidationError{Problems: []string{fmt.Sprintf("invalid JSON: %v", err)}}
	}

	if !result.Valid() {
		verr := &ValidationError{Problems: make([]string, 0, len(result.Errors()))}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			verr.Problems = append(verr.Problems, fmt.Sprintf("%s: %s", field, desc.Description()))
		}
		return nil, verr
	}

	var jd types.JobDescription
	if err := json.Unmarshal(content, &jd); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job description JSON: %w", err)
	}

	jd.Normalize()
	return &jd, nil
}
