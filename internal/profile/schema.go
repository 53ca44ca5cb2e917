// Package profile provides functionality to load and validate candidate data collections.
package profile

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// validateSchema validates raw document content against the embedded schema
// for the named document, appending one violation per schema error.
func validateSchema(verr *ValidationError, document string, content []byte) error {
	schemaBytes, err := schemaFS.ReadFile(fmt.Sprintf("schemas/%s.schema.json", document))
	if err != nil {
		return &LoadError{Message: fmt.Sprintf("missing embedded schema for %s", document), Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(content),
	)
	if err != nil {
		// Malformed JSON document: report as a violation rather than aborting,
		// so the remaining documents still get checked.
		verr.add(document, "(root)", fmt.Sprintf("invalid JSON: %v", err))
		return nil
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.add(document, field, desc.Description())
	}
	return nil
}
