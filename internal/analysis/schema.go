package analysis

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// batchSchema constrains the model's response: keywords must be strings and
// every score a number. Items outside these fields are tolerated and ignored.
const batchSchema = `{
	"type": "object",
	"required": ["keywords", "scores"],
	"properties": {
		"keywords": {
			"type": "array",
			"items": {"type": "string"}
		},
		"scores": {
			"type": "object",
			"additionalProperties": {"type": "number"}
		}
	}
}`

// validateBatchJSON checks the raw model output against batchSchema before
// it is unmarshalled, so a malformed response fails with field-level detail
// instead of a zero-valued struct.
func validateBatchJSON(raw string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(batchSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("analysis response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("analysis response failed schema validation: %v", details)
	}
	return nil
}
