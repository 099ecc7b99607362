package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// configSchema describes the shape of common.yaml. Validation runs against
// the JSON-converted document, so integer fields really are integers and a
// quoted "1" in user_id is rejected rather than silently coerced.
const configSchema = `{
	"type": "object",
	"required": ["variables"],
	"properties": {
		"variables": {
			"type": "object",
			"required": ["host", "user_id", "solution_id"],
			"properties": {
				"host":        {"type": "string", "minLength": 1},
				"user_id":     {"type": "integer"},
				"solution_id": {"type": "integer"},
				"username":    {"type": "string"},
				"password":    {"type": "string"}
			}
		}
	}
}`

// ValidationErrors represents a collection of validation errors
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// ValidateDocument validates a raw common.yaml document against the
// configuration schema.
func ValidateDocument(data []byte) error {
	// Decode the YAML generically and round-trip through JSON so the
	// schema validator sees JSON-native types.
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not representable as JSON: %w", err)
	}

	var jsonDoc interface{}
	if err := json.Unmarshal(jsonBytes, &jsonDoc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.json", strings.NewReader(configSchema)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("config.json")
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	if err := schema.Validate(jsonDoc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return extractValidationErrors(validationErr)
		}
		return err
	}

	return nil
}

// extractValidationErrors extracts all validation errors from a jsonschema.ValidationError
func extractValidationErrors(err *jsonschema.ValidationError) ValidationErrors {
	var errors ValidationErrors

	// Add the current error
	if err.Message != "" {
		errors = append(errors, fmt.Errorf("validation error at %s: %s", err.InstanceLocation, err.Message))
	}

	// Add all child errors
	for _, childErr := range err.Causes {
		errors = append(errors, extractValidationErrors(childErr)...)
	}

	return errors
}
