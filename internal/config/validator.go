package config

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/graphsh/internal/schema"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
	Cause   error // error the message was taken from, if any
}

// ValidationResult contains the results of filter file validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) addError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Validate checks a filter file in three passes: syntax, JSON Schema, then
// every filter against the operator rules of its field. Later passes only run
// when the earlier ones succeed.
func Validate(path string, reg *schema.Registry, cfg *Config) (*ValidationResult, error) {
	content, err := readFilterSource(path)
	if err != nil {
		return nil, err
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return result, nil
	}

	ff, err := ParseFilterFile(path, content)
	if err != nil {
		result.addError("syntax", fmt.Sprintf("Failed to parse filter file: %v", err))
		return result, nil
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	built := ff.Build(reg, cfg.DefaultEntity, loc)
	for _, e := range built.Errors {
		result.addError(e.Field, e.Message)
	}

	return result, nil
}

// readFilterSource reads a filter file, or standard input for "-"
func readFilterSource(path string) ([]byte, error) {
	if path == StdinPath {
		return io.ReadAll(os.Stdin)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("filter file not found: %s", path)
	}
	return os.ReadFile(path)
}
