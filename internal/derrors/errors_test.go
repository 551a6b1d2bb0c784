package derrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidFilterError(t *testing.T) {
	err := NewInvalidFilterError("Priority", "LessThan", "LessThan requires exactly one value for field 'Priority'")

	assert.Equal(t, InvalidFilterCode, err.Code())
	assert.Equal(t, "Priority", err.Field)
	assert.Equal(t, "LessThan", err.Operator)
	assert.Contains(t, err.Error(), "exactly one value")
	assert.Nil(t, errors.Unwrap(err))

	var target *InvalidFilterError
	wrapped := fmt.Errorf("filter 2: %w", err)
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "Priority", target.Field)
}

func TestConfigurationError(t *testing.T) {
	cause := fmt.Errorf("invalid YAML")
	err := NewConfigurationError("/path/to/filters.yml", "failed to parse filter file", cause)

	assert.Equal(t, "CONFIG_ERROR", err.Code())
	assert.Equal(t, "/path/to/filters.yml", err.Path)
	assert.Contains(t, err.Error(), "failed to parse filter file")
	assert.Contains(t, err.Error(), "invalid YAML")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestValidationError(t *testing.T) {
	cause := fmt.Errorf("invalid format")
	err := NewValidationError("CreatedAt", "cannot parse date-time", cause)

	assert.Equal(t, "VALIDATION_ERROR", err.Code())
	assert.Equal(t, "CreatedAt", err.Field)
	assert.Contains(t, err.Error(), "cannot parse date-time")
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("field", "unknown field 'Colour' for entity 'ticket'")

	assert.Equal(t, "NOT_FOUND", err.Code())
	assert.Equal(t, "field", err.Resource)
	assert.Contains(t, err.Error(), "Colour")
	assert.Nil(t, errors.Unwrap(err))
}

func TestGraphshErrorInterface(t *testing.T) {
	var errs []GraphshError
	errs = append(errs,
		NewInvalidFilterError("f", "Equals", "msg"),
		NewConfigurationError("/path", "msg", nil),
		NewValidationError("f", "msg", nil),
		NewNotFoundError("entity", "msg"),
	)

	for _, err := range errs {
		assert.NotEmpty(t, err.Code())
		assert.Equal(t, "msg", err.Error())
	}
}
