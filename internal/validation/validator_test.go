package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	assert.True(t, validator.IsNonEmptyString("topic"))
	assert.True(t, validator.IsNonEmptyString("  topic  "))
	assert.False(t, validator.IsNonEmptyString(""))
	assert.False(t, validator.IsNonEmptyString("   "))
}

func TestValidator_IsValidStringLength(t *testing.T) {
	validator := NewValidator()

	assert.True(t, validator.IsValidStringLength("abc", 1, 5))
	assert.True(t, validator.IsValidStringLength("  abc  ", 3, 3))
	assert.False(t, validator.IsValidStringLength("", 1, 5))
	assert.False(t, validator.IsValidStringLength("abcdef", 1, 5))
}

func TestValidator_IsValidDate(t *testing.T) {
	validator := NewValidator()

	assert.True(t, validator.IsValidDate("2026-04-01"))
	assert.False(t, validator.IsValidDate("01-04-2026"))
	assert.False(t, validator.IsValidDate("April 1st"))
	assert.False(t, validator.IsValidDate(""))
}

func TestValidator_IsValidClock(t *testing.T) {
	validator := NewValidator()

	assert.True(t, validator.IsValidClock("09:30"))
	assert.True(t, validator.IsValidClock("23:59"))
	assert.False(t, validator.IsValidClock("25:00"))
	assert.False(t, validator.IsValidClock("9am"))
}

func TestValidator_IsValidProgress(t *testing.T) {
	validator := NewValidator()

	assert.True(t, validator.IsValidProgress(0))
	assert.True(t, validator.IsValidProgress(100))
	assert.False(t, validator.IsValidProgress(-1))
	assert.False(t, validator.IsValidProgress(101))
}

func TestValidator_IsValidTaskID(t *testing.T) {
	validator := NewValidator()

	assert.True(t, validator.IsValidTaskID(1))
	assert.False(t, validator.IsValidTaskID(0))
	assert.False(t, validator.IsValidTaskID(-5))
}
