package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidator_ValidateCredentials(t *testing.T) {
	userValidator := NewUserValidator()

	t.Run("should accept valid credentials", func(t *testing.T) {
		assert.NoError(t, userValidator.ValidateCredentials("alex", "s3cret"))
	})

	t.Run("should require a username", func(t *testing.T) {
		err := userValidator.ValidateCredentials("   ", "s3cret")
		require.Error(t, err)

		validationError, ok := err.(*ValidationError)
		require.True(t, ok)
		require.Len(t, validationError.GetFieldErrors("username"), 1)
		assert.Equal(t, ErrorTypeRequired, validationError.Errors[0].Type)
	})

	t.Run("should reject an overly long username", func(t *testing.T) {
		err := userValidator.ValidateCredentials(strings.Repeat("a", 65), "s3cret")
		require.Error(t, err)

		validationError, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeInvalidLength, validationError.Errors[0].Type)
	})

	t.Run("should require a password", func(t *testing.T) {
		err := userValidator.ValidateCredentials("alex", "")
		require.Error(t, err)

		validationError, ok := err.(*ValidationError)
		require.True(t, ok)
		require.Len(t, validationError.GetFieldErrors("password"), 1)
		assert.Equal(t, ErrorTypeRequired, validationError.Errors[0].Type)
	})
}
