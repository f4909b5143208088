package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning-tracker/internal/errors"
)

func TestUserService_Register(t *testing.T) {
	t.Run("should create an account with a hashed password", func(t *testing.T) {
		repo := newTestRepo(t)
		svc := NewUserService(repo)

		user, err := svc.Register(context.Background(), "alex", "secret")

		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "alex", user.Username)
		assert.NotContains(t, user.PasswordHash, "secret")
	})

	t.Run("should reject a duplicate username", func(t *testing.T) {
		repo := newTestRepo(t)
		svc := NewUserService(repo)
		ctx := context.Background()

		_, err := svc.Register(ctx, "alex", "secret")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "alex", "other")

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})

	t.Run("should reject empty credentials", func(t *testing.T) {
		repo := newTestRepo(t)
		svc := NewUserService(repo)

		_, err := svc.Register(context.Background(), "  ", "secret")
		require.Error(t, err)

		_, err = svc.Register(context.Background(), "alex", "")
		require.Error(t, err)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	t.Run("should accept the registered password", func(t *testing.T) {
		repo := newTestRepo(t)
		svc := NewUserService(repo)
		ctx := context.Background()

		_, err := svc.Register(ctx, "alex", "secret")
		require.NoError(t, err)

		user, err := svc.Authenticate(ctx, "alex", "secret")

		require.NoError(t, err)
		assert.Equal(t, "alex", user.Username)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		repo := newTestRepo(t)
		svc := NewUserService(repo)
		ctx := context.Background()

		_, err := svc.Register(ctx, "alex", "secret")
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, "alex", "wrong")

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})

	t.Run("should reject an unknown user", func(t *testing.T) {
		repo := newTestRepo(t)
		svc := NewUserService(repo)

		_, err := svc.Authenticate(context.Background(), "nobody", "secret")

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}
