package services

import (
	"context"
	"strings"

	"learning-tracker/internal/auth"
	"learning-tracker/internal/domain"
	"learning-tracker/internal/errors"
	"learning-tracker/internal/repository/sqlite"
	"learning-tracker/internal/validation"
)

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	userValidator *validation.UserValidator
}

// NewUserService creates a new UserService instance
func NewUserService(repo sqlite.Repository) UserService {
	return &userServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		userValidator: validation.NewUserValidator(),
	}
}

// Register creates a new account. Duplicate usernames surface as
// validation errors via the unique constraint.
func (u *userServiceImpl) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if err := u.userValidator.ValidateCredentials(username, password); err != nil {
		return nil, errors.NewValidationError("invalid credentials", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "failed to hash password")
	}

	dbUser := &sqlite.User{
		Username:     strings.TrimSpace(username),
		PasswordHash: hash,
	}
	if err := u.repo.CreateUser(ctx, dbUser); err != nil {
		return nil, err
	}

	user := u.mapper.User.FromDatabase(*dbUser)
	return &user, nil
}

// Authenticate verifies a username and password pair
func (u *userServiceImpl) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if err := u.userValidator.ValidateCredentials(username, password); err != nil {
		return nil, errors.NewValidationError("invalid credentials", err)
	}

	dbUser, err := u.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(dbUser.PasswordHash, password) {
		return nil, errors.NewValidationError("incorrect password", nil)
	}

	user := u.mapper.User.FromDatabase(*dbUser)
	return &user, nil
}
