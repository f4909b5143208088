package validation

// UserValidator provides validation for user account operations
type UserValidator struct {
	validator *Validator
}

// NewUserValidator creates a new user validator
func NewUserValidator() *UserValidator {
	return &UserValidator{
		validator: NewValidator(),
	}
}

// ValidateCredentials validates a username and password pair
func (uv *UserValidator) ValidateCredentials(username, password string) error {
	validationError := NewValidationError()

	trimmed := uv.validator.TrimAndValidateString(username)
	if !uv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("username")
	} else if !uv.validator.IsValidStringLength(trimmed, 1, 64) {
		validationError.AddInvalidLengthError("username", trimmed, 1, 64)
	}

	if password == "" {
		validationError.AddRequiredError("password")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
