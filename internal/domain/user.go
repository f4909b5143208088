package domain

// User represents a registered account. The password hash has the form
// "<salt>:<hex digest>" where digest = sha256(salt ++ password).
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// IsValid checks if the user has valid data.
func (u User) IsValid() bool {
	return u.Username != "" && u.PasswordHash != ""
}
