// Package auth implements salted password hashing for the local account.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const saltBytes = 16

// HashPassword returns a salted hash in the form "<salt>:<hex digest>".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	saltHex := hex.EncodeToString(salt)
	return saltHex + ":" + digest(saltHex, password), nil
}

// CheckPassword verifies a password against a stored "<salt>:<hex digest>"
// hash. Malformed stored values never match.
func CheckPassword(stored, password string) bool {
	parts := strings.SplitN(stored, ":", 2)
	if len(parts) != 2 {
		return false
	}

	expected := digest(parts[0], password)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(parts[1])) == 1
}

func digest(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}
