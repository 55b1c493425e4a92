// Package auth implements credential hashing and bearer-token issuance and
// verification for the userhub server.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when an empty secret is offered for hashing.
var ErrEmptyPassword = errors.New("empty password")

// HashPassword derives a salted, one-way bcrypt hash from the raw secret.
// Two calls with the same secret produce different hashes; both verify.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

// CheckPassword reports whether password matches hash. bcrypt performs the
// comparison in constant time. A malformed hash verifies as false rather
// than erroring.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
