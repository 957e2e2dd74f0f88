package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor applied to every password hash. The
// value is fixed process-wide so stored hashes stay comparable.
const HashCost = 10

// ErrPasswordMismatch is returned by VerifyPassword when the plaintext does
// not match the stored hash, or when the stored hash is unreadable. The two
// cases are deliberately indistinguishable to callers.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword generates a salted bcrypt hash of the given plaintext. bcrypt
// picks a fresh random salt per call, so hashing the same password twice
// yields different encoded strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash
// in constant time. A malformed hash is reported as a mismatch rather than
// an internal error.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
