// Package cryptox wraps the password hashing used by the reference server.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword when the candidate does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// HashCost is the bcrypt cost used for new hashes. Tests lower it.
var HashCost = bcrypt.DefaultCost

// HashPassword returns a bcrypt hash of password.
func HashPassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, HashCost)
}

// CheckPassword compares a bcrypt hash with a candidate password.
func CheckPassword(hash, candidate []byte) error {
	err := bcrypt.CompareHashAndPassword(hash, candidate)
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
