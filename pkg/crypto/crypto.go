package crypto

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// HashPassKey hashes a passphrase with bcrypt
func HashPassKey(passKey string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(passKey), cost)
	return string(bytes), err
}

// CheckPassKeyHash compares a passphrase against its bcrypt hash
func CheckPassKeyHash(passKey, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passKey)) == nil
}

// ConstantTimeEquals compares two secrets without leaking timing
func ConstantTimeEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
