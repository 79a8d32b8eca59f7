// Package auth handles password credentials. Session tokens live in
// the middleware package alongside their verification.
package auth

import "golang.org/x/crypto/bcrypt"

// MinPasswordLen is the minimum accepted password length at registration.
const MinPasswordLen = 6

// HashPassword derives a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
