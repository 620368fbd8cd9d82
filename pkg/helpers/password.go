package helpers

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used for stored applicant credentials.
const bcryptCost = 12

// HashPassword hashes the plain text password using bcrypt. The salt is
// random per call, so hashing the same password twice yields different strings.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
// A malformed or corrupt hash is treated as a mismatch, not an error.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
