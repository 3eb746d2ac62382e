package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way hash. Two calls with the same
// plaintext yield different encodings; VerifyPassword succeeds against
// either.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// bcrypt's comparison is resistant to timing side-channels.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
