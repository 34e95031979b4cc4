package security

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash. The salt is random, so hashing
// the same password twice yields different strings; stored hashes are never
// compared to each other.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches hash. bcrypt is deliberately
// slow; callers must not hold a database transaction open around it.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
