package utils

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is used when generating the admin password hash.
const DefaultBcryptCost = 12

// HashPassword returns bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// LooksLikeBcrypt reports whether hash has the shape of a bcrypt hash.
// Useful for diagnosing deployments where the $ signs in the hash were
// eaten by shell or dotenv quoting.
func LooksLikeBcrypt(hash string) bool {
	if len(hash) != 60 {
		return false
	}
	switch {
	case hash[:4] == "$2a$", hash[:4] == "$2b$", hash[:4] == "$2y$":
		return true
	}
	return false
}
