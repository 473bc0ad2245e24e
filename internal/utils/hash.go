package utils

import "golang.org/x/crypto/bcrypt"

// BcryptHasher hashes passwords with bcrypt. It satisfies
// service.PasswordHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the default cost
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash returns the salted bcrypt hash of a plaintext password
func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Compare reports whether the plaintext password matches the stored hash
func (h *BcryptHasher) Compare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
