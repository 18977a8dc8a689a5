package auth

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the cost factor for password hashing
const BcryptCost = 10

// HashPassword hashes a plaintext password for storage. Used when
// provisioning accounts, never on the login read path.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether a plaintext password matches a stored hash.
func CheckPassword(plain, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}
