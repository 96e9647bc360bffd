package auth

import "golang.org/x/crypto/bcrypt"

// passwordHashCost is the bcrypt work factor for newly stored
// credentials. Raising it only affects hashes created afterwards.
const passwordHashCost = 12

// HashPassword derives the bcrypt hash stored for an account password.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored hash.
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
