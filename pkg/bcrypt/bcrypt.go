package bcrypt

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 10

// HashCode hashes a one-time code before it is stored. OTP codes are the
// only secret this system keeps, so they get the same treatment passwords
// would.
func HashCode(code string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}
	return string(hashedBytes), nil
}

// CompareCode checks a plain code against its stored hash.
func CompareCode(hashedCode, code string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(code))
}
