package utils

import (
	"fmt"
	"math/rand"
)

// Visually ambiguous characters (0, O, 1, I) are excluded so codes survive
// being read aloud or typed from a printout.
const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const keyCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRegistrationCode returns a code in the form REG-XXXXXX.
func GenerateRegistrationCode() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return "REG-" + string(b)
}

// GenerateOTP returns a 6-digit numeric one-time code.
func GenerateOTP() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// GenerateRandomString returns an alphanumeric string, used for blob keys.
func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = keyCharset[rand.Intn(len(keyCharset))]
	}
	return string(b)
}
