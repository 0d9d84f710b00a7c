package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var codePattern = regexp.MustCompile(`^REG-[A-HJ-NP-Z2-9]{6}$`)

func TestGenerateRegistrationCodeFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateRegistrationCode()
		assert.Regexp(t, codePattern, code)
		for _, c := range []string{"0", "O", "1", "I"} {
			assert.NotContains(t, strings.TrimPrefix(code, "REG-"), c)
		}
	}
}

func TestGenerateOTPIsSixDigits(t *testing.T) {
	for i := 0; i < 1000; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 6)
		assert.Regexp(t, `^[0-9]{6}$`, otp)
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	assert.Len(t, GenerateRandomString(16), 16)
	assert.Len(t, GenerateRandomString(32), 32)
}
