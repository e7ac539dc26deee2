package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidNepaliMobile(t *testing.T) {
	valid := []string{
		"9841234567",
		"+9779841234567",
		"9801234567",
		"9761234567",
	}
	for _, phone := range valid {
		assert.True(t, ValidNepaliMobile(phone), "expected %s to be valid", phone)
	}

	invalid := []string{
		"",
		"984123456",     // too short
		"98412345678",   // too long
		"9941234567",    // bad operator prefix
		"1841234567",    // not a mobile prefix
		"+9769841234567", // wrong country code
		"98412345ab",
	}
	for _, phone := range invalid {
		assert.False(t, ValidNepaliMobile(phone), "expected %s to be invalid", phone)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "9841234567", NormalizePhone("+9779841234567"))
	assert.Equal(t, "9841234567", NormalizePhone("9841234567"))
}

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP(6)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}

	// Two consecutive codes colliding is possible but vanishingly unlikely;
	// mostly this guards against a constant generator.
	other, err := GenerateOTP(6)
	assert.NoError(t, err)
	if code == other {
		third, _ := GenerateOTP(6)
		assert.NotEqual(t, code, third)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
