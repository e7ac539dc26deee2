package auth

import (
	"crypto/rand"
	"math/big"
	"regexp"
)

// nepaliMobile matches NTC/Ncell mobile numbers, with or without the
// +977 country prefix.
var nepaliMobile = regexp.MustCompile(`^(\+977)?9[78]\d{8}$`)

// ValidNepaliMobile reports whether phone is a well-formed Nepali mobile
// number.
func ValidNepaliMobile(phone string) bool {
	return nepaliMobile.MatchString(phone)
}

// NormalizePhone strips the +977 prefix so each number has one stored form.
func NormalizePhone(phone string) string {
	if len(phone) > 4 && phone[:4] == "+977" {
		return phone[4:]
	}
	return phone
}

// GenerateOTP returns a random numeric code of the given length using
// crypto/rand. Leading zeros are allowed.
func GenerateOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
