package models

import "time"

// OTPCode is a one-time phone verification code. The code itself is stored
// bcrypt-hashed; plaintext only ever leaves through the SMS provider.
type OTPCode struct {
	BaseModel
	PhoneNumber string    `gorm:"index;not null" json:"phoneNumber"`
	CodeHash    string    `gorm:"not null" json:"-"`
	ExpiresAt   time.Time `gorm:"not null" json:"expiresAt"`
	Attempts    int       `gorm:"default:0" json:"attempts"`
	Verified    bool      `gorm:"default:false" json:"verified"`
}
