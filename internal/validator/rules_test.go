package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingStatusForm struct {
	Status string `json:"status" validate:"required,is-booking-status"`
}

type phoneForm struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,nepali-phone"`
}

type userTypeForm struct {
	UserType string `json:"userType" validate:"required,is-user-type"`
}

func TestBookingStatusRule(t *testing.T) {
	v := New()

	for _, s := range []string{"pending", "accepted", "rejected", "in-progress", "completed"} {
		assert.NoError(t, v.Validate(&bookingStatusForm{Status: s}), s)
	}

	err := v.Validate(&bookingStatusForm{Status: "cancelled"})
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "status")
}

func TestNepaliPhoneRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&phoneForm{PhoneNumber: "9841234567"}))
	assert.NoError(t, v.Validate(&phoneForm{PhoneNumber: "+9779808765432"}))
	assert.Error(t, v.Validate(&phoneForm{PhoneNumber: "12345"}))
	// required catches empty; message should name the wire field
	err := v.Validate(&phoneForm{})
	assert.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "This field is required", vErr.Errors["phoneNumber"])
}

func TestUserTypeRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&userTypeForm{UserType: "worker"}))
	assert.NoError(t, v.Validate(&userTypeForm{UserType: "employer"}))
	// admin is not a self-assignable type
	assert.Error(t, v.Validate(&userTypeForm{UserType: "admin"}))
	assert.Error(t, v.Validate(&userTypeForm{UserType: "model"}))
}
