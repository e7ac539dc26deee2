package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/auth"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
)

// registerCustomRules installs the marketplace-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Registration failing is a startup bug, not a runtime condition.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("nepali-phone", validateNepaliPhone)
	mustRegister("is-user-type", validateUserType)
	mustRegister("is-booking-status", validateBookingStatus)
	mustRegister("is-rate-type", validateRateType)
	mustRegister("is-payment-method", validatePaymentMethod)
}

// Empty values pass every rule below; 'required' handles presence.

func validateNepaliPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return auth.ValidNepaliMobile(value)
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserType(value) {
	case models.UserTypeWorker, models.UserTypeEmployer:
		return true
	default:
		return false
	}
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidBookingStatus(models.BookingStatus(value))
}

func validateRateType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidRateType(models.RateType(value))
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidPaymentMethod(models.PaymentMethod(value))
}
