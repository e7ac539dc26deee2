package dto

import "time"

// CreateBookingRequest is an employer hiring a worker against one of the
// worker's offers. Title, start date and agreed rate are mandatory; the
// clients pre-validate the same three fields before the request ever leaves
// the device.
type CreateBookingRequest struct {
	WorkerFirebaseUID string     `json:"workerFirebaseUid" validate:"required"`
	WorkerJobOfferID  string     `json:"workerJobOfferId" validate:"required"`
	JobTitle          string     `json:"jobTitle" validate:"required,max=150"`
	JobDescription    string     `json:"jobDescription" validate:"omitempty,max=5000"`
	StartDate         *time.Time `json:"startDate" validate:"required"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	WorkDuration      string     `json:"workDuration" validate:"omitempty,max=100"`
	AgreedRate        float64    `json:"agreedRate" validate:"required,gt=0"`
	RateType          string     `json:"rateType" validate:"omitempty,is-rate-type"`
	TotalAmount       *float64   `json:"totalAmount,omitempty" validate:"omitempty,gt=0"`
	Area              string     `json:"area" validate:"omitempty,max=100"`
	District          string     `json:"district" validate:"omitempty,max=100"`
	Notes             string     `json:"notes" validate:"omitempty,max=2000"`
	PaymentMethod     string     `json:"paymentMethod" validate:"omitempty,is-payment-method"`
}

// UpdateBookingStatusRequest carries a worker's decision on a pending
// booking. Only accepted and rejected are reachable through this request;
// the later stages are admin driven.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// AdminBookingStatusRequest lets the admin panel move a booking through any
// legal transition, including in-progress and completed.
type AdminBookingStatusRequest struct {
	Status string `json:"status" validate:"required,is-booking-status"`
}
