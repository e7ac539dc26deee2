package dto

// CreateJobOfferRequest posts a listing on either side of the marketplace.
// The owner side is taken from the route, not the payload.
type CreateJobOfferRequest struct {
	Title        string   `json:"title" validate:"required,max=150"`
	Description  string   `json:"description" validate:"omitempty,max=5000"`
	Skills       []string `json:"skills" validate:"omitempty,dive,max=50"`
	Area         string   `json:"area" validate:"required,max=100"`
	District     string   `json:"district" validate:"required,max=100"`
	Rate         float64  `json:"rate" validate:"required,gt=0"`
	RateType     string   `json:"rateType" validate:"required,is-rate-type"`
	PaymentType  string   `json:"paymentType" validate:"omitempty,is-payment-method"`
	Availability string   `json:"availability" validate:"omitempty,max=200"`
}

// UpdateJobOfferRequest edits an existing listing. Zero values are skipped,
// so partially filled payloads only touch what they name.
type UpdateJobOfferRequest struct {
	Title        *string   `json:"title,omitempty" validate:"omitempty,max=150"`
	Description  *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	Skills       *[]string `json:"skills,omitempty" validate:"omitempty,dive,max=50"`
	Area         *string   `json:"area,omitempty" validate:"omitempty,max=100"`
	District     *string   `json:"district,omitempty" validate:"omitempty,max=100"`
	Rate         *float64  `json:"rate,omitempty" validate:"omitempty,gt=0"`
	RateType     *string   `json:"rateType,omitempty" validate:"omitempty,is-rate-type"`
	PaymentType  *string   `json:"paymentType,omitempty" validate:"omitempty,is-payment-method"`
	Availability *string   `json:"availability,omitempty" validate:"omitempty,max=200"`
}

// ApplyToJobOfferRequest is a worker applying to an employer posting.
type ApplyToJobOfferRequest struct {
	Message string `json:"message" validate:"omitempty,max=1000"`
}
