package dto

// SaveWorkerProfileRequest is the multi-step registration payload for a
// worker. Photo URLs reference files previously pushed through the upload
// endpoint.
type SaveWorkerProfileRequest struct {
	FullName     string   `json:"fullName" validate:"required,max=100"`
	PhoneNumber  string   `json:"phoneNumber" validate:"omitempty,nepali-phone"`
	Skills       []string `json:"skills" validate:"required,min=1,dive,max=50"`
	Area         string   `json:"area" validate:"required,max=100"`
	District     string   `json:"district" validate:"required,max=100"`
	Rate         float64  `json:"rate" validate:"required,gt=0"`
	RateType     string   `json:"rateType" validate:"required,is-rate-type"`
	Availability string   `json:"availability" validate:"omitempty,max=200"`
	Experience   string   `json:"experience" validate:"omitempty,max=2000"`

	ProfilePhotoURL string   `json:"profilePhotoUrl" validate:"omitempty,max=500"`
	NIDPhotoURLs    []string `json:"nidPhotoUrls" validate:"omitempty,max=5,dive,max=500"`
}

// SaveEmployerProfileRequest mirrors the worker form for the hiring side.
type SaveEmployerProfileRequest struct {
	FullName    string `json:"fullName" validate:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,nepali-phone"`
	CompanyName string `json:"companyName" validate:"omitempty,max=150"`
	Area        string `json:"area" validate:"required,max=100"`
	District    string `json:"district" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`

	ProfilePhotoURL string   `json:"profilePhotoUrl" validate:"omitempty,max=500"`
	NIDPhotoURLs    []string `json:"nidPhotoUrls" validate:"omitempty,max=5,dive,max=500"`
}

// ProfileResponse wraps whichever profile the account carries together with
// the account flags the clients gate on.
type ProfileResponse struct {
	User            UserResponse `json:"user"`
	WorkerProfile   interface{}  `json:"workerProfile,omitempty"`
	EmployerProfile interface{}  `json:"employerProfile,omitempty"`
}
