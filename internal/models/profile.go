package models

import "gorm.io/datatypes"

// WorkerProfile is the multi-step registration data for an informal worker:
// skills, locality, rate expectation, and the identity documents the admin
// reviews before flipping User.IsVerified.
type WorkerProfile struct {
	BaseModel
	FirebaseUID string         `gorm:"uniqueIndex;not null" json:"firebaseUid"`
	FullName    string         `json:"fullName"`
	PhoneNumber string         `json:"phoneNumber"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Area        string         `json:"area"`
	District    string         `json:"district"`
	Rate        float64        `json:"rate"`
	RateType    RateType       `gorm:"type:varchar(20)" json:"rateType"`
	Availability string        `json:"availability"`
	Experience  string         `json:"experience"`

	ProfilePhotoURL string         `json:"profilePhotoUrl"`
	NIDPhotoURLs    datatypes.JSON `gorm:"type:jsonb" json:"nidPhotoUrls"`
}

// EmployerProfile mirrors WorkerProfile for the hiring side.
type EmployerProfile struct {
	BaseModel
	FirebaseUID  string `gorm:"uniqueIndex;not null" json:"firebaseUid"`
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	CompanyName  string `json:"companyName"`
	Area         string `json:"area"`
	District     string `json:"district"`
	Description  string `json:"description"`

	ProfilePhotoURL string         `json:"profilePhotoUrl"`
	NIDPhotoURLs    datatypes.JSON `gorm:"type:jsonb" json:"nidPhotoUrls"`
}
