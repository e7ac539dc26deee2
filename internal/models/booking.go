package models

import "time"

// Booking is an employer hiring a worker against one of the worker's job
// offers. Title, description, rate and rate type are snapshotted from the
// offer at creation time and never re-synced.
type Booking struct {
	BaseModel
	EmployerFirebaseUID string `gorm:"index;not null" json:"employerFirebaseUid"`
	WorkerFirebaseUID   string `gorm:"index;not null" json:"workerFirebaseUid"`
	WorkerJobOfferID    string `gorm:"index;not null" json:"workerJobOfferId"`

	JobTitle       string     `gorm:"not null" json:"jobTitle"`
	JobDescription string     `gorm:"type:text" json:"jobDescription"`
	StartDate      time.Time  `gorm:"not null" json:"startDate"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	WorkDuration   string     `json:"workDuration"`

	AgreedRate  float64  `gorm:"not null" json:"agreedRate"`
	RateType    RateType `gorm:"type:varchar(20)" json:"rateType"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`

	Area     string `json:"area"`
	District string `json:"district"`
	Notes    string `json:"notes,omitempty"`

	PaymentMethod PaymentMethod `gorm:"type:varchar(20)" json:"paymentMethod"`
	Status        BookingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
}
