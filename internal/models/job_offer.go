package models

import "gorm.io/datatypes"

// JobOffer is a posting on either side of the marketplace: a worker
// advertising a service or an employer advertising a job. OwnerType
// discriminates the two; the REST surface exposes them as separate
// route families over the same table.
type JobOffer struct {
	BaseModel
	OwnerFirebaseUID string            `gorm:"index;not null" json:"ownerFirebaseUid"`
	OwnerType        JobOfferOwnerType `gorm:"type:varchar(20);not null;index" json:"ownerType"`
	Title            string            `gorm:"not null" json:"title"`
	Description      string            `gorm:"type:text" json:"description"`
	Skills           datatypes.JSON    `gorm:"type:jsonb" json:"skills"`
	Area             string            `json:"area"`
	District         string            `json:"district"`
	Rate             float64           `json:"rate"`
	RateType         RateType          `gorm:"type:varchar(20)" json:"rateType"`
	PaymentType      PaymentMethod     `gorm:"type:varchar(20)" json:"paymentType"`
	Availability     string            `json:"availability"`

	// IsApproved is flipped by the admin panel only; unapproved offers
	// never show up in the active pools.
	IsApproved bool           `gorm:"default:false" json:"isApproved"`
	Status     JobOfferStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	Applications []JobApplication `gorm:"foreignKey:JobOfferID" json:"applications,omitempty"`
}

// JobApplication is a worker applying to an employer-posted job offer.
type JobApplication struct {
	BaseModel
	JobOfferID        string `gorm:"index:idx_offer_worker,unique;not null" json:"jobOfferId"`
	WorkerFirebaseUID string `gorm:"index:idx_offer_worker,unique;not null" json:"workerFirebaseUid"`
	Message           string `json:"message"`
}
