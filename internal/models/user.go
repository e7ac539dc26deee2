package models

type User struct {
	BaseModel
	// FirebaseUID is the external identity key the mobile/web clients carry.
	// Every public lookup is keyed by it, never by the row ID.
	FirebaseUID     string     `gorm:"uniqueIndex;not null" json:"firebaseUid"`
	UserType        UserType   `gorm:"type:varchar(20);not null" json:"userType"`
	DisplayName     string     `json:"displayName"`
	Email           string     `gorm:"index" json:"email,omitempty"`
	PhoneNumber     string     `gorm:"uniqueIndex" json:"phoneNumber,omitempty"`
	PasswordHash    string     `gorm:"not null" json:"-"`
	ProfileComplete bool       `gorm:"default:false" json:"profileComplete"`
	// IsVerified is flipped only by an admin action, never by the user.
	IsVerified bool       `gorm:"default:false" json:"isVerified"`
	Status     UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	WorkerProfile   *WorkerProfile   `gorm:"foreignKey:FirebaseUID;references:FirebaseUID" json:"workerProfile,omitempty"`
	EmployerProfile *EmployerProfile `gorm:"foreignKey:FirebaseUID;references:FirebaseUID" json:"employerProfile,omitempty"`
}
