package models

type UploadKind string

const (
	UploadKindProfilePhoto UploadKind = "profile-photo"
	UploadKindNIDPhoto     UploadKind = "nid-photo"
)

// Upload records a stored file so orphans can be cleaned up and per-user
// usage inspected.
type Upload struct {
	BaseModel
	OwnerFirebaseUID string     `gorm:"index;not null" json:"ownerFirebaseUid"`
	Kind             UploadKind `gorm:"type:varchar(20);not null" json:"kind"`
	Path             string     `gorm:"not null" json:"path"`
	URL              string     `json:"url"`
	ContentType      string     `json:"contentType"`
	Size             int64      `json:"size"`
}
