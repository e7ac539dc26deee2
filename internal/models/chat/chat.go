package chat

import "time"

// Chat is a 1:1 channel between two users, optionally tied to a booking.
// Participant1 and Participant2 are stored in lexicographic order so the
// (pair) lookup is idempotent regardless of who opened the chat.
type Chat struct {
	ID           string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Participant1 string  `gorm:"index:idx_chat_pair,unique;not null" json:"participant1"`
	Participant2 string  `gorm:"index:idx_chat_pair,unique;not null" json:"participant2"`
	BookingID    *string `gorm:"index" json:"bookingId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Messages []Message `gorm:"foreignKey:ChatID" json:"messages"`
}

func (Chat) TableName() string {
	return "chat.chats"
}

// NormalizePair orders a participant pair into the stored form.
func NormalizePair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
