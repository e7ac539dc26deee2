package chat

import "time"

type Message struct {
	ID        string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ChatID    string     `gorm:"index;not null" json:"chatId"`
	SenderID  string     `gorm:"index;not null" json:"senderId"`
	Text      string     `gorm:"type:text;not null" json:"text"`
	IsRead    bool       `gorm:"default:false" json:"isRead"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"timestamp"`
}

func (Message) TableName() string {
	return "chat.messages"
}
