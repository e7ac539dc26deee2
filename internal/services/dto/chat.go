package dto

import (
	"time"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models/chat"
)

// CreateChatRequest opens (or reopens) the channel between two users. The
// call is idempotent: the same pair always resolves to the same chat.
type CreateChatRequest struct {
	Participant1 string  `json:"participant1" validate:"required"`
	Participant2 string  `json:"participant2" validate:"required"`
	BookingID    *string `json:"bookingId,omitempty"`
}

// SendMessageRequest posts one message. Text is trimmed server-side and
// capped at 1000 characters to match the client-side rule. SenderID is
// carried for wire compatibility and must match the authenticated caller.
type SendMessageRequest struct {
	SenderID string `json:"senderId" validate:"omitempty"`
	Text     string `json:"text" validate:"required"`
}

// MarkReadRequest acknowledges receipt of the other side's messages.
type MarkReadRequest struct {
	FirebaseUID string `json:"firebaseUid" validate:"omitempty"`
}

// ChatResponse is the channel header without its message history.
type ChatResponse struct {
	ID           string    `json:"id"`
	Participant1 string    `json:"participant1"`
	Participant2 string    `json:"participant2"`
	BookingID    *string   `json:"bookingId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MessageResponse is one chat message as the polling clients consume it.
type MessageResponse struct {
	ID        string     `json:"id"`
	ChatID    string     `json:"chatId"`
	SenderID  string     `json:"senderId"`
	Text      string     `json:"text"`
	IsRead    bool       `json:"isRead"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

func ToChatResponse(c *chat.Chat) ChatResponse {
	return ChatResponse{
		ID:           c.ID,
		Participant1: c.Participant1,
		Participant2: c.Participant2,
		BookingID:    c.BookingID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ToMessageResponse(m *chat.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		ChatID:    m.ChatID,
		SenderID:  m.SenderID,
		Text:      m.Text,
		IsRead:    m.IsRead,
		ReadAt:    m.ReadAt,
		Timestamp: m.CreatedAt,
	}
}

func ToMessageResponses(msgs []chat.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, ToMessageResponse(&msgs[i]))
	}
	return out
}
