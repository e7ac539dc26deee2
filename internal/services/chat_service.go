package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models/chat"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/repositories"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
)

// MaxMessageLength caps chat messages, matching the client-side rule.
const MaxMessageLength = 1000

type ChatService interface {
	CreateOrGet(ctx context.Context, callerUID string, req *dto.CreateChatRequest) (*chat.Chat, error)
	ListForUser(uid string) ([]chat.Chat, error)
	GetMessages(callerUID, chatID string) ([]chat.Message, error)
	SendMessage(ctx context.Context, callerUID, chatID string, req *dto.SendMessageRequest) (*chat.Message, error)
	MarkRead(callerUID, chatID string) error
	Delete(callerUID, chatID string) error
}

type ChatServiceImpl struct {
	chatRepo repositories.ChatRepository
	userRepo repositories.UserRepository
}

func NewChatService(chatRepo repositories.ChatRepository, userRepo repositories.UserRepository) ChatService {
	return &ChatServiceImpl{chatRepo: chatRepo, userRepo: userRepo}
}

// CreateOrGet resolves the chat for a participant pair, creating it on first
// contact. The caller must be one of the two participants; repeated calls
// with the pair in either order return the same chat.
func (s *ChatServiceImpl) CreateOrGet(ctx context.Context, callerUID string, req *dto.CreateChatRequest) (*chat.Chat, error) {
	if req.Participant1 == req.Participant2 {
		return nil, apperrors.NewBadRequestError("Cannot open a chat with yourself")
	}
	if callerUID != req.Participant1 && callerUID != req.Participant2 {
		return nil, apperrors.ErrNotAParticipant
	}

	other := req.Participant1
	if other == callerUID {
		other = req.Participant2
	}
	if _, err := s.userRepo.FindByFirebaseUID(other); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	c, err := s.chatRepo.FindOrCreateByPair(req.Participant1, req.Participant2, req.BookingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return c, nil
}

func (s *ChatServiceImpl) ListForUser(uid string) ([]chat.Chat, error) {
	chats, err := s.chatRepo.FindByUser(uid)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return chats, nil
}

func (s *ChatServiceImpl) GetMessages(callerUID, chatID string) ([]chat.Message, error) {
	if _, err := s.participantChat(callerUID, chatID); err != nil {
		return nil, err
	}
	messages, err := s.chatRepo.FindMessages(chatID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}

// SendMessage trims and posts one message. Whitespace-only text is refused
// before anything touches the database, as is text over the length cap.
func (s *ChatServiceImpl) SendMessage(ctx context.Context, callerUID, chatID string, req *dto.SendMessageRequest) (*chat.Message, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperrors.ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return nil, apperrors.ErrMessageTooLong
	}

	if _, err := s.participantChat(callerUID, chatID); err != nil {
		return nil, err
	}

	message := &chat.Message{
		ChatID:   chatID,
		SenderID: callerUID,
		Text:     text,
	}
	if err := s.chatRepo.AddMessage(message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

// MarkRead flags everything the caller has received in the chat as read.
func (s *ChatServiceImpl) MarkRead(callerUID, chatID string) error {
	if _, err := s.participantChat(callerUID, chatID); err != nil {
		return err
	}
	if err := s.chatRepo.MarkRead(chatID, callerUID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Delete removes the chat and its messages. Either participant may do it.
func (s *ChatServiceImpl) Delete(callerUID, chatID string) error {
	if _, err := s.participantChat(callerUID, chatID); err != nil {
		return err
	}
	if err := s.chatRepo.Delete(chatID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ChatServiceImpl) participantChat(callerUID, chatID string) (*chat.Chat, error) {
	c, err := s.chatRepo.FindByID(chatID)
	if err != nil {
		if errors.Is(err, repositories.ErrChatNotFound) {
			return nil, apperrors.ErrChatNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if c.Participant1 != callerUID && c.Participant2 != callerUID {
		return nil, apperrors.ErrNotAParticipant
	}
	return c, nil
}
