package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models/chat"
)

var (
	ErrChatNotFound    = errors.New("chat not found")
	ErrMessageNotFound = errors.New("message not found")
)

type ChatRepository interface {
	FindOrCreateByPair(a, b string, bookingID *string) (*chat.Chat, error)
	FindByID(id string) (*chat.Chat, error)
	FindByUser(uid string) ([]chat.Chat, error)
	AddMessage(message *chat.Message) error
	FindMessages(chatID string) ([]chat.Message, error)
	MarkRead(chatID, readerID string) error
	Delete(id string) error
}

type ChatRepositoryImpl struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &ChatRepositoryImpl{db: db}
}

// FindOrCreateByPair returns the chat for a participant pair, creating it on
// first use. The pair is normalized so the same two users always map to the
// same row no matter who initiates.
func (r *ChatRepositoryImpl) FindOrCreateByPair(a, b string, bookingID *string) (*chat.Chat, error) {
	p1, p2 := chat.NormalizePair(a, b)

	var existing chat.Chat
	err := r.db.Where("participant1 = ? AND participant2 = ?", p1, p2).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := chat.Chat{
		Participant1: p1,
		Participant2: p2,
		BookingID:    bookingID,
	}
	if err := r.db.Create(&created).Error; err != nil {
		// Lost a create race against the unique pair index, reread.
		var won chat.Chat
		if ferr := r.db.Where("participant1 = ? AND participant2 = ?", p1, p2).First(&won).Error; ferr == nil {
			return &won, nil
		}
		return nil, err
	}
	return &created, nil
}

func (r *ChatRepositoryImpl) FindByID(id string) (*chat.Chat, error) {
	var c chat.Chat
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ChatRepositoryImpl) FindByUser(uid string) ([]chat.Chat, error) {
	var chats []chat.Chat
	err := r.db.Where("participant1 = ? OR participant2 = ?", uid, uid).
		Order("updated_at DESC").
		Find(&chats).Error
	return chats, err
}

func (r *ChatRepositoryImpl) AddMessage(message *chat.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&chat.Chat{}).
			Where("id = ?", message.ChatID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *ChatRepositoryImpl) FindMessages(chatID string) ([]chat.Message, error) {
	var messages []chat.Message
	err := r.db.Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// MarkRead flags every message the reader has received but not yet read.
// Messages the reader sent are left alone.
func (r *ChatRepositoryImpl) MarkRead(chatID, readerID string) error {
	now := time.Now()
	return r.db.Model(&chat.Message{}).
		Where("chat_id = ? AND sender_id <> ? AND is_read = ?", chatID, readerID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		}).Error
}

func (r *ChatRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", id).Delete(&chat.Message{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&chat.Chat{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrChatNotFound
		}
		return nil
	})
}
