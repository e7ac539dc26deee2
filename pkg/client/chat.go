package client

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// DefaultPollInterval is how often an open chat refetches its messages.
const DefaultPollInterval = 3 * time.Second

// MaxMessageLength mirrors the server-side cap.
const MaxMessageLength = 1000

// ChatSession is one open conversation. It polls the server on a fixed
// ticker, replaces its local message list wholesale with each response,
// and acknowledges receipt after every poll.
type ChatSession struct {
	client   *Client
	chatID   string
	selfUID  string
	interval time.Duration

	// OnMessages receives the full replacement list after every refetch.
	OnMessages func([]Message)

	mu       sync.RWMutex
	messages []Message
}

// OpenChat resolves the chat for the pair (idempotently) and returns a
// session ready to poll. Opening the same pair twice lands on the same
// server-side chat.
func OpenChat(ctx context.Context, client *Client, selfUID, otherUID string, bookingID *string) (*ChatSession, error) {
	chat, err := client.CreateOrGetChat(ctx, selfUID, otherUID, bookingID)
	if err != nil {
		return nil, err
	}
	return &ChatSession{
		client:   client,
		chatID:   chat.ID,
		selfUID:  selfUID,
		interval: DefaultPollInterval,
	}, nil
}

func (s *ChatSession) ChatID() string {
	return s.chatID
}

// Messages returns the current local copy.
func (s *ChatSession) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// SendMessage trims the text and posts it. Whitespace-only input is a
// silent no-op with no network call; over-long input is refused locally.
// On success the message list is refetched so ordering matches the server.
func (s *ChatSession) SendMessage(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if utf8.RuneCountInString(trimmed) > MaxMessageLength {
		return &APIError{StatusCode: 400, Message: "Message text must be at most 1000 characters", Code: "MESSAGE_TOO_LONG"}
	}

	if _, err := s.client.SendChatMessage(ctx, s.chatID, s.selfUID, trimmed); err != nil {
		return err
	}
	return s.refetch(ctx)
}

// MarkAsRead acknowledges everything received so far.
func (s *ChatSession) MarkAsRead(ctx context.Context) error {
	return s.client.MarkChatRead(ctx, s.chatID, s.selfUID)
}

// Poll runs the refetch loop until the context is cancelled. Each tick
// replaces the local list, fires OnMessages, then marks the chat read.
// After cancellation no further callbacks fire.
func (s *ChatSession) Poll(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			if err := s.refetch(ctx); err != nil {
				continue
			}
			_ = s.MarkAsRead(ctx)
		}
	}
}

func (s *ChatSession) refetch(ctx context.Context) error {
	messages, err := s.client.ChatMessages(ctx, s.chatID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()

	if s.OnMessages != nil {
		s.OnMessages(messages)
	}
	return nil
}
