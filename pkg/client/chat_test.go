package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatStub serves one chat with an in-memory message list.
type chatStub struct {
	mu       sync.Mutex
	messages []Message
	requests int32
}

func (s *chatStub) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.requests, 1)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/chats":
			fmt.Fprint(w, `{"success":true,"chat":{"id":"chat-1","participant1":"emp-1","participant2":"wkr-1"}}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/chats/chat-1":
			s.mu.Lock()
			payload, _ := json.Marshal(s.messages)
			s.mu.Unlock()
			fmt.Fprintf(w, `{"success":true,"messages":%s}`, payload)
		case r.Method == http.MethodPost && r.URL.Path == "/api/chats/chat-1/messages":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			s.mu.Lock()
			msg := Message{
				ID:        fmt.Sprintf("msg-%d", len(s.messages)+1),
				ChatID:    "chat-1",
				SenderID:  body["senderId"],
				Text:      body["text"],
				Timestamp: time.Now(),
			}
			s.messages = append(s.messages, msg)
			payload, _ := json.Marshal(msg)
			s.mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			fmt.Fprintf(w, `{"success":true,"message":%s}`, payload)
		case r.Method == http.MethodPatch && r.URL.Path == "/api/chats/chat-1/read":
			fmt.Fprint(w, `{"success":true,"message":"Messages marked read"}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestOpenChatIdempotent(t *testing.T) {
	stub := &chatStub{}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	c := NewClient(server.URL)

	first, err := OpenChat(context.Background(), c, "emp-1", "wkr-1", nil)
	require.NoError(t, err)

	// Same pair in the opposite order lands on the same chat.
	second, err := OpenChat(context.Background(), c, "wkr-1", "emp-1", nil)
	require.NoError(t, err)

	assert.Equal(t, first.ChatID(), second.ChatID())
}

func TestSendMessageWhitespaceIsLocalNoOp(t *testing.T) {
	stub := &chatStub{}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	session, err := OpenChat(context.Background(), NewClient(server.URL), "emp-1", "wkr-1", nil)
	require.NoError(t, err)
	before := atomic.LoadInt32(&stub.requests)

	for _, text := range []string{"", "   ", "\n\t  \n"} {
		require.NoError(t, session.SendMessage(context.Background(), text))
	}

	assert.Equal(t, before, atomic.LoadInt32(&stub.requests), "whitespace-only sends must not hit the network")
}

func TestSendMessageTrimsAndSendsVerbatim(t *testing.T) {
	stub := &chatStub{}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	session, err := OpenChat(context.Background(), NewClient(server.URL), "emp-1", "wkr-1", nil)
	require.NoError(t, err)

	require.NoError(t, session.SendMessage(context.Background(), "  namaste, is the rate negotiable?  "))

	require.Len(t, stub.messages, 1)
	assert.Equal(t, "namaste, is the rate negotiable?", stub.messages[0].Text)
	assert.Equal(t, "emp-1", stub.messages[0].SenderID)

	// Local list was refetched after the send.
	require.Len(t, session.Messages(), 1)
	assert.Equal(t, "namaste, is the rate negotiable?", session.Messages()[0].Text)
}

func TestSendMessageRejectsOverlongLocally(t *testing.T) {
	stub := &chatStub{}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	session, err := OpenChat(context.Background(), NewClient(server.URL), "emp-1", "wkr-1", nil)
	require.NoError(t, err)
	before := atomic.LoadInt32(&stub.requests)

	err = session.SendMessage(context.Background(), strings.Repeat("क", MaxMessageLength+1))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "MESSAGE_TOO_LONG", apiErr.Code)
	assert.Equal(t, before, atomic.LoadInt32(&stub.requests))

	// Exactly at the cap goes through.
	require.NoError(t, session.SendMessage(context.Background(), strings.Repeat("क", MaxMessageLength)))
	require.Len(t, stub.messages, 1)
}

func TestPollReplacesListAndStopsOnCancel(t *testing.T) {
	stub := &chatStub{}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	session, err := OpenChat(context.Background(), NewClient(server.URL), "emp-1", "wkr-1", nil)
	require.NoError(t, err)
	session.interval = 10 * time.Millisecond

	var callbacks int32
	session.OnMessages = func(msgs []Message) {
		atomic.AddInt32(&callbacks, 1)
	}

	stub.mu.Lock()
	stub.messages = []Message{{ID: "msg-1", ChatID: "chat-1", SenderID: "wkr-1", Text: "ready tomorrow"}}
	stub.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		session.Poll(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&callbacks) > 0
	}, time.Second, 5*time.Millisecond)

	require.Len(t, session.Messages(), 1)
	assert.Equal(t, "ready tomorrow", session.Messages()[0].Text)

	cancel()
	<-done

	after := atomic.LoadInt32(&callbacks)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&callbacks), "no callbacks may fire after cancellation")
}
