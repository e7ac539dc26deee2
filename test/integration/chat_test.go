package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmodels "github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models/chat"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/test/helpers"
)

func createChat(t *testing.T, ts *helpers.TestServer, token, p1, p2 string) string {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodPost, "/api/chats", token, map[string]interface{}{
		"participant1": p1,
		"participant2": p2,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Chat struct {
			ID string `json:"id"`
		} `json:"chat"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.Chat.ID)
	return resp.Chat.ID
}

func TestChatCreateIsIdempotentAcrossParticipantOrder(t *testing.T) {
	ts := GetTestServer(t)
	employerToken, employer := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeEmployer, "9841300001", true)
	workerToken, worker := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841300002", true)

	first := createChat(t, ts, employerToken, employer.FirebaseUID, worker.FirebaseUID)
	second := createChat(t, ts, workerToken, worker.FirebaseUID, employer.FirebaseUID)

	assert.Equal(t, first, second)
}

func TestChatMessageFlowAndReadReceipts(t *testing.T) {
	ts := GetTestServer(t)
	employerToken, employer := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeEmployer, "9841300003", true)
	workerToken, worker := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841300004", true)

	chatID := createChat(t, ts, employerToken, employer.FirebaseUID, worker.FirebaseUID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/chats/"+chatID+"/messages", employerToken, map[string]interface{}{
		"text": "  Namaste, are you free this Saturday?  ",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	// Leading and trailing whitespace is stripped before storage.
	assert.Contains(t, body, "Namaste, are you free this Saturday?")
	assert.NotContains(t, body, "  Namaste")

	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/chats/"+chatID+"/read", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var msgs []chatmodels.Message
	require.NoError(t, ts.DB.Where("chat_id = ?", chatID).Find(&msgs).Error)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].IsRead)

	// Reading your own chat never marks your own messages.
	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/chats/"+chatID+"/read", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/chats/"+chatID, workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Namaste")
}

func TestChatRejectsEmptyAndOverlongMessages(t *testing.T) {
	ts := GetTestServer(t)
	employerToken, employer := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeEmployer, "9841300005", true)
	_, worker := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841300006", true)

	chatID := createChat(t, ts, employerToken, employer.FirebaseUID, worker.FirebaseUID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/chats/"+chatID+"/messages", employerToken, map[string]interface{}{
		"text": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "EMPTY_MESSAGE")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/chats/"+chatID+"/messages", employerToken, map[string]interface{}{
		"text": strings.Repeat("क", 1001),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "MESSAGE_TOO_LONG")
}

func TestOutsiderCannotReadChat(t *testing.T) {
	ts := GetTestServer(t)
	employerToken, employer := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeEmployer, "9841300007", true)
	_, worker := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841300008", true)
	outsiderToken, _ := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841300009", true)

	chatID := createChat(t, ts, employerToken, employer.FirebaseUID, worker.FirebaseUID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/chats/"+chatID, outsiderToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "NOT_A_PARTICIPANT")
}
