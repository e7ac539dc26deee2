package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/test/helpers"
)

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	ts := GetTestServer(t)
	workerToken, _ := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841400001", true)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/admin/users", workerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAdminListUsersFilters(t *testing.T) {
	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeAdmin, "9841400002", true)
	helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841400003", false)
	helpers.CreateUserWithToken(t, ts.DB, models.UserTypeEmployer, "9841400004", true)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/admin/users?userType=worker&isVerified=false", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Users []struct {
			UserType   string `json:"userType"`
			IsVerified bool   `json:"isVerified"`
		} `json:"users"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.Users)
	for _, u := range resp.Users {
		assert.Equal(t, "worker", u.UserType)
		assert.False(t, u.IsVerified)
	}
}

func TestAdminVerifyUnlocksMarketplace(t *testing.T) {
	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeAdmin, "9841400005", true)
	workerToken, worker := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841400006", false)

	offerBody := map[string]interface{}{
		"title":       "Tile work",
		"description": "Bathroom tiling",
		"area":        "Bhaktapur",
		"district":    "Bhaktapur",
		"rate":        1100,
		"rateType":    "daily",
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/worker-job-offers/create", workerToken, offerBody)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
	require.Contains(t, body, "ACCOUNT_UNDER_REVIEW")

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/admin/users/"+worker.FirebaseUID+"/verify", adminToken, map[string]interface{}{
		"isVerified": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"isVerified":true`)

	// Same request, same token, now allowed.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/worker-job-offers/create", workerToken, offerBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)
}

func TestAdminCanRevokeVerification(t *testing.T) {
	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeAdmin, "9841400007", true)
	_, employer := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeEmployer, "9841400008", true)

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/admin/users/"+employer.FirebaseUID+"/verify", adminToken, map[string]interface{}{
		"isVerified": false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var fresh models.User
	require.NoError(t, ts.DB.Where("firebase_uid = ?", employer.FirebaseUID).First(&fresh).Error)
	assert.False(t, fresh.IsVerified)
}
