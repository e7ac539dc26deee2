package integration_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/imageprocessor"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/test/helpers"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestProfilePhotoUploadURLIsServed(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841500001", true)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/upload/profile-photo", token, []helpers.MultipartFile{
		{Field: "file", Name: "me.png", ContentType: "image/png", Content: pngBytes(t, 100, 100)},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.URL)

	// The URL handed back to clients must resolve against the same server.
	fileRes, err := http.Get(ts.Server.URL + resp.URL)
	require.NoError(t, err)
	defer fileRes.Body.Close()
	assert.Equal(t, http.StatusOK, fileRes.StatusCode, "upload URL %s must be served", resp.URL)

	served, err := io.ReadAll(fileRes.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, served)
}

func TestOversizedProfilePhotoIsDownscaled(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841500002", true)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/upload/profile-photo", token, []helpers.MultipartFile{
		{Field: "file", Name: "big.png", ContentType: "image/png", Content: pngBytes(t, 2400, 1200)},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	fileRes, err := http.Get(ts.Server.URL + resp.URL)
	require.NoError(t, err)
	defer fileRes.Body.Close()
	require.Equal(t, http.StatusOK, fileRes.StatusCode)

	served, err := io.ReadAll(fileRes.Body)
	require.NoError(t, err)
	w, h, err := imageprocessor.Dimensions(bytes.NewReader(served))
	require.NoError(t, err)
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)
}

func TestNIDUploadRejectsNonImagePayload(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841500003", true)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/upload/nid-photos", token, []helpers.MultipartFile{
		{Field: "files", Name: "nid.png", ContentType: "image/png", Content: []byte("not an image")},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "INVALID_FILE_TYPE")
}
