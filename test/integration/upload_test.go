package integration_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pawmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type presignResponse struct {
	UploadID     string `json:"upload_id"`
	PresignedURL string `json:"presigned_url"`
	PublicURL    string `json:"public_url"`
	FileName     string `json:"file_name"`
}

func presignUpload(t *testing.T, ts *helpers.TestServer, token string) presignResponse {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/uploads/presign", token, map[string]interface{}{
		"file_name":    "rex.jpg",
		"content_type": "image/jpeg",
		"size":         2048,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)

	var resp presignResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	return resp
}

func TestUpload_PresignRejectsBadFiles(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginOwner(t, ts)

	// Over the 10MB limit
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/uploads/presign", token, map[string]interface{}{
		"file_name":    "huge.jpg",
		"content_type": "image/jpeg",
		"size":         11 * 1024 * 1024,
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)

	// Not an allowed MIME type
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/uploads/presign", token, map[string]interface{}{
		"file_name":    "notes.pdf",
		"content_type": "application/pdf",
		"size":         2048,
	})
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)
}

func TestUpload_CompleteRequiresStoredFile(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginOwner(t, ts)

	presigned := presignUpload(t, ts, token)
	require.NotEmpty(t, presigned.UploadID)
	require.NotEmpty(t, presigned.PresignedURL)

	// Nothing has been uploaded yet, so completion must be refused.
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/uploads/"+presigned.UploadID+"/complete", token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Simulate the client's direct upload by dropping the file into the
	// local storage backend, then complete.
	storagePath := strings.TrimPrefix(presigned.PublicURL, "/api/v1/files/")
	fullPath := filepath.Join("./uploads", storagePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	require.NoError(t, os.WriteFile(fullPath, []byte("jpeg bytes"), 0644))
	t.Cleanup(func() { os.Remove(fullPath) })

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/uploads/"+presigned.UploadID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var completed struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &completed))
	assert.Equal(t, "uploaded", completed.Status)
}

func TestUpload_OwnershipEnforced(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginOwner(t, ts)

	presigned := presignUpload(t, ts, token)

	strangerToken, _ := helpers.CreateAndLoginOwner(t, ts)
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/uploads/"+presigned.UploadID+"/complete", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/uploads/"+presigned.UploadID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestUpload_ListMine(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginOwner(t, ts)

	presignUpload(t, ts, token)
	presignUpload(t, ts, token)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/uploads", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var list struct {
		Uploads []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"uploads"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Len(t, list.Uploads, 2)
	assert.Equal(t, "pending", list.Uploads[0].Status)
}
