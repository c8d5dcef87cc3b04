package tests

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alanalzi/jalin-alam-project/internal/config"
	"github.com/alanalzi/jalin-alam-project/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	h := handler.NewUploadHandler(&config.Config{
		UploadDir:     dir,
		UploadBaseURL: "/uploads",
	})

	r := gin.New()
	r.POST("/api/upload", h.Upload)
	return r, dir
}

func multipartRequest(t *testing.T, field string, filenames ...string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range filenames {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadImagesField(t *testing.T) {
	r, dir := uploadRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "images", "photo1.jpg", "photo2.png"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		URLs []string `json:"urls"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.URLs, 2)
	for _, url := range resp.URLs {
		assert.True(t, strings.HasPrefix(url, "/uploads/"), url)
		// Stored under a generated name, original extension kept.
		stored := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
		_, err := os.Stat(stored)
		assert.NoError(t, err)
	}
	assert.True(t, strings.HasSuffix(resp.URLs[0], ".jpg"))
	assert.True(t, strings.HasSuffix(resp.URLs[1], ".png"))
}

func TestUploadLegacyFileField(t *testing.T) {
	r, _ := uploadRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "file", "scan.jpeg"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/"))
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	r, dir := uploadRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "images", "malware.exe"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was written.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadEmptyForm(t *testing.T) {
	r, _ := uploadRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
