package handler

import (
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/alanalzi/jalin-alam-project/internal/apierror"
	"github.com/alanalzi/jalin-alam-project/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // per file

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// UploadHandler stores multipart photos under the public upload directory
// and returns web-accessible paths. Files are written fire-and-forget;
// the worker janitor reaps any that never get referenced by a record.
type UploadHandler struct{ cfg *config.Config }

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// Upload accepts the "images" multipart field (multiple files) and responds
// with {urls: [...]}. The legacy single-file "file" field responds with
// {success, url} for older dashboard screens.
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Response{Message: "Invalid multipart form: " + err.Error()})
		return
	}

	if files := form.File["images"]; len(files) > 0 {
		urls := make([]string, 0, len(files))
		for _, file := range files {
			url, err := h.saveFile(c, file)
			if err != nil {
				respondError(c, err)
				return
			}
			urls = append(urls, url)
		}
		c.JSON(http.StatusOK, gin.H{"urls": urls})
		return
	}

	if files := form.File["file"]; len(files) > 0 {
		url, err := h.saveFile(c, files[0])
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
		return
	}

	c.JSON(http.StatusBadRequest, apierror.Response{Message: "No files uploaded"})
}

func (h *UploadHandler) saveFile(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > maxUploadBytes {
		return "", apierror.Validation("File too large (max 10MB): " + file.Filename)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", apierror.Validation("Unsupported file type: " + file.Filename)
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return "", apierror.Internal("Failed to store upload", err)
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(h.cfg.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", apierror.Internal("Failed to store upload", err)
	}
	return path.Join(h.cfg.UploadBaseURL, name), nil
}
