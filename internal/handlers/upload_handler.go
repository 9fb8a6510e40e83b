package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/services"
	"github.com/devfolio/backend/pkg/validation"
)

type UploadHandler struct {
	store services.ObjectStore
	cfg   *config.Config
}

func NewUploadHandler(store services.ObjectStore, cfg *config.Config) *UploadHandler {
	return &UploadHandler{store: store, cfg: cfg}
}

// fileResult is the per-field outcome of a batch upload.
type fileResult struct {
	Success   bool   `json:"success"`
	Path      string `json:"path,omitempty"`
	PublicURL string `json:"publicUrl,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Upload accepts a multipart form and pushes every file field to the
// bucket. Each field gets its own result; one bad file never sinks the
// rest of the batch.
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": "Invalid multipart form"})
		return
	}
	if len(form.File) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": "No files provided"})
		return
	}

	results := make(map[string]fileResult)
	for field, files := range form.File {
		if len(files) == 0 {
			continue
		}
		file := files[0]

		if file.Size > h.cfg.UploadMaxFileSize {
			results[field] = fileResult{Success: false, Message: "File too large: " + file.Filename}
			continue
		}

		src, err := file.Open()
		if err != nil {
			results[field] = fileResult{Success: false, Message: "Failed to read " + file.Filename}
			continue
		}

		// sniff the leading bytes; the part header alone is client-supplied
		head := make([]byte, 512)
		n, readErr := io.ReadFull(src, head)
		if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
			src.Close()
			results[field] = fileResult{Success: false, Message: "Failed to read " + file.Filename}
			continue
		}
		head = head[:n]

		declared := file.Header.Get("Content-Type")
		if !validation.AllowedImageContent(declared, head, h.cfg.UploadAllowedMimes) {
			src.Close()
			results[field] = fileResult{Success: false, Message: "Unsupported file type: " + file.Filename}
			continue
		}

		key := services.BuildObjectKey(file.Filename)
		body := io.MultiReader(bytes.NewReader(head), src)
		uploadErr := h.store.Upload(c.Request.Context(), key, body, declared)
		src.Close()
		if uploadErr != nil {
			results[field] = fileResult{Success: false, Message: "Failed to store " + file.Filename}
			continue
		}

		results[field] = fileResult{Success: true, Path: key, PublicURL: h.store.PublicURL(key)}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "Upload processed",
		"data":    results,
	})
}
