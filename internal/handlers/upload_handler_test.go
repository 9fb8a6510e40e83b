package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/backend/internal/config"
)

type stubStore struct {
	uploaded []string
	fail     bool
}

func (s *stubStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	if s.fail {
		return io.ErrUnexpectedEOF
	}
	s.uploaded = append(s.uploaded, key)
	return nil
}

func (s *stubStore) Remove(ctx context.Context, keys []string) error { return nil }

func (s *stubStore) PublicURL(key string) string {
	return "https://cdn.example.com/assets/" + key
}

func (s *stubStore) ExtractKey(rawURL string) string {
	return strings.TrimPrefix(rawURL, "https://cdn.example.com/assets/")
}

func newUploadRouter(t *testing.T, store *stubStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		UploadMaxFileSize:  1024,
		UploadAllowedMimes: []string{"image/png", "image/svg+xml"},
	}
	handler := NewUploadHandler(store, cfg)
	router := gin.New()
	router.POST("/upload", handler.Upload)
	return router
}

// pngBytes opens with the PNG signature so content sniffing agrees with
// the declared type.
func pngBytes(pad int) []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, pad)...)
}

type uploadResponse struct {
	Data map[string]struct {
		Success   bool   `json:"success"`
		Path      string `json:"path"`
		PublicURL string `json:"publicUrl"`
		Message   string `json:"message"`
	} `json:"data"`
}

func addFilePart(t *testing.T, writer *multipart.Writer, field, filename, mime string, content []byte) {
	t.Helper()
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", mime)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
}

func postUpload(t *testing.T, router *gin.Engine, buf *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/upload", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadReturnsPerFieldResults(t *testing.T) {
	store := &stubStore{}
	router := newUploadRouter(t, store)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	addFilePart(t, writer, "primaryImage", "avatar.png", "image/png", pngBytes(16))
	require.NoError(t, writer.Close())

	rec := postUpload(t, router, &buf, writer.FormDataContentType())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.uploaded, 1)
	assert.True(t, strings.HasSuffix(store.uploaded[0], "-avatar.png"))

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	result := resp.Data["primaryImage"]
	assert.True(t, result.Success)
	assert.Equal(t, store.uploaded[0], result.Path)
	assert.Equal(t, store.PublicURL(store.uploaded[0]), result.PublicURL)
}

func TestUploadBadFileDoesNotSinkBatch(t *testing.T) {
	store := &stubStore{}
	router := newUploadRouter(t, store)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	addFilePart(t, writer, "cover", "cover.png", "image/png", pngBytes(16))
	addFilePart(t, writer, "doc", "notes.pdf", "application/pdf", []byte("%PDF-"))
	addFilePart(t, writer, "huge", "big.png", "image/png", pngBytes(2048))
	require.NoError(t, writer.Close())

	rec := postUpload(t, router, &buf, writer.FormDataContentType())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Data["cover"].Success)
	assert.False(t, resp.Data["doc"].Success)
	assert.Contains(t, resp.Data["doc"].Message, "Unsupported file type")
	assert.False(t, resp.Data["huge"].Success)
	assert.Contains(t, resp.Data["huge"].Message, "too large")

	// only the good file hit storage
	require.Len(t, store.uploaded, 1)
}

func TestUploadWithoutFilesRejected(t *testing.T) {
	store := &stubStore{}
	router := newUploadRouter(t, store)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("note", "no files here"))
	require.NoError(t, writer.Close())

	rec := postUpload(t, router, &buf, writer.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadRejectsMislabeledContent(t *testing.T) {
	store := &stubStore{}
	router := newUploadRouter(t, store)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	// script bytes behind an image content type must not reach storage
	addFilePart(t, writer, "image", "payload.png", "image/png", []byte("#!/bin/sh\nrm -rf /\n"))
	require.NoError(t, writer.Close())

	rec := postUpload(t, router, &buf, writer.FormDataContentType())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.uploaded)

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Data["image"].Success)
	assert.Contains(t, resp.Data["image"].Message, "Unsupported file type")
}

func TestUploadAcceptsSVG(t *testing.T) {
	store := &stubStore{}
	router := newUploadRouter(t, store)

	svg := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"/>`)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	addFilePart(t, writer, "logo", "logo.svg", "image/svg+xml", svg)
	require.NoError(t, writer.Close())

	rec := postUpload(t, router, &buf, writer.FormDataContentType())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Data["logo"].Success)
	require.Len(t, store.uploaded, 1)
}

func TestUploadStorageFailureReportedPerField(t *testing.T) {
	store := &stubStore{fail: true}
	router := newUploadRouter(t, store)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	addFilePart(t, writer, "image", "avatar.png", "image/png", pngBytes(16))
	require.NoError(t, writer.Close())

	rec := postUpload(t, router, &buf, writer.FormDataContentType())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Data["image"].Success)
	assert.Contains(t, resp.Data["image"].Message, "Failed to store")
}
