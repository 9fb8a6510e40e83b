package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/services"
)

func newContactRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// SMTP deliberately unconfigured so no message can leave the test
	cfg := &config.Config{UploadMaxFileSize: 1024}
	handler := NewContactHandler(services.NewEmailService(cfg), cfg)
	router := gin.New()
	router.POST("/contact", handler.Send)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestContactRejectsMissingFields(t *testing.T) {
	router := newContactRouter(t)

	rec := postForm(router, "/contact", url.Values{"name": {"Visitor"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactRejectsBadEmail(t *testing.T) {
	router := newContactRouter(t)

	rec := postForm(router, "/contact", url.Values{
		"name":    {"Visitor"},
		"email":   {"not-an-email"},
		"message": {"I would like to hire you"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactUnconfiguredRelayAnswers500(t *testing.T) {
	router := newContactRouter(t)

	rec := postForm(router, "/contact", url.Values{
		"name":    {"Visitor"},
		"email":   {"visitor@example.com"},
		"message": {"I would like to hire you"},
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}
