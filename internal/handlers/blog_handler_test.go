package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Invalid payloads must be rejected before any service call, so a
// handler with no backing service is enough here.
func newBlogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewBlogHandler(nil)
	router := gin.New()
	router.POST("/blogs", handler.Create)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBlogRejectsShortTitle(t *testing.T) {
	router := newBlogRouter(t)

	rec := postJSON(router, "/blogs", `{"title":"abc","content":"long enough content here"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBlogRejectsShortContent(t *testing.T) {
	router := newBlogRouter(t)

	rec := postJSON(router, "/blogs", `{"title":"A valid title","content":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBlogRejectsBadImageURL(t *testing.T) {
	router := newBlogRouter(t)

	rec := postJSON(router, "/blogs", `{"title":"A valid title","content":"long enough content here","image":"not-a-url"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBlogRejectsMalformedJSON(t *testing.T) {
	router := newBlogRouter(t)

	rec := postJSON(router, "/blogs", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
