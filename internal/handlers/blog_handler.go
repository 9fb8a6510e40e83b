package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type BlogHandler struct {
	blogService *services.BlogService
}

func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	res := h.blogService.List(c.Request.Context(), page)
	c.JSON(res.Status, res)
}

func (h *BlogHandler) Get(c *gin.Context) {
	res := h.blogService.Get(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status, res)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var input models.BlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.blogService.Create(c.Request.Context(), input)
	c.JSON(res.Status, res)
}

func (h *BlogHandler) Update(c *gin.Context) {
	var input models.BlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.blogService.Update(c.Request.Context(), c.Param("id"), input)
	c.JSON(res.Status, res)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	res := h.blogService.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status, res)
}
