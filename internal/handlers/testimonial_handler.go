package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type TestimonialHandler struct {
	testimonialService *services.TestimonialService
}

func NewTestimonialHandler(testimonialService *services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	res := h.testimonialService.List(c.Request.Context())
	c.JSON(res.Status, res)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var input models.TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.testimonialService.Create(c.Request.Context(), input)
	c.JSON(res.Status, res)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	var input models.TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.testimonialService.Update(c.Request.Context(), c.Param("id"), input)
	c.JSON(res.Status, res)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	res := h.testimonialService.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status, res)
}
