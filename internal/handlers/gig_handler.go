package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type GigHandler struct {
	gigService *services.GigService
}

func NewGigHandler(gigService *services.GigService) *GigHandler {
	return &GigHandler{gigService: gigService}
}

func (h *GigHandler) Get(c *gin.Context) {
	res := h.gigService.Get(c.Request.Context())
	c.JSON(res.Status, res)
}

func (h *GigHandler) Create(c *gin.Context) {
	var input models.GigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.gigService.Create(c.Request.Context(), input)
	c.JSON(res.Status, res)
}

func (h *GigHandler) Update(c *gin.Context) {
	var input models.GigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.gigService.Update(c.Request.Context(), c.Param("id"), input)
	c.JSON(res.Status, res)
}

func (h *GigHandler) Delete(c *gin.Context) {
	res := h.gigService.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status, res)
}
