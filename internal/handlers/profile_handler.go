package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	exportService  *services.ExportService
}

func NewProfileHandler(profileService *services.ProfileService, exportService *services.ExportService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, exportService: exportService}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	res := h.profileService.Get(c.Request.Context())
	c.JSON(res.Status, res)
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var input models.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.profileService.Create(c.Request.Context(), input)
	c.JSON(res.Status, res)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var input models.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.profileService.Update(c.Request.Context(), c.Param("id"), input)
	c.JSON(res.Status, res)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	res := h.profileService.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status, res)
}

// QR serves the profile contact card as a PNG QR code.
func (h *ProfileHandler) QR(c *gin.Context) {
	png, err := h.exportService.ProfileQR(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "message": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
