package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

func (h *SkillHandler) List(c *gin.Context) {
	res := h.skillService.List(c.Request.Context())
	c.JSON(res.Status, res)
}

func (h *SkillHandler) Save(c *gin.Context) {
	var input models.SkillsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.skillService.Save(c.Request.Context(), input)
	c.JSON(res.Status, res)
}

// Delete removes whole skill sectors by id.
func (h *SkillHandler) Delete(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.skillService.Delete(c.Request.Context(), req.IDs)
	c.JSON(res.Status, res)
}
