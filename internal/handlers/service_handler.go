package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type ServiceHandler struct {
	offeringService *services.OfferingService
}

func NewServiceHandler(offeringService *services.OfferingService) *ServiceHandler {
	return &ServiceHandler{offeringService: offeringService}
}

func (h *ServiceHandler) List(c *gin.Context) {
	res := h.offeringService.List(c.Request.Context())
	c.JSON(res.Status, res)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.offeringService.Create(c.Request.Context(), input)
	c.JSON(res.Status, res)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.offeringService.Update(c.Request.Context(), c.Param("id"), input)
	c.JSON(res.Status, res)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	res := h.offeringService.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status, res)
}
