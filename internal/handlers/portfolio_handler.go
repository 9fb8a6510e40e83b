package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type PortfolioHandler struct {
	portfolioService *services.PortfolioService
}

func NewPortfolioHandler(portfolioService *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

func (h *PortfolioHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	res := h.portfolioService.List(c.Request.Context(), page)
	c.JSON(res.Status, res)
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var input models.PortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.portfolioService.Create(c.Request.Context(), input)
	c.JSON(res.Status, res)
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	var input models.PortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}
	res := h.portfolioService.Update(c.Request.Context(), c.Param("id"), input)
	c.JSON(res.Status, res)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	res := h.portfolioService.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status, res)
}

// React increments the public reaction counter for a project.
func (h *PortfolioHandler) React(c *gin.Context) {
	res := h.portfolioService.React(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status, res)
}
