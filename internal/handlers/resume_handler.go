package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
	"github.com/devfolio/backend/pkg/validation"
)

type ResumeHandler struct {
	resumeService *services.ResumeService
	exportService *services.ExportService
}

func NewResumeHandler(resumeService *services.ResumeService, exportService *services.ExportService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService, exportService: exportService}
}

func (h *ResumeHandler) Get(c *gin.Context) {
	res := h.resumeService.Get(c.Request.Context())
	c.JSON(res.Status, res)
}

func (h *ResumeHandler) Create(c *gin.Context) {
	input, valid := h.bindResume(c)
	if !valid {
		return
	}
	res := h.resumeService.Create(c.Request.Context(), input)
	c.JSON(res.Status, res)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	input, valid := h.bindResume(c)
	if !valid {
		return
	}
	res := h.resumeService.Update(c.Request.Context(), c.Param("id"), input)
	c.JSON(res.Status, res)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	res := h.resumeService.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status, res)
}

// PDF renders the resume as a downloadable A4 document.
func (h *ResumeHandler) PDF(c *gin.Context) {
	pdf, err := h.exportService.ResumePDF(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "message": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// bindResume applies the end-year rule the binding tags cannot express:
// four digits or the literal "Present".
func (h *ResumeHandler) bindResume(c *gin.Context) (models.ResumeInput, bool) {
	var input models.ResumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return input, false
	}
	for _, edu := range input.Education {
		if !validation.ValidateYearOrPresent(edu.EndYear) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  http.StatusBadRequest,
				"message": "endYear must be a four digit year or Present",
			})
			return input, false
		}
	}
	return input, true
}
