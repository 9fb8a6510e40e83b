package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
	"github.com/devfolio/backend/pkg/validation"
)

type ContactHandler struct {
	emailService *services.EmailService
	cfg          *config.Config
}

func NewContactHandler(emailService *services.EmailService, cfg *config.Config) *ContactHandler {
	return &ContactHandler{emailService: emailService, cfg: cfg}
}

// Send relays a visitor message, with an optional file attachment, to
// the site owner.
func (h *ContactHandler) Send(c *gin.Context) {
	var input models.ContactInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}

	input.Name = validation.SanitizeString(input.Name)
	input.Subject = validation.SanitizeString(input.Subject)
	input.Message = validation.SanitizeString(input.Message)

	var attachment *services.EmailAttachment
	if file, err := c.FormFile("file"); err == nil {
		if file.Size > h.cfg.UploadMaxFileSize {
			c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": "Attachment too large"})
			return
		}
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "message": "Failed to read attachment"})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "message": "Failed to read attachment"})
			return
		}
		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		attachment = &services.EmailAttachment{
			Filename:    file.Filename,
			ContentType: contentType,
			Data:        data,
		}
	}

	res := h.emailService.SendContactMessage(input, attachment)
	c.JSON(res.Status, res)
}
