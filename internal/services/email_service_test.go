package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.Config{
		SMTPUsername: "relay@example.com",
		SMTPFrom:     "portfolio@example.com",
		ContactTo:    "owner@example.com",
	})
}

func TestComposeMessagePlain(t *testing.T) {
	svc := newTestEmailService()
	input := models.ContactInput{Name: "Visitor", Email: "visitor@example.com", Message: "Hello there"}

	msg := svc.composeMessage("Project inquiry", input, "Name: Visitor\n\nHello there\n", nil)

	assert.Contains(t, msg, "From: portfolio@example.com")
	assert.Contains(t, msg, "To: owner@example.com")
	assert.Contains(t, msg, "Reply-To: Visitor <visitor@example.com>")
	assert.Contains(t, msg, "Subject: Project inquiry")
	assert.Contains(t, msg, "Content-Type: text/plain")
	assert.NotContains(t, msg, "multipart/mixed")
	assert.Contains(t, msg, "Hello there")
}

func TestComposeMessageWithAttachment(t *testing.T) {
	svc := newTestEmailService()
	input := models.ContactInput{Name: "Visitor", Email: "visitor@example.com", Message: "See attached"}
	attachment := &EmailAttachment{
		Filename:    "brief.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.7 fake"),
	}

	msg := svc.composeMessage("Brief", input, "See attached", attachment)

	assert.Contains(t, msg, "multipart/mixed")
	assert.Contains(t, msg, `filename="brief.pdf"`)
	assert.Contains(t, msg, "Content-Transfer-Encoding: base64")
	// closing boundary present
	assert.True(t, strings.Contains(msg, "--devfolio-contact-boundary--"))
}

func TestSendContactMessageUnconfigured(t *testing.T) {
	svc := NewEmailService(&config.Config{})
	res := svc.SendContactMessage(models.ContactInput{Name: "V", Email: "v@example.com", Message: "Hello"}, nil)
	assert.Equal(t, 500, res.Status)
}
