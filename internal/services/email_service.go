package services

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"net/smtp"
	"strings"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
)

// EmailService relays contact form submissions to the site owner's inbox.
type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// EmailAttachment is a file a visitor attached to a contact message.
type EmailAttachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SendContactMessage forwards a visitor's message. Reply-To carries the
// visitor's address so the owner can answer directly.
func (s *EmailService) SendContactMessage(input models.ContactInput, attachment *EmailAttachment) *Result {
	if s.cfg.SMTPUsername == "" || s.cfg.ContactTo == "" {
		log.Printf("WARN: contact relay not configured, dropping message from %s", input.Email)
		return serverError("Contact relay is not configured")
	}

	subject := input.Subject
	if subject == "" {
		subject = fmt.Sprintf("Portfolio contact from %s", input.Name)
	}
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", input.Name, input.Email, input.Message)

	msg := s.composeMessage(subject, input, body, attachment)

	if err := s.sendSMTP([]string{s.cfg.ContactTo}, msg); err != nil {
		log.Printf("ERROR: relay contact message: %v", err)
		return serverError("Failed to send message")
	}
	return ok("Message sent successfully", nil)
}

func (s *EmailService) composeMessage(subject string, input models.ContactInput, body string, attachment *EmailAttachment) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", s.fromAddress()))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", s.cfg.ContactTo))
	msg.WriteString(fmt.Sprintf("Reply-To: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", input.Name), input.Email))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject)))
	msg.WriteString("MIME-Version: 1.0\r\n")

	if attachment == nil {
		msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
		msg.WriteString(body)
		return msg.String()
	}

	boundary := "devfolio-contact-boundary"
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary))

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body + "\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString(fmt.Sprintf("Content-Type: %s\r\n", attachment.ContentType))
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	msg.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n\r\n", attachment.Filename))

	encoded := base64.StdEncoding.EncodeToString(attachment.Data)
	// 76-column lines per RFC 2045
	for len(encoded) > 76 {
		msg.WriteString(encoded[:76] + "\r\n")
		encoded = encoded[76:]
	}
	msg.WriteString(encoded + "\r\n")
	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return msg.String()
}

func (s *EmailService) fromAddress() string {
	if s.cfg.SMTPFrom != "" {
		return s.cfg.SMTPFrom
	}
	return s.cfg.SMTPUsername
}

// sendSMTP delivers a raw message. Port 465 gets an implicit TLS dial,
// anything else goes through STARTTLS via smtp.SendMail.
func (s *EmailService) sendSMTP(to []string, message string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	if s.cfg.SMTPPort != 465 {
		return smtp.SendMail(addr, auth, s.fromAddress(), to, []byte(message))
	}

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.SMTPHost})
	if err != nil {
		return fmt.Errorf("tls dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(s.fromAddress()); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp rcpt: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(message)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}
	return client.Quit()
}
