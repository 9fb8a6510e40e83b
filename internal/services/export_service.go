package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
)

// ExportService renders downloadable artifacts from stored content: the
// resume as an A4 PDF and the profile contact card as a QR PNG.
type ExportService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewExportService(db *gorm.DB, cfg *config.Config) *ExportService {
	return &ExportService{db: db, cfg: cfg}
}

// ResumePDF renders the resume with the profile's name as its heading.
func (s *ExportService) ResumePDF(ctx context.Context) ([]byte, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, err
	}

	var resume models.Resume
	err := s.db.WithContext(ctx).
		Preload("Education").
		Preload("Experience").
		First(&resume).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resume not found")
		}
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 10, profile.Name)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, profile.Profession)
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("%s | %s | %s", profile.Email, profile.Phone, profile.Address))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Experience")
	pdf.Ln(10)
	for _, exp := range resume.Experience {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 6, fmt.Sprintf("%s, %s", exp.Profession, exp.Company))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, exp.Desc, "", "L", false)
		if len(exp.Technology) > 0 {
			pdf.SetFont("Arial", "I", 9)
			pdf.MultiCell(0, 5, "Technology: "+strings.Join(exp.Technology, ", "), "", "L", false)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Education")
	pdf.Ln(10)
	for _, edu := range resume.Education {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 6, fmt.Sprintf("%s, %s (%s - %s)", edu.Degree, edu.Institution, edu.StartYear, edu.EndYear))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, fmt.Sprintf("CGPA %.2f. %s", edu.CGPA, edu.Desc), "", "L", false)
		pdf.Ln(4)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ProfileQR encodes the profile as a vCard QR so visitors can save the
// contact straight from the site.
func (s *ExportService) ProfileQR(ctx context.Context) ([]byte, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, err
	}

	vcard := fmt.Sprintf(
		"BEGIN:VCARD\r\nVERSION:3.0\r\nFN:%s\r\nTITLE:%s\r\nTEL:%s\r\nEMAIL:%s\r\nADR:;;%s\r\nEND:VCARD\r\n",
		profile.Name, profile.Profession, profile.Phone, profile.Email, profile.Address,
	)
	return qrcode.Encode(vcard, qrcode.Medium, 512)
}
