package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testimonial struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	AuthorProfession string    `gorm:"not null" json:"authorProfession"`
	CompanyName      string    `gorm:"not null" json:"companyName"`
	Image            string    `gorm:"size:1024" json:"image"`
	ProjectTitle     string    `gorm:"not null" json:"projectTitle"`
	Platform         string    `gorm:"not null" json:"platform"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	Message          string    `gorm:"type:text;not null" json:"message"`
	Rating           float64   `json:"rating"` // 0..5
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
