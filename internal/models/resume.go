package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Resume is a container row; all of its data lives in the owned
// education and experience collections.
type Resume struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Education  []Education  `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"education"`
	Experience []Experience `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"experience"`
}

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type Education struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"resumeId"`
	Degree      string    `gorm:"not null" json:"degree"`
	Institution string    `gorm:"not null" json:"institution"`
	CGPA        float64   `json:"cgpa"`
	Desc        string    `gorm:"type:text" json:"desc"`
	StartYear   string    `gorm:"size:8" json:"startYear"`
	EndYear     string    `gorm:"size:8" json:"endYear"` // four digits or "Present"
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type Experience struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"resumeId"`
	Profession string         `gorm:"not null" json:"profession"`
	Company    string         `gorm:"not null" json:"company"`
	Desc       string         `gorm:"type:text" json:"desc"`
	Technology pq.StringArray `gorm:"type:text[]" json:"technology"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
