package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Portfolio is a showcased project. React is the visitor reaction count.
type Portfolio struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Desc         string    `gorm:"type:text;not null" json:"desc"`
	Image        string    `gorm:"size:1024" json:"image"`
	React        int       `gorm:"default:1" json:"react"`
	ExternalLink string    `gorm:"size:1024" json:"externalLink"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Technology []Technology `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"technology"`
}

func (p *Portfolio) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Technology is a badge image attached to a portfolio project; the set
// is replaced wholesale on every portfolio update.
type Technology struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PortfolioID uuid.UUID `gorm:"type:uuid;not null;index" json:"portfolioId"`
	Image       string    `gorm:"size:1024;not null" json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *Technology) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
