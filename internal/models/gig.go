package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Package is one pricing tier of a gig.
type Package struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Desc      string         `gorm:"type:text;not null" json:"desc"`
	Price     float64        `gorm:"not null" json:"price"`
	Features  pq.StringArray `gorm:"type:text[]" json:"features"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Gig ties the three pricing tiers together. Package rows keep their
// IDs across gig updates; only their fields are rewritten.
type Gig struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrderLink  string    `gorm:"size:1024" json:"orderLink"`
	BasicID    uuid.UUID `gorm:"type:uuid;not null" json:"basicId"`
	StandardID uuid.UUID `gorm:"type:uuid;not null" json:"standardId"`
	PremiumID  uuid.UUID `gorm:"type:uuid;not null" json:"premiumId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relations
	Basic    *Package `gorm:"foreignKey:BasicID" json:"basic,omitempty"`
	Standard *Package `gorm:"foreignKey:StandardID" json:"standard,omitempty"`
	Premium  *Package `gorm:"foreignKey:PremiumID" json:"premium,omitempty"`
}

func (g *Gig) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
