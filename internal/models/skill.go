package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillType groups skills under a sector heading ("Frontend", "Tools").
type SkillType struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Skills []Skill `gorm:"foreignKey:SkillTypeID;constraint:OnDelete:CASCADE" json:"skills"`
}

func (s *SkillType) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Skill struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SkillTypeID uuid.UUID `gorm:"type:uuid;not null;index" json:"skillTypeId"`
	Name        string    `gorm:"not null" json:"name"`
	Desc        string    `gorm:"type:text" json:"desc"`
	SkillImage  string    `gorm:"size:1024" json:"skillImage"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
