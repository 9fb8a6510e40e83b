package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile holds the site owner's identity and the SEO/meta image set.
// Image fields store full public object-store URLs, or empty when unset.
type Profile struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Phone           string    `gorm:"not null" json:"phone"`
	Email           string    `gorm:"not null" json:"email"`
	Address         string    `gorm:"not null" json:"address"`
	Profession      string    `gorm:"not null" json:"profession"`
	ProfessionBio   string    `gorm:"type:text;not null" json:"professionBio"`
	WelcomeMessage  string    `gorm:"size:64;not null" json:"welcomeMessage"`
	MetaDescription string    `gorm:"type:text" json:"metaDescription"`
	PrimaryImage    string    `gorm:"size:1024" json:"primaryImage"`
	SecondaryImage  string    `gorm:"size:1024" json:"secondaryImage"`
	MetaImage       string    `gorm:"size:1024" json:"metaImage"`
	OpenGraphImage  string    `gorm:"size:1024" json:"openGraphImage"`
	TwitterImage    string    `gorm:"size:1024" json:"twitterImage"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Relations
	SocialMedia []SocialLink `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"socialMedia"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// SocialLink is an owned child of Profile; the whole set is replaced on
// every profile update, so rows never keep their IDs across updates.
type SocialLink struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProfileID    uuid.UUID `gorm:"type:uuid;not null;index" json:"profileId"`
	PlatformName string    `gorm:"not null" json:"platformName"`
	PlatformLink string    `gorm:"size:1024;not null" json:"platformLink"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s *SocialLink) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
