package models

import "time"

// Input types for the entity mutation endpoints. Binding tags mirror the
// admin form contracts: image fields arrive as public object-store URLs
// because files are pushed through the upload endpoint first.

type SocialLinkInput struct {
	PlatformName string `json:"platformName" binding:"required,min=1"`
	PlatformLink string `json:"platformLink" binding:"required,url"`
}

type ProfileInput struct {
	Name            string            `json:"name" binding:"required,min=2"`
	Phone           string            `json:"phone" binding:"required,e164"`
	Email           string            `json:"email" binding:"required,email"`
	Address         string            `json:"address" binding:"required,min=1"`
	Profession      string            `json:"profession" binding:"required,min=2"`
	ProfessionBio   string            `json:"professionBio" binding:"required,min=10"`
	WelcomeMessage  string            `json:"welcomeMessage" binding:"required,min=4,max=44"`
	MetaDescription string            `json:"metaDescription"`
	PrimaryImage    string            `json:"primaryImage" binding:"required,url"`
	SecondaryImage  string            `json:"secondaryImage" binding:"required,url"`
	MetaImage       string            `json:"metaImage" binding:"omitempty,url"`
	OpenGraphImage  string            `json:"openGraphImage" binding:"omitempty,url"`
	TwitterImage    string            `json:"twitterImage" binding:"omitempty,url"`
	SocialMedia     []SocialLinkInput `json:"socialMedia" binding:"required,min=1,dive"`
}

type BlogInput struct {
	Title   string `json:"title" binding:"required,min=4"`
	Content string `json:"content" binding:"required,min=10"`
	Image   string `json:"image" binding:"omitempty,url"`
}

type EducationInput struct {
	Degree      string  `json:"degree" binding:"required,min=2"`
	Institution string  `json:"institution" binding:"required,min=2"`
	StartYear   string  `json:"startYear" binding:"required,len=4,numeric"`
	EndYear     string  `json:"endYear" binding:"required"` // four digits or "Present"
	Desc        string  `json:"desc" binding:"required,min=10"`
	CGPA        float64 `json:"cgpa" binding:"gte=0,lte=10"`
}

type ExperienceInput struct {
	Profession string         `json:"profession" binding:"required,min=4"`
	Company    string         `json:"company" binding:"required,min=2"`
	Desc       string         `json:"desc" binding:"required,min=6"`
	Technology []FeatureInput `json:"technology" binding:"dive"`
}

type ResumeInput struct {
	Education  []EducationInput  `json:"education" binding:"required,min=1,dive"`
	Experience []ExperienceInput `json:"experience" binding:"required,min=1,dive"`
}

type FeatureInput struct {
	Value string `json:"value" binding:"required,min=1"`
}

type PackageInput struct {
	Title    string         `json:"title" binding:"required,min=4"`
	Desc     string         `json:"desc" binding:"required,min=10"`
	Price    float64        `json:"price" binding:"gte=0"`
	Features []FeatureInput `json:"features" binding:"dive"`
}

type GigInput struct {
	Basic     PackageInput `json:"basic" binding:"required"`
	Standard  PackageInput `json:"standard" binding:"required"`
	Premium   PackageInput `json:"premium" binding:"required"`
	OrderLink string       `json:"orderLink" binding:"omitempty,url"`
}

type ServiceInput struct {
	Title    string         `json:"title" binding:"required,min=4"`
	Desc     string         `json:"desc" binding:"required,min=8"`
	Services []FeatureInput `json:"services" binding:"required,min=1,dive"`
}

type SkillInput struct {
	Name  string `json:"name" binding:"required,min=1"`
	Desc  string `json:"desc" binding:"required,min=1"`
	Image string `json:"image" binding:"required,url"`
}

type SkillSectorInput struct {
	Title  string       `json:"title" binding:"required,min=1"`
	Skills []SkillInput `json:"skills" binding:"required,min=1,dive"`
}

type SkillsInput struct {
	Sectors []SkillSectorInput `json:"sectors" binding:"required,min=1,dive"`
}

type TestimonialInput struct {
	Name             string    `json:"name" binding:"required,min=1"`
	AuthorProfession string    `json:"authorProfession" binding:"required,min=1"`
	CompanyName      string    `json:"companyName" binding:"required,min=1"`
	Image            string    `json:"image" binding:"required,url"`
	ProjectTitle     string    `json:"projectTitle" binding:"required,min=1"`
	Platform         string    `json:"platform" binding:"required,min=1"`
	StartDate        time.Time `json:"startDate" binding:"required"`
	EndDate          time.Time `json:"endDate" binding:"required"`
	Message          string    `json:"message" binding:"required,min=10"`
	Rating           float64   `json:"rating" binding:"gte=0,lte=5"`
}

type TechnologyInput struct {
	Image string `json:"image" binding:"required,url"`
}

// ContactInput arrives as multipart form data so a file can ride along.
type ContactInput struct {
	Name    string `form:"name" json:"name" binding:"required,min=2"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Subject string `form:"subject" json:"subject" binding:"omitempty,max=120"`
	Message string `form:"message" json:"message" binding:"required,min=10"`
}

type PortfolioInput struct {
	Title        string            `json:"title" binding:"required,min=4"`
	Desc         string            `json:"desc" binding:"required,min=6"`
	ExternalLink string            `json:"externalLink" binding:"omitempty,url"`
	React        int               `json:"react" binding:"required,min=1"`
	Technology   []TechnologyInput `json:"technology" binding:"dive"`
	Image        string            `json:"image" binding:"required,url"`
}
