package services

import (
	"context"
	"errors"
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
)

// ResumeService manages the single resume row and its education and
// experience collections. Resume carries no image fields, so no storage
// reconciliation happens here.
type ResumeService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewResumeService(db *gorm.DB, cfg *config.Config) *ResumeService {
	return &ResumeService{db: db, cfg: cfg}
}

// Get returns the resume with both collections, or 404 when none exists.
func (s *ResumeService) Get(ctx context.Context) *Result {
	var resume models.Resume
	err := s.db.WithContext(ctx).
		Preload("Education").
		Preload("Experience").
		First(&resume).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Resume not found")
		}
		log.Printf("ERROR: load resume: %v", err)
		return serverError("Failed to load resume")
	}
	return ok("Resume fetched successfully", resume)
}

func (s *ResumeService) Create(ctx context.Context, input models.ResumeInput) *Result {
	resume := models.Resume{
		Education:  buildEducation(input.Education),
		Experience: buildExperience(input.Experience),
	}
	if err := s.db.WithContext(ctx).Create(&resume).Error; err != nil {
		log.Printf("ERROR: create resume: %v", err)
		return serverError("Failed to create resume")
	}
	return ok("Resume created successfully", resume)
}

// Update replaces both collections wholesale. Rows get fresh IDs on
// every update; nothing downstream references them by ID.
func (s *ResumeService) Update(ctx context.Context, id string, input models.ResumeInput) *Result {
	var existing models.Resume
	err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Resume not found")
		}
		log.Printf("ERROR: load resume %s: %v", id, err)
		return serverError("Failed to load resume")
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resume_id = ?", id).Delete(&models.Education{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resume_id = ?", id).Delete(&models.Experience{}).Error; err != nil {
			return err
		}
		for _, row := range buildEducation(input.Education) {
			row.ResumeID = existing.ID
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, row := range buildExperience(input.Experience) {
			row.ResumeID = existing.ID
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		log.Printf("ERROR: update resume %s: %v", id, txErr)
		return serverError("Failed to update resume")
	}

	var updated models.Resume
	err = s.db.WithContext(ctx).
		Preload("Education").
		Preload("Experience").
		First(&updated, "id = ?", id).Error
	if err != nil {
		log.Printf("ERROR: reload resume %s: %v", id, err)
		return serverError("Failed to load resume")
	}
	return ok("Resume updated successfully", updated)
}

// Delete removes the resume row and both owned collections.
func (s *ResumeService) Delete(ctx context.Context, id string) *Result {
	var existing models.Resume
	err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Resume not found")
		}
		log.Printf("ERROR: load resume %s: %v", id, err)
		return serverError("Failed to load resume")
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resume_id = ?", id).Delete(&models.Education{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resume_id = ?", id).Delete(&models.Experience{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Resume{}).Error
	})
	if txErr != nil {
		log.Printf("ERROR: delete resume %s: %v", id, txErr)
		return serverError("Failed to delete resume")
	}
	return ok("Resume deleted successfully", nil)
}

func buildEducation(inputs []models.EducationInput) []models.Education {
	rows := make([]models.Education, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, models.Education{
			Degree:      in.Degree,
			Institution: in.Institution,
			CGPA:        in.CGPA,
			Desc:        in.Desc,
			StartYear:   in.StartYear,
			EndYear:     in.EndYear,
		})
	}
	return rows
}

func buildExperience(inputs []models.ExperienceInput) []models.Experience {
	rows := make([]models.Experience, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, models.Experience{
			Profession: in.Profession,
			Company:    in.Company,
			Desc:       in.Desc,
			Technology: featureValues(in.Technology),
		})
	}
	return rows
}

// featureValues flattens the {value} wrappers the admin forms submit for
// text array fields.
func featureValues(inputs []models.FeatureInput) pq.StringArray {
	values := make(pq.StringArray, 0, len(inputs))
	for _, in := range inputs {
		values = append(values, in.Value)
	}
	return values
}
