package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
)

// TestimonialService manages client testimonials.
type TestimonialService struct {
	db    *gorm.DB
	cfg   *config.Config
	store ObjectStore
}

func NewTestimonialService(db *gorm.DB, cfg *config.Config, store ObjectStore) *TestimonialService {
	return &TestimonialService{db: db, cfg: cfg, store: store}
}

// List returns all testimonials, most recent engagement first.
func (s *TestimonialService) List(ctx context.Context) *Result {
	var rows []models.Testimonial
	if err := s.db.WithContext(ctx).Order("start_date desc").Find(&rows).Error; err != nil {
		log.Printf("ERROR: list testimonials: %v", err)
		return serverError("Failed to load testimonials")
	}
	return ok("Testimonials fetched successfully", map[string]interface{}{"data": rows})
}

func (s *TestimonialService) Create(ctx context.Context, input models.TestimonialInput) *Result {
	row := models.Testimonial{
		Name:             input.Name,
		AuthorProfession: input.AuthorProfession,
		CompanyName:      input.CompanyName,
		Image:            input.Image,
		ProjectTitle:     input.ProjectTitle,
		Platform:         input.Platform,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Message:          input.Message,
		Rating:           input.Rating,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("ERROR: create testimonial: %v", err)
		return serverError("Failed to create testimonial")
	}
	return ok("Testimonial created successfully", row)
}

func (s *TestimonialService) Update(ctx context.Context, id string, input models.TestimonialInput) *Result {
	var existing models.Testimonial
	err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Testimonial not found")
		}
		log.Printf("ERROR: load testimonial %s: %v", id, err)
		return serverError("Failed to load testimonial")
	}

	plan := NewCleanupPlan(s.store)
	plan.QueueChanged(existing.Image, input.Image)
	plan.Flush(ctx)

	updates := map[string]interface{}{
		"name":              input.Name,
		"author_profession": input.AuthorProfession,
		"company_name":      input.CompanyName,
		"image":             input.Image,
		"project_title":     input.ProjectTitle,
		"platform":          input.Platform,
		"start_date":        input.StartDate,
		"end_date":          input.EndDate,
		"message":           input.Message,
		"rating":            input.Rating,
	}
	if err := s.db.WithContext(ctx).Model(&models.Testimonial{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		log.Printf("ERROR: update testimonial %s: %v", id, err)
		return serverError("Failed to update testimonial")
	}

	var updated models.Testimonial
	if err := s.db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		log.Printf("ERROR: reload testimonial %s: %v", id, err)
		return serverError("Failed to load testimonial")
	}
	return ok("Testimonial updated successfully", updated)
}

// Delete removes the row and its stored author image.
func (s *TestimonialService) Delete(ctx context.Context, id string) *Result {
	var existing models.Testimonial
	err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Testimonial not found")
		}
		log.Printf("ERROR: load testimonial %s: %v", id, err)
		return serverError("Failed to load testimonial")
	}

	plan := NewCleanupPlan(s.store)
	plan.QueueAll(existing.Image)
	plan.Flush(ctx)

	if err := s.db.WithContext(ctx).Delete(&models.Testimonial{}, "id = ?", id).Error; err != nil {
		log.Printf("ERROR: delete testimonial %s: %v", id, err)
		return serverError("Failed to delete testimonial")
	}
	return ok("Testimonial deleted successfully", nil)
}
