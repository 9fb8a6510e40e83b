package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
)

// OfferingService manages the offered-services list.
type OfferingService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewOfferingService(db *gorm.DB, cfg *config.Config) *OfferingService {
	return &OfferingService{db: db, cfg: cfg}
}

func (s *OfferingService) List(ctx context.Context) *Result {
	var services []models.Service
	if err := s.db.WithContext(ctx).Order("created_at asc").Find(&services).Error; err != nil {
		log.Printf("ERROR: list services: %v", err)
		return serverError("Failed to load services")
	}
	return ok("Services fetched successfully", services)
}

func (s *OfferingService) Create(ctx context.Context, input models.ServiceInput) *Result {
	service := models.Service{
		Title:    input.Title,
		Desc:     input.Desc,
		Services: featureValues(input.Services),
	}
	if err := s.db.WithContext(ctx).Create(&service).Error; err != nil {
		log.Printf("ERROR: create service: %v", err)
		return serverError("Failed to create service")
	}
	return ok("Service created successfully", service)
}

func (s *OfferingService) Update(ctx context.Context, id string, input models.ServiceInput) *Result {
	var existing models.Service
	err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Service not found")
		}
		log.Printf("ERROR: load service %s: %v", id, err)
		return serverError("Failed to load service")
	}

	updates := map[string]interface{}{
		"title":    input.Title,
		"desc":     input.Desc,
		"services": featureValues(input.Services),
	}
	if err := s.db.WithContext(ctx).Model(&models.Service{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		log.Printf("ERROR: update service %s: %v", id, err)
		return serverError("Failed to update service")
	}

	var updated models.Service
	if err := s.db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		log.Printf("ERROR: reload service %s: %v", id, err)
		return serverError("Failed to load service")
	}
	return ok("Service updated successfully", updated)
}

func (s *OfferingService) Delete(ctx context.Context, id string) *Result {
	res := s.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("ERROR: delete service %s: %v", id, res.Error)
		return serverError("Failed to delete service")
	}
	if res.RowsAffected == 0 {
		return notFound("Service not found")
	}
	return ok("Service deleted successfully", nil)
}
