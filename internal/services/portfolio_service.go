package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
)

// PortfolioService manages showcased projects and their technology badges.
type PortfolioService struct {
	db    *gorm.DB
	cfg   *config.Config
	store ObjectStore
}

func NewPortfolioService(db *gorm.DB, cfg *config.Config, store ObjectStore) *PortfolioService {
	return &PortfolioService{db: db, cfg: cfg, store: store}
}

// List returns one newest-first page of projects with their badges.
func (s *PortfolioService) List(ctx context.Context, page int) *Result {
	perPage := s.cfg.PortfolioPageSize
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Portfolio{}).Count(&total).Error; err != nil {
		log.Printf("ERROR: count portfolios: %v", err)
		return serverError("Failed to load portfolios")
	}

	var rows []models.Portfolio
	err := s.db.WithContext(ctx).
		Preload("Technology").
		Order("created_at desc").
		Limit(perPage).
		Offset(pageOffset(page, perPage)).
		Find(&rows).Error
	if err != nil {
		log.Printf("ERROR: list portfolios: %v", err)
		return serverError("Failed to load portfolios")
	}

	return ok("Portfolios fetched successfully", PageResult{
		Data:       rows,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages(total, perPage),
	})
}

func (s *PortfolioService) Create(ctx context.Context, input models.PortfolioInput) *Result {
	row := models.Portfolio{
		Title:        input.Title,
		Desc:         input.Desc,
		Image:        input.Image,
		React:        input.React,
		ExternalLink: input.ExternalLink,
	}
	for _, tech := range input.Technology {
		row.Technology = append(row.Technology, models.Technology{Image: tech.Image})
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("ERROR: create portfolio: %v", err)
		return serverError("Failed to create portfolio")
	}
	return ok("Portfolio created successfully", row)
}

// Update rewrites the scalar fields and replaces the badge set. Cover and
// badge images dropped by the new payload are removed from storage.
func (s *PortfolioService) Update(ctx context.Context, id string, input models.PortfolioInput) *Result {
	var existing models.Portfolio
	err := s.db.WithContext(ctx).Preload("Technology").First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Portfolio not found")
		}
		log.Printf("ERROR: load portfolio %s: %v", id, err)
		return serverError("Failed to load portfolio")
	}

	plan := NewCleanupPlan(s.store)
	plan.QueueChanged(existing.Image, input.Image)
	plan.QueueAll(staleBadgeImages(existing.Technology, input.Technology)...)
	plan.Flush(ctx)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":         input.Title,
			"desc":          input.Desc,
			"image":         input.Image,
			"react":         input.React,
			"external_link": input.ExternalLink,
		}
		if err := tx.Model(&models.Portfolio{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("portfolio_id = ?", id).Delete(&models.Technology{}).Error; err != nil {
			return err
		}
		for _, tech := range input.Technology {
			row := models.Technology{PortfolioID: existing.ID, Image: tech.Image}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		log.Printf("ERROR: update portfolio %s: %v", id, txErr)
		return serverError("Failed to update portfolio")
	}

	var updated models.Portfolio
	if err := s.db.WithContext(ctx).Preload("Technology").First(&updated, "id = ?", id).Error; err != nil {
		log.Printf("ERROR: reload portfolio %s: %v", id, err)
		return serverError("Failed to load portfolio")
	}
	return ok("Portfolio updated successfully", updated)
}

// Delete removes the project plus its cover and badge images.
func (s *PortfolioService) Delete(ctx context.Context, id string) *Result {
	var existing models.Portfolio
	err := s.db.WithContext(ctx).Preload("Technology").First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Portfolio not found")
		}
		log.Printf("ERROR: load portfolio %s: %v", id, err)
		return serverError("Failed to load portfolio")
	}

	plan := NewCleanupPlan(s.store)
	plan.QueueAll(existing.Image)
	for _, tech := range existing.Technology {
		plan.QueueAll(tech.Image)
	}
	plan.Flush(ctx)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_id = ?", id).Delete(&models.Technology{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Portfolio{}, "id = ?", id).Error
	})
	if txErr != nil {
		log.Printf("ERROR: delete portfolio %s: %v", id, txErr)
		return serverError("Failed to delete portfolio")
	}
	return ok("Portfolio deleted successfully", nil)
}

// React increments the public reaction counter.
func (s *PortfolioService) React(ctx context.Context, id string) *Result {
	res := s.db.WithContext(ctx).Model(&models.Portfolio{}).Where("id = ?", id).
		Update("react", gorm.Expr("react + 1"))
	if res.Error != nil {
		log.Printf("ERROR: react portfolio %s: %v", id, res.Error)
		return serverError("Failed to react")
	}
	if res.RowsAffected == 0 {
		return notFound("Portfolio not found")
	}
	return ok("Reaction recorded", nil)
}

func staleBadgeImages(existing []models.Technology, incoming []models.TechnologyInput) []string {
	kept := make(map[string]struct{})
	for _, tech := range incoming {
		if tech.Image != "" {
			kept[tech.Image] = struct{}{}
		}
	}
	var stale []string
	for _, tech := range existing {
		if tech.Image == "" {
			continue
		}
		if _, alive := kept[tech.Image]; !alive {
			stale = append(stale, tech.Image)
		}
	}
	return stale
}
