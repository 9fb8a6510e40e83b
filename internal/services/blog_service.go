package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
)

// BlogService manages blog posts.
type BlogService struct {
	db    *gorm.DB
	cfg   *config.Config
	store ObjectStore
}

func NewBlogService(db *gorm.DB, cfg *config.Config, store ObjectStore) *BlogService {
	return &BlogService{db: db, cfg: cfg, store: store}
}

// List returns one newest-first page of posts.
func (s *BlogService) List(ctx context.Context, page int) *Result {
	perPage := s.cfg.BlogPageSize
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Blog{}).Count(&total).Error; err != nil {
		log.Printf("ERROR: count blogs: %v", err)
		return serverError("Failed to load blogs")
	}

	var rows []models.Blog
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Limit(perPage).
		Offset(pageOffset(page, perPage)).
		Find(&rows).Error
	if err != nil {
		log.Printf("ERROR: list blogs: %v", err)
		return serverError("Failed to load blogs")
	}

	return ok("Blogs fetched successfully", PageResult{
		Data:       rows,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages(total, perPage),
	})
}

func (s *BlogService) Get(ctx context.Context, id string) *Result {
	var blog models.Blog
	err := s.db.WithContext(ctx).First(&blog, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Blog not found")
		}
		log.Printf("ERROR: load blog %s: %v", id, err)
		return serverError("Failed to load blog")
	}
	return ok("Blog fetched successfully", blog)
}

func (s *BlogService) Create(ctx context.Context, input models.BlogInput) *Result {
	blog := models.Blog{
		Title:   input.Title,
		Content: input.Content,
		Image:   input.Image,
	}
	if err := s.db.WithContext(ctx).Create(&blog).Error; err != nil {
		log.Printf("ERROR: create blog: %v", err)
		return serverError("Failed to create blog")
	}
	return ok("Blog created successfully", blog)
}

func (s *BlogService) Update(ctx context.Context, id string, input models.BlogInput) *Result {
	var existing models.Blog
	err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Blog not found")
		}
		log.Printf("ERROR: load blog %s: %v", id, err)
		return serverError("Failed to load blog")
	}

	plan := NewCleanupPlan(s.store)
	plan.QueueChanged(existing.Image, input.Image)
	plan.Flush(ctx)

	updates := map[string]interface{}{
		"title":   input.Title,
		"content": input.Content,
		"image":   input.Image,
	}
	if err := s.db.WithContext(ctx).Model(&models.Blog{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		log.Printf("ERROR: update blog %s: %v", id, err)
		return serverError("Failed to update blog")
	}

	var updated models.Blog
	if err := s.db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		log.Printf("ERROR: reload blog %s: %v", id, err)
		return serverError("Failed to load blog")
	}
	return ok("Blog updated successfully", updated)
}

// Delete removes the post and its cover image.
func (s *BlogService) Delete(ctx context.Context, id string) *Result {
	var existing models.Blog
	err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Blog not found")
		}
		log.Printf("ERROR: load blog %s: %v", id, err)
		return serverError("Failed to load blog")
	}

	plan := NewCleanupPlan(s.store)
	plan.QueueAll(existing.Image)
	plan.Flush(ctx)

	if err := s.db.WithContext(ctx).Delete(&models.Blog{}, "id = ?", id).Error; err != nil {
		log.Printf("ERROR: delete blog %s: %v", id, err)
		return serverError("Failed to delete blog")
	}
	return ok("Blog deleted successfully", nil)
}
