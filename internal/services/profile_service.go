package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
)

// ProfileService manages the single public profile and its social links.
type ProfileService struct {
	db    *gorm.DB
	cfg   *config.Config
	store ObjectStore
}

func NewProfileService(db *gorm.DB, cfg *config.Config, store ObjectStore) *ProfileService {
	return &ProfileService{db: db, cfg: cfg, store: store}
}

// Get returns the profile with its social links, or 404 when none exists.
func (s *ProfileService) Get(ctx context.Context) *Result {
	var profile models.Profile
	err := s.db.WithContext(ctx).Preload("SocialMedia").First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Profile not found")
		}
		log.Printf("ERROR: load profile: %v", err)
		return serverError("Failed to load profile")
	}
	return ok("Profile fetched successfully", profile)
}

// Create stores the first profile. A single profile row is expected; callers
// use Update once one exists.
func (s *ProfileService) Create(ctx context.Context, input models.ProfileInput) *Result {
	profile := models.Profile{
		Name:            input.Name,
		Phone:           input.Phone,
		Email:           input.Email,
		Address:         input.Address,
		Profession:      input.Profession,
		ProfessionBio:   input.ProfessionBio,
		WelcomeMessage:  input.WelcomeMessage,
		MetaDescription: input.MetaDescription,
		PrimaryImage:    input.PrimaryImage,
		SecondaryImage:  input.SecondaryImage,
		MetaImage:       input.MetaImage,
		OpenGraphImage:  input.OpenGraphImage,
		TwitterImage:    input.TwitterImage,
	}
	for _, link := range input.SocialMedia {
		profile.SocialMedia = append(profile.SocialMedia, models.SocialLink{
			PlatformName: link.PlatformName,
			PlatformLink: link.PlatformLink,
		})
	}

	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		log.Printf("ERROR: create profile: %v", err)
		return serverError("Failed to create profile")
	}
	return ok("Profile created successfully", profile)
}

// Update replaces the profile's scalar fields and its social link set.
// Image objects referenced only by the previous version are removed from
// storage before the relational write.
func (s *ProfileService) Update(ctx context.Context, id string, input models.ProfileInput) *Result {
	var existing models.Profile
	err := s.db.WithContext(ctx).Preload("SocialMedia").First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Profile not found")
		}
		log.Printf("ERROR: load profile %s: %v", id, err)
		return serverError("Failed to load profile")
	}

	plan := NewCleanupPlan(s.store)
	plan.QueueChanged(existing.PrimaryImage, input.PrimaryImage)
	plan.QueueChanged(existing.SecondaryImage, input.SecondaryImage)
	plan.QueueChanged(existing.MetaImage, input.MetaImage)
	plan.QueueChanged(existing.OpenGraphImage, input.OpenGraphImage)
	plan.QueueChanged(existing.TwitterImage, input.TwitterImage)
	plan.Flush(ctx)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":             input.Name,
			"phone":            input.Phone,
			"email":            input.Email,
			"address":          input.Address,
			"profession":       input.Profession,
			"profession_bio":   input.ProfessionBio,
			"welcome_message":  input.WelcomeMessage,
			"meta_description": input.MetaDescription,
			"primary_image":    input.PrimaryImage,
			"secondary_image":  input.SecondaryImage,
			"meta_image":       input.MetaImage,
			"open_graph_image": input.OpenGraphImage,
			"twitter_image":    input.TwitterImage,
		}
		if err := tx.Model(&models.Profile{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", id).Delete(&models.SocialLink{}).Error; err != nil {
			return err
		}
		for _, link := range input.SocialMedia {
			row := models.SocialLink{
				ProfileID:    existing.ID,
				PlatformName: link.PlatformName,
				PlatformLink: link.PlatformLink,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		log.Printf("ERROR: update profile %s: %v", id, txErr)
		return serverError("Failed to update profile")
	}

	var updated models.Profile
	if err := s.db.WithContext(ctx).Preload("SocialMedia").First(&updated, "id = ?", id).Error; err != nil {
		log.Printf("ERROR: reload profile %s: %v", id, err)
		return serverError("Failed to load profile")
	}
	return ok("Profile updated successfully", updated)
}

// Delete removes the profile with its social links and queues every
// image object it references for storage cleanup.
func (s *ProfileService) Delete(ctx context.Context, id string) *Result {
	var existing models.Profile
	err := s.db.WithContext(ctx).Preload("SocialMedia").First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Profile not found")
		}
		log.Printf("ERROR: load profile %s: %v", id, err)
		return serverError("Failed to load profile")
	}

	plan := NewCleanupPlan(s.store)
	plan.QueueAll(
		existing.PrimaryImage,
		existing.SecondaryImage,
		existing.MetaImage,
		existing.OpenGraphImage,
		existing.TwitterImage,
	)
	plan.Flush(ctx)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", id).Delete(&models.SocialLink{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Profile{}).Error
	})
	if txErr != nil {
		log.Printf("ERROR: delete profile %s: %v", id, txErr)
		return serverError("Failed to delete profile")
	}
	return ok("Profile deleted successfully", nil)
}
