package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
)

// GigService manages the gig and its three pricing packages. The package
// rows keep their IDs for the lifetime of the gig; updates rewrite their
// fields in place.
type GigService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewGigService(db *gorm.DB, cfg *config.Config) *GigService {
	return &GigService{db: db, cfg: cfg}
}

func (s *GigService) Get(ctx context.Context) *Result {
	var gig models.Gig
	err := s.db.WithContext(ctx).
		Preload("Basic").
		Preload("Standard").
		Preload("Premium").
		First(&gig).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Gig not found")
		}
		log.Printf("ERROR: load gig: %v", err)
		return serverError("Failed to load gig")
	}
	return ok("Gig fetched successfully", gig)
}

func (s *GigService) Create(ctx context.Context, input models.GigInput) *Result {
	var created models.Gig
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		basic := buildPackage(input.Basic)
		standard := buildPackage(input.Standard)
		premium := buildPackage(input.Premium)
		for _, pkg := range []*models.Package{&basic, &standard, &premium} {
			if err := tx.Create(pkg).Error; err != nil {
				return err
			}
		}
		created = models.Gig{
			OrderLink:  input.OrderLink,
			BasicID:    basic.ID,
			StandardID: standard.ID,
			PremiumID:  premium.ID,
		}
		return tx.Create(&created).Error
	})
	if txErr != nil {
		log.Printf("ERROR: create gig: %v", txErr)
		return serverError("Failed to create gig")
	}
	return s.Get(ctx)
}

func (s *GigService) Update(ctx context.Context, id string, input models.GigInput) *Result {
	var existing models.Gig
	err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Gig not found")
		}
		log.Printf("ERROR: load gig %s: %v", id, err)
		return serverError("Failed to load gig")
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tiers := map[string]models.PackageInput{
			existing.BasicID.String():    input.Basic,
			existing.StandardID.String(): input.Standard,
			existing.PremiumID.String():  input.Premium,
		}
		for pkgID, in := range tiers {
			updates := map[string]interface{}{
				"title":    in.Title,
				"desc":     in.Desc,
				"price":    in.Price,
				"features": featureValues(in.Features),
			}
			if err := tx.Model(&models.Package{}).Where("id = ?", pkgID).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Gig{}).Where("id = ?", id).
			Update("order_link", input.OrderLink).Error
	})
	if txErr != nil {
		log.Printf("ERROR: update gig %s: %v", id, txErr)
		return serverError("Failed to update gig")
	}

	return s.Get(ctx)
}

// Delete removes the gig and its three packages.
func (s *GigService) Delete(ctx context.Context, id string) *Result {
	var existing models.Gig
	err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Gig not found")
		}
		log.Printf("ERROR: load gig %s: %v", id, err)
		return serverError("Failed to load gig")
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Gig{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Package{}, "id IN ?", []string{
			existing.BasicID.String(),
			existing.StandardID.String(),
			existing.PremiumID.String(),
		}).Error
	})
	if txErr != nil {
		log.Printf("ERROR: delete gig %s: %v", id, txErr)
		return serverError("Failed to delete gig")
	}

	return ok("Gig deleted successfully", nil)
}

func buildPackage(in models.PackageInput) models.Package {
	return models.Package{
		Title:    in.Title,
		Desc:     in.Desc,
		Price:    in.Price,
		Features: featureValues(in.Features),
	}
}
