package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
)

// SkillService manages the skill sectors. The whole tree is replaced on
// every save: sectors and skills get fresh IDs, but skill images that
// survive the save (same URL still referenced) are never deleted from
// storage.
type SkillService struct {
	db    *gorm.DB
	cfg   *config.Config
	store ObjectStore
}

func NewSkillService(db *gorm.DB, cfg *config.Config, store ObjectStore) *SkillService {
	return &SkillService{db: db, cfg: cfg, store: store}
}

func (s *SkillService) List(ctx context.Context) *Result {
	var sectors []models.SkillType
	err := s.db.WithContext(ctx).
		Preload("Skills").
		Order("created_at asc").
		Find(&sectors).Error
	if err != nil {
		log.Printf("ERROR: list skills: %v", err)
		return serverError("Failed to load skills")
	}
	return ok("Skills fetched successfully", sectors)
}

// Save replaces the full sector tree with the submitted one.
func (s *SkillService) Save(ctx context.Context, input models.SkillsInput) *Result {
	var existing []models.Skill
	if err := s.db.WithContext(ctx).Find(&existing).Error; err != nil {
		log.Printf("ERROR: load skills: %v", err)
		return serverError("Failed to load skills")
	}

	plan := NewCleanupPlan(s.store)
	plan.QueueAll(staleSkillImages(existing, input.Sectors)...)
	plan.Flush(ctx)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.SkillType{}).Error; err != nil {
			return err
		}
		for _, sector := range input.Sectors {
			row := models.SkillType{Name: sector.Title}
			for _, skill := range sector.Skills {
				row.Skills = append(row.Skills, models.Skill{
					Name:       skill.Name,
					Desc:       skill.Desc,
					SkillImage: skill.Image,
				})
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		log.Printf("ERROR: save skills: %v", txErr)
		return serverError("Failed to save skills")
	}

	return s.List(ctx)
}

// Delete removes the named sectors, their skills and the skill images.
func (s *SkillService) Delete(ctx context.Context, ids []string) *Result {
	if len(ids) == 0 {
		return badRequest("No skill sectors given")
	}

	var sectors []models.SkillType
	err := s.db.WithContext(ctx).Preload("Skills").Find(&sectors, "id IN ?", ids).Error
	if err != nil {
		log.Printf("ERROR: load skill sectors: %v", err)
		return serverError("Failed to load skills")
	}
	if len(sectors) == 0 {
		return notFound("Skill sectors not found")
	}

	plan := NewCleanupPlan(s.store)
	for _, sector := range sectors {
		for _, skill := range sector.Skills {
			plan.QueueAll(skill.SkillImage)
		}
	}
	plan.Flush(ctx)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skill_type_id IN ?", ids).Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SkillType{}, "id IN ?", ids).Error
	})
	if txErr != nil {
		log.Printf("ERROR: delete skill sectors: %v", txErr)
		return serverError("Failed to delete skills")
	}

	return ok("Skills deleted successfully", nil)
}

// staleSkillImages returns the stored image URLs that no incoming skill
// references anymore. Comparing by URL keeps an image alive even when
// its skill moves to another sector.
func staleSkillImages(existing []models.Skill, incoming []models.SkillSectorInput) []string {
	kept := make(map[string]struct{})
	for _, sector := range incoming {
		for _, skill := range sector.Skills {
			if skill.Image != "" {
				kept[skill.Image] = struct{}{}
			}
		}
	}
	var stale []string
	for _, skill := range existing {
		if skill.SkillImage == "" {
			continue
		}
		if _, alive := kept[skill.SkillImage]; !alive {
			stale = append(stale, skill.SkillImage)
		}
	}
	return stale
}
