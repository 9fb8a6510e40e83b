package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devfolio/backend/internal/models"
)

func TestStaleSkillImages(t *testing.T) {
	existing := []models.Skill{
		{Name: "Go", Desc: "backend", SkillImage: testPrefix + "go.png"},
		{Name: "Postgres", Desc: "storage", SkillImage: testPrefix + "pg.png"},
		{Name: "Docker", Desc: "infra", SkillImage: testPrefix + "docker.png"},
		{Name: "Habit", Desc: "no image", SkillImage: ""},
	}
	incoming := []models.SkillSectorInput{
		{Title: "Backend", Skills: []models.SkillInput{
			// kept as-is
			{Name: "Go", Desc: "backend", Image: testPrefix + "go.png"},
			// image replaced, old one must go
			{Name: "Postgres", Desc: "storage", Image: testPrefix + "pg-v2.png"},
		}},
		// Docker dropped entirely
	}

	stale := staleSkillImages(existing, incoming)
	assert.ElementsMatch(t, []string{testPrefix + "pg.png", testPrefix + "docker.png"}, stale)
}

func TestStaleSkillImagesSurvivesSectorMove(t *testing.T) {
	existing := []models.Skill{
		{Name: "Go", Desc: "backend", SkillImage: testPrefix + "go.png"},
	}
	incoming := []models.SkillSectorInput{
		{Title: "Languages", Skills: []models.SkillInput{
			{Name: "Go", Desc: "backend", Image: testPrefix + "go.png"},
		}},
	}

	assert.Empty(t, staleSkillImages(existing, incoming))
}

func TestStaleBadgeImages(t *testing.T) {
	existing := []models.Technology{
		{Image: testPrefix + "react.png"},
		{Image: testPrefix + "next.png"},
	}
	incoming := []models.TechnologyInput{
		{Image: testPrefix + "react.png"},
		{Image: testPrefix + "vue.png"},
	}

	stale := staleBadgeImages(existing, incoming)
	assert.Equal(t, []string{testPrefix + "next.png"}, stale)
}
