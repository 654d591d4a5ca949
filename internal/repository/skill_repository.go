package repository

import (
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"gorm.io/gorm"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// List returns the seeded vocabulary in canonical (insertion) order.
func (r *GormSkillRepository) List() ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Order("id").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// FindByNames returns the skill rows matching the given tags. Unknown tags are
// silently dropped; callers validate against the vocabulary beforehand.
func (r *GormSkillRepository) FindByNames(names []string) ([]models.Skill, error) {
	if len(names) == 0 {
		return []models.Skill{}, nil
	}
	var skills []models.Skill
	if err := r.db.Where("name IN ?", names).Order("id").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}
