package repository

import (
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID with optional preloading
func (r *GormUserRepository) FindByID(id uint64, preload ...string) (*models.User, error) {
	var user models.User
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListVolunteers returns non-organization users with their skills.
func (r *GormUserRepository) ListVolunteers() ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("is_organization = ?", false).
		Preload("Skills").
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ReplaceSkills swaps a user's skill set for the given tags.
func (r *GormUserRepository) ReplaceSkills(userID uint64, skills []models.Skill) error {
	user := models.User{ID: userID}
	return r.db.Model(&user).Association("Skills").Replace(skills)
}

// PostedStatusCounts returns how many tasks a user posted per status.
func (r *GormUserRepository) PostedStatusCounts(userID uint64) (map[models.TaskStatus]int64, error) {
	type row struct {
		Status models.TaskStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Task{}).
		Select("status, COUNT(*) as count").
		Where("posted_by_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[models.TaskStatus]int64{
		models.TaskStatusOpen:      0,
		models.TaskStatusAccepted:  0,
		models.TaskStatusCompleted: 0,
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
