package repository

import (
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"gorm.io/gorm"
)

// GormAvailabilityRepository is a GORM implementation of AvailabilityRepository
type GormAvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new AvailabilityRepository
func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &GormAvailabilityRepository{db: db}
}

// Create creates a new availability window
func (r *GormAvailabilityRepository) Create(a *models.Availability) error {
	return r.db.Create(a).Error
}

// ListByUser returns all windows for a user ordered by date
func (r *GormAvailabilityRepository) ListByUser(userID uint64) ([]models.Availability, error) {
	var windows []models.Availability
	err := r.db.
		Where("user_id = ?", userID).
		Order("date, start_time").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

// ListUpcoming returns up to limit windows on or after day for the user.
func (r *GormAvailabilityRepository) ListUpcoming(userID uint64, day string, limit int) ([]models.Availability, error) {
	var windows []models.Availability
	err := r.db.
		Where("user_id = ? AND date >= ?", userID, day).
		Order("date, start_time").
		Limit(limit).
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}
