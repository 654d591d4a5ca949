package repository

import (
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"gorm.io/gorm"
)

// GormImpactRepository is a GORM implementation of ImpactRepository
type GormImpactRepository struct {
	db *gorm.DB
}

// NewImpactRepository creates a new ImpactRepository
func NewImpactRepository(db *gorm.DB) ImpactRepository {
	return &GormImpactRepository{db: db}
}

// ListByUser returns a user's impact reports, newest first.
func (r *GormImpactRepository) ListByUser(userID uint64) ([]models.ImpactReport, error) {
	var reports []models.ImpactReport
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Task").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

const totalsSelect = `
	COALESCE(SUM(hours_logged), 0) as total_hours,
	COALESCE(SUM(items_fixed), 0) as total_items_fixed,
	COALESCE(SUM(bags_collected), 0) as total_bags,
	COALESCE(SUM(people_helped), 0) as total_people,
	COALESCE(SUM(carbon_saved_kg), 0) as total_carbon,
	COUNT(*) as total_reports`

// UserTotals aggregates a single user's impact reports.
func (r *GormImpactRepository) UserTotals(userID uint64) (ImpactTotals, error) {
	var totals ImpactTotals
	err := r.db.Model(&models.ImpactReport{}).
		Select(totalsSelect).
		Where("user_id = ?", userID).
		Scan(&totals).Error
	return totals, err
}

// CommunityTotals aggregates all impact reports.
func (r *GormImpactRepository) CommunityTotals() (ImpactTotals, error) {
	var totals ImpactTotals
	err := r.db.Model(&models.ImpactReport{}).
		Select(totalsSelect + `,
	COUNT(DISTINCT user_id) as total_volunteers`).
		Scan(&totals).Error
	return totals, err
}

// TopVolunteers returns the volunteers with the most logged hours.
func (r *GormImpactRepository) TopVolunteers(limit int) ([]TopVolunteer, error) {
	var top []TopVolunteer
	err := r.db.Model(&models.ImpactReport{}).
		Select("users.name, users.avatar_initials, SUM(impact_reports.hours_logged) as hours").
		Joins("JOIN users ON users.id = impact_reports.user_id").
		Group("impact_reports.user_id, users.name, users.avatar_initials").
		Order("hours DESC").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return nil, err
	}
	return top, nil
}
