package repository

import (
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"gorm.io/gorm"
)

// GormCommunityRepository is a GORM implementation of CommunityRepository
type GormCommunityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &GormCommunityRepository{db: db}
}

// Create creates a new community post
func (r *GormCommunityRepository) Create(post *models.CommunityPost) error {
	return r.db.Create(post).Error
}

// List returns the community feed, newest first.
func (r *GormCommunityRepository) List() ([]models.CommunityPost, error) {
	var posts []models.CommunityPost
	err := r.db.
		Order("created_at DESC").
		Preload("User").
		Preload("Task").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Like increments a post's like counter.
func (r *GormCommunityRepository) Like(postID uint64) error {
	res := r.db.Model(&models.CommunityPost{}).
		Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
