package services

import (
	"errors"
	"fmt"

	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"github.com/volunteerhub/volunteer-hub-api/internal/repository"
	"gorm.io/gorm"
)

// UserImpact bundles a user's impact reports with their running totals.
type UserImpact struct {
	Reports []models.ImpactReport
	Totals  repository.ImpactTotals
}

// CommunityImpact bundles community-wide totals with the leaderboard.
type CommunityImpact struct {
	Totals        repository.ImpactTotals
	TopVolunteers []repository.TopVolunteer
}

// ImpactService aggregates the impact reports written at task completion.
type ImpactService struct {
	impactRepo repository.ImpactRepository
	userRepo   repository.UserRepository
}

// NewImpactService creates a new ImpactService
func NewImpactService(impactRepo repository.ImpactRepository, userRepo repository.UserRepository) *ImpactService {
	return &ImpactService{impactRepo: impactRepo, userRepo: userRepo}
}

// ForUser returns a user's impact reports and totals.
func (s *ImpactService) ForUser(userID uint64) (*UserImpact, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	reports, err := s.impactRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list impact reports: %w", err)
	}
	totals, err := s.impactRepo.UserTotals(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to total impact reports: %w", err)
	}

	return &UserImpact{Reports: reports, Totals: totals}, nil
}

// ForCommunity returns community-wide totals and the top volunteers.
func (s *ImpactService) ForCommunity() (*CommunityImpact, error) {
	totals, err := s.impactRepo.CommunityTotals()
	if err != nil {
		return nil, fmt.Errorf("failed to total impact reports: %w", err)
	}
	top, err := s.impactRepo.TopVolunteers(5)
	if err != nil {
		return nil, fmt.Errorf("failed to rank volunteers: %w", err)
	}

	return &CommunityImpact{Totals: totals, TopVolunteers: top}, nil
}
