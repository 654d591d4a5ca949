package services

import (
	"fmt"
	"time"

	"github.com/volunteerhub/volunteer-hub-api/internal/repository"
)

// LimitStatus describes a poster's standing against the daily task quota.
type LimitStatus struct {
	PostsToday int
	DailyLimit int
	Remaining  int
	CanPost    bool
}

// RateLimitService reports quota standing. Enforcement itself happens inside
// the create transaction, so this is advisory only.
type RateLimitService struct {
	taskRepo repository.TaskRepository
	limit    int
	now      func() time.Time
}

// NewRateLimitService creates a new RateLimitService
func NewRateLimitService(taskRepo repository.TaskRepository, limit int) *RateLimitService {
	return &RateLimitService{taskRepo: taskRepo, limit: limit, now: time.Now}
}

// Check returns the poster's quota status for the current calendar day.
func (s *RateLimitService) Check(posterID uint64) (LimitStatus, error) {
	day := s.now().Format("2006-01-02")
	count, err := s.taskRepo.DailyCount(posterID, day)
	if err != nil {
		return LimitStatus{}, fmt.Errorf("failed to count daily posts: %w", err)
	}

	remaining := s.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return LimitStatus{
		PostsToday: count,
		DailyLimit: s.limit,
		Remaining:  remaining,
		CanPost:    count < s.limit,
	}, nil
}
