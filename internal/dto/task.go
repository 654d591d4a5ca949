package dto

import (
	"time"

	"github.com/volunteerhub/volunteer-hub-api/internal/models"
)

// TaskDTO represents a task in API responses. Fields that only exist in later
// lifecycle states are omitted while empty.
type TaskDTO struct {
	ID              uint64            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Status          models.TaskStatus `json:"status"`
	PostedBy        uint64            `json:"posted_by"`
	PosterName      string            `json:"poster_name,omitempty"`
	PosterInitials  string            `json:"poster_initials,omitempty"`
	PosterVerified  bool              `json:"poster_verified"`
	AcceptedBy      *uint64           `json:"accepted_by,omitempty"`
	DurationMinutes int               `json:"duration_minutes"`
	LocationAddress string            `json:"location_address"`
	City            string            `json:"city"`
	Latitude        float64           `json:"latitude"`
	Longitude       float64           `json:"longitude"`
	IsVerified      bool              `json:"is_verified"`
	ScheduledDate   string            `json:"scheduled_date,omitempty"`
	ScheduledTime   string            `json:"scheduled_time,omitempty"`
	CompletionPhoto string            `json:"completion_photo,omitempty"`
	CompletionNotes string            `json:"completion_notes,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	Skills          []string          `json:"skills"`
	MatchScore      *int              `json:"match_score,omitempty"`
}

// TaskListResponse wraps a task list together with pagination metadata.
type TaskListResponse struct {
	Tasks      []TaskDTO `json:"tasks"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
}

// RateLimitDTO is the advisory rate-limit status for a poster.
type RateLimitDTO struct {
	PostsToday int  `json:"posts_today"`
	DailyLimit int  `json:"daily_limit"`
	Remaining  int  `json:"remaining"`
	CanPost    bool `json:"can_post"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		Status:          task.Status,
		PostedBy:        task.PostedByID,
		AcceptedBy:      task.AcceptedByID,
		DurationMinutes: task.DurationMinutes,
		LocationAddress: task.LocationAddress,
		City:            task.City,
		Latitude:        task.Latitude,
		Longitude:       task.Longitude,
		IsVerified:      task.IsVerified,
		ScheduledDate:   task.ScheduledDate,
		ScheduledTime:   task.ScheduledTime,
		CompletionPhoto: task.CompletionPhoto,
		CompletionNotes: task.CompletionNotes,
		CompletedAt:     task.CompletedAt,
		CreatedAt:       task.CreatedAt,
		Skills:          SkillNames(task.Skills),
	}

	// Include poster details if preloaded
	if task.PostedBy.ID != 0 {
		dto.PosterName = task.PostedBy.Name
		dto.PosterInitials = task.PostedBy.AvatarInitials
		dto.PosterVerified = task.PostedBy.IsVerified
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = ToTaskDTO(t)
	}
	return dtos
}
