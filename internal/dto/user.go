package dto

import "github.com/volunteerhub/volunteer-hub-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID             uint64   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	AvatarInitials string   `json:"avatar_initials"`
	City           string   `json:"city"`
	IsVerified     bool     `json:"is_verified"`
	IsOrganization bool     `json:"is_organization"`
	MemberSince    string   `json:"member_since"`
	Rating         float64  `json:"rating"`
	TotalHours     float64  `json:"total_hours"`
	TasksCompleted int      `json:"tasks_completed"`
	Skills         []string `json:"skills,omitempty"`
}

// AvailabilityDTO represents an availability window in API responses
type AvailabilityDTO struct {
	ID        uint64 `json:"id"`
	UserID    uint64 `json:"user_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	City      string `json:"city,omitempty"`
}

// VolunteerDTO is a directory entry: a profile plus upcoming availability.
type VolunteerDTO struct {
	UserDTO
	Availability []AvailabilityDTO `json:"availability"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		AvatarInitials: user.AvatarInitials,
		City:           user.City,
		IsVerified:     user.IsVerified,
		IsOrganization: user.IsOrganization,
		MemberSince:    user.MemberSince,
		Rating:         user.Rating,
		TotalHours:     user.TotalHours,
		TasksCompleted: user.TasksCompleted,
	}
	if len(user.Skills) > 0 {
		dto.Skills = SkillNames(user.Skills)
	}
	return dto
}

// ToAvailabilityDTO converts an Availability model to AvailabilityDTO
func ToAvailabilityDTO(a models.Availability) AvailabilityDTO {
	return AvailabilityDTO{
		ID:        a.ID,
		UserID:    a.UserID,
		Date:      a.Date,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		City:      a.City,
	}
}

// SkillNames extracts tag names from skill rows, preserving order.
func SkillNames(skills []models.Skill) []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}
