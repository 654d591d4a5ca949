package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	Email          string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash   string         `gorm:"type:varchar(255);not null" json:"-"`
	AvatarInitials string         `gorm:"type:varchar(4)" json:"avatar_initials"`
	City           string         `gorm:"type:varchar(100)" json:"city"`
	IsVerified     bool           `gorm:"not null;default:false" json:"is_verified"`
	IsOrganization bool           `gorm:"not null;default:false" json:"is_organization"`
	MemberSince    string         `gorm:"type:varchar(20)" json:"member_since"`
	Rating         float64        `gorm:"not null;default:0" json:"rating"`
	TotalHours     float64        `gorm:"not null;default:0" json:"total_hours"`
	TasksCompleted int            `gorm:"not null;default:0" json:"tasks_completed"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Skills       []Skill        `gorm:"many2many:user_skills" json:"skills,omitempty"`
	Availability []Availability `gorm:"foreignKey:UserID" json:"availability,omitempty"`
	PostedTasks  []Task         `gorm:"foreignKey:PostedByID" json:"-"`
}
