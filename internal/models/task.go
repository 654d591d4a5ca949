package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusOpen      TaskStatus = "open"
	TaskStatusAccepted  TaskStatus = "accepted"
	TaskStatusCompleted TaskStatus = "completed"
)

// ErrInvalidTaskState is returned by BeforeSave when a task's optional fields
// disagree with its status.
var ErrInvalidTaskState = errors.New("task fields do not match status")

type Task struct {
	ID              uint64         `gorm:"primarykey" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Status          TaskStatus     `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	PostedByID      uint64         `gorm:"not null;index" json:"posted_by"`
	AcceptedByID    *uint64        `gorm:"index" json:"accepted_by"`
	DurationMinutes int            `gorm:"not null;default:60" json:"duration_minutes"`
	LocationAddress string         `gorm:"type:varchar(255)" json:"location_address"`
	City            string         `gorm:"type:varchar(100);index" json:"city"`
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
	IsVerified      bool           `gorm:"not null;default:false" json:"is_verified"`
	ScheduledDate   string         `gorm:"type:varchar(10)" json:"scheduled_date"`
	ScheduledTime   string         `gorm:"type:varchar(5)" json:"scheduled_time"`
	CompletionPhoto string         `gorm:"type:varchar(255)" json:"completion_photo"`
	CompletionNotes string         `gorm:"type:text" json:"completion_notes"`
	CompletedAt     *time.Time     `json:"completed_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	PostedBy   User    `gorm:"foreignKey:PostedByID" json:"poster,omitempty"`
	AcceptedBy *User   `gorm:"foreignKey:AcceptedByID" json:"volunteer,omitempty"`
	Skills     []Skill `gorm:"many2many:task_skills" json:"skills,omitempty"`
}

// BeforeSave rejects rows whose optional fields disagree with their status:
// accepted_by is set iff the task is accepted or completed, and completion
// fields are set iff the task is completed. Partial updates that do not touch
// the status are left to the transition that issued them.
func (t *Task) BeforeSave(tx *gorm.DB) error {
	switch t.Status {
	case "":
		return nil
	case TaskStatusOpen:
		if t.AcceptedByID != nil || t.CompletionNotes != "" || t.CompletionPhoto != "" || t.CompletedAt != nil {
			return ErrInvalidTaskState
		}
	case TaskStatusAccepted:
		if t.AcceptedByID == nil || t.CompletionNotes != "" || t.CompletionPhoto != "" || t.CompletedAt != nil {
			return ErrInvalidTaskState
		}
	case TaskStatusCompleted:
		if t.AcceptedByID == nil || t.CompletionNotes == "" || t.CompletedAt == nil {
			return ErrInvalidTaskState
		}
	default:
		return ErrInvalidTaskState
	}
	return nil
}
