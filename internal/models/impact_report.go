package models

import "time"

// ImpactReport records the measurable outcome of a completed task. One is
// created automatically whenever a task is completed.
type ImpactReport struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	UserID        uint64    `gorm:"not null;index" json:"user_id"`
	TaskID        uint64    `gorm:"not null;index" json:"task_id"`
	HoursLogged   float64   `gorm:"not null;default:0" json:"hours_logged"`
	ItemsFixed    int       `gorm:"not null;default:0" json:"items_fixed"`
	BagsCollected int       `gorm:"not null;default:0" json:"bags_collected"`
	PeopleHelped  int       `gorm:"not null;default:0" json:"people_helped"`
	CarbonSavedKg float64   `gorm:"not null;default:0" json:"carbon_saved_kg"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}
