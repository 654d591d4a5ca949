package models

import "time"

type CommunityPost struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	TaskID    *uint64   `json:"task_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  string    `gorm:"type:varchar(255)" json:"image_url"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`

	User User  `gorm:"foreignKey:UserID" json:"author,omitempty"`
	Task *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}
