package models

import "time"

// Availability is a window during which a volunteer offers to help.
type Availability struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`
	City      string    `gorm:"type:varchar(100)" json:"city"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
