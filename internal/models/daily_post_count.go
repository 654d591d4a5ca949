package models

import "time"

// DailyPostCount tracks how many tasks a poster created on a calendar date.
// A new date is a fresh row; counts only ever grow within a date.
type DailyPostCount struct {
	PosterID  uint64    `gorm:"primarykey" json:"poster_id"`
	Date      string    `gorm:"primarykey;type:varchar(10)" json:"date"` // YYYY-MM-DD
	Count     int       `gorm:"not null;default:0" json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}
