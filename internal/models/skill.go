package models

// Skill is one tag from the closed vocabulary. The rows are seeded at
// migration time and never created through the API.
type Skill struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}
