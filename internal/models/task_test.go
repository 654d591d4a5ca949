package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func taskTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Skill{}, &Task{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func taskTestUser(t *testing.T, db *gorm.DB) *User {
	t.Helper()
	user := &User{Name: "Poster", Email: "poster@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// The save hook refuses rows whose fields disagree with their status.
func TestTaskStateValidation(t *testing.T) {
	db := taskTestDB(t)
	user := taskTestUser(t, db)
	now := time.Now()

	t.Run("open task with volunteer rejected", func(t *testing.T) {
		task := Task{Title: "Bad", Status: TaskStatusOpen, PostedByID: user.ID, AcceptedByID: &user.ID}
		assert.ErrorIs(t, db.Create(&task).Error, ErrInvalidTaskState)
	})

	t.Run("accepted task without volunteer rejected", func(t *testing.T) {
		task := Task{Title: "Bad", Status: TaskStatusAccepted, PostedByID: user.ID}
		assert.ErrorIs(t, db.Create(&task).Error, ErrInvalidTaskState)
	})

	t.Run("completed task needs notes and timestamp", func(t *testing.T) {
		task := Task{Title: "Bad", Status: TaskStatusCompleted, PostedByID: user.ID, AcceptedByID: &user.ID}
		assert.ErrorIs(t, db.Create(&task).Error, ErrInvalidTaskState)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		task := Task{Title: "Bad", Status: TaskStatus("cancelled"), PostedByID: user.ID}
		assert.ErrorIs(t, db.Create(&task).Error, ErrInvalidTaskState)
	})

	t.Run("valid lifecycle rows pass", func(t *testing.T) {
		open := Task{Title: "Open", Status: TaskStatusOpen, PostedByID: user.ID}
		assert.NoError(t, db.Create(&open).Error)

		accepted := Task{Title: "Accepted", Status: TaskStatusAccepted, PostedByID: user.ID, AcceptedByID: &user.ID}
		assert.NoError(t, db.Create(&accepted).Error)

		completed := Task{
			Title: "Completed", Status: TaskStatusCompleted, PostedByID: user.ID,
			AcceptedByID: &user.ID, CompletionNotes: "done", CompletedAt: &now,
		}
		assert.NoError(t, db.Create(&completed).Error)
	})
}
