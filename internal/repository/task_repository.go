package repository

import (
	"errors"
	"math"
	"time"

	"github.com/volunteerhub/volunteer-hub-api/internal/database"
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"github.com/volunteerhub/volunteer-hub-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// forUpdate adds a row lock on dialects that support it. SQLite has no row
// locks; its single-writer transactions already serialize these operations.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CreateWithDailyQuota inserts a task and consumes one unit of the poster's
// daily quota in a single transaction.
func (r *GormTaskRepository) CreateWithDailyQuota(task *models.Task, limit int, day string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Ensure the counter row exists, then lock it for the check-and-bump.
		seed := models.DailyPostCount{PosterID: task.PostedByID, Date: day}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return err
		}

		var counter models.DailyPostCount
		if err := forUpdate(tx).
			Where("poster_id = ? AND date = ?", task.PostedByID, day).
			First(&counter).Error; err != nil {
			return err
		}

		if counter.Count >= limit {
			return ErrDailyLimitReached
		}

		if err := tx.Model(&models.DailyPostCount{}).
			Where("poster_id = ? AND date = ?", task.PostedByID, day).
			UpdateColumn("count", gorm.Expr("count + 1")).Error; err != nil {
			return err
		}

		return tx.Create(task).Error
	})
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks with filtering and pagination
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{})

	if filter.City != "" {
		query = query.Where("tasks.city = ?", filter.City)
	}
	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	if filter.UserID != nil {
		query = query.Where("tasks.posted_by_id = ? OR tasks.accepted_by_id = ?", *filter.UserID, *filter.UserID)
	}
	if filter.Skill != "" {
		skillSubQuery := r.db.Table("task_skills").
			Select("1").
			Joins("JOIN skills ON skills.id = task_skills.skill_id").
			Where("task_skills.task_id = tasks.id").
			Where("skills.name = ?", filter.Skill)
		query = query.Where("EXISTS (?)", skillSubQuery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("tasks.created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Page:   filter.Page,
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	if err := listQuery.Preload("PostedBy").Preload("Skills").Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// ListOpen retrieves open, unaccepted tasks newest first
func (r *GormTaskRepository) ListOpen() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("status = ? AND accepted_by_id IS NULL", models.TaskStatusOpen).
		Order("created_at DESC").
		Preload("PostedBy").
		Preload("Skills").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Accept performs the atomic check-and-set transition open -> accepted.
func (r *GormTaskRepository) Accept(taskID, volunteerID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Lock the volunteer row so concurrent accepts by the same volunteer
		// serialize on the exclusivity check.
		var volunteer models.User
		if err := forUpdate(tx).First(&volunteer, volunteerID).Error; err != nil {
			return err
		}

		// The exclusivity check runs first: it concerns the requester's own
		// state regardless of the target task's status.
		var active int64
		if err := tx.Model(&models.Task{}).
			Where("accepted_by_id = ? AND status = ?", volunteerID, models.TaskStatusAccepted).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrVolunteerBusy
		}

		// Guarded update: at most one concurrent accept matches the open row.
		res := tx.Model(&models.Task{}).
			Where("id = ? AND status = ?", taskID, models.TaskStatusOpen).
			Updates(models.Task{Status: models.TaskStatusAccepted, AcceptedByID: &volunteerID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var task models.Task
			if err := tx.First(&task, taskID).Error; err != nil {
				return err
			}
			return ErrTaskNotOpen
		}
		return nil
	})
}

// Complete transitions a task to completed and records its outcome.
func (r *GormTaskRepository) Complete(taskID, volunteerID uint64, in CompletionInput) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := forUpdate(tx).First(&task, taskID).Error; err != nil {
			return err
		}

		switch task.Status {
		case models.TaskStatusCompleted:
			return ErrTaskCompleted
		case models.TaskStatusAccepted:
			if task.AcceptedByID == nil || *task.AcceptedByID != volunteerID {
				return ErrTaskNotOwned
			}
		}
		// Open tasks may be completed directly; the completer claims them.

		now := time.Now()
		task.Status = models.TaskStatusCompleted
		task.AcceptedByID = &volunteerID
		task.CompletionNotes = in.Notes
		task.CompletionPhoto = in.Photo
		task.CompletedAt = &now
		if err := tx.Save(&task).Error; err != nil {
			return err
		}

		hours := float64(task.DurationMinutes) / 60.0
		report := models.ImpactReport{
			UserID:        volunteerID,
			TaskID:        task.ID,
			HoursLogged:   hours,
			PeopleHelped:  1,
			CarbonSavedKg: math.Round(hours*0.4*100) / 100,
			Notes:         in.Notes,
		}
		if err := tx.Create(&report).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", volunteerID).
			Updates(map[string]interface{}{
				"total_hours":     gorm.Expr("total_hours + ?", hours),
				"tasks_completed": gorm.Expr("tasks_completed + 1"),
			}).Error
	})
}

// FindActiveByVolunteer returns the volunteer's accepted task, if any.
func (r *GormTaskRepository) FindActiveByVolunteer(volunteerID uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Where("accepted_by_id = ? AND status = ?", volunteerID, models.TaskStatusAccepted).
		Order("scheduled_date, scheduled_time").
		Preload("PostedBy").
		Preload("Skills").
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DailyCount returns how many tasks the poster created on day.
func (r *GormTaskRepository) DailyCount(posterID uint64, day string) (int, error) {
	var counter models.DailyPostCount
	err := r.db.
		Where("poster_id = ? AND date = ?", posterID, day).
		First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return counter.Count, nil
}

// ListSchedule returns tasks a user posted or accepted, ordered by schedule.
func (r *GormTaskRepository) ListSchedule(userID uint64, includeCompleted bool) ([]models.Task, error) {
	statuses := []models.TaskStatus{models.TaskStatusOpen, models.TaskStatusAccepted}
	if includeCompleted {
		statuses = append(statuses, models.TaskStatusCompleted)
	}

	var tasks []models.Task
	err := r.db.
		Where("(posted_by_id = ? OR accepted_by_id = ?) AND status IN ?", userID, userID, statuses).
		Order("scheduled_date, scheduled_time").
		Preload("PostedBy").
		Preload("Skills").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Cities returns the distinct non-empty task cities, sorted.
func (r *GormTaskRepository) Cities() ([]string, error) {
	var cities []string
	err := r.db.Model(&models.Task{}).
		Distinct("city").
		Where("city <> ''").
		Order("city").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}
