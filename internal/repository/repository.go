package repository

import (
	"errors"

	"github.com/volunteerhub/volunteer-hub-api/internal/models"
)

// Sentinel errors surfaced by the transactional task operations. Services map
// them onto their own error vocabulary.
var (
	// ErrDailyLimitReached is returned when a poster's quota for the calendar
	// date is exhausted.
	ErrDailyLimitReached = errors.New("task repository: daily post limit reached")
	// ErrTaskNotOpen is returned when an accept loses the race for an open task.
	ErrTaskNotOpen = errors.New("task repository: task is not open")
	// ErrVolunteerBusy is returned when a volunteer already holds an accepted task.
	ErrVolunteerBusy = errors.New("task repository: volunteer already has an active task")
	// ErrTaskCompleted is returned when completing a task that is already terminal.
	ErrTaskCompleted = errors.New("task repository: task is already completed")
	// ErrTaskNotOwned is returned when completing a task accepted by someone else.
	ErrTaskNotOwned = errors.New("task repository: task accepted by another volunteer")
)

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	City     string
	Skill    string
	Status   *models.TaskStatus
	UserID   *uint64 // tasks posted by or accepted by this user
	Page     int
	PageSize int
}

// CompletionInput carries the fields recorded when a task is completed.
type CompletionInput struct {
	Notes string
	Photo string
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// CreateWithDailyQuota inserts a task and consumes one unit of the
	// poster's quota for day, in a single transaction. Returns
	// ErrDailyLimitReached when the counter has reached limit.
	CreateWithDailyQuota(task *models.Task, limit int, day string) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)

	// ListOpen retrieves open, unaccepted tasks newest first
	ListOpen() ([]models.Task, error)

	// Accept performs the atomic check-and-set transition open -> accepted.
	// Exactly one concurrent caller wins; losers get ErrTaskNotOpen, and a
	// volunteer who already holds an accepted task gets ErrVolunteerBusy
	// regardless of the target task's state.
	Accept(taskID, volunteerID uint64) error

	// Complete transitions a task to completed, records the completion
	// fields, creates the impact report, and rolls the volunteer's stats up,
	// all in one transaction.
	Complete(taskID, volunteerID uint64, in CompletionInput) error

	// FindActiveByVolunteer returns the volunteer's accepted task, or
	// gorm.ErrRecordNotFound when they hold none.
	FindActiveByVolunteer(volunteerID uint64) (*models.Task, error)

	// DailyCount returns how many tasks the poster created on day.
	DailyCount(posterID uint64, day string) (int, error)

	// ListSchedule returns tasks a user posted or accepted, ordered by
	// schedule. Completed tasks are included only when requested.
	ListSchedule(userID uint64, includeCompleted bool) ([]models.Task, error)

	// Cities returns the distinct non-empty task cities, sorted.
	Cities() ([]string, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint64, preload ...string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	// ListVolunteers returns non-organization users with their skills.
	ListVolunteers() ([]models.User, error)
	// ReplaceSkills swaps a user's skill set for the given tags.
	ReplaceSkills(userID uint64, skills []models.Skill) error
	// PostedStatusCounts returns how many tasks a user posted per status.
	PostedStatusCounts(userID uint64) (map[models.TaskStatus]int64, error)
}

// SkillRepository defines the interface for the seeded vocabulary rows
type SkillRepository interface {
	List() ([]models.Skill, error)
	FindByNames(names []string) ([]models.Skill, error)
}

// AvailabilityRepository defines the interface for availability windows
type AvailabilityRepository interface {
	Create(a *models.Availability) error
	ListByUser(userID uint64) ([]models.Availability, error)
	// ListUpcoming returns up to limit windows on or after day for the user.
	ListUpcoming(userID uint64, day string, limit int) ([]models.Availability, error)
}

// ImpactTotals aggregates impact reports.
type ImpactTotals struct {
	TotalHours      float64 `json:"total_hours"`
	TotalItemsFixed int64   `json:"total_items_fixed"`
	TotalBags       int64   `json:"total_bags"`
	TotalPeople     int64   `json:"total_people"`
	TotalCarbon     float64 `json:"total_carbon"`
	TotalReports    int64   `json:"total_reports"`
	TotalVolunteers int64   `json:"total_volunteers"`
}

// TopVolunteer is one leaderboard row.
type TopVolunteer struct {
	Name           string  `json:"name"`
	AvatarInitials string  `json:"avatar_initials"`
	Hours          float64 `json:"hours"`
}

// ImpactRepository defines the interface for impact report access
type ImpactRepository interface {
	ListByUser(userID uint64) ([]models.ImpactReport, error)
	UserTotals(userID uint64) (ImpactTotals, error)
	CommunityTotals() (ImpactTotals, error)
	TopVolunteers(limit int) ([]TopVolunteer, error)
}

// CommunityRepository defines the interface for community feed access
type CommunityRepository interface {
	Create(post *models.CommunityPost) error
	List() ([]models.CommunityPost, error)
	Like(postID uint64) error
}
