package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/volunteerhub/volunteer-hub-api/internal/constants"
	"github.com/volunteerhub/volunteer-hub-api/internal/dto"
	"github.com/volunteerhub/volunteer-hub-api/internal/matching"
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"github.com/volunteerhub/volunteer-hub-api/internal/repository"
	"github.com/volunteerhub/volunteer-hub-api/internal/skills"
	"github.com/volunteerhub/volunteer-hub-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidSkillTag   = errors.New("unknown skill tag")
	ErrTaskNotFound      = errors.New("task not found")
	ErrRateLimitExceeded = errors.New("daily task limit reached")
	ErrTaskNotOpen       = errors.New("task is no longer open")
	ErrActiveTaskExists  = errors.New("an active task already exists")
	ErrNotAuthorized     = errors.New("task was accepted by another volunteer")
	ErrAlreadyCompleted  = errors.New("task is already completed")
)

// TaskService owns the task lifecycle: creation under the daily quota,
// acceptance under the single-active-task rule, and completion.
type TaskService struct {
	taskRepo   repository.TaskRepository
	userRepo   repository.UserRepository
	skillRepo  repository.SkillRepository
	dailyLimit int

	// now is swapped out in tests to cross calendar dates.
	now func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, skillRepo repository.SkillRepository, dailyLimit int) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		userRepo:   userRepo,
		skillRepo:  skillRepo,
		dailyLimit: dailyLimit,
		now:        time.Now,
	}
}

// ScoredTask is a task with its match score for the requesting volunteer.
// Score is nil for anonymous requests.
type ScoredTask struct {
	Task  models.Task
	Score *int
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	City        string
	Skill       string
	Status      *models.TaskStatus
	UserID      *uint64 // tasks posted by or accepted by this user
	RequesterID *uint64 // authenticated caller, used for ranking
	Page        int
	PageSize    int
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	PosterID        uint64
	Title           string
	Description     string
	DurationMinutes int
	LocationAddress string
	City            string
	Latitude        float64
	Longitude       float64
	ScheduledDate   string
	ScheduledTime   string
	Skills          []string
}

// ListTasks returns tasks matching the filter. When a requester is known the
// list is ranked by match score; otherwise the server order is returned
// unchanged.
func (s *TaskService) ListTasks(input ListTasksInput) ([]ScoredTask, int64, error) {
	filter := repository.TaskFilter{
		City:     input.City,
		Skill:    input.Skill,
		Status:   input.Status,
		UserID:   input.UserID,
		Page:     input.Page,
		PageSize: input.PageSize,
	}

	tasks, total, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	scored := make([]ScoredTask, len(tasks))
	for i, t := range tasks {
		scored[i] = ScoredTask{Task: t}
	}

	if input.RequesterID != nil {
		if err := s.rank(*input.RequesterID, scored); err != nil {
			return nil, 0, err
		}
	}

	return scored, total, nil
}

// MatchedTasks returns the open tasks ranked for a volunteer.
func (s *TaskService) MatchedTasks(volunteerID uint64) ([]ScoredTask, error) {
	tasks, err := s.taskRepo.ListOpen()
	if err != nil {
		return nil, fmt.Errorf("failed to list open tasks: %w", err)
	}

	scored := make([]ScoredTask, len(tasks))
	for i, t := range tasks {
		scored[i] = ScoredTask{Task: t}
	}
	if err := s.rank(volunteerID, scored); err != nil {
		return nil, err
	}
	return scored, nil
}

// GetTask returns a task with poster and skills loaded.
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "PostedBy", "Skills")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTask creates a new open task, consuming one unit of the poster's
// daily quota. When no skills are supplied they are inferred from the title
// and description.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	tags := input.Skills
	if len(tags) == 0 {
		tags = skills.Suggest(input.Title + " " + input.Description)
	} else {
		for _, tag := range tags {
			if !skills.IsValidTag(tag) {
				return nil, fmt.Errorf("%w: %s", ErrInvalidSkillTag, tag)
			}
		}
	}

	skillRows, err := s.skillRepo.FindByNames(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve skill tags: %w", err)
	}

	duration := input.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	task := &models.Task{
		Title:           title,
		Description:     input.Description,
		Status:          models.TaskStatusOpen,
		PostedByID:      input.PosterID,
		DurationMinutes: duration,
		LocationAddress: input.LocationAddress,
		City:            input.City,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		ScheduledDate:   input.ScheduledDate,
		ScheduledTime:   input.ScheduledTime,
		Skills:          skillRows,
	}

	day := s.today()
	if err := s.taskRepo.CreateWithDailyQuota(task, s.dailyLimit, day); err != nil {
		if errors.Is(err, repository.ErrDailyLimitReached) {
			return nil, ErrRateLimitExceeded
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "PostedBy", "Skills")
}

// AcceptTask transitions a task open -> accepted for the volunteer. The
// exclusivity check wins over the open check when both would fail.
func (s *TaskService) AcceptTask(taskID, volunteerID uint64) (*models.Task, error) {
	if err := s.taskRepo.Accept(taskID, volunteerID); err != nil {
		switch {
		case errors.Is(err, repository.ErrVolunteerBusy):
			return nil, ErrActiveTaskExists
		case errors.Is(err, repository.ErrTaskNotOpen):
			return nil, ErrTaskNotOpen
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to accept task: %w", err)
	}

	return s.taskRepo.FindByID(taskID, "PostedBy", "Skills")
}

// CompleteTask transitions a task to completed, releasing the volunteer's
// active slot. Open tasks may be completed directly; accepted tasks only by
// the volunteer who accepted them.
func (s *TaskService) CompleteTask(taskID, volunteerID uint64, notes, photo string) (*models.Task, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		notes = constants.DefaultCompletionNotes
	}

	photoRef := ""
	if photo != "" {
		// The upload itself happens out of band; the server names the object.
		photoRef = utils.PhotoReference(strings.TrimPrefix(filepath.Ext(photo), "."))
	}

	err := s.taskRepo.Complete(taskID, volunteerID, repository.CompletionInput{
		Notes: notes,
		Photo: photoRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskCompleted):
			return nil, ErrAlreadyCompleted
		case errors.Is(err, repository.ErrTaskNotOwned):
			return nil, ErrNotAuthorized
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	return s.taskRepo.FindByID(taskID, "PostedBy", "Skills")
}

// GetActiveTask returns the volunteer's accepted task, or nil when they hold
// none.
func (s *TaskService) GetActiveTask(volunteerID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindActiveByVolunteer(volunteerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active task: %w", err)
	}
	return task, nil
}

// Schedule returns the tasks a user posted or accepted, ordered by schedule.
func (s *TaskService) Schedule(userID uint64, includeCompleted bool) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListSchedule(userID, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule: %w", err)
	}
	return tasks, nil
}

// Cities returns the distinct cities with tasks.
func (s *TaskService) Cities() ([]string, error) {
	cities, err := s.taskRepo.Cities()
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

// rank scores and reorders tasks for the volunteer. Unknown volunteers leave
// the list unranked rather than failing the request.
func (s *TaskService) rank(volunteerID uint64, tasks []ScoredTask) error {
	volunteer, err := s.userRepo.FindByID(volunteerID, "Skills")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load volunteer profile: %w", err)
	}

	profile := matching.Profile{
		Skills: dto.SkillNames(volunteer.Skills),
		City:   volunteer.City,
	}

	matching.Rank(profile, tasks,
		func(t ScoredTask) matching.Candidate {
			return matching.Candidate{Skills: dto.SkillNames(t.Task.Skills), City: t.Task.City}
		},
		func(t *ScoredTask, score int) {
			v := score
			t.Score = &v
		},
	)
	return nil
}

func (s *TaskService) today() string {
	return s.now().Format("2006-01-02")
}
