package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteer-hub-api/internal/dto"
	apierrors "github.com/volunteerhub/volunteer-hub-api/internal/errors"
	"github.com/volunteerhub/volunteer-hub-api/internal/middleware"
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"github.com/volunteerhub/volunteer-hub-api/internal/services"
	"github.com/volunteerhub/volunteer-hub-api/internal/utils"
)

type TaskHandler struct {
	taskService      *services.TaskService
	rateLimitService *services.RateLimitService
}

func NewTaskHandler(taskService *services.TaskService, rateLimitService *services.RateLimitService) *TaskHandler {
	return &TaskHandler{
		taskService:      taskService,
		rateLimitService: rateLimitService,
	}
}

// CreateTaskRequest represents the create task payload
type CreateTaskRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"duration_minutes"`
	LocationAddress string   `json:"location_address"`
	City            string   `json:"city"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	ScheduledDate   string   `json:"scheduled_date"`
	ScheduledTime   string   `json:"scheduled_time"`
	Skills          []string `json:"skills"`
}

// CompleteTaskRequest represents the complete task payload
type CompleteTaskRequest struct {
	Notes string `json:"notes"`
	Photo string `json:"photo"`
}

// ListTasks returns tasks filtered by the query parameters. Authenticated
// callers get the list ranked by match score.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	input := services.ListTasksInput{
		City:     c.Query("city"),
		Skill:    c.Query("skill"),
		Page:     params.Page,
		PageSize: params.Limit,
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.TaskStatus(statusStr)
		if status != models.TaskStatusOpen && status != models.TaskStatusAccepted && status != models.TaskStatusCompleted {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		input.Status = &status
	}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user_id")
			return
		}
		input.UserID = &userID
	}

	if requesterID, ok := middleware.GetUserID(c); ok {
		input.RequesterID = &requesterID
	}

	scored, total, err := h.taskService.ListTasks(input)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{
		Tasks:      scoredToDTOs(scored),
		Page:       params.Page,
		PageSize:   params.Limit,
		TotalCount: total,
	})
}

// GetTask returns a single task. The task is loaded by RequireTask.
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not loaded")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

// CreateTask creates a new open task for the authenticated poster.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		PosterID:        userID,
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		LocationAddress: req.LocationAddress,
		City:            req.City,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		ScheduledDate:   req.ScheduledDate,
		ScheduledTime:   req.ScheduledTime,
		Skills:          req.Skills,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired):
			apierrors.BadRequest(c, "Title is required")
		case errors.Is(err, services.ErrInvalidSkillTag):
			apierrors.BadRequest(c, "Unknown skill tag")
		case errors.Is(err, services.ErrRateLimitExceeded):
			status, statusErr := h.rateLimitService.Check(userID)
			var details interface{}
			if statusErr == nil {
				details = toRateLimitDTO(status)
			}
			apierrors.TooManyRequests(c, "Daily task limit reached, try again tomorrow", details)
		default:
			apierrors.InternalError(c, "Failed to create task")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// AcceptTask claims an open task for the authenticated volunteer.
func (h *TaskHandler) AcceptTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	loaded, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not loaded")
		return
	}

	task, err := h.taskService.AcceptTask(loaded.ID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrActiveTaskExists):
			apierrors.ConflictWithCode(c, apierrors.ErrCodeActiveTaskExists, "Complete your current task before accepting another")
		case errors.Is(err, services.ErrTaskNotOpen):
			apierrors.ConflictWithCode(c, apierrors.ErrCodeTaskNotOpen, "This task is no longer open")
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		default:
			apierrors.InternalError(c, "Failed to accept task")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CompleteTask marks a task completed and records its impact.
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	loaded, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not loaded")
		return
	}

	var req CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CompleteTask(loaded.ID, userID, req.Notes, req.Photo)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyCompleted):
			apierrors.ConflictWithCode(c, apierrors.ErrCodeAlreadyCompleted, "This task has already been completed")
		case errors.Is(err, services.ErrNotAuthorized):
			apierrors.ForbiddenWithCode(c, apierrors.ErrCodeNotAuthorized, "Only the volunteer who accepted this task can complete it")
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		default:
			apierrors.InternalError(c, "Failed to complete task")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ActiveTask returns the volunteer's currently accepted task, if any.
func (h *TaskHandler) ActiveTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	task, err := h.taskService.GetActiveTask(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch active task")
		return
	}
	if task == nil {
		c.JSON(http.StatusOK, gin.H{"task": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}

// Limit returns the caller's standing against the daily posting quota.
func (h *TaskHandler) Limit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	status, err := h.rateLimitService.Check(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to check rate limit")
		return
	}

	c.JSON(http.StatusOK, toRateLimitDTO(status))
}

// MatchedTasks returns open tasks ranked for the authenticated volunteer.
func (h *TaskHandler) MatchedTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	scored, err := h.taskService.MatchedTasks(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch matched tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": scoredToDTOs(scored)})
}

// Schedule returns the caller's posted and accepted tasks in schedule order.
func (h *TaskHandler) Schedule(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	includeCompleted := c.Query("include_completed") == "true"
	tasks, err := h.taskService.Schedule(userID, includeCompleted)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// Cities returns the distinct cities that have tasks.
func (h *TaskHandler) Cities(c *gin.Context) {
	cities, err := h.taskService.Cities()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch cities")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func scoredToDTOs(scored []services.ScoredTask) []dto.TaskDTO {
	dtos := make([]dto.TaskDTO, len(scored))
	for i, st := range scored {
		d := dto.ToTaskDTO(st.Task)
		d.MatchScore = st.Score
		dtos[i] = d
	}
	return dtos
}

func toRateLimitDTO(s services.LimitStatus) dto.RateLimitDTO {
	return dto.RateLimitDTO{
		PostsToday: s.PostsToday,
		DailyLimit: s.DailyLimit,
		Remaining:  s.Remaining,
		CanPost:    s.CanPost,
	}
}
