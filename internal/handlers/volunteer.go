package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteer-hub-api/internal/dto"
	apierrors "github.com/volunteerhub/volunteer-hub-api/internal/errors"
	"github.com/volunteerhub/volunteer-hub-api/internal/middleware"
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"github.com/volunteerhub/volunteer-hub-api/internal/repository"
	"github.com/volunteerhub/volunteer-hub-api/internal/skills"
	"gorm.io/gorm"
)

// VolunteerHandler serves the volunteer directory, user profiles and
// availability windows.
type VolunteerHandler struct {
	userRepo         repository.UserRepository
	skillRepo        repository.SkillRepository
	availabilityRepo repository.AvailabilityRepository
}

// NewVolunteerHandler creates a new VolunteerHandler
func NewVolunteerHandler(userRepo repository.UserRepository, skillRepo repository.SkillRepository, availabilityRepo repository.AvailabilityRepository) *VolunteerHandler {
	return &VolunteerHandler{
		userRepo:         userRepo,
		skillRepo:        skillRepo,
		availabilityRepo: availabilityRepo,
	}
}

// ListVolunteers returns the volunteer directory with upcoming availability.
func (h *VolunteerHandler) ListVolunteers(c *gin.Context) {
	users, err := h.userRepo.ListVolunteers()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch volunteers")
		return
	}

	today := time.Now().Format("2006-01-02")
	volunteers := make([]dto.VolunteerDTO, 0, len(users))
	for _, user := range users {
		windows, err := h.availabilityRepo.ListUpcoming(user.ID, today, 3)
		if err != nil {
			apierrors.InternalError(c, "Failed to fetch availability")
			return
		}

		availability := make([]dto.AvailabilityDTO, len(windows))
		for i, w := range windows {
			availability[i] = dto.ToAvailabilityDTO(w)
		}
		volunteers = append(volunteers, dto.VolunteerDTO{
			UserDTO:      dto.ToUserDTO(user),
			Availability: availability,
		})
	}

	c.JSON(http.StatusOK, gin.H{"volunteers": volunteers})
}

// GetUser returns a public user profile with posted task counts.
func (h *VolunteerHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userRepo.FindByID(userID, "Skills")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	counts, err := h.userRepo.PostedStatusCounts(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch task counts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": dto.ToUserDTO(*user),
		"posted_tasks": gin.H{
			"open":      counts[models.TaskStatusOpen],
			"accepted":  counts[models.TaskStatusAccepted],
			"completed": counts[models.TaskStatusCompleted],
		},
	})
}

// AddAvailability records an availability window for the caller. When the
// payload carries skill tags the caller's skill set is replaced too.
func (h *VolunteerHandler) AddAvailability(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type AvailabilityRequest struct {
		Date      string   `json:"date" binding:"required"`
		StartTime string   `json:"start_time"`
		EndTime   string   `json:"end_time"`
		City      string   `json:"city"`
		Skills    []string `json:"skills"`
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		apierrors.BadRequest(c, "Date must be YYYY-MM-DD")
		return
	}

	window := &models.Availability{
		UserID:    userID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		City:      req.City,
	}
	if err := h.availabilityRepo.Create(window); err != nil {
		apierrors.InternalError(c, "Failed to save availability")
		return
	}

	if len(req.Skills) > 0 {
		for _, tag := range req.Skills {
			if !skills.IsValidTag(tag) {
				apierrors.BadRequest(c, "Unknown skill tag")
				return
			}
		}
		rows, err := h.skillRepo.FindByNames(req.Skills)
		if err != nil {
			apierrors.InternalError(c, "Failed to resolve skill tags")
			return
		}
		if err := h.userRepo.ReplaceSkills(userID, rows); err != nil {
			apierrors.InternalError(c, "Failed to update skills")
			return
		}
	}

	c.JSON(http.StatusCreated, dto.ToAvailabilityDTO(*window))
}

// ListAvailability returns the caller's availability windows.
func (h *VolunteerHandler) ListAvailability(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	windows, err := h.availabilityRepo.ListByUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch availability")
		return
	}

	out := make([]dto.AvailabilityDTO, len(windows))
	for i, w := range windows {
		out[i] = dto.ToAvailabilityDTO(w)
	}
	c.JSON(http.StatusOK, gin.H{"availability": out})
}
