package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteer-hub-api/internal/dto"
	apierrors "github.com/volunteerhub/volunteer-hub-api/internal/errors"
	"github.com/volunteerhub/volunteer-hub-api/internal/repository"
	"github.com/volunteerhub/volunteer-hub-api/internal/services"
	"github.com/volunteerhub/volunteer-hub-api/internal/skills"
)

// SkillHandler serves the skill vocabulary and the two suggesters.
type SkillHandler struct {
	skillRepo repository.SkillRepository
	aiService *services.AIService
}

// NewSkillHandler creates a new SkillHandler. aiService may be nil when no
// API key is configured.
func NewSkillHandler(skillRepo repository.SkillRepository, aiService *services.AIService) *SkillHandler {
	return &SkillHandler{
		skillRepo: skillRepo,
		aiService: aiService,
	}
}

// SuggestRequest represents the suggestion payload
type SuggestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// List returns the skill vocabulary.
func (h *SkillHandler) List(c *gin.Context) {
	rows, err := h.skillRepo.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch skills")
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": dto.SkillNames(rows)})
}

// Suggest infers skill tags from free text using keyword matching.
func (h *SkillHandler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tags := skills.Suggest(req.Title + " " + req.Description)
	c.JSON(http.StatusOK, gin.H{"skills": tags})
}

// SuggestAI infers skill tags from free text using OpenAI.
func (h *SkillHandler) SuggestAI(c *gin.Context) {
	if h.aiService == nil {
		apierrors.ServiceUnavailable(c, "AI suggestions are not configured")
		return
	}

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tags, err := h.aiService.SuggestSkills(c.Request.Context(), req.Title+" "+req.Description)
	if err != nil {
		apierrors.ServiceUnavailable(c, "AI suggestions are temporarily unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": tags})
}
