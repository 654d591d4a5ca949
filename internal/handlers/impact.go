package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/volunteerhub/volunteer-hub-api/internal/errors"
	"github.com/volunteerhub/volunteer-hub-api/internal/services"
)

// ImpactHandler serves per-user and community impact summaries.
type ImpactHandler struct {
	impactService *services.ImpactService
}

// NewImpactHandler creates a new ImpactHandler
func NewImpactHandler(impactService *services.ImpactService) *ImpactHandler {
	return &ImpactHandler{impactService: impactService}
}

// UserImpact returns a user's impact reports and totals.
func (h *ImpactHandler) UserImpact(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	impact, err := h.impactService.ForUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch impact")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": impact.Reports,
		"totals":  impact.Totals,
	})
}

// CommunityImpact returns community-wide totals and the top volunteers.
func (h *ImpactHandler) CommunityImpact(c *gin.Context) {
	impact, err := h.impactService.ForCommunity()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch community impact")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totals":         impact.Totals,
		"top_volunteers": impact.TopVolunteers,
	})
}
