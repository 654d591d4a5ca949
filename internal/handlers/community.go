package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/volunteerhub/volunteer-hub-api/internal/errors"
	"github.com/volunteerhub/volunteer-hub-api/internal/middleware"
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"github.com/volunteerhub/volunteer-hub-api/internal/repository"
	"gorm.io/gorm"
)

// CommunityHandler serves the community feed.
type CommunityHandler struct {
	communityRepo repository.CommunityRepository
}

// NewCommunityHandler creates a new CommunityHandler
func NewCommunityHandler(communityRepo repository.CommunityRepository) *CommunityHandler {
	return &CommunityHandler{communityRepo: communityRepo}
}

// ListPosts returns the community feed, newest first.
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	posts, err := h.communityRepo.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost publishes a post to the community feed.
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreatePostRequest struct {
		Content  string  `json:"content" binding:"required"`
		TaskID   *uint64 `json:"task_id"`
		ImageURL string  `json:"image_url"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		apierrors.BadRequest(c, "Content is required")
		return
	}

	post := &models.CommunityPost{
		UserID:   userID,
		TaskID:   req.TaskID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if err := h.communityRepo.Create(post); err != nil {
		apierrors.InternalError(c, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// LikePost increments a post's like counter.
func (h *CommunityHandler) LikePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid post ID")
		return
	}

	if err := h.communityRepo.Like(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Post not found")
			return
		}
		apierrors.InternalError(c, "Failed to like post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post liked"})
}
