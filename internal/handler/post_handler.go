package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geogram/map-backend-go/internal/middleware"
	"github.com/geogram/map-backend-go/internal/models"
	"github.com/geogram/map-backend-go/internal/service"
	"github.com/geogram/map-backend-go/pkg/response"
)

// PostHandler handles HTTP requests for the post feed
type PostHandler struct {
	service *service.PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(service *service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/v1/messages
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.service.ListActive(time.Now())
	if err != nil {
		response.InternalError(c, "Failed to list posts", err)
		return
	}
	response.Success(c, gin.H{
		"data":  posts,
		"count": len(posts),
	})
}

// Create handles POST /api/v1/messages
func (h *PostHandler) Create(c *gin.Context) {
	var post models.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		response.BadRequest(c, "Invalid post payload", err)
		return
	}

	// The authenticated user owns the post regardless of the payload.
	if userID := middleware.UserID(c); userID != "" {
		post.UserID = userID
	}

	created, err := h.service.Ingest(post, time.Now())
	if err != nil {
		response.InternalError(c, "Failed to store post", err)
		return
	}
	response.Success(c, created)
}
