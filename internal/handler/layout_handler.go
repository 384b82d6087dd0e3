package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geogram/map-backend-go/internal/service"
	"github.com/geogram/map-backend-go/pkg/response"
)

// LayoutHandler handles HTTP requests for layout computation
type LayoutHandler struct {
	service *service.LayoutService
}

// NewLayoutHandler creates a new layout handler
func NewLayoutHandler(service *service.LayoutService) *LayoutHandler {
	return &LayoutHandler{service: service}
}

// Compute handles POST /api/v1/layout
func (h *LayoutHandler) Compute(c *gin.Context) {
	var req service.LayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid layout request", err)
		return
	}

	result, err := h.service.Compute(req, time.Now())
	if err != nil {
		response.InternalError(c, "Failed to compute layout", err)
		return
	}

	response.Success(c, result)
}
