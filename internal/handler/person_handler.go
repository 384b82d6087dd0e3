package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geogram/map-backend-go/internal/middleware"
	"github.com/geogram/map-backend-go/internal/models"
	"github.com/geogram/map-backend-go/internal/service"
	"github.com/geogram/map-backend-go/pkg/response"
)

// PersonHandler handles HTTP requests for live positions
type PersonHandler struct {
	service *service.PersonService
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(service *service.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

// List handles GET /api/v1/people
func (h *PersonHandler) List(c *gin.Context) {
	people, err := h.service.List()
	if err != nil {
		response.InternalError(c, "Failed to list people", err)
		return
	}
	response.Success(c, gin.H{
		"data":  people,
		"count": len(people),
	})
}

// UpdateLocation handles POST /api/v1/people/location
func (h *PersonHandler) UpdateLocation(c *gin.Context) {
	var person models.Person
	if err := c.ShouldBindJSON(&person); err != nil {
		response.BadRequest(c, "Invalid person payload", err)
		return
	}

	if userID := middleware.UserID(c); userID != "" {
		person.ID = userID
	}
	if person.ID == "" {
		response.BadRequest(c, "Missing person id", nil)
		return
	}

	if err := h.service.UpdateLocation(person, time.Now()); err != nil {
		response.InternalError(c, "Failed to update location", err)
		return
	}
	response.Success(c, person)
}

// Remove handles DELETE /api/v1/people/:id
func (h *PersonHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Remove(id); err != nil {
		response.InternalError(c, "Failed to remove person", err)
		return
	}
	response.Success(c, gin.H{"id": id})
}
