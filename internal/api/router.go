package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geogram/map-backend-go/internal/config"
	"github.com/geogram/map-backend-go/internal/database"
	"github.com/geogram/map-backend-go/internal/handler"
	"github.com/geogram/map-backend-go/internal/layout"
	"github.com/geogram/map-backend-go/internal/middleware"
	"github.com/geogram/map-backend-go/internal/repository"
	"github.com/geogram/map-backend-go/internal/service"
)

// SetupRouter wires repositories, services, and handlers into the API
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Geogram Map Backend is running",
		})
	})

	db := database.GetDB()
	postRepo := repository.NewPostRepository(db)
	personRepo := repository.NewPersonRepository(db)

	engine := layout.New(layout.Config{
		ExpirationHours: cfg.ExpirationHours,
		ClusterRadius:   cfg.ClusterRadius,
		MinLikesForZoom: cfg.MinLikesForZoom,
	})

	postService := service.NewPostService(postRepo, cfg.ExpirationHours)
	personService := service.NewPersonService(personRepo)
	layoutService := service.NewLayoutService(engine, postService, personService)

	postHandler := handler.NewPostHandler(postService)
	personHandler := handler.NewPersonHandler(personService)
	layoutHandler := handler.NewLayoutHandler(layoutService)

	auth := middleware.Auth(cfg.JWTSecret)

	api := r.Group("/api/v1")
	{
		api.POST("/layout", layoutHandler.Compute)

		messages := api.Group("/messages")
		{
			messages.GET("", postHandler.List)
			messages.POST("", auth, postHandler.Create)
		}

		people := api.Group("/people")
		{
			people.GET("", personHandler.List)
			people.POST("/location", auth, personHandler.UpdateLocation)
			people.DELETE("/:id", auth, personHandler.Remove)
		}
	}

	return r
}
